package repositories

import (
	"context"

	"github.com/devharu/snaptag/backend/internal/models"
	"gorm.io/gorm"
)

// ReactionRepository defines the interface for emoji reaction reads
type ReactionRepository interface {
	CreateReact(ctx context.Context, react *models.React) error
	GetTopReactionsByPostID(ctx context.Context, postID uint, limit int) ([]models.ReactionTally, error)
}

// PostgresReactionRepository implements ReactionRepository for PostgreSQL
type PostgresReactionRepository struct {
	db *gorm.DB
}

// NewPostgresReactionRepository creates a new PostgresReactionRepository
func NewPostgresReactionRepository(db *gorm.DB) *PostgresReactionRepository {
	return &PostgresReactionRepository{db: db}
}

// CreateReact creates a new reaction row
func (r *PostgresReactionRepository) CreateReact(ctx context.Context, react *models.React) error {
	return r.db.WithContext(ctx).Create(react).Error
}

// GetTopReactionsByPostID groups a post's reactions by emoji and returns up
// to limit tallies, ordered by count descending with content as tie-break.
func (r *PostgresReactionRepository) GetTopReactionsByPostID(ctx context.Context, postID uint, limit int) ([]models.ReactionTally, error) {
	var tallies []models.ReactionTally
	err := r.db.WithContext(ctx).
		Model(&models.React{}).
		Select("content AS emoji, COUNT(*) AS count").
		Where("post_id = ?", postID).
		Group("content").
		Order("count DESC, content ASC").
		Limit(limit).
		Scan(&tallies).Error
	if err != nil {
		return nil, err
	}
	return tallies, nil
}
