package repositories

import (
	"context"
	"errors"

	"github.com/devharu/snaptag/backend/internal/models"
	"gorm.io/gorm"
)

// HeartRepository defines the interface for heart (like) data operations
type HeartRepository interface {
	GetHeart(ctx context.Context, postID, userID uint) (*models.Heart, error)
	CreateHeart(ctx context.Context, heart *models.Heart) error
	DeleteHeart(ctx context.Context, id uint) error
	GetHeartCountByPostID(ctx context.Context, postID uint) (int64, error)
}

// PostgresHeartRepository implements HeartRepository for PostgreSQL
type PostgresHeartRepository struct {
	db *gorm.DB
}

// NewPostgresHeartRepository creates a new PostgresHeartRepository
func NewPostgresHeartRepository(db *gorm.DB) *PostgresHeartRepository {
	return &PostgresHeartRepository{db: db}
}

// GetHeart retrieves the heart row for (postID, userID), or nil if absent
func (r *PostgresHeartRepository) GetHeart(ctx context.Context, postID, userID uint) (*models.Heart, error) {
	var heart models.Heart
	err := r.db.WithContext(ctx).Where("post_id = ? AND user_id = ?", postID, userID).First(&heart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &heart, nil
}

// CreateHeart creates a new heart row
func (r *PostgresHeartRepository) CreateHeart(ctx context.Context, heart *models.Heart) error {
	return r.db.WithContext(ctx).Create(heart).Error
}

// DeleteHeart deletes a heart row by ID. Deleting an already-removed row
// affects nothing and is not an error, which keeps the toggle race benign.
func (r *PostgresHeartRepository) DeleteHeart(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Heart{}, id).Error
}

// GetHeartCountByPostID retrieves the number of hearts on a post
func (r *PostgresHeartRepository) GetHeartCountByPostID(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Heart{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
