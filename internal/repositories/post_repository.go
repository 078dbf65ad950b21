package repositories

import (
	"context"
	"errors"

	"github.com/devharu/snaptag/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. Transaction
// yields a repository bound to a single database transaction so the post row,
// its tag fan-out and dependent-row cleanup commit or roll back as one unit.
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id uint) (*models.Post, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id uint) error
	CreatePostTags(ctx context.Context, tags []models.PostTag) error
	DeletePostTagsByPostID(ctx context.Context, postID uint) error
	GetTagsByPostID(ctx context.Context, postID uint) ([]models.PostTag, error)
	GetRandomPublicPosts(ctx context.Context, limit int) ([]models.Post, error)
	DeleteHeartsByPostID(ctx context.Context, postID uint) error
	DeleteReactsByPostID(ctx context.Context, postID uint) error
	Transaction(ctx context.Context, fn func(tx PostRepository) error) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// Transaction runs fn against a transaction-bound copy of the repository.
// fn returning an error rolls back everything it did.
func (r *PostgresPostRepository) Transaction(ctx context.Context, fn func(tx PostRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresPostRepository{db: tx})
	})
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// UpdatePost saves the post fields
func (r *PostgresPostRepository) UpdatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// DeletePost deletes a post by ID
func (r *PostgresPostRepository) DeletePost(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}

// CreatePostTags inserts one tag row per tagged user
func (r *PostgresPostRepository) CreatePostTags(ctx context.Context, tags []models.PostTag) error {
	if len(tags) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tags).Error
}

// DeletePostTagsByPostID removes every tag row of a post
func (r *PostgresPostRepository) DeletePostTagsByPostID(ctx context.Context, postID uint) error {
	return r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.PostTag{}).Error
}

// GetTagsByPostID retrieves all tag rows of a post
func (r *PostgresPostRepository) GetTagsByPostID(ctx context.Context, postID uint) ([]models.PostTag, error) {
	var tags []models.PostTag
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetRandomPublicPosts samples up to limit PUBLIC posts without replacement.
// RANDOM() keeps the selection unpredictable across calls and works on both
// PostgreSQL and the SQLite test database.
func (r *PostgresPostRepository) GetRandomPublicPosts(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("status = ?", models.PostStatusPublic).
		Order("RANDOM()").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// DeleteHeartsByPostID removes every heart of a post
func (r *PostgresPostRepository) DeleteHeartsByPostID(ctx context.Context, postID uint) error {
	return r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.Heart{}).Error
}

// DeleteReactsByPostID removes every reaction of a post
func (r *PostgresPostRepository) DeleteReactsByPostID(ctx context.Context, postID uint) error {
	return r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.React{}).Error
}
