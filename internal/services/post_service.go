package services

import (
	"context"

	"github.com/devharu/snaptag/backend/internal/models"
	"github.com/devharu/snaptag/backend/internal/repositories"
	"github.com/devharu/snaptag/backend/pkg/storage"
)

const (
	maxPostTags   = 10
	feedSize      = 5
	feedTopReacts = 3
)

// PostService owns the post lifecycle: creation with tag fan-out, partial
// updates with tag replacement, deletion, the heart toggle and the random
// discovery feed.
type PostService struct {
	posts               repositories.PostRepository
	hearts              repositories.HeartRepository
	reactions           repositories.ReactionRepository
	uploader            storage.MediaUploader
	deleteRequiresOwner bool
}

// NewPostService creates a new PostService. deleteRequiresOwner turns on the
// ownership check for DeletePost; the default (off) matches the historical
// behavior where deletion is unconditional.
func NewPostService(
	posts repositories.PostRepository,
	hearts repositories.HeartRepository,
	reactions repositories.ReactionRepository,
	uploader storage.MediaUploader,
	deleteRequiresOwner bool,
) *PostService {
	return &PostService{
		posts:               posts,
		hearts:              hearts,
		reactions:           reactions,
		uploader:            uploader,
		deleteRequiresOwner: deleteRequiresOwner,
	}
}

// CreatePost uploads the image and then, inside a single transaction,
// inserts the post row plus one tag row per tagged user. The upload happens
// before the transaction is opened: an upload failure aborts with no
// relational state, while a transaction failure after a successful upload
// leaves an orphaned blob that is not cleaned up.
func (s *PostService) CreatePost(ctx context.Context, ownerID uint, content string, tagUserIDs []uint, file FileUpload) (uint, string, error) {
	if content == "" || len(file.Data) == 0 {
		return 0, "", models.ErrContentMissing
	}
	if ownerID == 0 {
		return 0, "", models.ErrLoginRequired
	}
	if len(tagUserIDs) < 1 || len(tagUserIDs) > maxPostTags {
		return 0, "", models.ErrBadRequest
	}
	for _, id := range tagUserIDs {
		if id == 0 {
			return 0, "", models.ErrBadRequest
		}
	}

	url, err := s.uploader.Upload(ctx, file.Data, file.Filename, file.ContentType)
	if err != nil {
		return 0, "", err
	}

	post := &models.Post{
		UserID:  ownerID,
		PicPath: url,
		Bio:     content,
		Status:  models.PostStatusPublic,
	}

	err = s.posts.Transaction(ctx, func(tx repositories.PostRepository) error {
		if err := tx.CreatePost(ctx, post); err != nil {
			return err
		}
		tags := make([]models.PostTag, 0, len(tagUserIDs))
		for _, userID := range tagUserIDs {
			tags = append(tags, models.PostTag{PostID: post.ID, UserID: userID})
		}
		return tx.CreatePostTags(ctx, tags)
	})
	if err != nil {
		return 0, "", err
	}

	return post.ID, url, nil
}

// UpdatePost applies a partial update. Nil content/status keep the current
// values. A supplied tag list fully replaces the existing set inside the
// same transaction as the field update; a supplied-but-empty list or a zero
// id fails BAD_REQUEST with nothing applied.
func (s *PostService) UpdatePost(ctx context.Context, postID, callerID uint, req models.UpdatePostRequest) error {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return models.ErrForbidden
	}

	if req.ReceiverUserID != nil {
		if len(req.ReceiverUserID) == 0 {
			return models.ErrBadRequest
		}
		if len(req.ReceiverUserID) > maxPostTags {
			return models.ErrBadRequest
		}
		for _, id := range req.ReceiverUserID {
			if id == 0 {
				return models.ErrBadRequest
			}
		}
	}
	if req.Status != nil && !models.ValidPostStatus(*req.Status) {
		return models.ErrBadRequest
	}

	if req.Content != nil {
		post.Bio = *req.Content
	}
	if req.Status != nil {
		post.Status = *req.Status
	}

	return s.posts.Transaction(ctx, func(tx repositories.PostRepository) error {
		if err := tx.UpdatePost(ctx, post); err != nil {
			return err
		}
		if req.ReceiverUserID == nil {
			return nil
		}
		if err := tx.DeletePostTagsByPostID(ctx, postID); err != nil {
			return err
		}
		tags := make([]models.PostTag, 0, len(req.ReceiverUserID))
		for _, userID := range req.ReceiverUserID {
			tags = append(tags, models.PostTag{PostID: postID, UserID: userID})
		}
		return tx.CreatePostTags(ctx, tags)
	})
}

// DeletePost removes a post and its dependent tag/heart/reaction rows in one
// transaction. With deleteRequiresOwner set, a caller other than the owner
// fails FORBIDDEN; otherwise deletion is unconditional.
func (s *PostService) DeletePost(ctx context.Context, postID, callerID uint) error {
	if s.deleteRequiresOwner {
		post, err := s.posts.GetPostByID(ctx, postID)
		if err != nil {
			return err
		}
		if post.UserID != callerID {
			return models.ErrForbidden
		}
	}

	return s.posts.Transaction(ctx, func(tx repositories.PostRepository) error {
		if err := tx.DeletePostTagsByPostID(ctx, postID); err != nil {
			return err
		}
		if err := tx.DeleteHeartsByPostID(ctx, postID); err != nil {
			return err
		}
		if err := tx.DeleteReactsByPostID(ctx, postID); err != nil {
			return err
		}
		return tx.DeletePost(ctx, postID)
	})
}

// HeartPost toggles the heart row for (userID, postID): absent inserts,
// present deletes. The lookup and the write are separate statements; two
// concurrent toggles can race, and the losing delete is a harmless no-op.
func (s *PostService) HeartPost(ctx context.Context, postID, userID uint) error {
	heart, err := s.hearts.GetHeart(ctx, postID, userID)
	if err != nil {
		return err
	}

	if heart == nil {
		return s.hearts.CreateHeart(ctx, &models.Heart{PostID: postID, UserID: userID})
	}
	return s.hearts.DeleteHeart(ctx, heart.ID)
}

// GetFeed samples up to 5 PUBLIC posts at random and annotates each with up
// to 3 emoji tallies (count descending, emoji as tie-break) and the total
// heart count.
func (s *PostService) GetFeed(ctx context.Context) ([]models.FeedPost, error) {
	posts, err := s.posts.GetRandomPublicPosts(ctx, feedSize)
	if err != nil {
		return nil, err
	}

	feed := make([]models.FeedPost, 0, len(posts))
	for _, post := range posts {
		reacts, err := s.reactions.GetTopReactionsByPostID(ctx, post.ID, feedTopReacts)
		if err != nil {
			return nil, err
		}
		if reacts == nil {
			reacts = []models.ReactionTally{}
		}

		heartCount, err := s.hearts.GetHeartCountByPostID(ctx, post.ID)
		if err != nil {
			return nil, err
		}

		feed = append(feed, models.FeedPost{
			ID:         post.ID,
			PicPath:    post.PicPath,
			Bio:        post.Bio,
			UserID:     post.UserID,
			Reacts:     reacts,
			HeartCount: heartCount,
		})
	}
	return feed, nil
}
