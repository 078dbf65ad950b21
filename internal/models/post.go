package models

import "time"

// Post statuses. Transitions are unconstrained, but only the owner may change them.
const (
	PostStatusPublic   = "PUBLIC"
	PostStatusHidden   = "HIDDEN"
	PostStatusFiltered = "FILTERED"
)

// ValidPostStatus reports whether s is one of the known post statuses.
func ValidPostStatus(s string) bool {
	return s == PostStatusPublic || s == PostStatusHidden || s == PostStatusFiltered
}

// Post is a photo post. UserID is the owning user and never changes.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	PicPath   string    `json:"picPath"` // Public URL of the uploaded image
	Bio       string    `json:"bio"`     // Caption
	Status    string    `json:"status" gorm:"default:PUBLIC"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// PostTag links a post to a tagged user. A post carries 1 to 10 tags;
// re-tagging replaces the whole set.
type PostTag struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	PostID uint `json:"postId" gorm:"index;not null"`
	UserID uint `json:"userId" gorm:"not null"`
}

// CreatePostRequest defines the multipart form fields for creating a post.
// The image file itself arrives as the "file" form part.
type CreatePostRequest struct {
	ReceiverUserID []uint `json:"receiverUserId" validate:"required,min=1,max=10,dive,min=1"`
	Content        string `json:"content" validate:"required"`
}

// UpdatePostRequest defines the request body for updating a post.
// Nil fields keep their current value; a supplied tag list replaces all tags.
type UpdatePostRequest struct {
	ReceiverUserID []uint  `json:"receiverUserId,omitempty"`
	Content        *string `json:"content,omitempty"`
	Status         *string `json:"status,omitempty"`
}

// ReactionTally is one emoji with its occurrence count on a post.
type ReactionTally struct {
	Emoji string `json:"emoji"`
	Count int64  `json:"count"`
}

// FeedPost is a post annotated for the discovery feed.
type FeedPost struct {
	ID         uint            `json:"id"`
	PicPath    string          `json:"picPath"`
	Bio        string          `json:"bio"`
	UserID     uint            `json:"userId"`
	Reacts     []ReactionTally `json:"reacts"`
	HeartCount int64           `json:"heartCount"`
}
