package models

// Heart represents a like on a post. Existence of the row means liked;
// at most one per (user, post).
type Heart struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	PostID uint `json:"postId" gorm:"index;not null"`
	UserID uint `json:"userId" gorm:"index;not null"`
}
