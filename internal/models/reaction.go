package models

// React is an emoji annotation on a post. Reacts are aggregated by content
// for the feed and are read-only within this service.
type React struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	PostID  uint   `json:"postId" gorm:"index;not null"`
	Content string `json:"content"` // Emoji
}
