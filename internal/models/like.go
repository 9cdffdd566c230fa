package models

import "time"

// Like represents a user's like on a post.
// The combination of UserID and PostID is unique; the toggle insert relies on
// this index for its ON CONFLICT clause, so duplicate rows cannot exist even
// under concurrent toggles. Likes are hard deleted.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MediaLike has the same shape and invariant as Like but lives in its own
// table, used by the media_station section of the app.
type MediaLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_media_likes_user_post" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_media_likes_user_post" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (MediaLike) TableName() string {
	return "media_likes"
}
