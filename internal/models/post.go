package models

import (
	"time"

	"gorm.io/gorm"
)

// Post categories. CategoryAll is a query sentinel only and is never stored.
const (
	CategoryAll          = "all"
	CategoryTechnology   = "technology"
	CategoryGaming       = "gaming"
	CategoryMovies       = "movies"
	CategoryMusic        = "music"
	CategoryMediaStation = "media_station"
	CategoryGossips      = "gossips"
	CategoryCampusTour   = "campus_tour"
)

// Categories lists every storable post category.
var Categories = []string{
	CategoryTechnology,
	CategoryGaming,
	CategoryMovies,
	CategoryMusic,
	CategoryMediaStation,
	CategoryGossips,
	CategoryCampusTour,
}

// IsValidCategory reports whether c is a storable category (CategoryAll is not).
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Feed sort modes.
const (
	SortRecent  = "recent"
	SortPopular = "popular"
)

// Post represents a post in one of the fixed campus categories.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Media    string `json:"media,omitempty"`
	Category string `gorm:"type:varchar(20);not null;index" json:"category"`
	IsIdea   bool   `gorm:"default:false" json:"is_idea"`
	Genre    string `json:"genre,omitempty"`
	Language string `json:"language,omitempty"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// MediaLikesCount is not persisted; computed at query time
	MediaLikesCount int            `gorm:"->" json:"media_likes_count"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
