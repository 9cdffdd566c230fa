package repository

import (
	"testing"
	"time"

	"github.com/techTenzen/VTalk/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.MediaLike{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email, Gender: models.GenderOther}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, author *models.User, category string, mutate ...func(*models.Post)) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:    "A post about " + category,
		Content:  "content for " + category,
		Category: category,
		AuthorID: author.ID,
	}
	for _, m := range mutate {
		m(post)
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

// backdate moves a post's created_at so ordering assertions are deterministic.
func backdate(t *testing.T, db *gorm.DB, post *models.Post, d time.Duration) {
	t.Helper()
	ts := time.Now().Add(-d)
	if err := db.Model(&models.Post{}).Where("id = ?", post.ID).Update("created_at", ts).Error; err != nil {
		t.Fatalf("backdate post: %v", err)
	}
}
