package seed

import (
	"fmt"

	"github.com/techTenzen/VTalk/internal/middleware"
	"github.com/techTenzen/VTalk/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configures the seeder.
type Options struct {
	NumUsers int
	NumPosts int
	// MaxDays spreads generated created_at timestamps over this many days.
	MaxDays int
	// RandSeed fixes the generator for reproducible runs; 0 uses the clock.
	RandSeed int64
}

// Seeder populates the database with demo users, posts and engagement.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder with the given options.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 25
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 100
	}
	return &Seeder{db: db, factory: NewFactory(db, opts), opts: opts}
}

// ClearAll removes all seeded data. Deletion order respects references.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.MediaLike{}, &models.Like{}, &models.Comment{},
		&models.Post{}, &models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(table).Error; err != nil {
			return fmt.Errorf("clearing table for %T: %w", table, err)
		}
	}
	middleware.Logger.Info("all tables cleared")
	return nil
}

// SeedUsers creates the configured number of demo users.
func (s *Seeder) SeedUsers() ([]*models.User, error) {
	users := make([]*models.User, 0, s.opts.NumUsers)
	for i := 0; i < s.opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, user)
	}
	middleware.Logger.Info("seeded users", "count", len(users))
	return users, nil
}

// SeedPosts creates posts spread across all storable categories.
func (s *Seeder) SeedPosts(users []*models.User) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to author posts")
	}

	posts := make([]*models.Post, 0, s.opts.NumPosts)
	for i := 0; i < s.opts.NumPosts; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		category := models.Categories[s.factory.rng.Intn(len(models.Categories))]
		posts = append(posts, s.factory.BuildPost(author, category))
	}
	if err := s.factory.CreatePostsBatch(posts); err != nil {
		return nil, fmt.Errorf("creating posts: %w", err)
	}
	middleware.Logger.Info("seeded posts", "count", len(posts))
	return posts, nil
}

// SeedEngagement adds comments, likes and media likes to the given posts.
// Roughly half the posts get comments; likes follow a long-tail shape so a
// few posts end up far more popular than the rest.
func (s *Seeder) SeedEngagement(users []*models.User, posts []*models.Post) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}
	rng := s.factory.rng

	for _, post := range posts {
		if rng.Intn(2) == 0 {
			for i := 0; i < rng.Intn(4)+1; i++ {
				author := users[rng.Intn(len(users))]
				if _, err := s.factory.CreateComment(author, post); err != nil {
					return fmt.Errorf("commenting on post %d: %w", post.ID, err)
				}
			}
		}

		likers := rng.Intn(len(users)/3 + 1)
		if rng.Intn(10) == 0 {
			likers = rng.Intn(len(users)) // occasional hit post
		}
		for i := 0; i < likers; i++ {
			like := &models.Like{PostID: post.ID, UserID: users[rng.Intn(len(users))].ID}
			if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
				return fmt.Errorf("liking post %d: %w", post.ID, err)
			}
		}

		if post.Category == models.CategoryMediaStation {
			for i := 0; i < rng.Intn(len(users)/4+1); i++ {
				mediaLike := &models.MediaLike{PostID: post.ID, UserID: users[rng.Intn(len(users))].ID}
				if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(mediaLike).Error; err != nil {
					return fmt.Errorf("media-liking post %d: %w", post.ID, err)
				}
			}
		}
	}

	middleware.Logger.Info("seeded engagement", "posts", len(posts))
	return nil
}

// Run executes the full seeding pipeline.
func (s *Seeder) Run() error {
	users, err := s.SeedUsers()
	if err != nil {
		return err
	}
	posts, err := s.SeedPosts(users)
	if err != nil {
		return err
	}
	return s.SeedEngagement(users, posts)
}
