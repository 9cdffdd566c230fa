package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/techTenzen/VTalk/internal/cache"
	"github.com/techTenzen/VTalk/internal/models"
	"github.com/techTenzen/VTalk/internal/observability"

	"gorm.io/gorm"
)

// FeedQuery holds the filter and sort criteria for the post feed.
type FeedQuery struct {
	// Category is a concrete category, models.CategoryAll, or empty.
	// Empty and CategoryAll behave identically: every category except
	// gossips. Gossips posts are reachable only by asking for them.
	Category string
	// Search keeps posts whose title or content contains it as a substring.
	Search string
	// Sort is models.SortPopular or models.SortRecent (the default).
	Sort string
}

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, q FeedQuery) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	ToggleLike(ctx context.Context, userID, postID uint) (bool, error)
	ToggleMediaLike(ctx context.Context, userID, postID uint) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidateFeed(ctx)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.applyCounts(r.db.WithContext(ctx)).
			Preload("Author").
			First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, q FeedQuery) ([]*models.Post, error) {
	db := r.applyCounts(r.db.WithContext(ctx)).Preload("Author")

	switch q.Category {
	case "", models.CategoryAll:
		db = db.Where("posts.category <> ?", models.CategoryGossips)
	default:
		db = db.Where("posts.category = ?", q.Category)
	}

	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		db = db.Where("posts.title LIKE ? OR posts.content LIKE ?", like, like)
	}

	switch q.Sort {
	case models.SortPopular:
		db = db.Order("likes_count DESC, created_at DESC")
	default:
		db = db.Order("created_at DESC")
	}

	var posts []*models.Post
	if err := db.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// applyCounts adds subqueries to fetch comment and like counts in a single query.
// The aliases feed the computed columns on models.Post; PostgreSQL and SQLite
// both allow referencing them in ORDER BY within the same query level.
func (r *postRepository) applyCounts(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) AS comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count, " +
		"(SELECT COUNT(*) FROM media_likes WHERE media_likes.post_id = posts.id) AS media_likes_count")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, post.ID)
	cache.InvalidateFeed(ctx)
	return nil
}

// Delete removes a post and everything hanging off it in one transaction.
// Comments follow the post's soft-delete convention; likes and media likes
// are hard deleted. The cascade lives here rather than in FK constraints so
// Postgres and the SQLite test databases behave identically.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.MediaLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	return r.toggle(ctx, "likes", userID, postID)
}

func (r *postRepository) ToggleMediaLike(ctx context.Context, userID, postID uint) (bool, error) {
	return r.toggle(ctx, "media_likes", userID, postID)
}

// toggle deletes the (user, post) row if present, otherwise inserts it.
// Both arms are single statements: the delete reports whether a row existed,
// and the insert uses ON CONFLICT DO NOTHING against the unique
// (user_id, post_id) index, so two concurrent toggles can never produce a
// duplicate row. When the insert loses such a race the like exists anyway and
// we still report liked=true.
func (r *postRepository) toggle(ctx context.Context, table string, userID, postID uint) (bool, error) {
	res := r.db.WithContext(ctx).Exec(
		"DELETE FROM "+table+" WHERE user_id = ? AND post_id = ?",
		userID, postID,
	)
	if res.Error != nil {
		return false, res.Error
	}
	liked := false
	if res.RowsAffected == 0 {
		res = r.db.WithContext(ctx).Exec(
			"INSERT INTO "+table+" (user_id, post_id, created_at) VALUES (?, ?, CURRENT_TIMESTAMP) "+
				"ON CONFLICT (user_id, post_id) DO NOTHING",
			userID, postID,
		)
		if res.Error != nil {
			return false, res.Error
		}
		liked = true
	}

	observability.LikeToggles.WithLabelValues(table, toggleResult(liked)).Inc()
	cache.InvalidatePost(ctx, postID)
	cache.InvalidateFeed(ctx)
	return liked, nil
}

func toggleResult(liked bool) string {
	if liked {
		return "liked"
	}
	return "unliked"
}
