package service

import (
	"context"
	"strings"

	"github.com/techTenzen/VTalk/internal/cache"
	"github.com/techTenzen/VTalk/internal/models"
	"github.com/techTenzen/VTalk/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	AuthorID uint   `json:"author_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Media    string `json:"media"`
	Category string `json:"category"`
	IsIdea   bool   `json:"is_idea"`
	Genre    string `json:"genre"`
	Language string `json:"language"`
}

// UpdatePostInput carries a partial update; nil fields are left untouched.
type UpdatePostInput struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Media    *string `json:"media"`
	Category *string `json:"category"`
	IsIdea   *bool   `json:"is_idea"`
	Genre    *string `json:"genre"`
	Language *string `json:"language"`
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

const maxTitleLen = 300

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	in.Title = strings.TrimSpace(in.Title)

	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Content == "" {
		missing = append(missing, "content")
	}
	if in.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return nil, models.NewFieldValidationError(missing...)
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if !models.IsValidCategory(in.Category) {
		return nil, models.NewValidationError("Invalid category")
	}
	if in.AuthorID == 0 {
		return nil, models.NewValidationError("Invalid author id")
	}
	if !validMedia(in.Media) {
		return nil, models.NewValidationError("Media must be an http(s) URL or a data URI")
	}
	if _, err := s.userRepo.GetByID(ctx, in.AuthorID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		Media:    in.Media,
		Category: in.Category,
		IsIdea:   in.IsIdea,
		Genre:    in.Genre,
		Language: in.Language,
		AuthorID: in.AuthorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// ListPosts runs the feed query. The unfiltered default feed is served
// through the cache; filtered or sorted variants always hit the database.
func (s *PostService) ListPosts(ctx context.Context, q repository.FeedQuery) ([]*models.Post, error) {
	if q.Category != "" && q.Category != models.CategoryAll && !models.IsValidCategory(q.Category) {
		return nil, models.NewValidationError("Invalid category")
	}
	switch q.Sort {
	case "", models.SortRecent, models.SortPopular:
	default:
		return nil, models.NewValidationError("Invalid sort")
	}

	if s.isDefaultFeed(q) {
		var posts []*models.Post
		err := cache.Aside(ctx, cache.FeedKey(), &posts, cache.FeedTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.List(ctx, q)
			return fetchErr
		})
		return posts, err
	}
	return s.postRepo.List(ctx, q)
}

func (s *PostService) isDefaultFeed(q repository.FeedQuery) bool {
	if strings.TrimSpace(q.Search) != "" {
		return false
	}
	if q.Sort == models.SortPopular {
		return false
	}
	return q.Category == "" || q.Category == models.CategoryAll
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	if id == 0 {
		return nil, models.NewValidationError("Invalid post id")
	}
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		if len(title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 300 characters)")
		}
		post.Title = title
	}
	if in.Content != nil {
		if *in.Content == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		post.Content = *in.Content
	}
	if in.Category != nil {
		if !models.IsValidCategory(*in.Category) {
			return nil, models.NewValidationError("Invalid category")
		}
		post.Category = *in.Category
	}
	if in.Media != nil {
		if !validMedia(*in.Media) {
			return nil, models.NewValidationError("Media must be an http(s) URL or a data URI")
		}
		post.Media = *in.Media
	}
	if in.IsIdea != nil {
		post.IsIdea = *in.IsIdea
	}
	if in.Genre != nil {
		post.Genre = *in.Genre
	}
	if in.Language != nil {
		post.Language = *in.Language
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// DeletePost is unconditional: deleting a missing post is a no-op.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if id == 0 {
		return models.NewValidationError("Invalid post id")
	}
	return s.postRepo.Delete(ctx, id)
}

func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	if err := s.checkToggle(ctx, userID, postID); err != nil {
		return false, err
	}
	return s.postRepo.ToggleLike(ctx, userID, postID)
}

func (s *PostService) ToggleMediaLike(ctx context.Context, userID, postID uint) (bool, error) {
	if err := s.checkToggle(ctx, userID, postID); err != nil {
		return false, err
	}
	return s.postRepo.ToggleMediaLike(ctx, userID, postID)
}

// validMedia accepts an empty value, an http(s) URL, or an inline data URI.
func validMedia(media string) bool {
	if media == "" {
		return true
	}
	return strings.HasPrefix(media, "http://") ||
		strings.HasPrefix(media, "https://") ||
		strings.HasPrefix(media, "data:")
}

func (s *PostService) checkToggle(ctx context.Context, userID, postID uint) error {
	if userID == 0 || postID == 0 {
		return models.NewFieldValidationError("user_id", "post_id")
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}
	return nil
}
