package service

import (
	"context"
	"strings"

	"github.com/techTenzen/VTalk/internal/models"
	"github.com/techTenzen/VTalk/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	Content  string `json:"content"`
	PostID   uint   `json:"post_id"`
	AuthorID uint   `json:"author_id"`
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	var missing []string
	if strings.TrimSpace(in.Content) == "" {
		missing = append(missing, "content")
	}
	if in.PostID == 0 {
		missing = append(missing, "post_id")
	}
	if in.AuthorID == 0 {
		missing = append(missing, "author_id")
	}
	if len(missing) > 0 {
		return nil, models.NewFieldValidationError(missing...)
	}
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:  in.Content,
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if postID == 0 {
		return nil, models.NewValidationError("Invalid post id")
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) UpdateComment(ctx context.Context, id uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("Content cannot be empty")
	}
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment is unconditional: deleting a missing comment is a no-op.
func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	if id == 0 {
		return models.NewValidationError("Invalid comment id")
	}
	return s.commentRepo.Delete(ctx, id)
}
