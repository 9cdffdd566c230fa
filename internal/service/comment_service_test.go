package service

import (
	"context"
	"errors"
	"testing"

	"github.com/techTenzen/VTalk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

func TestCreateCommentValidation(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo())
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreateCommentInput
	}{
		{"missing content", CreateCommentInput{PostID: 1, AuthorID: 1}},
		{"blank content", CreateCommentInput{Content: "   ", PostID: 1, AuthorID: 1}},
		{"missing post", CreateCommentInput{Content: "hi", AuthorID: 1}},
		{"missing author", CreateCommentInput{Content: "hi", PostID: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateComment(ctx, tt.in)
			require.Error(t, err)
			var appErr *models.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, models.CodeValidation, appErr.Code)
		})
	}
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("post", id)
	}
	svc := NewCommentService(noopCommentRepo(), posts)

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		Content: "hello", PostID: 99, AuthorID: 1,
	})
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestCreateCommentReloadsWithAuthor(t *testing.T) {
	comments := noopCommentRepo()
	comments.createFn = func(_ context.Context, comment *models.Comment) error {
		comment.ID = 3
		return nil
	}
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Author: models.User{ID: 1, Name: "Ravi"}}, nil
	}
	svc := NewCommentService(comments, noopPostRepo())

	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		Content: "hello", PostID: 1, AuthorID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), comment.ID)
	assert.Equal(t, "Ravi", comment.Author.Name)
}

func TestListCommentsChecksPostExists(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("post", id)
	}
	svc := NewCommentService(noopCommentRepo(), posts)

	_, err := svc.ListComments(context.Background(), 42)
	assert.Error(t, err)
}

func TestUpdateCommentRejectsEmptyContent(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo())

	_, err := svc.UpdateComment(context.Background(), 1, "  ")
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestUpdateCommentPersistsContent(t *testing.T) {
	comments := noopCommentRepo()
	var saved *models.Comment
	comments.updateFn = func(_ context.Context, comment *models.Comment) error {
		saved = comment
		return nil
	}
	svc := NewCommentService(comments, noopPostRepo())

	comment, err := svc.UpdateComment(context.Background(), 1, "revised")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "revised", comment.Content)
}

func TestDeleteCommentRejectsZeroID(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo())

	assert.Error(t, svc.DeleteComment(context.Background(), 0))
}
