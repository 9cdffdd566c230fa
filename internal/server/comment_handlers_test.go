package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/techTenzen/VTalk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListComments(t *testing.T) {
	app, _, db := setupTestApp(t)
	author := seedUser(t, db, "talker@campus.edu")
	post := seedPost(t, db, author, models.CategoryGaming)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/comments", map[string]any{
		"content":   "same, the servers were down all night",
		"post_id":   post.ID,
		"author_id": author.ID,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID     uint `json:"id"`
		Author struct {
			Name string `json:"name"`
		} `json:"author"`
	}
	decodeBody(t, resp, &created)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Tester", created.Author.Name)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/"+itoa(post.ID)+"/comments", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var comments []map[string]any
	decodeBody(t, resp, &comments)
	require.Len(t, comments, 1)
}

func TestCreateCommentOnMissingPostIs404(t *testing.T) {
	app, _, db := setupTestApp(t)
	author := seedUser(t, db, "ghost@campus.edu")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/comments", map[string]any{
		"content":   "hello?",
		"post_id":   9999,
		"author_id": author.ID,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListCommentsOnMissingPostIs404(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/9999/comments", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateCommentContent(t *testing.T) {
	app, _, db := setupTestApp(t)
	author := seedUser(t, db, "rewriter@campus.edu")
	post := seedPost(t, db, author, models.CategoryMusic)
	comment := &models.Comment{Content: "typo everywherre", PostID: post.ID, AuthorID: author.ID}
	require.NoError(t, db.Create(comment).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/comments/"+itoa(comment.ID), map[string]any{
		"content": "typo everywhere",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Content string `json:"content"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "typo everywhere", body.Content)
}

func TestUpdateCommentRejectsEmptyBody(t *testing.T) {
	app, _, db := setupTestApp(t)
	author := seedUser(t, db, "empty@campus.edu")
	post := seedPost(t, db, author, models.CategoryMusic)
	comment := &models.Comment{Content: "keep me", PostID: post.ID, AuthorID: author.ID}
	require.NoError(t, db.Create(comment).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/comments/"+itoa(comment.ID), map[string]any{
		"content": "",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteCommentAlwaysSucceeds(t *testing.T) {
	app, _, db := setupTestApp(t)
	author := seedUser(t, db, "remover@campus.edu")
	post := seedPost(t, db, author, models.CategoryTechnology)
	comment := &models.Comment{Content: "regret", PostID: post.ID, AuthorID: author.ID}
	require.NoError(t, db.Create(comment).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/comments/"+itoa(comment.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Deleting an already-gone comment is still a 204.
	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/comments/"+itoa(comment.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
