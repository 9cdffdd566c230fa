package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/techTenzen/VTalk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostAndFetch(t *testing.T) {
	app, _, db := setupTestApp(t)
	author := seedUser(t, db, "author@campus.edu")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{
		"title":     "Lost my ID card",
		"content":   "Last seen near the library.",
		"category":  models.CategoryCampusTour,
		"author_id": author.ID,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID     uint `json:"id"`
		Author struct {
			Name string `json:"name"`
		} `json:"author"`
		CommentsCount int64 `json:"comments_count"`
	}
	decodeBody(t, resp, &created)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Tester", created.Author.Name)
	assert.Zero(t, created.CommentsCount)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/"+itoa(created.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreatePostValidationErrors(t *testing.T) {
	app, _, db := setupTestApp(t)
	author := seedUser(t, db, "strict@campus.edu")

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"content": "c", "category": models.CategoryGaming, "author_id": author.ID}},
		{"missing category", map[string]any{"title": "t", "content": "c", "author_id": author.ID}},
		{"unknown category", map[string]any{"title": "t", "content": "c", "category": "sports", "author_id": author.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts", tt.body))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGetPostsFiltersByCategory(t *testing.T) {
	app, _, db := setupTestApp(t)
	author := seedUser(t, db, "feeder@campus.edu")
	seedPost(t, db, author, models.CategoryTechnology)
	seedPost(t, db, author, models.CategoryGossips)

	// Default feed leaves gossip posts out.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feed []map[string]any
	decodeBody(t, resp, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, models.CategoryTechnology, feed[0]["category"])

	// Gossips are served when asked for by name.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts?category=gossips", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, models.CategoryGossips, feed[0]["category"])
}

func TestGetPostsRejectsUnknownCategory(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts?category=sports", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPostsEmptyFeedIsJSONArray(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var feed []map[string]any
	decodeBody(t, resp, &feed)
	assert.NotNil(t, feed)
	assert.Empty(t, feed)
}

func TestUpdatePostPartialBody(t *testing.T) {
	app, _, db := setupTestApp(t)
	author := seedUser(t, db, "editor@campus.edu")
	post := seedPost(t, db, author, models.CategoryMusic)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/posts/"+itoa(post.ID), map[string]any{
		"title": "updated title",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "updated title", body.Title)
	assert.Equal(t, "seeded content", body.Content, "fields absent from the body stay put")
}

func TestDeletePostRemovesIt(t *testing.T) {
	app, _, db := setupTestApp(t)
	author := seedUser(t, db, "cleanup@campus.edu")
	post := seedPost(t, db, author, models.CategoryMovies)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/posts/"+itoa(post.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/"+itoa(post.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeletePostMissingIsNoContent(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/posts/4242", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
