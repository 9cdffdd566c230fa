package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	postKeyPrefix = "post:%d"
	userKeyPrefix = "user:%d"
	// feedKey caches the default feed only: no category filter, no search,
	// recent sort. Every other feed shape goes to the database.
	feedKey = "posts:feed"
)

const (
	PostTTL = 30 * time.Minute
	UserTTL = 5 * time.Minute
	FeedTTL = 1 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func FeedKey() string {
	return feedKey
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, feedKey)
}
