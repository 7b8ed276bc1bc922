package sigment

import (
	"context"
	"net/url"
	"strings"

	"github.com/sigment/sigment-go/routes"
)

// FeedClient covers the organization activity feed. Like and Unlike are
// single calls with no retry; callers doing optimistic UI roll back their
// local state when the returned error is non-nil.
type FeedClient struct {
	client *Client
}

// List returns the feed, newest first.
func (c *FeedClient) List(ctx context.Context) ([]FeedItem, error) {
	var payload struct {
		Items []FeedItem `json:"items"`
	}
	if err := c.client.Get(ctx, routes.Feed, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// Like records a like on a feed item and returns the updated item.
func (c *FeedClient) Like(ctx context.Context, itemID string) (FeedItem, error) {
	path := strings.ReplaceAll(routes.FeedLike, "{item_id}", url.PathEscape(itemID))
	var payload struct {
		Item FeedItem `json:"item"`
	}
	if err := c.client.Post(ctx, path, nil, &payload); err != nil {
		return FeedItem{}, err
	}
	return payload.Item, nil
}

// Unlike removes the caller's like from a feed item.
func (c *FeedClient) Unlike(ctx context.Context, itemID string) error {
	path := strings.ReplaceAll(routes.FeedLike, "{item_id}", url.PathEscape(itemID))
	return c.client.Delete(ctx, path)
}
