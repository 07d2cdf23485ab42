package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"ngoconnect-web/models"
)

type PostSubmission struct {
	Title   string
	Content string
	Image   *Attachment
}

// Posts returns the community feed, most recently updated first.
func (c *Client) Posts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := c.do(ctx, request{
		method: http.MethodGet,
		route:  "/api/post/all-posts",
		path:   "/api/post/all-posts",
	}, &posts)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].UpdatedAt.After(posts[j].UpdatedAt)
	})
	return posts, nil
}

func (c *Client) CreatePost(ctx context.Context, token string, p PostSubmission) (string, error) {
	body, ctype, err := multipartBody([][2]string{
		{"title", p.Title},
		{"content", p.Content},
	}, "image", p.Image)
	if err != nil {
		return "", fmt.Errorf("create post: encode: %w", err)
	}

	var res messageResponse
	err = c.do(ctx, request{
		method: http.MethodPost,
		route:  "/api/post/create",
		path:   "/api/post/create",
		token:  token,
		body:   body,
		ctype:  ctype,
	}, &res)
	return res.text(), err
}

func (c *Client) DeletePost(ctx context.Context, token, id string) (string, error) {
	var res messageResponse
	err := c.do(ctx, request{
		method: http.MethodPatch,
		route:  "/api/post/:id/delete",
		path:   "/api/post/" + url.PathEscape(id) + "/delete",
		token:  token,
	}, &res)
	return res.text(), err
}
