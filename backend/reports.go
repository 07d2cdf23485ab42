package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"ngoconnect-web/models"
)

type ReportSubmission struct {
	Title       string
	Description string
	Location    string
	Category    string
	Subcategory string
	Image       *Attachment
}

// SubmitReport sends the report as multipart form data.
func (c *Client) SubmitReport(ctx context.Context, token string, r ReportSubmission) (string, error) {
	fields := [][2]string{
		{"title", r.Title},
		{"desc", r.Description},
		{"location", r.Location},
		{"category", r.Category},
	}
	if r.Subcategory != "" {
		fields = append(fields, [2]string{"subcategory", r.Subcategory})
	}

	body, ctype, err := multipartBody(fields, "image", r.Image)
	if err != nil {
		return "", fmt.Errorf("submit report: encode: %w", err)
	}

	var res messageResponse
	err = c.do(ctx, request{
		method: http.MethodPost,
		route:  "/api/report/submit",
		path:   "/api/report/submit",
		token:  token,
		body:   body,
		ctype:  ctype,
	}, &res)
	return res.text(), err
}

// Reports lists every issue; the backend only serves it to NGOs.
func (c *Client) Reports(ctx context.Context, token string) ([]models.Issue, error) {
	var issues []models.Issue
	err := c.do(ctx, request{
		method: http.MethodGet,
		route:  "/api/report/fetch",
		path:   "/api/report/fetch",
		token:  token,
	}, &issues)
	return issues, err
}

// UserReports lists the issues submitted by one user.
func (c *Client) UserReports(ctx context.Context, token, userID string) ([]models.Issue, error) {
	var issues []models.Issue
	err := c.do(ctx, request{
		method: http.MethodGet,
		route:  "/api/report/:user_id/user",
		path:   "/api/report/" + url.PathEscape(userID) + "/user",
		token:  token,
	}, &issues)
	return issues, err
}

func (c *Client) ResolveReport(ctx context.Context, token, id string) (string, error) {
	var res messageResponse
	err := c.do(ctx, request{
		method: http.MethodPatch,
		route:  "/api/report/:id/resolve",
		path:   "/api/report/" + url.PathEscape(id) + "/resolve",
		token:  token,
	}, &res)
	return res.text(), err
}
