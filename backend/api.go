package backend

import (
	"context"

	"ngoconnect-web/models"
)

//go:generate mockgen -destination=mocks/mock_api.go -package=mocks ngoconnect-web/backend API

// API is the set of backend calls the web front-end makes.
type API interface {
	LoginNGO(ctx context.Context, creds Credentials) (string, error)
	LoginUser(ctx context.Context, creds Credentials) (string, error)
	RegisterNGO(ctx context.Context, reg NGORegistration) (string, error)
	RegisterNGOInfo(ctx context.Context, info NGOInfo) (string, error)
	RegisterUser(ctx context.Context, reg UserRegistration) (string, error)
	CurrentNGO(ctx context.Context, token string) (models.Account, error)
	CurrentUser(ctx context.Context, token string) (models.Account, error)
	NGOsByCategory(ctx context.Context, category string) ([]models.Organisation, error)
	SubmitReport(ctx context.Context, token string, r ReportSubmission) (string, error)
	Reports(ctx context.Context, token string) ([]models.Issue, error)
	UserReports(ctx context.Context, token, userID string) ([]models.Issue, error)
	ResolveReport(ctx context.Context, token, id string) (string, error)
	Posts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, token string, p PostSubmission) (string, error)
	DeletePost(ctx context.Context, token, id string) (string, error)
}

var _ API = (*Client)(nil)
