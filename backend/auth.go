package backend

import (
	"context"
	"fmt"
	"net/http"

	"ngoconnect-web/models"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type NGORegistration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type NGOInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ContactNo   string `json:"contact_no"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
}

type UserRegistration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}

func (c *Client) LoginNGO(ctx context.Context, creds Credentials) (string, error) {
	return c.login(ctx, "/api/ngo/login", creds)
}

func (c *Client) LoginUser(ctx context.Context, creds Credentials) (string, error) {
	return c.login(ctx, "/api/users/login", creds)
}

func (c *Client) login(ctx context.Context, path string, creds Credentials) (string, error) {
	req, err := jsonRequest(http.MethodPost, path, path, "", creds)
	if err != nil {
		return "", err
	}

	var res loginResponse
	if err := c.do(ctx, req, &res); err != nil {
		return "", err
	}
	if res.AccessToken == "" {
		return "", fmt.Errorf("login: %w: missing accessToken", ErrBadResponse)
	}
	return res.AccessToken, nil
}

func (c *Client) RegisterNGO(ctx context.Context, reg NGORegistration) (string, error) {
	return c.postMessage(ctx, "/api/ngo/register", "", reg)
}

func (c *Client) RegisterNGOInfo(ctx context.Context, info NGOInfo) (string, error) {
	return c.postMessage(ctx, "/api/ngo/register-info", "", info)
}

func (c *Client) RegisterUser(ctx context.Context, reg UserRegistration) (string, error) {
	return c.postMessage(ctx, c.userRegisterPath, "", reg)
}

func (c *Client) postMessage(ctx context.Context, path, token string, payload any) (string, error) {
	req, err := jsonRequest(http.MethodPost, path, path, token, payload)
	if err != nil {
		return "", err
	}

	var res messageResponse
	if err := c.do(ctx, req, &res); err != nil {
		return "", err
	}
	return res.text(), nil
}

// CurrentNGO asks the NGO "who am I" endpoint.
func (c *Client) CurrentNGO(ctx context.Context, token string) (models.Account, error) {
	return c.current(ctx, "/api/ngo/current", token)
}

// CurrentUser asks the user "who am I" endpoint.
func (c *Client) CurrentUser(ctx context.Context, token string) (models.Account, error) {
	return c.current(ctx, "/api/users/current", token)
}

func (c *Client) current(ctx context.Context, path, token string) (models.Account, error) {
	var acc models.Account
	err := c.do(ctx, request{
		method: http.MethodGet,
		route:  path,
		path:   path,
		token:  token,
	}, &acc)
	return acc, err
}
