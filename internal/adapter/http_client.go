package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/zephyr-centrum/internal/config"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/utils"
	"github.com/MKhiriev/zephyr-centrum/models"
	"github.com/go-resty/resty/v2"
)

const sessionCookieName = "AUTH_TOKEN"

type httpAPIClient struct {
	client *utils.HTTPClient

	mu      sync.RWMutex
	session string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the REST implementation of [APIClient].
// adapterCfg.HTTPAddress may omit the scheme, in which case http is assumed.
//
// The session cookie is kept in memory and attached explicitly instead of
// through a cookie jar, since the jar would drop the Secure cookie on plain
// HTTP connections.
func NewHTTPAPIClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpAPIClient) Session() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *httpAPIClient) SetSession(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = strings.TrimSpace(token)
}

func (c *httpAPIClient) Login(ctx context.Context, username, password string) (models.User, error) {
	var envelope models.UserEnvelope

	resp, err := c.request(ctx).
		SetBody(models.Credentials{Username: username, Password: password}).
		SetResult(&envelope).
		Post("/api/v1/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	c.keepSession(resp)
	c.logger.Debug().Str("username", envelope.Data.User.Username).Msg("logged in")

	return envelope.Data.User, nil
}

func (c *httpAPIClient) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	var envelope models.UserEnvelope

	resp, err := c.request(ctx).
		SetBody(request).
		SetResult(&envelope).
		Post("/api/v1/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	c.keepSession(resp)

	return envelope.Data.User, nil
}

func (c *httpAPIClient) Logout(ctx context.Context) error {
	defer c.SetSession("")

	resp, err := c.request(ctx).Post("/api/v1/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpAPIClient) CheckAuth(ctx context.Context) (models.User, error) {
	var envelope models.UserEnvelope

	resp, err := c.request(ctx).
		SetResult(&envelope).
		Get("/api/v1/auth/check-auth")
	if err != nil {
		return models.User{}, fmt.Errorf("check auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return envelope.Data.User, nil
}

func (c *httpAPIClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := c.request(ctx).
		SetResult(&users).
		Get("/api/v1/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if resp.StatusCode() == http.StatusNoContent {
		return []models.User{}, nil
	}
	return users, nil
}

func (c *httpAPIClient) UpdateUser(ctx context.Context, userID int64, fields map[string]any) (models.User, error) {
	var user models.User

	resp, err := c.request(ctx).
		SetBody(fields).
		SetResult(&user).
		Patch("/api/v1/users/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// request starts a JSON request carrying the current session, if any.
func (c *httpAPIClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if session := c.Session(); session != "" {
		req.SetCookie(&http.Cookie{Name: sessionCookieName, Value: session})
	}
	return req
}

func (c *httpAPIClient) keepSession(resp *resty.Response) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			c.SetSession(cookie.Value)
			return
		}
	}
	c.logger.Warn().Msg("server answered without a session cookie")
}
