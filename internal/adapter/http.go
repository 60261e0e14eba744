package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-resty/resty/v2"
)

type httpBlogAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogAPI constructs the REST implementation of [BlogAPI].
// The base URL is taken from cfg.HTTPAddress; "http://" is assumed when no
// scheme is given. cfg.Token, when set, is used for authenticated calls.
func NewHTTPBlogAPI(cfg config.Adapter, logger *logger.Logger) (BlogAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	api := &httpBlogAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	api.SetToken(cfg.Token)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

func (h *httpBlogAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBlogAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request returns a JSON request bound to ctx with the error body decoder
// set. The bearer token is attached when authenticated is true.
func (h *httpBlogAPI) request(ctx context.Context, authenticated bool) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetError(&models.MessageResponse{})
	if authenticated {
		if token := h.Token(); token != "" {
			req.SetAuthToken(token)
		}
	}
	return req
}

func (h *httpBlogAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx, false).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpBlogAPI) Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.request(ctx, false).
		SetBody(req).
		SetResult(&user).
		Post("/api/users")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	h.SetToken(user.Token)
	return user, nil
}

func (h *httpBlogAPI) Login(ctx context.Context, req models.LoginRequest) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.request(ctx, false).
		SetBody(req).
		SetResult(&user).
		Post("/api/users/login")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	h.SetToken(user.Token)
	return user, nil
}

func (h *httpBlogAPI) Profile(ctx context.Context) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.request(ctx, true).
		SetResult(&user).
		Get("/api/users/profile")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpBlogAPI) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	blogs := []models.Blog{}

	resp, err := h.request(ctx, false).
		SetResult(&blogs).
		Get("/api/blogs")
	if err != nil {
		return nil, fmt.Errorf("list blogs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (h *httpBlogAPI) GetBlog(ctx context.Context, id string) (models.Blog, error) {
	var blog models.Blog

	resp, err := h.request(ctx, false).
		SetPathParam("id", id).
		SetResult(&blog).
		Get("/api/blogs/{id}")
	if err != nil {
		return models.Blog{}, fmt.Errorf("get blog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Blog{}, err
	}

	return blog, nil
}

func (h *httpBlogAPI) CreateBlog(ctx context.Context, req models.BlogRequest) (models.Blog, error) {
	var blog models.Blog

	resp, err := h.request(ctx, true).
		SetBody(req).
		SetResult(&blog).
		Post("/api/blogs")
	if err != nil {
		return models.Blog{}, fmt.Errorf("create blog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Blog{}, err
	}

	return blog, nil
}

func (h *httpBlogAPI) UpdateBlog(ctx context.Context, id string, req models.BlogRequest) (models.Blog, error) {
	var blog models.Blog

	resp, err := h.request(ctx, true).
		SetPathParam("id", id).
		SetBody(req).
		SetResult(&blog).
		Put("/api/blogs/{id}")
	if err != nil {
		return models.Blog{}, fmt.Errorf("update blog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Blog{}, err
	}

	return blog, nil
}

func (h *httpBlogAPI) DeleteBlog(ctx context.Context, id string) (string, error) {
	var ack models.MessageResponse

	resp, err := h.request(ctx, true).
		SetPathParam("id", id).
		SetResult(&ack).
		Delete("/api/blogs/{id}")
	if err != nil {
		return "", fmt.Errorf("delete blog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return ack.Message, nil
}
