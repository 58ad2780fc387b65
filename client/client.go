// Package client talks to the dealership API: the public storefront and,
// with a Session, the back office.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

var (
	// ErrUnauthorized is returned on any 401. The session has already been
	// invalidated when a caller sees it.
	ErrUnauthorized = errors.New("client: unauthorized")
	// ErrNoSession is returned by back-office calls made without a valid token.
	ErrNoSession = errors.New("client: not logged in")
)

// APIError is a non-2xx answer other than 401.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client for the API at baseURL (scheme and host, optionally
// a path prefix; /api/v1 is appended). session may be nil for storefront-only use.
func New(baseURL string, session *Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		http:    &http.Client{Timeout: 15 * time.Second},
		session: session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Message string             `json:"message"`
	Error   bool               `json:"error"`
	Data    json.RawMessage    `json:"data"`
	Meta    *models.Pagination `json:"meta"`
}

// do sends one request and decodes the envelope's data into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) (*models.Pagination, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("client: encode body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		if c.session == nil {
			return nil, ErrNoSession
		}
		token, ok := c.session.Token()
		if !ok {
			return nil, ErrNoSession
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.session != nil {
			c.session.Invalidate()
		}
		return nil, ErrUnauthorized
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 300 {
			return nil, &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("client: decode %s: %w", path, err)
	}
	if resp.StatusCode >= 300 || env.Error {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("client: decode %s data: %w", path, err)
		}
	}
	return env.Meta, nil
}

// ─────────────────────────────────────────────────────────────
// Storefront
// ─────────────────────────────────────────────────────────────

// ListInventory fetches every available car, ready for the catalog pipeline.
func (c *Client) ListInventory(ctx context.Context) ([]catalog.Vehicle, error) {
	var vehicles []catalog.Vehicle
	_, err := c.do(ctx, http.MethodGet, "/store/inventory", nil, nil, &vehicles, false)
	return vehicles, err
}

func (c *Client) ListCategories(ctx context.Context) ([]models.CategoryWithCars, error) {
	var categories []models.CategoryWithCars
	_, err := c.do(ctx, http.MethodGet, "/store/categories", nil, nil, &categories, false)
	return categories, err
}

func (c *Client) GetCar(ctx context.Context, id string) (catalog.Vehicle, error) {
	var v catalog.Vehicle
	_, err := c.do(ctx, http.MethodGet, "/store/cars/"+url.PathEscape(id), nil, nil, &v, false)
	return v, err
}

// ─────────────────────────────────────────────────────────────
// Back office
// ─────────────────────────────────────────────────────────────

// Login authenticates and stores the token in the session. Only admins can
// log in, so the admin flag is cached as true.
func (c *Client) Login(ctx context.Context, email, password string) (models.AdminLoginResponse, error) {
	var res models.AdminLoginResponse
	if c.session == nil {
		return res, ErrNoSession
	}
	_, err := c.do(ctx, http.MethodPost, "/admin/login", nil, models.AdminLoginRequest{Email: email, Password: password}, &res, false)
	if err != nil {
		return res, err
	}
	c.session.Set(res.Token, res.ExpiresAt)
	c.session.SetAdmin(true)
	return res, nil
}

// Me fetches the logged-in admin and refreshes the cached admin flag.
func (c *Client) Me(ctx context.Context) (models.AdminResponse, error) {
	var me models.AdminResponse
	if _, err := c.do(ctx, http.MethodGet, "/admin/me", nil, nil, &me, true); err != nil {
		return me, err
	}
	c.session.SetAdmin(me.Status != "suspended")
	return me, nil
}

// ListMessages pages through contact messages. An empty status lists all.
func (c *Client) ListMessages(ctx context.Context, status string, page, limit int) ([]models.ContactMessage, *models.Pagination, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var messages []models.ContactMessage
	meta, err := c.do(ctx, http.MethodGet, "/admin/messages", q, nil, &messages, true)
	return messages, meta, err
}
