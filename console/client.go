package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rdeano/dentacare/models"
)

// Client implements AuthService and the entity collections over the admin
// API. It is not safe for concurrent use: the console is single-threaded and
// issues one request at a time per screen. A response that arrives after a
// newer request was issued still applies; callers cancel via ctx if they
// care.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	session *Session
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// apiError is the error body the admin API emits, in both its terse and
// standardized forms.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.AccessToken)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil {
			if apiErr.Message != "" {
				return fmt.Errorf("%s", apiErr.Message)
			}
			if apiErr.Error != "" {
				return fmt.Errorf("%s", apiErr.Error)
			}
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// GetSession returns the active session, or (nil, nil) when signed out.
func (c *Client) GetSession(ctx context.Context) (*Session, error) {
	if c.session == nil {
		return nil, nil
	}
	s := *c.session
	return &s, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var resp struct {
		ID           string `json:"id"`
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	c.session = &Session{
		UserID:       resp.ID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	s := *c.session
	return &s, nil
}

func (c *Client) SignUp(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		UserID string `json:"user_id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.UserID, nil
}

// SignOut revokes the refresh token and drops the session either way.
func (c *Client) SignOut(ctx context.Context) error {
	if c.session == nil {
		return nil
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", map[string]string{
		"refresh_token": c.session.RefreshToken,
	}, nil)
	c.session = nil
	return err
}

// Role looks up the profile role for the given user. The admin API only
// exposes the authenticated user's own profile, which is the only lookup the
// guard ever makes.
func (c *Client) Role(ctx context.Context, userID string) (string, error) {
	var resp struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &resp); err != nil {
		return "", err
	}
	if resp.ID != userID {
		return "", fmt.Errorf("profile does not belong to user %s", userID)
	}
	return resp.Role, nil
}

func (c *Client) Patients() Collection[models.Patient] {
	return collection[models.Patient]{c, "/api/admin/patients"}
}

func (c *Client) Appointments() Collection[models.Appointment] {
	return collection[models.Appointment]{c, "/api/admin/appointments"}
}

func (c *Client) Billing() Collection[models.Billing] {
	return collection[models.Billing]{c, "/api/admin/billing"}
}

type collection[T any] struct {
	client *Client
	path   string
}

func (col collection[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := col.client.do(ctx, http.MethodGet, col.path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (col collection[T]) Insert(ctx context.Context, v T) error {
	return col.client.do(ctx, http.MethodPost, col.path, v, nil)
}

func (col collection[T]) Update(ctx context.Context, id string, v T) error {
	return col.client.do(ctx, http.MethodPut, col.path+"/"+id, v, nil)
}

func (col collection[T]) Delete(ctx context.Context, id string) error {
	return col.client.do(ctx, http.MethodDelete, col.path+"/"+id, nil, nil)
}
