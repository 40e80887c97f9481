// Package assistant implements the admin assistant: a conversation
// controller that parses free-text operator commands and executes them
// against the portal API with a cached bearer credential.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// EmployeeRecord is the directory entry shape the assistant consumes.
type EmployeeRecord struct {
	ID     string `json:"_id"`
	EmpID  string `json:"empId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// ApproveLeavesResult carries the counts reported by the leave service.
// Missing counts decode to zero.
type ApproveLeavesResult struct {
	Message  string `json:"message"`
	Matched  int64  `json:"matched"`
	Modified int64  `json:"modified"`
}

// Collaborator abstracts the portal operations the assistant calls. The
// bearer token is passed explicitly; an empty token issues the request
// unauthenticated.
type Collaborator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	ApproveLeaves(ctx context.Context, token, email string) (ApproveLeavesResult, error)
	SearchEmployees(ctx context.Context, token, term string) ([]EmployeeRecord, error)
	SetEmployeeStatus(ctx context.Context, token, id, status string) (EmployeeRecord, error)
}

// RemoteError is a non-success HTTP response, carrying the server-provided
// message when one was present.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	re, ok := err.(*RemoteError)
	return ok && re.StatusCode == http.StatusUnauthorized
}

// Client talks to the portal API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given base URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Authenticate performs the login exchange and returns the bearer token.
func (c *Client) Authenticate(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &RemoteError{StatusCode: http.StatusOK, Message: "login returned unexpected response"}
	}
	return resp.Token, nil
}

// ApproveLeaves requests auto-approval of pending leaves, optionally
// filtered by email.
func (c *Client) ApproveLeaves(ctx context.Context, token, email string) (ApproveLeavesResult, error) {
	body := map[string]string{}
	if email != "" {
		body["email"] = email
	}
	var result ApproveLeavesResult
	err := c.do(ctx, http.MethodPost, "/api/leaves/auto-approve", token, body, &result)
	return result, err
}

// SearchEmployees looks up directory entries matching the term.
func (c *Client) SearchEmployees(ctx context.Context, token, term string) ([]EmployeeRecord, error) {
	var result []EmployeeRecord
	path := "/api/employees?search=" + url.QueryEscape(term)
	err := c.do(ctx, http.MethodGet, path, token, nil, &result)
	return result, err
}

// SetEmployeeStatus patches one employee's status by id.
func (c *Client) SetEmployeeStatus(ctx context.Context, token, id, status string) (EmployeeRecord, error) {
	body := map[string]string{"status": status}
	var resp struct {
		Employee EmployeeRecord `json:"employee"`
	}
	err := c.do(ctx, http.MethodPut, "/api/employees/"+id, token, body, &resp)
	return resp.Employee, err
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return &RemoteError{StatusCode: resp.StatusCode, Message: remoteMessage(raw, resp.StatusCode)}
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return err
		}
	}
	return nil
}

// remoteMessage extracts the server-provided error text, falling back to the
// HTTP status text.
func remoteMessage(raw []byte, statusCode int) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Error.Message != "" {
			return envelope.Error.Message
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" && len(text) < 200 && !strings.HasPrefix(text, "{") {
		return text
	}
	return fmt.Sprintf("status %d %s", statusCode, http.StatusText(statusCode))
}
