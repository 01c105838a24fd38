package foreman

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rflorenc/foreman-backup/internal/config"
	"github.com/rflorenc/foreman-backup/internal/models"
)

// perPage is the page size requested from list endpoints.
const perPage = 1000

// APIError is the typed failure for any non-2xx Foreman API response.
type APIError struct {
	StatusCode int
	Path       string
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d: %s", e.Path, e.StatusCode, e.Detail)
}

// NotFound reports whether the server answered 404 for this request.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client is an authenticated HTTP client for the Foreman API.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a Client from a backup configuration.
func NewClient(cfg *config.Config) *Client {
	transport := &http.Transport{}
	if cfg.UseTLS && !cfg.VerifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &Client{
		baseURL:  cfg.BaseURL(),
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Re-apply basic auth on redirects
				if len(via) > 0 {
					req.SetBasicAuth(cfg.Username, cfg.Password)
				}
				return nil
			},
		},
	}
}

// pagedResponse is the standard Foreman list-response envelope. The page and
// per_page fields are omitted on purpose: some Foreman versions return them
// as strings.
type pagedResponse struct {
	Total    int               `json:"total"`
	Subtotal int               `json:"subtotal"`
	Results  []json.RawMessage `json:"results"`
}

// Get performs an authenticated GET request and returns the response body.
// Any non-2xx status is returned as an *APIError.
func (c *Client) Get(path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return body, &APIError{
			StatusCode: resp.StatusCode,
			Path:       path,
			Detail:     truncate(string(body), 200),
		}
	}
	return body, nil
}

// GetJSON performs an authenticated GET and unmarshals the response into dest.
func (c *Client) GetJSON(path string, params url.Values, dest interface{}) error {
	body, err := c.Get(path, params)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dest)
}

// ListResources fetches all pages of a list endpoint, returning every entry
// in the order the server produced them.
func (c *Client) ListResources(apiPath string) ([]models.Resource, error) {
	var all []models.Resource

	for page := 1; ; page++ {
		params := url.Values{
			"page":     {strconv.Itoa(page)},
			"per_page": {strconv.Itoa(perPage)},
		}
		body, err := c.Get(apiPath, params)
		if err != nil {
			return nil, err
		}

		var envelope pagedResponse
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("parsing response: %w", err)
		}

		for _, raw := range envelope.Results {
			var res models.Resource
			if err := json.Unmarshal(raw, &res); err != nil {
				return nil, fmt.Errorf("parsing resource: %w", err)
			}
			all = append(all, res)
		}

		if len(envelope.Results) == 0 || len(all) >= envelope.Subtotal {
			break
		}
	}
	return all, nil
}

// GetResource fetches the full record for one resource by id.
func (c *Client) GetResource(apiPath string, id int) (models.Resource, error) {
	var res models.Resource
	if err := c.GetJSON(fmt.Sprintf("%s/%d", apiPath, id), nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Ping checks reachability by hitting the ping endpoint.
func (c *Client) Ping() error {
	_, err := c.Get("/api/ping", nil)
	return err
}

// CheckAuth verifies credentials against the status endpoint.
func (c *Client) CheckAuth() error {
	_, err := c.Get("/api/status", nil)
	return err
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
