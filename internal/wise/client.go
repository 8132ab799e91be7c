package wise

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wisefeed/internal/config"
)

// Client talks to the WISE logistics platform. Every request is a
// single attempt: a failed call is reported, never retried, and the
// next cycle picks up whatever this one missed.
type Client struct {
	cfg        config.Config
	httpClient *http.Client
	overrides  map[string]WindowField
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.WiseTimeoutMs) * time.Millisecond},
		overrides:  ParseWindowOverrides(cfg.WindowOverrides),
	}
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any, out any) error {
	body, err := c.post(ctx, endpoint, payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	if strings.TrimSpace(c.cfg.WiseAPIKey) == "" {
		return nil, errors.New("missing WISE_API_KEY")
	}

	baseURL := strings.TrimRight(c.cfg.WiseAPIBaseURL, "/") + "/"
	u, err := url.Parse(baseURL + strings.TrimLeft(endpoint, "/"))
	if err != nil {
		return nil, err
	}

	blob, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	req.Header.Set("authorization", c.cfg.WiseAPIKey)
	req.Header.Set("wise-company-id", c.cfg.WiseCompanyID)
	req.Header.Set("wise-facility-id", c.cfg.WiseFacilityID)
	req.Header.Set("content-type", "application/json;charset=UTF-8")
	req.Header.Set("user", c.cfg.WiseUser)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("wise api error: status=%d body=%s", resp.StatusCode, snippet(body))
	}
	return body, nil
}

func snippet(body []byte) string {
	const max = 200
	s := string(body)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

func (c *Client) paging() map[string]int {
	return map[string]int{"pageNo": 1, "limit": c.cfg.WisePageLimit}
}
