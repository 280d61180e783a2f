package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"spaceshare-landing/pkg/logger"
)

// DefaultBaseURL is the Zoho Campaigns API root.
const DefaultBaseURL = "https://campaigns.zoho.com/api/v1.1"

// Client defines the interface for subscribing a contact to the mailing
// list. It is narrow so tests can substitute a double for the real call.
type Client interface {
	Subscribe(ctx context.Context, contact map[string]string) error
	IsConfigured() bool
}

type clientImpl struct {
	baseURL    string
	listKey    string
	oauthToken string
	source     string
}

// NewClient creates a new Zoho Campaigns client. An empty baseURL falls
// back to the production API; an empty oauthToken omits the authorization
// header rather than failing.
func NewClient(baseURL, listKey, oauthToken, source string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &clientImpl{
		baseURL:    baseURL,
		listKey:    listKey,
		oauthToken: oauthToken,
		source:     source,
	}
}

// IsConfigured reports whether the client has the list key it needs to
// reach the mailing list.
func (c *clientImpl) IsConfigured() bool {
	return c.listKey != ""
}

// Subscribe adds the contact to the configured mailing list with a single
// listsubscribe call. The Zoho API takes everything as query parameters,
// including the JSON-encoded contact record. One attempt, no retry.
func (c *clientImpl) Subscribe(ctx context.Context, contact map[string]string) error {
	contactJSON, err := json.Marshal(contact)
	if err != nil {
		return fmt.Errorf("error encoding contact info: %w", err)
	}

	params := url.Values{}
	params.Set("resfmt", "JSON")
	params.Set("listkey", c.listKey)
	params.Set("contactinfo", string(contactJSON))
	params.Set("source", c.source)

	endpoint := fmt.Sprintf("%s/json/listsubscribe?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	if c.oauthToken != "" {
		req.Header.Add("Authorization", "Zoho-oauthtoken "+c.oauthToken)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error calling Zoho Campaigns: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("error from Zoho Campaigns API (%d): %s", resp.StatusCode, string(body))
	}

	// A 2xx response can still carry an error-shaped body.
	var result struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}

	if result.Status != "success" {
		return fmt.Errorf("Zoho Campaigns rejected the contact (code %s): %s", result.Code, result.Message)
	}

	logger.Log.Debug("contact subscribed to mailing list", "code", result.Code)
	return nil
}
