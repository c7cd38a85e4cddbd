package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultBaseURL = "https://tibia.fandom.com"

	defaultUserAgent = "eq-toolkit/1.1 (catalog builder)"
)

type (
	Client struct {
		HTTPClient *http.Client
		BaseURL    string
		UserAgent  string
		// Throttle is slept after every API request, to stay polite.
		Throttle time.Duration
	}

	categoryMembersResponse struct {
		Query struct {
			CategoryMembers []struct {
				Title string `json:"title"`
			} `json:"categorymembers"`
		} `json:"query"`
		Continue struct {
			CmContinue string `json:"cmcontinue"`
		} `json:"continue"`
	}

	parseResponse struct {
		Parse struct {
			Text struct {
				Body string `json:"*"`
			} `json:"text"`
		} `json:"parse"`
	}
)

func NewClient() *Client {
	return &Client{
		HTTPClient: http.DefaultClient,
		BaseURL:    DefaultBaseURL,
		UserAgent:  defaultUserAgent,
		Throttle:   250 * time.Millisecond,
	}
}

func (c *Client) get(ctx context.Context, params url.Values, dest any) (err error) {
	endpoint := c.BaseURL + "/api.php?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to prepare GET request to endpoint %q: %w", endpoint, err)
	}

	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to GET from endpoint %q: %w", endpoint, err)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		c.pause(ctx)
	}()

	if rc := resp.StatusCode; rc != http.StatusOK {
		return fmt.Errorf("failed to GET from endpoint %q, status code %d", endpoint, rc)
	}

	if err = json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response from endpoint %q: %w", endpoint, err)
	}

	return nil
}

// CategoryMembers returns the titles of all main-namespace pages directly
// in the named category, following continuation markers until the listing
// is exhausted. Subcategories and files are excluded.
func (c *Client) CategoryMembers(ctx context.Context, category string) (titles []string, err error) {
	cont := ""

	for {
		params := url.Values{
			"action":      {"query"},
			"list":        {"categorymembers"},
			"cmtitle":     {"Category:" + category},
			"cmnamespace": {"0"},
			"cmtype":      {"page"},
			"cmlimit":     {"500"},
			"format":      {"json"},
		}
		if cont != "" {
			params.Set("cmcontinue", cont)
		}

		var body categoryMembersResponse

		if err = c.get(ctx, params, &body); err != nil {
			return nil, err
		}

		for _, m := range body.Query.CategoryMembers {
			titles = append(titles, m.Title)
		}

		cont = body.Continue.CmContinue
		if cont == "" {
			return titles, nil
		}
	}
}

// PageHTML returns the rendered HTML of the titled page.
func (c *Client) PageHTML(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"action": {"parse"},
		"page":   {title},
		"prop":   {"text"},
		"format": {"json"},
		"origin": {"*"},
	}

	var body parseResponse

	if err := c.get(ctx, params, &body); err != nil {
		return "", err
	}

	return body.Parse.Text.Body, nil
}

// PageURL returns the canonical wiki URL of the titled page.
func (c *Client) PageURL(title string) string {
	return c.BaseURL + "/wiki/" + url.PathEscape(title)
}

func (c *Client) pause(ctx context.Context) {
	if c.Throttle <= 0 {
		return
	}

	timer := time.NewTimer(c.Throttle)

	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
