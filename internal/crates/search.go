// Package crates queries the crates.io registry API for crate name search.
package crates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rsdoc-dev/rsdoc/internal/config"
)

const defaultLimit = 10

type Result struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	MaxVersion      string `json:"max_version"`
	Downloads       int64  `json:"downloads"`
	RecentDownloads int64  `json:"recent_downloads"`
	Documentation   string `json:"documentation"`
}

type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		client:    &http.Client{Timeout: cfg.CratesIO.Timeout},
		baseURL:   strings.TrimSuffix(cfg.CratesIO.BaseURL, "/"),
		userAgent: cfg.UserAgent,
	}
}

// Search queries crates.io for crates matching the query. It returns the
// matching crates (up to limit) and the registry's total match count.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, int, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	u := fmt.Sprintf("%s/api/v1/crates?q=%s&per_page=%s",
		c.baseURL, url.QueryEscape(query), strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("searching crates.io: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, 0, fmt.Errorf("crates.io returned %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Crates []Result `json:"crates"`
		Meta   struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, 0, fmt.Errorf("decoding crates.io response: %w", err)
	}
	return payload.Crates, payload.Meta.Total, nil
}

// SuggestSimilar returns crate names similar to the given name, for
// "did you mean" hints when a lookup misses. Errors degrade to no
// suggestions.
func (c *Client) SuggestSimilar(ctx context.Context, name string, limit int) []string {
	results, _, err := c.Search(ctx, name, limit)
	if err != nil {
		return nil
	}
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	return names
}

// FormatResults renders search results as a numbered markdown list.
func FormatResults(query string, total int, results []Result) string {
	if len(results) == 0 {
		return fmt.Sprintf("No crates found matching %q", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d crates matching %q (showing top %d):\n\n", total, query, len(results))

	for i, r := range results {
		fmt.Fprintf(&b, "%d. **%s** v%s\n", i+1, r.Name, r.MaxVersion)
		if r.Description != "" {
			fmt.Fprintf(&b, "   %s\n", r.Description)
		}
		fmt.Fprintf(&b, "   Downloads: %s (%s recent)\n", formatNumber(r.Downloads), formatNumber(r.RecentDownloads))
		if r.Documentation != "" {
			fmt.Fprintf(&b, "   Docs: %s\n", r.Documentation)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatNumber renders n with thousands separators.
func formatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
