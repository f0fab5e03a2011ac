// Package docsrs downloads rustdoc JSON exports from docs.rs. It owns the
// transport concerns (URLs, timeouts, decompression, HTML error pages) so
// the parsing engine only ever sees raw document bytes.
package docsrs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rsdoc-dev/rsdoc/internal/config"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

type Fetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: cfg.DocsRs.Timeout},
		baseURL:   strings.TrimSuffix(cfg.DocsRs.BaseURL, "/"),
		userAgent: cfg.UserAgent,
	}
}

// JSONURL builds the docs.rs JSON endpoint for a crate. Version defaults to
// "latest" (resolved by docs.rs via redirect); target and formatVersion are
// optional path segments.
func (f *Fetcher) JSONURL(name, version, target string, formatVersion int) string {
	if version == "" {
		version = "latest"
	}
	url := f.baseURL + "/crate/" + name + "/" + version
	if target != "" {
		url += "/" + target
	}
	url += "/json"
	if formatVersion > 0 {
		url += "/" + strconv.Itoa(formatVersion)
	}
	return url
}

// CrateJSON downloads and decompresses the rustdoc JSON for a crate.
func (f *Fetcher) CrateJSON(ctx context.Context, name, version, target string, formatVersion int) ([]byte, error) {
	url := f.JSONURL(name, version, target, formatVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		versionNote := ""
		if version != "" && version != "latest" {
			versionNote = " version " + version
		}
		return nil, fmt.Errorf("crate '%s'%s not found; docs.rs started building rustdoc JSON on 2023-05-23, so older releases may not have JSON available", name, versionNote)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("docs.rs returned %d for %s/%s: %s", resp.StatusCode, name, version, string(body))
	}

	data, err := readMaybeZstd(resp.Body)
	if err != nil {
		return nil, err
	}

	if looksLikeHTML(data) {
		return nil, fmt.Errorf("docs.rs returned an HTML page instead of rustdoc JSON for %s/%s", name, version)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty response body from docs.rs for %s/%s", name, version)
	}

	return data, nil
}

// readMaybeZstd reads the body, decompressing when it carries the zstd magic.
// docs.rs serves the JSON endpoint zstd-compressed.
func readMaybeZstd(body io.Reader) ([]byte, error) {
	head := make([]byte, 4)
	n, err := io.ReadFull(body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	combined := io.MultiReader(bytes.NewReader(head[:n]), body)

	if n == 4 && bytes.Equal(head, zstdMagic) {
		decoder, err := zstd.NewReader(combined)
		if err != nil {
			return nil, fmt.Errorf("creating zstd decoder: %w", err)
		}
		defer decoder.Close()
		data, err := io.ReadAll(decoder)
		if err != nil {
			return nil, fmt.Errorf("decompressing rustdoc JSON: %w", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(combined)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return data, nil
}

func looksLikeHTML(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return false
	}
	lower := bytes.ToLower(trimmed[:min(len(trimmed), 64)])
	return bytes.HasPrefix(lower, []byte("<!doctype html")) || bytes.HasPrefix(lower, []byte("<html"))
}
