// Package sanity implements domain.ContentSource against the hosted Sanity
// query API. Every lookup is a single GET; a null query result maps to a
// nil document, and any transport failure is returned to the caller, which
// is expected to fall back to bundled defaults.
package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"psbl-site-backend/internal/domain"
)

// Config identifies the dataset to query. An empty read token limits
// visibility to published documents only.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	ReadToken  string
	// BaseURL overrides the hosted endpoint, for tests.
	BaseURL string
}

type Client struct {
	baseURL    string
	dataset    string
	token      string
	httpClient *http.Client
}

var _ domain.ContentSource = (*Client)(nil)

// errNotConfigured makes an unconfigured source look permanently
// unreachable, so resolution falls back to defaults on every page.
var errNotConfigured = errors.New("sanity: project ID not configured")

func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" && cfg.ProjectID != "" {
		base = fmt.Sprintf("https://%s.api.sanity.io/v%s", cfg.ProjectID, cfg.APIVersion)
	}
	return &Client{
		baseURL:    base,
		dataset:    cfg.Dataset,
		token:      cfg.ReadToken,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// queryEnvelope is the Sanity query API response wrapper.
type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// query runs a GROQ query and decodes the result into dst, which must be a
// pointer (to a pointer or slice). A null result leaves dst untouched.
func (c *Client) query(ctx context.Context, groq string, params map[string]string, dst any) error {
	if c.baseURL == "" {
		return errNotConfigured
	}

	values := url.Values{}
	values.Set("query", groq)
	for name, val := range params {
		// GROQ params are JSON-encoded values keyed as $name
		values.Set("$"+name, strconv.Quote(val))
	}

	endpoint := fmt.Sprintf("%s/data/query/%s?%s", c.baseURL, url.PathEscape(c.dataset), values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("sanity: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sanity: query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("sanity: query returned %d: %s", resp.StatusCode, body)
	}

	var envelope queryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("sanity: decode response: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, dst); err != nil {
		return fmt.Errorf("sanity: decode result: %w", err)
	}
	return nil
}

func (c *Client) HomeSettings(ctx context.Context) (*domain.PartialHero, error) {
	var doc *domain.PartialHero
	if err := c.query(ctx, homeSettingsQuery, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) AboutSettings(ctx context.Context) (*domain.PartialAbout, error) {
	var doc *domain.PartialAbout
	if err := c.query(ctx, aboutSettingsQuery, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) ServicesSettings(ctx context.Context) (*domain.PartialServices, error) {
	var doc *domain.PartialServices
	if err := c.query(ctx, servicesSettingsQuery, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) ReferencesSettings(ctx context.Context) (*domain.PartialReferences, error) {
	var doc *domain.PartialReferences
	if err := c.query(ctx, referencesSettingsQuery, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) ReferencesPageSettings(ctx context.Context) (*domain.PartialReferencesPage, error) {
	var doc *domain.PartialReferencesPage
	if err := c.query(ctx, referencesPageSettingsQuery, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) AllReferences(ctx context.Context) ([]domain.PartialReferenceItem, error) {
	var docs []domain.PartialReferenceItem
	if err := c.query(ctx, allReferencesQuery, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Client) ReferenceBySlug(ctx context.Context, slug string) (*domain.PartialReferenceItem, error) {
	var doc *domain.PartialReferenceItem
	if err := c.query(ctx, referenceBySlugQuery, map[string]string{"slug": slug}, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) ServicePageBySlug(ctx context.Context, slug string) (*domain.PartialServicePage, error) {
	var doc *domain.PartialServicePage
	if err := c.query(ctx, servicePageBySlugQuery, map[string]string{"slug": slug}, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) ContactSettings(ctx context.Context) (*domain.PartialContact, error) {
	var doc *domain.PartialContact
	if err := c.query(ctx, contactSettingsQuery, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
