// Package analytics forwards product events to Plausible. Events are
// strictly non-personal: boolean flags and category names only.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"psbl-site-backend/pkg/logger"
)

// Tracker records a named event. Implementations must never block the
// caller on network IO and must never return delivery errors upstream.
type Tracker interface {
	Event(name string, props map[string]any)
}

// Noop discards every event. Used when no analytics domain is configured.
type Noop struct{}

func (Noop) Event(string, map[string]any) {}

// Plausible posts events to the Plausible events API in the background.
type Plausible struct {
	domain     string
	endpoint   string
	pageURL    string
	httpClient *http.Client
}

var _ Tracker = (*Plausible)(nil)

func NewPlausible(domain, endpoint, siteURL string) *Plausible {
	return &Plausible{
		domain:     domain,
		endpoint:   endpoint,
		pageURL:    siteURL + "/yhteystiedot",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type plausibleEvent struct {
	Name   string         `json:"name"`
	URL    string         `json:"url"`
	Domain string         `json:"domain"`
	Props  map[string]any `json:"props,omitempty"`
}

// Event fires and forgets. A failed post is logged and dropped: analytics
// must never affect the request that produced the event.
func (p *Plausible) Event(name string, props map[string]any) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		payload, err := json.Marshal(plausibleEvent{
			Name:   name,
			URL:    p.pageURL,
			Domain: p.domain,
			Props:  props,
		})
		if err != nil {
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
		if err != nil {
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "psbl-site-backend")

		resp, err := p.httpClient.Do(req)
		if err != nil {
			if logger.Log != nil {
				logger.Log.Warn("analytics event dropped", "event", name, "error", err)
			}
			return
		}
		defer resp.Body.Close()
	}()
}
