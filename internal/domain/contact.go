package domain

import (
	"context"
	"fmt"
)

// GeoCoordinate is a point picked on the site-location map, in decimal
// degrees. Points outside the service region are accepted on purpose.
type GeoCoordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the pair is within real-world degree ranges.
func (g GeoCoordinate) Valid() bool {
	return g.Lat >= -90 && g.Lat <= 90 && g.Lng >= -180 && g.Lng <= 180
}

// String renders the pair with fixed six-decimal precision, e.g.
// "65.012100, 25.465100".
func (g GeoCoordinate) String() string {
	return fmt.Sprintf("%.6f, %.6f", g.Lat, g.Lng)
}

// MapURL returns a map view link for the point.
func (g GeoCoordinate) MapURL() string {
	return fmt.Sprintf("https://www.google.com/maps?q=%.6f,%.6f", g.Lat, g.Lng)
}

// ContactSubmission is one contact form submission. It is a transient
// message: relayed once by email, never stored.
//
// SiteLocation is the deprecated name of SiteLocationText kept for older
// clients; it is promoted during normalization.
type ContactSubmission struct {
	Name             string         `json:"name" validate:"required"`
	Email            string         `json:"email" validate:"required,email"`
	Phone            string         `json:"phone" validate:"required"`
	Company          string         `json:"company"`
	SiteLocationText string         `json:"siteLocationText" validate:"required"`
	SiteLocation     string         `json:"siteLocation"`
	SquareMeters     *float64       `json:"squareMeters" validate:"omitempty,gte=0"`
	Message          string         `json:"message" validate:"required"`
	Coords           *GeoCoordinate `json:"coords"`
}

// SubmitResult reports the outcome of a relayed submission.
type SubmitResult struct {
	// Simulated is true when the relay is unconfigured and delivery was
	// logged instead of sent.
	Simulated  bool
	DeliveryID string
}

// ContactUsecase defines the contact form operations
type ContactUsecase interface {
	// Submit validates a submission and relays it as an email notification.
	Submit(ctx context.Context, sub *ContactSubmission) (*SubmitResult, error)
}
