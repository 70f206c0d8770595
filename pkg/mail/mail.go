// Package mail defines the notification relay capability and its Resend
// implementation. The relay is an opaque send operation: the handler builds
// a Notification and does not care how it is delivered.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
)

// Notification is one outbound email.
type Notification struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Relay delivers notifications. Configured reports whether the relay has
// credentials; an unconfigured relay must not be sent through, the caller
// simulates delivery instead.
type Relay interface {
	Configured() bool
	Send(ctx context.Context, n Notification) (string, error)
}

// ContactEmailData holds the pre-formatted fields for a contact
// notification body. Empty optional fields suppress their line entirely.
type ContactEmailData struct {
	Name         string
	Email        string
	Phone        string
	Company      string
	SiteLocation string
	SquareMeters string
	CoordsText   string
	MapURL       string
	Message      string
}

// contactEmailTemplate is the HTML body of the contact notification.
// html/template escapes every interpolated value, so user text can never
// inject markup into the recipient's mail client.
const contactEmailTemplate = `<h2>Uusi yhteydenotto PSBL.fi-sivustolta</h2>
<p><strong>Nimi:</strong> {{.Name}}</p>
<p><strong>Sähköposti:</strong> {{.Email}}</p>
<p><strong>Puhelin:</strong> {{.Phone}}</p>
<p><strong>Yritys:</strong> {{if .Company}}{{.Company}}{{else}}-{{end}}</p>
<p><strong>Työmaan sijainti (teksti):</strong><br/>{{.SiteLocation}}</p>
{{if .SquareMeters}}<p><strong>Pinta-ala:</strong> {{.SquareMeters}} m²</p>
{{end}}{{if .CoordsText}}<p><strong>Työmaan koordinaatit:</strong> {{.CoordsText}}{{if .MapURL}} (<a href="{{.MapURL}}">kartta</a>){{end}}</p>
{{end}}<p><strong>Viestin sisältö:</strong></p>
<pre style="white-space:pre-wrap;font-family:system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;">{{.Message}}</pre>
`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

// RenderContactBody executes the contact notification template.
func RenderContactBody(data ContactEmailData) (string, error) {
	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}
