// Package content bundles the static fallback defaults for every page.
// Defaults are the content of last resort: resolution substitutes them
// field by field whenever the content source omits a value, so a page can
// always render even with an empty or unreachable source.
package content

import (
	"embed"
	"encoding/json"
	"fmt"

	"psbl-site-backend/internal/domain"
)

//go:embed defaults/*.json
var defaultsFS embed.FS

var (
	heroDefault           domain.HeroContent
	aboutDefault          domain.AboutContent
	servicesDefault       domain.ServicesContent
	referencesDefault     domain.ReferencesContent
	referencesPageDefault domain.ReferencesPage
	contactDefault        domain.ContactContent
)

func init() {
	mustLoad("defaults/hero.json", &heroDefault)
	mustLoad("defaults/about.json", &aboutDefault)
	mustLoad("defaults/services.json", &servicesDefault)
	mustLoad("defaults/references.json", &referencesDefault)
	mustLoad("defaults/references_page.json", &referencesPageDefault)
	mustLoad("defaults/contact.json", &contactDefault)
}

func mustLoad(name string, dst any) {
	raw, err := defaultsFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("content: missing bundled default %s: %v", name, err))
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		panic(fmt.Sprintf("content: invalid bundled default %s: %v", name, err))
	}
}

// Accessors return copies so callers can never mutate the bundled defaults.

func Hero() domain.HeroContent {
	return heroDefault
}

func About() domain.AboutContent {
	return aboutDefault
}

func Services() domain.ServicesContent {
	out := servicesDefault
	out.Services = append([]domain.ServiceCard(nil), servicesDefault.Services...)
	return out
}

func References() domain.ReferencesContent {
	out := referencesDefault
	out.Items = append([]domain.ReferenceCard(nil), referencesDefault.Items...)
	return out
}

func ReferencesPage() domain.ReferencesPage {
	out := referencesPageDefault
	out.Items = append([]domain.ReferenceItem(nil), referencesPageDefault.Items...)
	return out
}

func Contact() domain.ContactContent {
	return contactDefault
}

// PlaceholderImageURL fills service cards the source sends beyond the
// bundled defaults.
const PlaceholderImageURL = "/images/placeholder.jpg"
