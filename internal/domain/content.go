package domain

import "context"

// Merged, render-ready content shapes. Every field is guaranteed non-empty
// after resolution: whatever the content source omits is filled from the
// bundled fallback defaults.

// HeroContent is the front page hero section.
type HeroContent struct {
	TitleLine1        string `json:"titleLine1"`
	TitleLine2        string `json:"titleLine2"`
	Subtitle          string `json:"subtitle"`
	PrimaryCtaLabel   string `json:"primaryCtaLabel"`
	PrimaryCtaHref    string `json:"primaryCtaHref"`
	SecondaryCtaLabel string `json:"secondaryCtaLabel"`
	SecondaryCtaHref  string `json:"secondaryCtaHref"`
	VideoURL          string `json:"videoUrl"`
}

// AboutContent is the front page about section.
type AboutContent struct {
	Headline string `json:"headline"`
	Lead     string `json:"lead"`
	Body     string `json:"body"`
	CtaLabel string `json:"ctaLabel"`
	CtaHref  string `json:"ctaHref"`
	ImageURL string `json:"imageUrl"`
}

// ServiceCard is one entry in the services grid.
type ServiceCard struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	CtaLabel string `json:"ctaLabel"`
	CtaHref  string `json:"ctaHref"`
}

// ServicesContent covers the services grid and the services page hero.
type ServicesContent struct {
	Heading      string        `json:"heading"`
	HeroTitle    string        `json:"heroTitle"`
	HeroSubtitle string        `json:"heroSubtitle"`
	HeroImageURL string        `json:"heroImageUrl"`
	HeroVideoURL string        `json:"heroVideoUrl"`
	Services     []ServiceCard `json:"services"`
}

// ReferenceCard is one tile in the reference carousel.
type ReferenceCard struct {
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption"`
	Tag      string `json:"tag"`
	Location string `json:"location"`
}

// ReferencesContent is the front page reference carousel.
type ReferencesContent struct {
	Heading    string          `json:"heading"`
	Subheading string          `json:"subheading"`
	Items      []ReferenceCard `json:"items"`
}

// HomeContent is the fully resolved front page.
type HomeContent struct {
	Hero       HeroContent       `json:"hero"`
	About      AboutContent      `json:"about"`
	Services   ServicesContent   `json:"services"`
	References ReferencesContent `json:"references"`
}

// ReferenceItem is one project reference document.
type ReferenceItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Tag      string   `json:"tag"`
	Location string   `json:"location"`
	Year     *int     `json:"year"`
	SizeM2   *float64 `json:"sizeM2"`
	Excerpt  string   `json:"excerpt"`
	ImageURL string   `json:"imageUrl"`
}

// ReferencesPage is the resolved reference portfolio page.
type ReferencesPage struct {
	HeroTitle    string          `json:"heroTitle"`
	HeroSubtitle string          `json:"heroSubtitle"`
	HeroImageURL string          `json:"heroImageUrl"`
	HeroVideoURL string          `json:"heroVideoUrl"`
	Items        []ReferenceItem `json:"items"`
}

// ServicePage is one resolved service detail page.
type ServicePage struct {
	Title          string          `json:"title"`
	Slug           string          `json:"slug"`
	HeroSubtitle   string          `json:"heroSubtitle"`
	HeroImageURL   string          `json:"heroImageUrl"`
	ContentTitle   string          `json:"contentTitle"`
	ContentBody    string          `json:"contentBody"`
	SideImageURL   string          `json:"sideImageUrl"`
	SpecsTitle     string          `json:"specsTitle"`
	SpecsBody      string          `json:"specsBody"`
	CoverageTitle  string          `json:"coverageTitle"`
	CoverageBody   string          `json:"coverageBody"`
	References     []ReferenceCard `json:"references"`
	SEOTitle       string          `json:"seoTitle"`
	SEODescription string          `json:"seoDescription"`
}

// CompanyInfo holds the contact page company block.
type CompanyInfo struct {
	Name       string `json:"name"`
	BusinessID string `json:"businessId"`
	Location   string `json:"location"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// BillingInfo holds the contact page e-invoicing block.
type BillingInfo struct {
	EInvoiceAddress string `json:"eInvoiceAddress"`
	OperatorName    string `json:"operatorName"`
	OperatorCode    string `json:"operatorCode"`
}

// ContactContent is the resolved contact page.
type ContactContent struct {
	HeroMediaType string      `json:"heroMediaType"`
	HeroImageURL  string      `json:"heroImageUrl"`
	HeroVideoURL  string      `json:"heroVideoUrl"`
	HeroTitle     string      `json:"heroTitle"`
	HeroSubtitle  string      `json:"heroSubtitle"`
	IntroTitle    string      `json:"introTitle"`
	IntroBody     string      `json:"introBody"`
	Company       CompanyInfo `json:"company"`
	Billing       BillingInfo `json:"billing"`
	FormTitle     string      `json:"formTitle"`
	FormIntro     string      `json:"formIntro"`
}

// Partial shapes mirror the merged shapes with pointer fields: nil means
// the content source did not populate the field. They are what the source
// client decodes documents into.

type PartialHero struct {
	TitleLine1        *string `json:"titleLine1"`
	TitleLine2        *string `json:"titleLine2"`
	Subtitle          *string `json:"subtitle"`
	PrimaryCtaLabel   *string `json:"primaryCtaLabel"`
	PrimaryCtaHref    *string `json:"primaryCtaHref"`
	SecondaryCtaLabel *string `json:"secondaryCtaLabel"`
	SecondaryCtaHref  *string `json:"secondaryCtaHref"`
	VideoURL          *string `json:"videoUrl"`
}

type PartialAbout struct {
	Headline *string `json:"headline"`
	Lead     *string `json:"lead"`
	Body     *string `json:"body"`
	CtaLabel *string `json:"ctaLabel"`
	CtaHref  *string `json:"ctaHref"`
	ImageURL *string `json:"imageUrl"`
}

type PartialServiceCard struct {
	Title    *string `json:"title"`
	ImageURL *string `json:"imageUrl"`
	CtaLabel *string `json:"ctaLabel"`
	CtaHref  *string `json:"ctaHref"`
}

type PartialServices struct {
	Heading      *string              `json:"heading"`
	HeroTitle    *string              `json:"heroTitle"`
	HeroSubtitle *string              `json:"heroSubtitle"`
	HeroImageURL *string              `json:"heroImageUrl"`
	HeroVideoURL *string              `json:"heroVideoUrl"`
	Services     []PartialServiceCard `json:"services"`
}

type PartialReferenceCard struct {
	ImageURL *string `json:"imageUrl"`
	Caption  *string `json:"caption"`
	Tag      *string `json:"tag"`
	Location *string `json:"location"`
}

type PartialReferences struct {
	Heading    *string                `json:"heading"`
	Subheading *string                `json:"subheading"`
	Items      []PartialReferenceCard `json:"items"`
}

type PartialReferencesPage struct {
	HeroTitle    *string `json:"heroTitle"`
	HeroSubtitle *string `json:"heroSubtitle"`
	HeroImageURL *string `json:"heroImageUrl"`
	HeroVideoURL *string `json:"heroVideoUrl"`
}

type PartialReferenceItem struct {
	ID       *string  `json:"_id"`
	Title    *string  `json:"title"`
	Slug     *string  `json:"slug"`
	Tag      *string  `json:"tag"`
	Location *string  `json:"location"`
	Year     *int     `json:"year"`
	SizeM2   *float64 `json:"sizeM2"`
	Excerpt  *string  `json:"excerpt"`
	ImageURL *string  `json:"imageUrl"`
}

type PartialServicePage struct {
	Title          *string                `json:"title"`
	Slug           *string                `json:"slug"`
	HeroSubtitle   *string                `json:"heroSubtitle"`
	HeroImageURL   *string                `json:"heroImageUrl"`
	ContentTitle   *string                `json:"contentTitle"`
	ContentBody    *string                `json:"contentBody"`
	SideImageURL   *string                `json:"sideImageUrl"`
	SpecsTitle     *string                `json:"specsTitle"`
	SpecsBody      *string                `json:"specsBody"`
	CoverageTitle  *string                `json:"coverageTitle"`
	CoverageBody   *string                `json:"coverageBody"`
	References     []PartialReferenceCard `json:"references"`
	SEOTitle       *string                `json:"seoTitle"`
	SEODescription *string                `json:"seoDescription"`
}

type PartialContact struct {
	HeroMediaType *string `json:"heroMediaType"`
	HeroImageURL  *string `json:"heroImageUrl"`
	HeroVideoURL  *string `json:"heroVideoUrl"`
	HeroTitle     *string `json:"heroTitle"`
	HeroSubtitle  *string `json:"heroSubtitle"`
	IntroTitle    *string `json:"introTitle"`
	IntroBody     *string `json:"introBody"`
	Company       *struct {
		Name       *string `json:"name"`
		BusinessID *string `json:"businessId"`
		Location   *string `json:"location"`
		Email      *string `json:"email"`
		Phone      *string `json:"phone"`
	} `json:"company"`
	Billing *struct {
		EInvoiceAddress *string `json:"eInvoiceAddress"`
		OperatorName    *string `json:"operatorName"`
		OperatorCode    *string `json:"operatorCode"`
	} `json:"billing"`
	FormTitle *string `json:"formTitle"`
	FormIntro *string `json:"formIntro"`
}

// ContentSource reads named documents from the external content store.
// A nil document with a nil error means the document does not exist; any
// error means the source was unreachable. Resolution treats both the same
// way and falls back to defaults.
type ContentSource interface {
	HomeSettings(ctx context.Context) (*PartialHero, error)
	AboutSettings(ctx context.Context) (*PartialAbout, error)
	ServicesSettings(ctx context.Context) (*PartialServices, error)
	ReferencesSettings(ctx context.Context) (*PartialReferences, error)
	ReferencesPageSettings(ctx context.Context) (*PartialReferencesPage, error)
	AllReferences(ctx context.Context) ([]PartialReferenceItem, error)
	ReferenceBySlug(ctx context.Context, slug string) (*PartialReferenceItem, error)
	ServicePageBySlug(ctx context.Context, slug string) (*PartialServicePage, error)
	ContactSettings(ctx context.Context) (*PartialContact, error)
}

// ContentUsecase resolves render-ready page content. Page-level resolvers
// never fail: a missing or unreachable source yields the fallback defaults.
// Detail resolvers return ErrNotFound when the slug matches nothing.
type ContentUsecase interface {
	ResolveHome(ctx context.Context) HomeContent
	ResolveServices(ctx context.Context) ServicesContent
	ResolveReferences(ctx context.Context) ReferencesPage
	ResolveContact(ctx context.Context) ContactContent
	ResolveServicePage(ctx context.Context, slug string) (ServicePage, error)
	ResolveReference(ctx context.Context, slug string) (ReferenceItem, error)
}
