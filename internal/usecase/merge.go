package usecase

import (
	"psbl-site-backend/internal/content"
	"psbl-site-backend/internal/domain"
)

// Merge rules, shared by every resolver: scalar fields null-coalesce
// against the default, lists are replaced wholesale when the source list is
// non-empty, and positional card lists (services grid, reference carousel)
// merge element by element against the default at the same index.
// All merges are pure functions of (fetched, default).

func strOr(p *string, def string) string {
	if p != nil && *p != "" {
		return *p
	}
	return def
}

func mergeHero(p *domain.PartialHero) domain.HeroContent {
	out := content.Hero()
	if p == nil {
		return out
	}
	out.TitleLine1 = strOr(p.TitleLine1, out.TitleLine1)
	out.TitleLine2 = strOr(p.TitleLine2, out.TitleLine2)
	out.Subtitle = strOr(p.Subtitle, out.Subtitle)
	out.PrimaryCtaLabel = strOr(p.PrimaryCtaLabel, out.PrimaryCtaLabel)
	out.PrimaryCtaHref = strOr(p.PrimaryCtaHref, out.PrimaryCtaHref)
	out.SecondaryCtaLabel = strOr(p.SecondaryCtaLabel, out.SecondaryCtaLabel)
	out.SecondaryCtaHref = strOr(p.SecondaryCtaHref, out.SecondaryCtaHref)
	out.VideoURL = strOr(p.VideoURL, out.VideoURL)
	return out
}

func mergeAbout(p *domain.PartialAbout) domain.AboutContent {
	out := content.About()
	if p == nil {
		return out
	}
	out.Headline = strOr(p.Headline, out.Headline)
	out.Lead = strOr(p.Lead, out.Lead)
	out.Body = strOr(p.Body, out.Body)
	out.CtaLabel = strOr(p.CtaLabel, out.CtaLabel)
	out.CtaHref = strOr(p.CtaHref, out.CtaHref)
	out.ImageURL = strOr(p.ImageURL, out.ImageURL)
	return out
}

func mergeServices(p *domain.PartialServices) domain.ServicesContent {
	out := content.Services()
	if p == nil {
		return out
	}
	out.Heading = strOr(p.Heading, out.Heading)
	out.HeroTitle = strOr(p.HeroTitle, out.HeroTitle)
	out.HeroSubtitle = strOr(p.HeroSubtitle, out.HeroSubtitle)
	out.HeroImageURL = strOr(p.HeroImageURL, out.HeroImageURL)
	out.HeroVideoURL = strOr(p.HeroVideoURL, out.HeroVideoURL)

	if len(p.Services) == 0 {
		return out
	}
	cards := make([]domain.ServiceCard, 0, len(p.Services))
	for i, svc := range p.Services {
		if i < len(out.Services) {
			fb := out.Services[i]
			cards = append(cards, domain.ServiceCard{
				Title:    strOr(svc.Title, fb.Title),
				ImageURL: strOr(svc.ImageURL, fb.ImageURL),
				CtaLabel: strOr(svc.CtaLabel, fb.CtaLabel),
				CtaHref:  strOr(svc.CtaHref, fb.CtaHref),
			})
			continue
		}
		// No positional default: synthesize a minimal placeholder card.
		cards = append(cards, domain.ServiceCard{
			Title:    strOr(svc.Title, ""),
			ImageURL: strOr(svc.ImageURL, content.PlaceholderImageURL),
			CtaLabel: strOr(svc.CtaLabel, ""),
			CtaHref:  strOr(svc.CtaHref, ""),
		})
	}
	out.Services = cards
	return out
}

func mergeReferences(p *domain.PartialReferences) domain.ReferencesContent {
	out := content.References()
	if p == nil {
		return out
	}
	out.Heading = strOr(p.Heading, out.Heading)
	out.Subheading = strOr(p.Subheading, out.Subheading)

	if len(p.Items) == 0 {
		return out
	}
	items := make([]domain.ReferenceCard, 0, len(p.Items))
	for i, item := range p.Items {
		if i < len(out.Items) {
			fb := out.Items[i]
			items = append(items, domain.ReferenceCard{
				ImageURL: strOr(item.ImageURL, fb.ImageURL),
				Caption:  strOr(item.Caption, fb.Caption),
				Tag:      strOr(item.Tag, fb.Tag),
				Location: strOr(item.Location, fb.Location),
			})
			continue
		}
		items = append(items, domain.ReferenceCard{
			ImageURL: strOr(item.ImageURL, content.PlaceholderImageURL),
			Caption:  strOr(item.Caption, ""),
			Tag:      strOr(item.Tag, ""),
			Location: strOr(item.Location, ""),
		})
	}
	out.Items = items
	return out
}

func mergeContact(p *domain.PartialContact) domain.ContactContent {
	out := content.Contact()
	if p == nil {
		return out
	}
	out.HeroMediaType = strOr(p.HeroMediaType, out.HeroMediaType)
	out.HeroImageURL = strOr(p.HeroImageURL, out.HeroImageURL)
	out.HeroVideoURL = strOr(p.HeroVideoURL, out.HeroVideoURL)
	out.HeroTitle = strOr(p.HeroTitle, out.HeroTitle)
	out.HeroSubtitle = strOr(p.HeroSubtitle, out.HeroSubtitle)
	out.IntroTitle = strOr(p.IntroTitle, out.IntroTitle)
	out.IntroBody = strOr(p.IntroBody, out.IntroBody)
	out.FormTitle = strOr(p.FormTitle, out.FormTitle)
	out.FormIntro = strOr(p.FormIntro, out.FormIntro)
	if p.Company != nil {
		out.Company.Name = strOr(p.Company.Name, out.Company.Name)
		out.Company.BusinessID = strOr(p.Company.BusinessID, out.Company.BusinessID)
		out.Company.Location = strOr(p.Company.Location, out.Company.Location)
		out.Company.Email = strOr(p.Company.Email, out.Company.Email)
		out.Company.Phone = strOr(p.Company.Phone, out.Company.Phone)
	}
	if p.Billing != nil {
		out.Billing.EInvoiceAddress = strOr(p.Billing.EInvoiceAddress, out.Billing.EInvoiceAddress)
		out.Billing.OperatorName = strOr(p.Billing.OperatorName, out.Billing.OperatorName)
		out.Billing.OperatorCode = strOr(p.Billing.OperatorCode, out.Billing.OperatorCode)
	}
	return out
}

func mergeReferenceItem(p *domain.PartialReferenceItem) domain.ReferenceItem {
	return domain.ReferenceItem{
		ID:       strOr(p.ID, ""),
		Title:    strOr(p.Title, ""),
		Slug:     strOr(p.Slug, ""),
		Tag:      strOr(p.Tag, ""),
		Location: strOr(p.Location, ""),
		Year:     p.Year,
		SizeM2:   p.SizeM2,
		Excerpt:  strOr(p.Excerpt, ""),
		ImageURL: strOr(p.ImageURL, content.PlaceholderImageURL),
	}
}

func mergeServicePage(slug string, p *domain.PartialServicePage) domain.ServicePage {
	out := domain.ServicePage{
		Title:          strOr(p.Title, ""),
		Slug:           strOr(p.Slug, slug),
		HeroSubtitle:   strOr(p.HeroSubtitle, ""),
		HeroImageURL:   strOr(p.HeroImageURL, ""),
		ContentTitle:   strOr(p.ContentTitle, ""),
		ContentBody:    strOr(p.ContentBody, ""),
		SideImageURL:   strOr(p.SideImageURL, ""),
		SpecsTitle:     strOr(p.SpecsTitle, ""),
		SpecsBody:      strOr(p.SpecsBody, ""),
		CoverageTitle:  strOr(p.CoverageTitle, ""),
		CoverageBody:   strOr(p.CoverageBody, ""),
		SEOTitle:       strOr(p.SEOTitle, ""),
		SEODescription: strOr(p.SEODescription, ""),
	}
	if out.SEOTitle == "" {
		out.SEOTitle = out.Title
	}
	for _, ref := range p.References {
		out.References = append(out.References, domain.ReferenceCard{
			ImageURL: strOr(ref.ImageURL, content.PlaceholderImageURL),
			Caption:  strOr(ref.Caption, ""),
			Tag:      strOr(ref.Tag, ""),
			Location: strOr(ref.Location, ""),
		})
	}
	return out
}
