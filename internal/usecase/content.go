package usecase

import (
	"context"
	"sync"

	"psbl-site-backend/internal/content"
	"psbl-site-backend/internal/domain"
	"psbl-site-backend/pkg/logger"
)

type contentUsecase struct {
	source domain.ContentSource
}

// NewContentUsecase creates the page content resolver.
func NewContentUsecase(source domain.ContentSource) domain.ContentUsecase {
	return &contentUsecase{source: source}
}

// ResolveHome fetches the four front page documents concurrently and merges
// each one against its bundled default. A failed or empty fetch falls back
// to the default in full; the page always resolves.
func (uc *contentUsecase) ResolveHome(ctx context.Context) domain.HomeContent {
	var (
		hero       *domain.PartialHero
		about      *domain.PartialAbout
		services   *domain.PartialServices
		references *domain.PartialReferences
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		hero = fetchDoc(ctx, "homeSettings", uc.source.HomeSettings)
	}()
	go func() {
		defer wg.Done()
		about = fetchDoc(ctx, "aboutSettings", uc.source.AboutSettings)
	}()
	go func() {
		defer wg.Done()
		services = fetchDoc(ctx, "servicesSettings", uc.source.ServicesSettings)
	}()
	go func() {
		defer wg.Done()
		references = fetchDoc(ctx, "referencesSettings", uc.source.ReferencesSettings)
	}()
	wg.Wait()

	return domain.HomeContent{
		Hero:       mergeHero(hero),
		About:      mergeAbout(about),
		Services:   mergeServices(services),
		References: mergeReferences(references),
	}
}

func (uc *contentUsecase) ResolveServices(ctx context.Context) domain.ServicesContent {
	return mergeServices(fetchDoc(ctx, "servicesSettings", uc.source.ServicesSettings))
}

func (uc *contentUsecase) ResolveContact(ctx context.Context) domain.ContactContent {
	return mergeContact(fetchDoc(ctx, "contactSettings", uc.source.ContactSettings))
}

func (uc *contentUsecase) ResolveReferences(ctx context.Context) domain.ReferencesPage {
	var (
		settings *domain.PartialReferencesPage
		items    []domain.PartialReferenceItem
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		settings = fetchDoc(ctx, "referencesPageSettings", uc.source.ReferencesPageSettings)
	}()
	go func() {
		defer wg.Done()
		var err error
		items, err = uc.source.AllReferences(ctx)
		if err != nil {
			logger.Log.Warn("content fetch failed, using fallback", "document", "allReferences", "error", err)
			items = nil
		}
	}()
	wg.Wait()

	page := content.ReferencesPage()
	if settings != nil {
		page.HeroTitle = strOr(settings.HeroTitle, page.HeroTitle)
		page.HeroSubtitle = strOr(settings.HeroSubtitle, page.HeroSubtitle)
		page.HeroImageURL = strOr(settings.HeroImageURL, page.HeroImageURL)
		page.HeroVideoURL = strOr(settings.HeroVideoURL, page.HeroVideoURL)
	}
	if len(items) > 0 {
		page.Items = make([]domain.ReferenceItem, 0, len(items))
		for _, item := range items {
			page.Items = append(page.Items, mergeReferenceItem(&item))
		}
	}
	return page
}

// Detail lookups have no bundled default document, so absence is the one
// failure mode they expose. A source error is logged and reported the same
// way; the content source never surfaces a server error to the client.
func (uc *contentUsecase) ResolveServicePage(ctx context.Context, slug string) (domain.ServicePage, error) {
	doc, err := uc.source.ServicePageBySlug(ctx, slug)
	if err != nil {
		logger.Log.Warn("content fetch failed, treating as absent", "document", "servicePage", "slug", slug, "error", err)
		return domain.ServicePage{}, domain.ErrNotFound
	}
	if doc == nil {
		return domain.ServicePage{}, domain.ErrNotFound
	}
	return mergeServicePage(slug, doc), nil
}

func (uc *contentUsecase) ResolveReference(ctx context.Context, slug string) (domain.ReferenceItem, error) {
	doc, err := uc.source.ReferenceBySlug(ctx, slug)
	if err != nil {
		logger.Log.Warn("content fetch failed, treating as absent", "document", "reference", "slug", slug, "error", err)
		return domain.ReferenceItem{}, domain.ErrNotFound
	}
	if doc == nil {
		return domain.ReferenceItem{}, domain.ErrNotFound
	}
	return mergeReferenceItem(doc), nil
}

// fetchDoc runs one document lookup and flattens failure into absence: the
// caller only ever sees a document or nil.
func fetchDoc[T any](ctx context.Context, name string, fn func(context.Context) (*T, error)) *T {
	doc, err := fn(ctx)
	if err != nil {
		logger.Log.Warn("content fetch failed, using fallback", "document", name, "error", err)
		return nil
	}
	return doc
}
