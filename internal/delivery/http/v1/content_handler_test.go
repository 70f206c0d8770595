package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"psbl-site-backend/config"
	"psbl-site-backend/internal/content"
	v1 "psbl-site-backend/internal/delivery/http/v1"
	"psbl-site-backend/internal/domain"
	"psbl-site-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slugSource extends nilSource with one known service page.
type slugSource struct {
	nilSource
	pages map[string]*domain.PartialServicePage
}

func (s slugSource) ServicePageBySlug(_ context.Context, slug string) (*domain.PartialServicePage, error) {
	return s.pages[slug], nil
}

func getContent(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestContentHomeServesFallbackDefaults(t *testing.T) {
	router := newTestRouter(&fakeRelay{})

	w := getContent(t, router, "/v1/content/home")

	require.Equal(t, http.StatusOK, w.Code)

	var home domain.HomeContent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &home))
	assert.Equal(t, content.Hero(), home.Hero)
	assert.Equal(t, content.Services().Heading, home.Services.Heading)
}

func TestContentContactServesFallbackDefaults(t *testing.T) {
	router := newTestRouter(&fakeRelay{})

	w := getContent(t, router, "/v1/content/contact")

	require.Equal(t, http.StatusOK, w.Code)

	var page domain.ContactContent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, content.Contact(), page)
}

func TestContentServicePageBySlug(t *testing.T) {
	title := "LATTIOIDEN PINNOITUKSET"
	source := slugSource{
		pages: map[string]*domain.PartialServicePage{
			"lattioiden-pinnoitukset": {Title: &title},
		},
	}
	cfg := &config.Config{
		RateLimitWindowSeconds:    60,
		RateLimitContactThreshold: 10000,
		RateLimitGlobalThreshold:  100000,
	}
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: nil,
		ContentUC: usecase.NewContentUsecase(source),
		Config:    cfg,
	})

	t.Run("known slug resolves", func(t *testing.T) {
		w := getContent(t, router, "/v1/content/services/lattioiden-pinnoitukset")
		require.Equal(t, http.StatusOK, w.Code)

		var page domain.ServicePage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, title, page.Title)
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		w := getContent(t, router, "/v1/content/services/tuntematon")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Sivua ei löytynyt."}`, w.Body.String())
	})
}
