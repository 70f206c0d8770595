package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"psbl-site-backend/config"
	v1 "psbl-site-backend/internal/delivery/http/v1"
	"psbl-site-backend/internal/domain"
	"psbl-site-backend/internal/usecase"
	"psbl-site-backend/pkg/analytics"
	"psbl-site-backend/pkg/logger"
	"psbl-site-backend/pkg/mail"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

// fakeRelay is a relay double with scriptable outcome.
type fakeRelay struct {
	configured bool
	sendErr    error
	sent       []mail.Notification
}

func (f *fakeRelay) Configured() bool { return f.configured }

func (f *fakeRelay) Send(_ context.Context, n mail.Notification) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, n)
	return "delivery-1", nil
}

// nilSource has no documents: every page resolves to fallback defaults.
type nilSource struct{}

func (nilSource) HomeSettings(context.Context) (*domain.PartialHero, error)     { return nil, nil }
func (nilSource) AboutSettings(context.Context) (*domain.PartialAbout, error)   { return nil, nil }
func (nilSource) ServicesSettings(context.Context) (*domain.PartialServices, error) {
	return nil, nil
}
func (nilSource) ReferencesSettings(context.Context) (*domain.PartialReferences, error) {
	return nil, nil
}
func (nilSource) ReferencesPageSettings(context.Context) (*domain.PartialReferencesPage, error) {
	return nil, nil
}
func (nilSource) AllReferences(context.Context) ([]domain.PartialReferenceItem, error) {
	return nil, nil
}
func (nilSource) ReferenceBySlug(context.Context, string) (*domain.PartialReferenceItem, error) {
	return nil, nil
}
func (nilSource) ServicePageBySlug(context.Context, string) (*domain.PartialServicePage, error) {
	return nil, nil
}
func (nilSource) ContactSettings(context.Context) (*domain.PartialContact, error) {
	return nil, nil
}

func newTestRouter(relay mail.Relay) *gin.Engine {
	cfg := &config.Config{
		RateLimitWindowSeconds:    60,
		RateLimitContactThreshold: 10000,
		RateLimitGlobalThreshold:  100000,
	}
	contactUC := usecase.NewContactUsecase(relay, analytics.Noop{}, validator.New(), "toimisto@psbl.fi", "PSBL Yhteydenotto <no-reply@psbl.fi>")
	contentUC := usecase.NewContentUsecase(nilSource{})
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ContentUC: contentUC,
		Config:    cfg,
	})
}

func postContact(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"name": "Matti",
	"email": "matti@example.com",
	"phone": "0401234567",
	"siteLocationText": "Keskuskatu 1, Oulu",
	"message": "Tarvitsemme tarjouksen 200m² hallista"
}`

func TestContactEndpointRejectsMissingFields(t *testing.T) {
	relay := &fakeRelay{configured: true}
	router := newTestRouter(relay)

	w := postContact(t, router, `{"name":"Matti","email":"matti@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Pakolliset kentät puuttuvat."}`, w.Body.String())
	assert.Empty(t, relay.sent)
}

func TestContactEndpointDelivers(t *testing.T) {
	relay := &fakeRelay{configured: true}
	router := newTestRouter(relay)

	w := postContact(t, router, validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	require.Len(t, relay.sent, 1)
	assert.Contains(t, relay.sent[0].Subject, "Matti")
}

func TestContactEndpointSimulatesWithoutRelay(t *testing.T) {
	relay := &fakeRelay{configured: false}
	router := newTestRouter(relay)

	w := postContact(t, router, validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"simulated":true}`, w.Body.String())
	assert.Empty(t, relay.sent)
}

func TestContactEndpointSurfacesRelayError(t *testing.T) {
	relay := &fakeRelay{
		configured: true,
		sendErr:    &mail.RelayError{StatusCode: 422, Name: "validation_error", Message: "invalid to address"},
	}
	router := newTestRouter(relay)

	w := postContact(t, router, validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{
		"ok": false,
		"error": {"statusCode": 422, "name": "validation_error", "message": "invalid to address"}
	}`, w.Body.String())
}

func TestContactEndpointHandlesMalformedJSON(t *testing.T) {
	router := newTestRouter(&fakeRelay{configured: true})

	w := postContact(t, router, `{"name": "Matti",`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Viestin lähetys epäonnistui."}`, w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&fakeRelay{})

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}
