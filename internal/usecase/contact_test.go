package usecase_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"psbl-site-backend/internal/domain"
	"psbl-site-backend/internal/usecase"
	"psbl-site-backend/pkg/apperror"
	"psbl-site-backend/pkg/logger"
	"psbl-site-backend/pkg/mail"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Relay
type MockRelay struct {
	mock.Mock
}

func (m *MockRelay) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockRelay) Send(ctx context.Context, n mail.Notification) (string, error) {
	args := m.Called(ctx, n)
	return args.String(0), args.Error(1)
}

// captureTracker records analytics events for assertions.
type captureTracker struct {
	names []string
	props []map[string]any
}

func (t *captureTracker) Event(name string, props map[string]any) {
	t.names = append(t.names, name)
	t.props = append(t.props, props)
}

func validSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:             "Matti",
		Email:            "matti@example.com",
		Phone:            "0401234567",
		SiteLocationText: "Keskuskatu 1, Oulu",
		Message:          "Tarvitsemme tarjouksen 200m² hallista",
	}
}

func newContactUC(relay mail.Relay, tracker *captureTracker) domain.ContactUsecase {
	return usecase.NewContactUsecase(relay, tracker, validator.New(), "toimisto@psbl.fi", "PSBL Yhteydenotto <no-reply@psbl.fi>")
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	fields := []func(*domain.ContactSubmission){
		func(s *domain.ContactSubmission) { s.Name = "" },
		func(s *domain.ContactSubmission) { s.Email = "" },
		func(s *domain.ContactSubmission) { s.Phone = "   " },
		func(s *domain.ContactSubmission) { s.SiteLocationText = "" },
		func(s *domain.ContactSubmission) { s.Message = "" },
	}

	for _, clear := range fields {
		relay := new(MockRelay)
		tracker := &captureTracker{}
		uc := newContactUC(relay, tracker)

		sub := validSubmission()
		clear(sub)

		_, err := uc.Submit(context.Background(), sub)
		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "Pakolliset kentät puuttuvat.", appErr.Message)

		// No delivery attempt for a rejected submission
		relay.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		require.Len(t, tracker.names, 1)
		assert.Equal(t, "contact_form_error", tracker.names[0])
		assert.Equal(t, "remote_rejected", tracker.props[0]["kind"])
	}
}

func TestSubmitRejectsInvalidCoordinates(t *testing.T) {
	relay := new(MockRelay)
	uc := newContactUC(relay, &captureTracker{})

	sub := validSubmission()
	sub.Coords = &domain.GeoCoordinate{Lat: 123.0, Lng: 25.0}

	_, err := uc.Submit(context.Background(), sub)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	relay.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitSimulatesWhenRelayUnconfigured(t *testing.T) {
	relay := new(MockRelay)
	relay.On("Configured").Return(false)
	tracker := &captureTracker{}
	uc := newContactUC(relay, tracker)

	result, err := uc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.True(t, result.Simulated)

	// No real external call occurs
	relay.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	require.Len(t, tracker.names, 1)
	assert.Equal(t, "contact_form_submitted", tracker.names[0])
	assert.Equal(t, true, tracker.props[0]["simulated"])
}

func TestSubmitDeliversNotification(t *testing.T) {
	relay := new(MockRelay)
	relay.On("Configured").Return(true)

	var sent mail.Notification
	relay.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(mail.Notification)
	}).Return("delivery-123", nil)

	tracker := &captureTracker{}
	uc := newContactUC(relay, tracker)

	result, err := uc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.False(t, result.Simulated)
	assert.Equal(t, "delivery-123", result.DeliveryID)

	assert.Equal(t, "toimisto@psbl.fi", sent.To)
	assert.Equal(t, "matti@example.com", sent.ReplyTo)
	assert.Contains(t, sent.Subject, "Matti")
	assert.Contains(t, sent.HTML, "Keskuskatu 1, Oulu")
	assert.Contains(t, sent.HTML, "Tarvitsemme tarjouksen 200m² hallista")
	// No coordinates line without a picked point
	assert.NotContains(t, sent.HTML, "koordinaatit")

	require.Len(t, tracker.names, 1)
	assert.Equal(t, "contact_form_submitted", tracker.names[0])
	assert.Equal(t, false, tracker.props[0]["has_company"])
	assert.Equal(t, false, tracker.props[0]["has_coords"])
	assert.Equal(t, false, tracker.props[0]["has_square_meters"])
}

func TestSubmitFormatsCoordinates(t *testing.T) {
	relay := new(MockRelay)
	relay.On("Configured").Return(true)

	var sent mail.Notification
	relay.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(mail.Notification)
	}).Return("delivery-123", nil)

	tracker := &captureTracker{}
	uc := newContactUC(relay, tracker)

	sqm := 200.0
	sub := validSubmission()
	sub.Company = "Oulun Halli Oy"
	sub.SquareMeters = &sqm
	sub.Coords = &domain.GeoCoordinate{Lat: 65.0121, Lng: 25.4651}

	_, err := uc.Submit(context.Background(), sub)
	require.NoError(t, err)

	assert.Contains(t, sent.HTML, "65.012100, 25.465100")
	assert.Contains(t, sent.HTML, "https://www.google.com/maps?q=65.012100,25.465100")
	assert.Contains(t, sent.HTML, "200 m²")

	assert.Equal(t, true, tracker.props[0]["has_company"])
	assert.Equal(t, true, tracker.props[0]["has_coords"])
	assert.Equal(t, true, tracker.props[0]["has_square_meters"])
}

func TestSubmitEscapesUserContent(t *testing.T) {
	relay := new(MockRelay)
	relay.On("Configured").Return(true)

	var sent mail.Notification
	relay.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(mail.Notification)
	}).Return("delivery-123", nil)

	uc := newContactUC(relay, &captureTracker{})

	sub := validSubmission()
	sub.Message = `<script>alert("x")</script> & muuta`

	_, err := uc.Submit(context.Background(), sub)
	require.NoError(t, err)

	assert.Contains(t, sent.HTML, "&lt;script&gt;")
	assert.NotContains(t, sent.HTML, "<script>")
	assert.Contains(t, sent.HTML, "&amp; muuta")
}

func TestSubmitPromotesLegacySiteLocation(t *testing.T) {
	relay := new(MockRelay)
	relay.On("Configured").Return(true)

	var sent mail.Notification
	relay.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(mail.Notification)
	}).Return("delivery-123", nil)

	uc := newContactUC(relay, &captureTracker{})

	sub := validSubmission()
	sub.SiteLocationText = ""
	sub.SiteLocation = "Vanha osoitekenttä 5, Kemi"

	_, err := uc.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Contains(t, sent.HTML, "Vanha osoitekenttä 5, Kemi")
}

func TestSubmitSurfacesRelayFailure(t *testing.T) {
	relay := new(MockRelay)
	relay.On("Configured").Return(true)
	relayErr := &mail.RelayError{StatusCode: 422, Name: "validation_error", Message: "invalid to address"}
	relay.On("Send", mock.Anything, mock.Anything).Return("", relayErr)

	tracker := &captureTracker{}
	uc := newContactUC(relay, tracker)

	_, err := uc.Submit(context.Background(), validSubmission())
	require.Error(t, err)

	var got *mail.RelayError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 422, got.StatusCode)

	require.Len(t, tracker.names, 1)
	assert.Equal(t, "contact_form_error", tracker.names[0])
	assert.Equal(t, "relay_error", tracker.props[0]["kind"])
}

func TestSubmitTracksNetworkFailureSeparately(t *testing.T) {
	relay := new(MockRelay)
	relay.On("Configured").Return(true)
	relay.On("Send", mock.Anything, mock.Anything).Return("", errors.New("dial tcp: connection refused"))

	tracker := &captureTracker{}
	uc := newContactUC(relay, tracker)

	_, err := uc.Submit(context.Background(), validSubmission())
	require.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), "relay error"))

	require.Len(t, tracker.names, 1)
	assert.Equal(t, "network_or_client_error", tracker.props[0]["kind"])
}
