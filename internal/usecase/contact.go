package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"psbl-site-backend/internal/domain"
	"psbl-site-backend/pkg/analytics"
	"psbl-site-backend/pkg/apperror"
	"psbl-site-backend/pkg/logger"
	"psbl-site-backend/pkg/mail"

	"github.com/go-playground/validator/v10"
)

// errMissingFields is the user-facing message for a rejected submission.
const errMissingFields = "Pakolliset kentät puuttuvat."

type contactUsecase struct {
	relay     mail.Relay
	tracker   analytics.Tracker
	validate  *validator.Validate
	recipient string
	from      string
}

// NewContactUsecase creates the contact submission handler. The relay and
// tracker are injected so delivery and analytics can be faked in tests.
func NewContactUsecase(relay mail.Relay, tracker analytics.Tracker, validate *validator.Validate, recipient, from string) domain.ContactUsecase {
	return &contactUsecase{
		relay:     relay,
		tracker:   tracker,
		validate:  validate,
		recipient: recipient,
		from:      from,
	}
}

// Submit validates a submission and relays it as an email notification.
// With an unconfigured relay the submission is logged and reported as a
// simulated success; that keeps environments without delivery credentials
// usable and is deliberate behavior, not an error path.
func (uc *contactUsecase) Submit(ctx context.Context, sub *domain.ContactSubmission) (*domain.SubmitResult, error) {
	normalize(sub)

	if err := uc.validate.Struct(sub); err != nil {
		uc.tracker.Event("contact_form_error", map[string]any{"kind": "remote_rejected"})
		return nil, apperror.New(400, errMissingFields, err)
	}
	if sub.Coords != nil && !sub.Coords.Valid() {
		uc.tracker.Event("contact_form_error", map[string]any{"kind": "remote_rejected"})
		return nil, apperror.BadRequest(errMissingFields)
	}

	props := map[string]any{
		"has_company":       sub.Company != "",
		"has_coords":        sub.Coords != nil,
		"has_square_meters": sub.SquareMeters != nil,
	}

	if !uc.relay.Configured() {
		logger.Log.Info("contact relay unconfigured, simulating delivery",
			"has_company", sub.Company != "",
			"has_coords", sub.Coords != nil,
			"has_square_meters", sub.SquareMeters != nil,
		)
		props["simulated"] = true
		uc.tracker.Event("contact_form_submitted", props)
		return &domain.SubmitResult{Simulated: true}, nil
	}

	notification, err := uc.buildNotification(sub)
	if err != nil {
		uc.tracker.Event("contact_form_error", map[string]any{"kind": "network_or_client_error"})
		return nil, fmt.Errorf("failed to build contact notification: %w", err)
	}

	id, err := uc.relay.Send(ctx, notification)
	if err != nil {
		var relayErr *mail.RelayError
		if errors.As(err, &relayErr) {
			logger.Log.Error("contact relay rejected delivery", "error", err)
			uc.tracker.Event("contact_form_error", map[string]any{"kind": "relay_error"})
		} else {
			logger.Log.Error("contact relay unreachable", "error", err)
			uc.tracker.Event("contact_form_error", map[string]any{"kind": "network_or_client_error"})
		}
		return nil, err
	}

	uc.tracker.Event("contact_form_submitted", props)
	return &domain.SubmitResult{DeliveryID: id}, nil
}

// normalize trims every text field and promotes the deprecated
// siteLocation field into siteLocationText for older clients.
func normalize(sub *domain.ContactSubmission) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.Company = strings.TrimSpace(sub.Company)
	sub.SiteLocationText = strings.TrimSpace(sub.SiteLocationText)
	sub.SiteLocation = strings.TrimSpace(sub.SiteLocation)
	sub.Message = strings.TrimSpace(sub.Message)

	if sub.SiteLocationText == "" && sub.SiteLocation != "" {
		sub.SiteLocationText = sub.SiteLocation
	}
}

func (uc *contactUsecase) buildNotification(sub *domain.ContactSubmission) (mail.Notification, error) {
	data := mail.ContactEmailData{
		Name:         sub.Name,
		Email:        sub.Email,
		Phone:        sub.Phone,
		Company:      sub.Company,
		SiteLocation: sub.SiteLocationText,
		Message:      sub.Message,
	}
	if sub.SquareMeters != nil {
		data.SquareMeters = strconv.FormatFloat(*sub.SquareMeters, 'f', -1, 64)
	}
	if sub.Coords != nil {
		data.CoordsText = sub.Coords.String()
		data.MapURL = sub.Coords.MapURL()
	}

	body, err := mail.RenderContactBody(data)
	if err != nil {
		return mail.Notification{}, err
	}

	return mail.Notification{
		From:    uc.from,
		To:      uc.recipient,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("Uusi yhteydenotto PSBL.fi-sivustolta – %s", sub.Name),
		HTML:    body,
	}, nil
}
