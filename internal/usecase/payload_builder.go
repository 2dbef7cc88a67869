package usecase

import (
	"fmt"
	"time"

	"github.com/V4T54L/ga4-measurement/internal/domain"
)

// ClientContext is the per-client state merged into every payload.
type ClientContext struct {
	Identity           domain.Identity
	UserID             string
	Timestamp          time.Time
	UserProperties     domain.UserProperties
	UserData           *domain.UserData
	Consent            *domain.Consent
	UserLocation       *domain.UserLocation
	IPOverride         string
	Device             *domain.Device
	ValidationBehavior domain.ValidationBehavior
}

// BuildPayload wraps events with the client context. A non-zero timestamp
// overrides the context timestamp. Event order is preserved.
func BuildPayload(cc ClientContext, events []domain.Event, timestamp time.Time) (domain.Payload, error) {
	if len(events) == 0 {
		return domain.Payload{}, domain.ErrNoEvents
	}
	if len(events) > domain.MaxEventsPerPayload {
		return domain.Payload{}, fmt.Errorf("%w: got %d", domain.ErrTooManyEvents, len(events))
	}
	for i, e := range events {
		if e.Name == "" {
			return domain.Payload{}, fmt.Errorf("event at index %d: %w", i, domain.ErrEmptyEventName)
		}
	}

	ts := cc.Timestamp
	if !timestamp.IsZero() {
		ts = timestamp
	}

	return domain.Payload{
		Identity:           cc.Identity,
		UserID:             cc.UserID,
		Timestamp:          ts,
		UserProperties:     cc.UserProperties,
		UserData:           cc.UserData,
		Consent:            cc.Consent,
		UserLocation:       cc.UserLocation,
		IPOverride:         cc.IPOverride,
		Device:             cc.Device,
		ValidationBehavior: cc.ValidationBehavior,
		Events:             append([]domain.Event(nil), events...),
	}, nil
}
