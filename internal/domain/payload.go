package domain

import (
	"encoding/json"
	"time"
)

// MaxEventsPerPayload is the protocol limit on events in one request.
const MaxEventsPerPayload = 25

// Payload is the request body for both the collection and validation
// endpoints.
type Payload struct {
	Identity           Identity
	UserID             string
	Timestamp          time.Time
	UserProperties     UserProperties
	UserData           *UserData
	Consent            *Consent
	UserLocation       *UserLocation
	IPOverride         string
	Device             *Device
	ValidationBehavior ValidationBehavior
	Events             []Event
}

func (p Payload) EncodeFields() Fields {
	idKey, idValue := p.Identity.BodyField()
	f := Fields{}.
		Set(idKey, idValue).
		String("user_id", p.UserID).
		Micros("timestamp_micros", p.Timestamp)
	if len(p.UserProperties) > 0 {
		f = f.Set("user_properties", p.UserProperties)
	}
	if p.UserData != nil && !p.UserData.IsZero() {
		f = f.Set("user_data", *p.UserData)
	}
	if p.Consent != nil && !p.Consent.IsZero() {
		f = f.Set("consent", *p.Consent)
	}
	if p.UserLocation != nil && !p.UserLocation.IsZero() {
		f = f.Set("user_location", *p.UserLocation)
	}
	f = f.String("ip_override", p.IPOverride)
	if p.Device != nil && !p.Device.IsZero() {
		f = f.Set("device", *p.Device)
	}
	events := p.Events
	if events == nil {
		events = []Event{}
	}
	return f.
		String("validation_behavior", string(p.ValidationBehavior)).
		Set("events", events)
}

func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.EncodeFields())
}
