package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/V4T54L/ga4-measurement/internal/domain"
)

// ErrMalformedPayload is returned when a request body is not a payload.
var ErrMalformedPayload = errors.New("malformed payload")

const (
	maxEventNameLength = 40
	maxEventParams     = 25
)

var eventNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// wirePayload is the subset of the request body the emulator checks.
type wirePayload struct {
	AppInstanceID *string     `json:"app_instance_id"`
	ClientID      *string     `json:"client_id"`
	Events        []wireEvent `json:"events"`
}

type wireEvent struct {
	Name   string                     `json:"name"`
	Params map[string]json.RawMessage `json:"params"`
}

// Inspection is the outcome of checking one request.
type Inspection struct {
	Events   int
	Messages []domain.ValidationMessage
}

// InspectPayload checks a request the way the validation server does and
// returns its diagnostics. query holds the request's query parameters.
func InspectPayload(query url.Values, body []byte) (Inspection, error) {
	var p wirePayload
	if err := json.Unmarshal(body, &p); err != nil {
		return Inspection{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	msgs := []domain.ValidationMessage{}
	add := func(path, code, format string, args ...any) {
		msgs = append(msgs, domain.ValidationMessage{
			FieldPath:      path,
			Description:    fmt.Sprintf(format, args...),
			ValidationCode: code,
		})
	}

	switch {
	case query.Get("firebase_app_id") != "":
		if p.AppInstanceID == nil || *p.AppInstanceID == "" {
			add("app_instance_id", domain.CodeValueRequired, "Field app_instance_id is required when firebase_app_id is set.")
		}
	case query.Get("measurement_id") != "":
		if p.ClientID == nil || *p.ClientID == "" {
			add("client_id", domain.CodeValueRequired, "Field client_id is required when measurement_id is set.")
		}
	default:
		add("", domain.CodeValueRequired, "Either firebase_app_id or measurement_id must be provided.")
	}

	switch n := len(p.Events); {
	case n == 0:
		add("events", domain.CodeValueRequired, "At least one event is required.")
	case n > domain.MaxEventsPerPayload:
		add("events", domain.CodeExceededMaxEntities, "A maximum of %d events can be specified per request, got [%d].", domain.MaxEventsPerPayload, n)
	}

	for i, e := range p.Events {
		path := fmt.Sprintf("events[%d].name", i)
		switch {
		case e.Name == "":
			add(path, domain.CodeValueRequired, "Event at index: [%d] has no name.", i)
		case domain.IsReservedEventName(e.Name):
			add("", domain.CodeNameReserved, "Event at index: [%d] has name [%s] which is reserved.", i, e.Name)
		case len(e.Name) > maxEventNameLength:
			add(path, domain.CodeValueInvalid, "Event at index: [%d] has name [%s] which exceeds %d characters.", i, e.Name, maxEventNameLength)
		case !eventNamePattern.MatchString(e.Name):
			add(path, domain.CodeNameInvalid, "Event at index: [%d] has invalid name [%s]. Only alpha-numeric characters and underscores are allowed.", i, e.Name)
		}
		if len(e.Params) > maxEventParams {
			add(fmt.Sprintf("events[%d].params", i), domain.CodeExceededMaxEntities,
				"Event at index: [%d] has [%d] params, the maximum is %d.", i, len(e.Params), maxEventParams)
		}
		if raw, ok := e.Params["engagement_time_msec"]; ok {
			if !isNumericString(raw) {
				add(fmt.Sprintf("events[%d].params.engagement_time_msec", i), domain.CodeValueInvalid,
					"Event at index: [%d] has engagement_time_msec that is not a numeric string.", i)
			}
		}
	}

	return Inspection{Events: len(p.Events), Messages: msgs}, nil
}

func isNumericString(raw json.RawMessage) bool {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
