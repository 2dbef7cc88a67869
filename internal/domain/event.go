package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Params is implemented by every event parameter record. EncodeFields maps
// the record to its ordered wire fields.
type Params interface {
	EncodeFields() Fields
}

// Event is a single Measurement Protocol event.
type Event struct {
	Name      string
	Timestamp time.Time // zero lets the server assign ingestion time
	Params    Params
}

// At returns a copy of the event stamped with t.
func (e Event) At(t time.Time) Event {
	e.Timestamp = t
	return e
}

// MarshalJSON renders {name, timestamp_micros?, params}.
func (e Event) MarshalJSON() ([]byte, error) {
	params := Fields{}
	if e.Params != nil {
		params = e.Params.EncodeFields()
	}
	f := Fields{}.
		Set("name", e.Name).
		Micros("timestamp_micros", e.Timestamp).
		Set("params", params)
	return json.Marshal(f)
}

// Engagement carries the session context shared by most events.
type Engagement struct {
	SessionID string
	// EngagementTime is in seconds. Zero leaves engagement_time_msec out.
	EngagementTime float64
}

// EncodeFields renders session_id and engagement_time_msec. The protocol
// takes engagement_time_msec as a numeric string of seconds x 1,000,000.
func (e Engagement) EncodeFields() Fields {
	f := Fields{}.String("session_id", e.SessionID)
	if e.EngagementTime != 0 {
		f = f.Set("engagement_time_msec", EngagementMsec(e.EngagementTime))
	}
	return f
}

// EngagementMsec formats seconds as the engagement_time_msec wire string, a
// whole number of microseconds.
func EngagementMsec(seconds float64) string {
	return strconv.FormatInt(int64(math.Round(seconds*1_000_000)), 10)
}

// ReservedEventNames are rejected by the validation server with NAME_RESERVED.
var ReservedEventNames = []string{
	"ad_activeview",
	"ad_click",
	"ad_exposure",
	"ad_query",
	"adunit_exposure",
	"app_clear_data",
	"app_install",
	"app_remove",
	"app_update",
	"error",
	"first_open",
	"first_visit",
	"in_app_purchase",
	"notification_dismiss",
	"notification_foreground",
	"notification_open",
	"notification_receive",
	"os_update",
	"session_start",
	"user_engagement",
}

var reservedEventNames = func() map[string]struct{} {
	m := make(map[string]struct{}, len(ReservedEventNames))
	for _, n := range ReservedEventNames {
		m[n] = struct{}{}
	}
	return m
}()

// IsReservedEventName reports whether the collection endpoint rejects name.
func IsReservedEventName(name string) bool {
	_, ok := reservedEventNames[name]
	return ok
}
