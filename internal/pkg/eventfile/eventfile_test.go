package eventfile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/V4T54L/ga4-measurement/internal/domain"
	"github.com/V4T54L/ga4-measurement/internal/usecase"
)

const sampleFile = `
user_id: u-42
timestamp: 2024-05-01T10:00:00Z
user_properties:
  tier: gold
consent:
  ad_user_data: GRANTED
  ad_personalization: DENIED
user_data:
  emails: [" Jane.Doe@Example.com "]
user_location:
  city: Mountain View
  region_id: US-CA
  country_id: us
  subcontinent_id: 21
  continent_id: 19
device:
  category: mobile
  language: en-US
  screen_resolution: 1280x2856
  os: Android
  os_version: "14"
events:
  - name: purchase
    session_id: S1
    engagement_time: 1
    price: {currency: usd, value: 29.99}
    params:
      transaction_id: T1
    items:
      - item_id: SKU_1
        item_name: T-Shirt
        quantity: 1
  - name: level_up
    timestamp: 2024-05-01T10:00:05Z
    params:
      level: 3
      character: mage
`

func TestBuildEvents(t *testing.T) {
	f, err := Decode(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	events, err := f.BuildEvents()
	if err != nil {
		t.Fatalf("BuildEvents() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	got, err := json.Marshal(events[0])
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	expected := `{"name":"purchase","params":{"transaction_id":"T1","currency":"USD","value":29.99,"items":[{"item_id":"SKU_1","item_name":"T-Shirt","quantity":1}],"session_id":"S1","engagement_time_msec":"1000000"}}`
	if string(got) != expected {
		t.Errorf("purchase mismatch\n got: %s\nwant: %s", got, expected)
	}

	want := time.Date(2024, 5, 1, 10, 0, 5, 0, time.UTC)
	if !events[1].Timestamp.Equal(want) {
		t.Errorf("event timestamp = %v, want %v", events[1].Timestamp, want)
	}
	got, _ = json.Marshal(events[1])
	if !strings.Contains(string(got), `"params":{"character":"mage","level":3}`) {
		t.Errorf("params must be sorted by key, got %s", got)
	}
}

func TestApplyTo(t *testing.T) {
	f, err := Decode(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	base := usecase.ClientContext{
		Identity: domain.GtagIdentity("G-1", "c-1"),
		UserID:   "base-user",
	}
	cc, err := f.ApplyTo(base)
	if err != nil {
		t.Fatalf("ApplyTo() error = %v", err)
	}

	if cc.Identity != base.Identity {
		t.Error("identity must come from the base context")
	}
	if cc.UserID != "u-42" {
		t.Errorf("UserID = %q, want u-42", cc.UserID)
	}
	if cc.UserProperties["tier"] != "gold" {
		t.Errorf("unexpected user properties %v", cc.UserProperties)
	}
	if cc.Consent == nil || cc.Consent.AdUserData != domain.ConsentGranted || cc.Consent.AdPersonalization != domain.ConsentDenied {
		t.Errorf("unexpected consent %+v", cc.Consent)
	}
	if cc.UserData == nil || len(cc.UserData.SHA256EmailAddresses) != 1 {
		t.Fatalf("expected one hashed email, got %+v", cc.UserData)
	}
	if strings.Contains(cc.UserData.SHA256EmailAddresses[0], "@") || len(cc.UserData.SHA256EmailAddresses[0]) != 64 {
		t.Errorf("email was not hashed: %q", cc.UserData.SHA256EmailAddresses[0])
	}
	if cc.UserLocation == nil || cc.UserLocation.CountryID.String() != "US" {
		t.Errorf("unexpected location %+v", cc.UserLocation)
	}
	if cc.Device == nil || cc.Device.ScreenResolution == nil || cc.Device.ScreenResolution.String() != "1280x2856" {
		t.Errorf("unexpected device %+v", cc.Device)
	}
	if cc.Device.Language.String() != "en-US" {
		t.Errorf("device language = %s", cc.Device.Language)
	}
}

func TestApplyTo_KeepsBaseWhenUnset(t *testing.T) {
	f := &File{Events: []Event{{Name: "login"}}}
	base := usecase.ClientContext{UserID: "keep", IPOverride: "10.0.0.1"}

	cc, err := f.ApplyTo(base)
	if err != nil {
		t.Fatalf("ApplyTo() error = %v", err)
	}
	if cc.UserID != "keep" || cc.IPOverride != "10.0.0.1" {
		t.Errorf("base values were overwritten: %+v", cc)
	}
	if cc.UserData != nil || cc.Device != nil || cc.Consent != nil || cc.UserLocation != nil {
		t.Error("absent sections must stay nil")
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "No events", doc: "user_id: u1\n"},
		{name: "Unknown field", doc: "events:\n  - name: login\n    bogus: 1\n"},
		{name: "Not YAML", doc: "events: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestBuildEvents_Errors(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		target error
	}{
		{name: "Empty name", events: []Event{{}}, target: domain.ErrEmptyEventName},
		{name: "Bad currency", events: []Event{{Name: "purchase", Price: &Price{Currency: "nope", Value: 1}}}},
		{name: "Bad item price", events: []Event{{Name: "purchase", Items: []Item{{ID: "A", Price: &Price{Currency: "??"}}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Events: tt.events}
			_, err := f.BuildEvents()
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestApplyTo_Errors(t *testing.T) {
	tests := []struct {
		name string
		file File
	}{
		{name: "Bad consent", file: File{Consent: &Consent{AdUserData: "maybe"}}},
		{name: "Bad country", file: File{UserLocation: &UserLocation{CountryID: "ZZZZ"}}},
		{name: "Bad language", file: File{Device: &Device{Language: "not a tag"}}},
		{name: "Bad resolution", file: File{Device: &Device{ScreenResolution: "wide"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.file.ApplyTo(usecase.ClientContext{}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.yaml")
	if err := os.WriteFile(path, []byte("events:\n  - name: login\n    params: {method: email}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f.Events) != 1 || f.Events[0].Params["method"] != "email" {
		t.Errorf("unexpected file %+v", f)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestNonStringKeysAreMarshalable(t *testing.T) {
	doc := `
user_properties:
  tiers:
    1: bronze
    2: silver
events:
  - name: custom_thing
    params:
      flags:
        true: on
        nested: [{3: three}]
`
	f, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	cc, err := f.ApplyTo(usecase.ClientContext{})
	if err != nil {
		t.Fatalf("ApplyTo() error = %v", err)
	}
	raw, err := json.Marshal(cc.UserProperties)
	if err != nil {
		t.Fatalf("user properties must marshal: %v", err)
	}
	if string(raw) != `{"tiers":{"value":{"1":"bronze","2":"silver"}}}` {
		t.Errorf("unexpected user properties %s", raw)
	}

	events, err := f.BuildEvents()
	if err != nil {
		t.Fatalf("BuildEvents() error = %v", err)
	}
	raw, err = json.Marshal(events[0])
	if err != nil {
		t.Fatalf("event must marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"flags":{"nested":[{"3":"three"}],"true":"on"}`) {
		t.Errorf("unexpected params %s", raw)
	}
}
