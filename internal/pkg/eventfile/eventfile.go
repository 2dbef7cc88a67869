// Package eventfile reads YAML descriptions of events and payload context for
// the command line tools.
package eventfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/V4T54L/ga4-measurement/internal/adapter/pii"
	"github.com/V4T54L/ga4-measurement/internal/catalog"
	"github.com/V4T54L/ga4-measurement/internal/domain"
	"github.com/V4T54L/ga4-measurement/internal/usecase"
)

// File is the top level document.
type File struct {
	UserID         string         `yaml:"user_id"`
	Timestamp      time.Time      `yaml:"timestamp"`
	UserProperties map[string]any `yaml:"user_properties"`
	UserData       *UserData      `yaml:"user_data"`
	Consent        *Consent       `yaml:"consent"`
	UserLocation   *UserLocation  `yaml:"user_location"`
	IPOverride     string         `yaml:"ip_override"`
	Device         *Device        `yaml:"device"`
	Events         []Event        `yaml:"events"`
}

// UserData holds raw identifiers. They are hashed when the context is built.
type UserData struct {
	Emails    []string  `yaml:"emails"`
	Phones    []string  `yaml:"phones"`
	Addresses []Address `yaml:"addresses"`
}

type Address struct {
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	Street     string `yaml:"street"`
	City       string `yaml:"city"`
	Region     string `yaml:"region"`
	PostalCode string `yaml:"postal_code"`
	Country    string `yaml:"country"`
}

type Consent struct {
	AdUserData        string `yaml:"ad_user_data"`
	AdPersonalization string `yaml:"ad_personalization"`
}

type UserLocation struct {
	City           string `yaml:"city"`
	RegionID       string `yaml:"region_id"`
	CountryID      string `yaml:"country_id"`
	SubcontinentID int    `yaml:"subcontinent_id"`
	ContinentID    int    `yaml:"continent_id"`
}

type Device struct {
	Category         string `yaml:"category"`
	Language         string `yaml:"language"`
	ScreenResolution string `yaml:"screen_resolution"`
	OS               string `yaml:"os"`
	OSVersion        string `yaml:"os_version"`
	Model            string `yaml:"model"`
	Brand            string `yaml:"brand"`
	Browser          string `yaml:"browser"`
	BrowserVersion   string `yaml:"browser_version"`
}

type Price struct {
	Currency string  `yaml:"currency"`
	Value    float64 `yaml:"value"`
}

type Item struct {
	ID          string   `yaml:"item_id"`
	Name        string   `yaml:"item_name"`
	Affiliation string   `yaml:"affiliation"`
	Coupon      string   `yaml:"coupon"`
	Discount    *float64 `yaml:"discount"`
	Index       *int     `yaml:"index"`
	Brand       string   `yaml:"item_brand"`
	Category    string   `yaml:"item_category"`
	Category2   string   `yaml:"item_category2"`
	Category3   string   `yaml:"item_category3"`
	Category4   string   `yaml:"item_category4"`
	Category5   string   `yaml:"item_category5"`
	ListID      string   `yaml:"item_list_id"`
	ListName    string   `yaml:"item_list_name"`
	Variant     string   `yaml:"item_variant"`
	LocationID  string   `yaml:"location_id"`
	Price       *Price   `yaml:"price"`
	Quantity    *int     `yaml:"quantity"`
}

// Event describes one event. Params are sent as given, followed by the price,
// items and engagement fields.
type Event struct {
	Name           string         `yaml:"name"`
	Timestamp      time.Time      `yaml:"timestamp"`
	Params         map[string]any `yaml:"params"`
	Price          *Price         `yaml:"price"`
	Items          []Item         `yaml:"items"`
	SessionID      string         `yaml:"session_id"`
	EngagementTime float64        `yaml:"engagement_time"`
}

// Load reads a file from path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a document from r.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode event file: %w", err)
	}
	if len(f.Events) == 0 {
		return nil, errors.New("event file has no events")
	}
	return &f, nil
}

// BuildEvents converts the described events.
func (f *File) BuildEvents() ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(f.Events))
	for i, e := range f.Events {
		if e.Name == "" {
			return nil, fmt.Errorf("event %d: %w", i, domain.ErrEmptyEventName)
		}
		params, err := e.fields()
		if err != nil {
			return nil, fmt.Errorf("event %d (%s): %w", i, e.Name, err)
		}
		ev := catalog.Named(e.Name, params)
		if !e.Timestamp.IsZero() {
			ev = ev.At(e.Timestamp)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (e Event) fields() (domain.Fields, error) {
	keys := make([]string, 0, len(e.Params))
	for k, v := range e.Params {
		if !domain.IsAbsent(v) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	f := make(domain.Fields, 0, len(keys)+4)
	for _, k := range keys {
		f = f.Set(k, normalize(e.Params[k]))
	}

	price, err := e.Price.build()
	if err != nil {
		return nil, err
	}
	f = f.Price(price)

	if e.Items != nil {
		items := make([]domain.Item, 0, len(e.Items))
		for _, it := range e.Items {
			item, err := it.build()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		f = f.Items(items)
	}

	engagement := domain.Engagement{SessionID: e.SessionID, EngagementTime: e.EngagementTime}
	return append(f, engagement.EncodeFields()...), nil
}

// normalize rewrites nested YAML mappings with non-string keys, which
// encoding/json cannot marshal, into string-keyed maps.
func normalize(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = normalize(val)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = normalize(val)
		}
		return s
	}
	return v
}

func (p *Price) build() (*domain.Price, error) {
	if p == nil {
		return nil, nil
	}
	price, err := domain.NewPrice(p.Currency, p.Value)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func (it Item) build() (domain.Item, error) {
	price, err := it.Price.build()
	if err != nil {
		return domain.Item{}, fmt.Errorf("item %q: %w", it.ID, err)
	}
	return domain.Item{
		ID:          it.ID,
		Name:        it.Name,
		Affiliation: it.Affiliation,
		Coupon:      it.Coupon,
		Discount:    it.Discount,
		Index:       it.Index,
		Brand:       it.Brand,
		Category:    it.Category,
		Category2:   it.Category2,
		Category3:   it.Category3,
		Category4:   it.Category4,
		Category5:   it.Category5,
		ListID:      it.ListID,
		ListName:    it.ListName,
		Variant:     it.Variant,
		LocationID:  it.LocationID,
		Price:       price,
		Quantity:    it.Quantity,
	}, nil
}

// ApplyTo merges the file's payload context over base. Raw user data is
// hashed here.
func (f *File) ApplyTo(base usecase.ClientContext) (usecase.ClientContext, error) {
	cc := base
	if f.UserID != "" {
		cc.UserID = f.UserID
	}
	if !f.Timestamp.IsZero() {
		cc.Timestamp = f.Timestamp
	}
	if len(f.UserProperties) > 0 {
		props := make(domain.UserProperties, len(f.UserProperties))
		for name, v := range f.UserProperties {
			props[name] = normalize(v)
		}
		cc.UserProperties = props
	}
	if f.IPOverride != "" {
		cc.IPOverride = f.IPOverride
	}

	if f.UserData != nil {
		addresses := make([]domain.Address, len(f.UserData.Addresses))
		for i, a := range f.UserData.Addresses {
			addresses[i] = domain.Address(a)
		}
		ud := pii.NewUserData(f.UserData.Emails, f.UserData.Phones, addresses)
		cc.UserData = &ud
	}

	if f.Consent != nil {
		consent, err := f.Consent.build()
		if err != nil {
			return usecase.ClientContext{}, err
		}
		cc.Consent = &consent
	}

	if f.UserLocation != nil {
		loc, err := f.UserLocation.build()
		if err != nil {
			return usecase.ClientContext{}, err
		}
		cc.UserLocation = &loc
	}

	if f.Device != nil {
		device, err := f.Device.build()
		if err != nil {
			return usecase.ClientContext{}, err
		}
		cc.Device = &device
	}
	return cc, nil
}

func consentMode(field, v string) (domain.ConsentMode, error) {
	switch m := domain.ConsentMode(v); m {
	case "", domain.ConsentGranted, domain.ConsentDenied:
		return m, nil
	}
	return "", fmt.Errorf("consent %s must be GRANTED or DENIED, got %q", field, v)
}

func (c Consent) build() (domain.Consent, error) {
	adUserData, err := consentMode("ad_user_data", c.AdUserData)
	if err != nil {
		return domain.Consent{}, err
	}
	adPersonalization, err := consentMode("ad_personalization", c.AdPersonalization)
	if err != nil {
		return domain.Consent{}, err
	}
	return domain.Consent{AdUserData: adUserData, AdPersonalization: adPersonalization}, nil
}

func (l UserLocation) build() (domain.UserLocation, error) {
	loc := domain.UserLocation{
		City:           l.City,
		RegionID:       l.RegionID,
		SubcontinentID: domain.Region(l.SubcontinentID),
		ContinentID:    domain.Region(l.ContinentID),
	}
	if l.CountryID != "" {
		country, err := domain.ParseCountry(l.CountryID)
		if err != nil {
			return domain.UserLocation{}, err
		}
		loc.CountryID = country
	}
	return loc, nil
}

func (d Device) build() (domain.Device, error) {
	device := domain.Device{
		Category: domain.DeviceCategory(d.Category),
		OS:       domain.Software{Name: d.OS, Version: d.OSVersion},
		Model:    d.Model,
		Brand:    d.Brand,
		Browser:  domain.Software{Name: d.Browser, Version: d.BrowserVersion},
	}
	if d.Language != "" {
		tag, err := language.Parse(d.Language)
		if err != nil {
			return domain.Device{}, fmt.Errorf("invalid device language %q: %w", d.Language, err)
		}
		device.Language = tag
	}
	if d.ScreenResolution != "" {
		var res domain.ScreenResolution
		if _, err := fmt.Sscanf(d.ScreenResolution, "%dx%d", &res.Width, &res.Height); err != nil {
			return domain.Device{}, fmt.Errorf("invalid screen resolution %q: %w", d.ScreenResolution, err)
		}
		device.ScreenResolution = &res
	}
	return device, nil
}
