package domain

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

// UserLocation describes where the user is. It is attached to the payload,
// not to individual events.
type UserLocation struct {
	City string
	// RegionID is an ISO 3166-2 subdivision such as "US-CA".
	RegionID       string
	CountryID      language.Region
	SubcontinentID Region
	ContinentID    Region
}

// ParseCountry canonicalizes an ISO 3166-1 alpha-2 or alpha-3 country code.
func ParseCountry(code string) (language.Region, error) {
	r, err := language.ParseRegion(code)
	if err != nil {
		return language.Region{}, fmt.Errorf("invalid country code %q: %w", code, err)
	}
	if !r.IsCountry() {
		return language.Region{}, fmt.Errorf("invalid country code %q: not a country", code)
	}
	return r, nil
}

func (l UserLocation) IsZero() bool {
	return l == UserLocation{}
}

func (l UserLocation) EncodeFields() Fields {
	f := Fields{}.
		String("city", l.City).
		String("region_id", l.RegionID)
	if l.CountryID != (language.Region{}) {
		f = f.Set("country_id", l.CountryID.String())
	}
	if l.SubcontinentID != 0 {
		f = f.Set("subcontinent_id", l.SubcontinentID.Code())
	}
	if l.ContinentID != 0 {
		f = f.Set("continent_id", l.ContinentID.Code())
	}
	return f
}

func (l UserLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.EncodeFields())
}
