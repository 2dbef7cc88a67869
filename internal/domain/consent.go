package domain

import "encoding/json"

// ConsentMode is a consent decision. The empty mode is left off the wire.
type ConsentMode string

const (
	ConsentGranted ConsentMode = "GRANTED"
	ConsentDenied  ConsentMode = "DENIED"
)

// Consent holds the two independently optional consent signals.
type Consent struct {
	AdUserData        ConsentMode
	AdPersonalization ConsentMode
}

func (c Consent) IsZero() bool {
	return c.AdUserData == "" && c.AdPersonalization == ""
}

func (c Consent) EncodeFields() Fields {
	return Fields{}.
		String("ad_user_data", string(c.AdUserData)).
		String("ad_personalization", string(c.AdPersonalization))
}

func (c Consent) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.EncodeFields())
}
