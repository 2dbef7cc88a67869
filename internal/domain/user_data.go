package domain

import "encoding/json"

// Address is a raw postal address supplied by the caller. It never goes on
// the wire as-is; see HashedAddress.
type Address struct {
	FirstName  string
	LastName   string
	Street     string
	City       string
	Region     string
	PostalCode string
	Country    string
}

// HashedAddress is the wire form of Address. Name and street fields hold
// lowercase hex SHA-256 digests.
type HashedAddress struct {
	SHA256FirstName string
	SHA256LastName  string
	SHA256Street    string
	City            string
	Region          string
	PostalCode      string
	Country         string
}

func (a HashedAddress) EncodeFields() Fields {
	return Fields{}.
		String("sha256_first_name", a.SHA256FirstName).
		String("sha256_last_name", a.SHA256LastName).
		String("sha256_street", a.SHA256Street).
		String("city", a.City).
		String("region", a.Region).
		String("postal_code", a.PostalCode).
		String("country", a.Country)
}

func (a HashedAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.EncodeFields())
}

// UserData carries hashed identifiers for enhanced conversions. Build it
// with pii.NewUserData so that raw values never reach this struct.
type UserData struct {
	SHA256EmailAddresses []string
	SHA256PhoneNumbers   []string
	Addresses            []HashedAddress
}

// IsZero reports whether there is nothing to send.
func (u UserData) IsZero() bool {
	return len(u.SHA256EmailAddresses) == 0 && len(u.SHA256PhoneNumbers) == 0 && len(u.Addresses) == 0
}

func (u UserData) EncodeFields() Fields {
	f := Fields{}
	if len(u.SHA256EmailAddresses) > 0 {
		f = f.Set("sha256_email_address", u.SHA256EmailAddresses)
	}
	if len(u.SHA256PhoneNumbers) > 0 {
		f = f.Set("sha256_phone_number", u.SHA256PhoneNumbers)
	}
	if len(u.Addresses) > 0 {
		f = f.Set("address", u.Addresses)
	}
	return f
}

func (u UserData) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.EncodeFields())
}
