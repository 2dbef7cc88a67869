package pii

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode"

	"github.com/V4T54L/ga4-measurement/internal/domain"
)

// Kind selects the normalization applied before hashing.
type Kind int

const (
	Email Kind = iota
	Phone
	Name
)

var digitRuns = regexp.MustCompile(`[0-9]+`)

// Hash normalizes raw according to kind and returns its lowercase hex
// SHA-256 digest.
func Hash(raw string, kind Kind) string {
	switch kind {
	case Email:
		return HashEmail(raw)
	case Phone:
		return HashPhone(raw)
	default:
		return HashName(raw)
	}
}

// HashEmail removes all whitespace and lowercases before hashing.
func HashEmail(raw string) string {
	return sum(strings.ToLower(strings.Join(strings.Fields(raw), "")))
}

// HashPhone trims surrounding whitespace and prefixes "+" before hashing.
// Callers strip formatting characters beforehand.
func HashPhone(raw string) string {
	return sum("+" + strings.TrimFunc(raw, unicode.IsSpace))
}

// HashName trims, lowercases and drops digits before hashing. It is used for
// first names, last names and streets.
func HashName(raw string) string {
	v := strings.ToLower(strings.TrimFunc(raw, unicode.IsSpace))
	return sum(digitRuns.ReplaceAllString(v, ""))
}

func sum(normalized string) string {
	digest := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(digest[:])
}

// HashAddress converts a raw address to its wire form. City, region, postal
// code and country are sent in clear.
func HashAddress(a domain.Address) domain.HashedAddress {
	h := domain.HashedAddress{
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
	if a.FirstName != "" {
		h.SHA256FirstName = HashName(a.FirstName)
	}
	if a.LastName != "" {
		h.SHA256LastName = HashName(a.LastName)
	}
	if a.Street != "" {
		h.SHA256Street = HashName(a.Street)
	}
	return h
}

// NewUserData hashes every identifier up front so the returned value holds no
// raw PII.
func NewUserData(emails, phones []string, addresses []domain.Address) domain.UserData {
	var u domain.UserData
	for _, e := range emails {
		u.SHA256EmailAddresses = append(u.SHA256EmailAddresses, HashEmail(e))
	}
	for _, p := range phones {
		u.SHA256PhoneNumbers = append(u.SHA256PhoneNumbers, HashPhone(p))
	}
	for _, a := range addresses {
		u.Addresses = append(u.Addresses, HashAddress(a))
	}
	return u
}
