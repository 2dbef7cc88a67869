// Package catalog provides one constructor per Measurement Protocol event.
// Every constructor is pure and returns a domain.Event carrying the protocol
// event name and a typed parameter record.
package catalog

import "github.com/V4T54L/ga4-measurement/internal/domain"

// withEngagement appends the session id and engagement time after the
// event specific fields.
func withEngagement(f domain.Fields, e domain.Engagement) domain.Fields {
	return append(f, e.EncodeFields()...)
}

// items always renders the list, so item-bearing events send [] rather than
// dropping the key.
func items(f domain.Fields, list []domain.Item) domain.Fields {
	if list == nil {
		list = []domain.Item{}
	}
	return f.Set("items", list)
}

func event(name string, p domain.Params) domain.Event {
	return domain.Event{Name: name, Params: p}
}
