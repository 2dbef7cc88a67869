package catalog

import (
	"sort"

	"github.com/V4T54L/ga4-measurement/internal/domain"
)

// Custom builds an event that is not in the catalog from a free-form
// parameter map. Keys are sent in sorted order and nil values are dropped.
func Custom(name string, params map[string]any) domain.Event {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if !domain.IsAbsent(v) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	f := make(domain.Fields, 0, len(keys))
	for _, k := range keys {
		f = f.Set(k, params[k])
	}
	return event(name, f)
}

// Named attaches an arbitrary parameter record to an event name.
func Named(name string, p domain.Params) domain.Event {
	return event(name, p)
}
