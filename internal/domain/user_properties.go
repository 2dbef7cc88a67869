package domain

import (
	"encoding/json"
	"sort"
)

// UserProperties are user-scoped attributes. Each entry is sent as
// {"name": {"value": v}}. Nil values are dropped.
type UserProperties map[string]any

func (p UserProperties) EncodeFields() Fields {
	names := make([]string, 0, len(p))
	for name, v := range p {
		if !IsAbsent(v) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	f := make(Fields, 0, len(names))
	for _, name := range names {
		f = f.Set(name, Fields{}.Set("value", p[name]))
	}
	return f
}

func (p UserProperties) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.EncodeFields())
}
