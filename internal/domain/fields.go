package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

// Field is a single wire key and its value.
type Field struct {
	Key   string
	Value any
}

// Fields is an ordered list of wire fields rendered as a JSON object.
// Absent values are never appended, so the rendered object has no nulls.
type Fields []Field

// EncodeFields lets a bare Fields value act as event parameters.
func (f Fields) EncodeFields() Fields { return f }

// Set appends a field unconditionally.
func (f Fields) Set(key string, v any) Fields {
	return append(f, Field{Key: key, Value: v})
}

// String appends v unless it is empty.
func (f Fields) String(key, v string) Fields {
	if v == "" {
		return f
	}
	return f.Set(key, v)
}

// Float appends *v when v is non-nil.
func (f Fields) Float(key string, v *float64) Fields {
	if v == nil {
		return f
	}
	return f.Set(key, *v)
}

// Int appends *v when v is non-nil.
func (f Fields) Int(key string, v *int) Fields {
	if v == nil {
		return f
	}
	return f.Set(key, *v)
}

// Bool appends *v when v is non-nil.
func (f Fields) Bool(key string, v *bool) Fields {
	if v == nil {
		return f
	}
	return f.Set(key, *v)
}

// Micros appends t as Unix microseconds unless t is zero.
func (f Fields) Micros(key string, t time.Time) Fields {
	if t.IsZero() {
		return f
	}
	return f.Set(key, t.UnixMicro())
}

// Price flattens p into sibling currency and value fields.
func (f Fields) Price(p *Price) Fields {
	if p == nil {
		return f
	}
	return append(f, p.EncodeFields()...)
}

// Items appends the item list. A nil slice is omitted, an empty one is kept.
func (f Fields) Items(items []Item) Fields {
	if items == nil {
		return f
	}
	return f.Set("items", items)
}

// IsAbsent reports whether v is nil or a nil pointer, map, slice or
// interface. Absent values are left off the wire.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Get returns the value stored under key.
func (f Fields) Get(key string) (any, bool) {
	for _, fd := range f {
		if fd.Key == key {
			return fd.Value, true
		}
	}
	return nil, false
}

// MarshalJSON renders the fields in order. A later duplicate key overrides
// an earlier one in place.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	written := make(map[string]struct{}, len(f))
	for i, fd := range f {
		if _, dup := written[fd.Key]; dup {
			continue
		}
		written[fd.Key] = struct{}{}
		v := fd.Value
		for _, later := range f[i+1:] {
			if later.Key == fd.Key {
				v = later.Value
			}
		}
		if IsAbsent(v) {
			continue
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fd.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", fd.Key, err)
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
