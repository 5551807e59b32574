package loxo

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"

	"github.com/spf13/cast"
)

// Params is the option bag passed to query and form requests. Values may be
// scalars, slices or nested maps; they are encoded with bracket notation:
//
//	{"query": "go", "job_status_ids": [1, 2], "fields": {"name": true}}
//	fields[name]=1&job_status_ids[]=1&job_status_ids[]=2&query=go
//
// nil values are skipped and booleans are sent as 1 or 0.
type Params map[string]any

// Set stores a scalar value and returns p for chaining.
func (p Params) Set(key string, value any) Params {
	p[key] = value
	return p
}

// SetList stores values to be encoded as key[]=v1&key[]=v2.
func (p Params) SetList(key string, values ...any) Params {
	p[key] = values
	return p
}

// SetMap stores a nested map to be encoded as key[sub]=v.
func (p Params) SetMap(key string, m map[string]any) Params {
	p[key] = m
	return p
}

// Clone returns a shallow copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Values encodes p into url.Values. An error wrapping ErrInvalidArgument is
// returned for values that have no string form.
func (p Params) Values() (url.Values, error) {
	out := url.Values{}

	for _, key := range sortedKeys(p) {
		if err := encodeParam(out, key, p[key]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func encodeParam(out url.Values, name string, value any) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case bool:
		if v {
			out.Add(name, "1")
		} else {
			out.Add(name, "0")
		}
		return nil
	case string:
		out.Add(name, v)
		return nil
	case []byte:
		out.Add(name, string(v))
		return nil
	case Params:
		return encodeMap(out, name, v)
	case map[string]any:
		return encodeMap(out, name, v)
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i).Interface()
			if isContainer(elem) {
				if err := encodeParam(out, name+"["+strconv.Itoa(i)+"]", elem); err != nil {
					return err
				}
				continue
			}
			if err := encodeParam(out, name+"[]", elem); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("%w: parameter %q: map keys must be strings", ErrInvalidArgument, name)
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return encodeMap(out, name, m)
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return encodeParam(out, name, rv.Elem().Interface())
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Errorf("%w: parameter %q: %w", ErrInvalidArgument, name, err)
	}

	out.Add(name, s)

	return nil
}

func encodeMap[M ~map[string]any](out url.Values, name string, m M) error {
	for _, key := range sortedKeys(m) {
		if err := encodeParam(out, name+"["+key+"]", m[key]); err != nil {
			return err
		}
	}
	return nil
}

func isContainer(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]byte); ok {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

func sortedKeys[M ~map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
