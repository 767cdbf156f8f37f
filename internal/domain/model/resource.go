//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is the page size used by every list view.
const DefaultPageSize = 20

// MaxPageSize caps page_size values accepted from the browser.
const MaxPageSize = 100

// ID is a record identifier assigned by the BagBank API.
// The API emits integers; strings are accepted too.
type ID string

// String returns the identifier as text.
func (id ID) String() string { return string(id) }

// IsZero reports whether the record has not been persisted yet.
func (id ID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

// UnmarshalJSON accepts a JSON number, string or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes numeric ids as numbers so the API receives its native type.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Ref is a reference to another record as embedded in API responses.
// It decodes from either {"id":…,"name":…} or a bare id.
type Ref struct {
	ID   ID     `json:"id"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		type plain Ref
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*r = Ref(p)
		return nil
	}
	var id ID
	if err := id.UnmarshalJSON(data); err != nil {
		return err
	}
	*r = Ref{ID: id}
	return nil
}

// RefID returns the referenced id or "" for a nil reference.
func (r *Ref) RefID() ID {
	if r == nil {
		return ""
	}
	return r.ID
}

// RefName returns the referenced name or "" for a nil reference.
func (r *Ref) RefName() string {
	if r == nil {
		return ""
	}
	return r.Name
}

// ListResult is the canonical shape of every list response.
type ListResult[T any] struct {
	Items []T
	Total int
}

type listEnvelope[T any] struct {
	Items []T `json:"items"`
	Total *int `json:"total"`
}

// DecodeList normalizes a list response body. The API may answer with a bare JSON array
// or with an {"items": [...], "total": n} envelope; a missing total is len(items).
func DecodeList[T any](raw []byte) (ListResult[T], error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ListResult[T]{Items: []T{}}, nil
	}

	switch raw[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return ListResult[T]{}, fmt.Errorf("decode list: %w", err)
		}
		if items == nil {
			items = []T{}
		}
		return ListResult[T]{Items: items, Total: len(items)}, nil
	case '{':
		var env listEnvelope[T]
		if err := json.Unmarshal(raw, &env); err != nil {
			return ListResult[T]{}, fmt.Errorf("decode list envelope: %w", err)
		}
		if env.Items == nil {
			env.Items = []T{}
		}
		total := len(env.Items)
		if env.Total != nil && *env.Total > 0 {
			total = *env.Total
		}
		return ListResult[T]{Items: env.Items, Total: total}, nil
	default:
		return ListResult[T]{}, errors.New("decode list: unexpected response shape")
	}
}

// ListOptions holds the filters shared by every list endpoint.
type ListOptions struct {
	Query    string
	Page     int
	PageSize int
}

// Normalize clamps paging values to usable defaults.
func (o ListOptions) Normalize() ListOptions {
	o.Query = strings.TrimSpace(o.Query)
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.PageSize > MaxPageSize {
		o.PageSize = MaxPageSize
	}
	return o
}

// Values encodes the options as query parameters. Unset filters are omitted so the
// API applies its own "no filter" default.
func (o ListOptions) Values() url.Values {
	o = o.Normalize()
	v := url.Values{}
	setIf(v, "q", o.Query)
	v.Set("page", strconv.Itoa(o.Page))
	v.Set("page_size", strconv.Itoa(o.PageSize))
	return v
}

// Paging returns the normalized paging options. Filters embedding ListOptions inherit it.
func (o ListOptions) Paging() ListOptions { return o.Normalize() }

// Unpaged returns options that request the first page of the maximum size, used to
// populate select boxes.
func Unpaged() ListOptions {
	return ListOptions{Page: 1, PageSize: MaxPageSize}
}

func setIf(v url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		v.Set(key, value)
	}
}

// Querier is implemented by every list filter.
type Querier interface {
	Values() url.Values
}
