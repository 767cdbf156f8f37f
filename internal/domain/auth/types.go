// Package auth contains domain-level types for the operator session.
// It is pure and free of framework/adapter concerns.
package auth

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PersistenceScope selects which storage area holds the session token.
// It is chosen once at login from the "remember me" checkbox.
type PersistenceScope string

const (
	// ScopeDurable survives a browser restart.
	ScopeDurable PersistenceScope = "durable"
	// ScopeEphemeral lives only as long as the browser session.
	ScopeEphemeral PersistenceScope = "ephemeral"
)

// ScopeFor maps the remember flag to a persistence scope.
func ScopeFor(remember bool) PersistenceScope {
	if remember {
		return ScopeDurable
	}
	return ScopeEphemeral
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PersistenceScope) UnmarshalText(text []byte) error {
	switch v := PersistenceScope(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case ScopeDurable, ScopeEphemeral:
		*s = v
		return nil
	case "":
		*s = ScopeEphemeral
		return nil
	default:
		return fmt.Errorf("invalid persistence scope %q (want durable or ephemeral)", string(text))
	}
}

// Profile is the operator returned by GET /auth/me.
// Fields the panel does not know about are kept in Extra so the cached copy round-trips.
type Profile struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Role     string `json:"role,omitempty"`

	Extra map[string]any `json:"-"`
}

var profileKnownFields = []string{"id", "username", "full_name", "email", "image_url", "role"}

// DisplayName returns the best available label for the operator.
func (p *Profile) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.FullName != "" {
		return p.FullName
	}
	return p.Username
}

// Initial returns the avatar placeholder letter.
func (p *Profile) Initial() string {
	name := p.DisplayName()
	if name == "" {
		return "U"
	}
	return strings.ToUpper(string([]rune(name)[:1]))
}

// UnmarshalJSON accepts numeric or string ids and keeps unknown fields.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Profile{
		ID:       stringField(raw["id"]),
		Username: stringField(raw["username"]),
		FullName: stringField(raw["full_name"]),
		Email:    stringField(raw["email"]),
		ImageURL: stringField(raw["image_url"]),
		Role:     stringField(raw["role"]),
	}
	for _, k := range profileKnownFields {
		delete(raw, k)
	}
	if len(raw) > 0 {
		p.Extra = raw
	}
	return nil
}

// MarshalJSON writes the known fields followed by Extra.
func (p Profile) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+len(profileKnownFields))
	for k, v := range p.Extra {
		out[k] = v
	}
	out["username"] = p.Username
	setIfNotEmpty(out, "id", p.ID)
	setIfNotEmpty(out, "full_name", p.FullName)
	setIfNotEmpty(out, "email", p.Email)
	setIfNotEmpty(out, "image_url", p.ImageURL)
	setIfNotEmpty(out, "role", p.Role)
	return json.Marshal(out)
}

func setIfNotEmpty(m map[string]any, k, v string) {
	if v != "" {
		m[k] = v
	}
}

func stringField(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	default:
		return fmt.Sprint(t)
	}
}

// State is a point-in-time view of an operator session.
// Loading is true only while the initial profile fetch is in flight.
type State struct {
	Token   string
	User    *Profile
	Loading bool
	Scope   PersistenceScope
}

// Authenticated reports whether a protected view may be shown.
// A profile without a token never counts.
func (s State) Authenticated() bool {
	return !s.Loading && s.Token != "" && s.User != nil
}

// Empty reports whether the state holds neither token nor profile.
func (s State) Empty() bool {
	return s.Token == "" && s.User == nil
}
