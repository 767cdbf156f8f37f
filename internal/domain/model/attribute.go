//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
)

// AttributeType names one of the keyed reference-data collections.
type AttributeType string

const (
	AttributeCategories AttributeType = "categories"
	AttributeMaterials  AttributeType = "materials"
	AttributeStyles     AttributeType = "styles"
	AttributeBrands     AttributeType = "brands"
	AttributeColors     AttributeType = "colors"
	AttributeCountries  AttributeType = "countries"
)

// AttributeTypes lists the collections in sidebar order.
var AttributeTypes = []AttributeType{
	AttributeCategories,
	AttributeMaterials,
	AttributeStyles,
	AttributeBrands,
	AttributeColors,
	AttributeCountries,
}

var attributeSingular = map[AttributeType]string{
	AttributeCategories: "Category",
	AttributeMaterials:  "Material",
	AttributeStyles:     "Style",
	AttributeBrands:     "Brand",
	AttributeColors:     "Color",
	AttributeCountries:  "Country",
}

// Valid reports whether t is a known attribute collection.
func (t AttributeType) Valid() bool {
	_, ok := attributeSingular[t]
	return ok
}

// ParseAttributeType normalizes a path segment and reports whether it is supported.
func ParseAttributeType(value string) (AttributeType, bool) {
	t := AttributeType(strings.ToLower(strings.TrimSpace(value)))
	if t.Valid() {
		return t, true
	}
	return "", false
}

// Label returns the plural heading, e.g. "Categories".
func (t AttributeType) Label() string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Singular returns the singular label, e.g. "Category".
func (t AttributeType) Singular() string {
	return attributeSingular[t]
}

// HasSwatch reports whether entries carry hex/rgb values.
func (t AttributeType) HasSwatch() bool {
	return t == AttributeColors
}

// Attribute is an entry in one of the reference-data collections.
type Attribute struct {
	ID        ID         `json:"id"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"is_active"`
	Hex       string     `json:"hex,omitempty"`
	RGB       string     `json:"rgb,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// AttributeInput is the create/update payload for an attribute entry.
type AttributeInput struct {
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	Hex      string `json:"hex,omitempty"`
	RGB      string `json:"rgb,omitempty"`
}

// NewAttributeInput returns the defaults used by the "New" form.
func NewAttributeInput() AttributeInput {
	return AttributeInput{IsActive: true}
}

// AttributeInputFrom copies the mutable fields of an existing entry.
func AttributeInputFrom(a Attribute) AttributeInput {
	return AttributeInput{Name: a.Name, IsActive: a.IsActive, Hex: a.Hex, RGB: a.RGB}
}

// Normalize trims whitespace in place.
func (in *AttributeInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Hex = strings.TrimSpace(in.Hex)
	in.RGB = strings.TrimSpace(in.RGB)
}

// Validate runs the advisory pre-submit checks.
func (in AttributeInput) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}
	return errs
}

// AttributeFilter filters an attribute list.
type AttributeFilter struct {
	ListOptions
}
