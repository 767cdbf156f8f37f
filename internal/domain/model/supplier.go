//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

// SupplierType classifies a supplier.
type SupplierType string

const (
	SupplierWholesaler SupplierType = "Wholesaler"
	SupplierFactory    SupplierType = "Factory"
)

// SupplierTypes lists the selectable supplier types.
var SupplierTypes = []SupplierType{SupplierWholesaler, SupplierFactory}

// ParseSupplierType matches case-insensitively and reports whether the value is supported.
func ParseSupplierType(value string) (SupplierType, bool) {
	for _, t := range SupplierTypes {
		if strings.EqualFold(strings.TrimSpace(value), string(t)) {
			return t, true
		}
	}
	return "", false
}

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Supplier is a vendor products are bought from.
type Supplier struct {
	ID            ID           `json:"id"`
	Name          string       `json:"name"`
	SupplierType  SupplierType `json:"supplier_type"`
	ContactPerson string       `json:"contact_person,omitempty"`
	Email         string       `json:"email,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	Address       string       `json:"address,omitempty"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     *time.Time   `json:"created_at,omitempty"`
	UpdatedAt     *time.Time   `json:"updated_at,omitempty"`
}

// SupplierInput is the create/update payload for a supplier.
type SupplierInput struct {
	Name          string       `json:"name"`
	SupplierType  SupplierType `json:"supplier_type"`
	ContactPerson string       `json:"contact_person"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Address       string       `json:"address"`
	IsActive      bool         `json:"is_active"`
}

// NewSupplierInput returns the defaults used by the "New" form.
func NewSupplierInput() SupplierInput {
	return SupplierInput{SupplierType: SupplierWholesaler, IsActive: true}
}

// SupplierInputFrom copies the mutable fields of an existing supplier.
func SupplierInputFrom(s Supplier) SupplierInput {
	return SupplierInput{
		Name:          s.Name,
		SupplierType:  s.SupplierType,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		IsActive:      s.IsActive,
	}
}

// Normalize trims whitespace in place and defaults the supplier type.
func (in *SupplierInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.ContactPerson = strings.TrimSpace(in.ContactPerson)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	if t, ok := ParseSupplierType(string(in.SupplierType)); ok {
		in.SupplierType = t
	} else if strings.TrimSpace(string(in.SupplierType)) == "" {
		in.SupplierType = SupplierWholesaler
	}
}

// Validate runs the advisory pre-submit checks.
func (in SupplierInput) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}
	if email := strings.TrimSpace(in.Email); email != "" && !emailShape.MatchString(email) {
		errs["email"] = "Invalid email"
	}
	if _, ok := ParseSupplierType(string(in.SupplierType)); !ok {
		errs["supplier_type"] = "Supplier type must be Wholesaler or Factory"
	}
	return errs
}

// SupplierFilter filters a supplier list.
type SupplierFilter struct {
	ListOptions
	Type SupplierType
}

// Values implements Querier.
func (f SupplierFilter) Values() url.Values {
	v := f.ListOptions.Values()
	setIf(v, "supplier_type", string(f.Type))
	return v
}
