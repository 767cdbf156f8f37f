//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

// OwnershipStatus records whether the shop owns the stock outright.
type OwnershipStatus string

const (
	OwnershipYes OwnershipStatus = "Yes"
	OwnershipNo  OwnershipStatus = "No"
)

// ParseOwnershipStatus matches case-insensitively and reports whether the value is supported.
func ParseOwnershipStatus(value string) (OwnershipStatus, bool) {
	switch {
	case strings.EqualFold(strings.TrimSpace(value), string(OwnershipYes)):
		return OwnershipYes, true
	case strings.EqualFold(strings.TrimSpace(value), string(OwnershipNo)):
		return OwnershipNo, true
	default:
		return "", false
	}
}

// Registrable domains accepted for the social links on a product.
var (
	youTubeDomains  = []string{"youtube.com", "youtu.be"}
	facebookDomains = []string{"facebook.com", "fb.com", "fb.watch"}
)

// Product is a catalog item with its color/SKU variations.
type Product struct {
	ID              ID              `json:"id"`
	Name            string          `json:"name"`
	Category        *Ref            `json:"category,omitempty"`
	Material        *Ref            `json:"material,omitempty"`
	Brand           *Ref            `json:"brand,omitempty"`
	Style           *Ref            `json:"style,omitempty"`
	Country         *Ref            `json:"country,omitempty"`
	Supplier        *Ref            `json:"supplier,omitempty"`
	OwnershipStatus OwnershipStatus `json:"ownership_status"`
	PurchasePrice   float64         `json:"purchase_price"`
	SellingPrice    float64         `json:"selling_price"`
	Description     string          `json:"description,omitempty"`
	Keywords        string          `json:"keywords,omitempty"`
	YouTubeURL      string          `json:"youtube_url,omitempty"`
	FacebookURL     string          `json:"facebook_url,omitempty"`
	IsActive        bool            `json:"is_active"`
	Variations      []Variation     `json:"variations"`
	CreatedBy       string          `json:"created_by,omitempty"`
	UpdatedBy       string          `json:"updated_by,omitempty"`
	CreatedAt       *time.Time      `json:"created_at,omitempty"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty"`
}

// TotalStock sums stock across variations.
func (p Product) TotalStock() int {
	n := 0
	for _, v := range p.Variations {
		n += v.StockQuantity
	}
	return n
}

// Variation is a color/SKU line owned by a product. It has no identity of its own and
// the whole list is replaced on every product update.
type Variation struct {
	Color           *Ref    `json:"color,omitempty"`
	ColorName       string  `json:"color_name,omitempty"`
	SKU             string  `json:"sku"`
	Barcode         string  `json:"barcode,omitempty"`
	AdditionalPrice float64 `json:"additional_price"`
	StockQuantity   int     `json:"stock_quantity"`
}

// DisplayColor returns the color label shown in tables.
func (v Variation) DisplayColor() string {
	if v.ColorName != "" {
		return v.ColorName
	}
	if name := v.Color.RefName(); name != "" {
		return name
	}
	return v.Color.RefID().String()
}

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	Name            string           `json:"name"`
	Category        ID               `json:"category"`
	Material        ID               `json:"material"`
	Brand           ID               `json:"brand"`
	Style           ID               `json:"style"`
	Country         ID               `json:"country"`
	Supplier        ID               `json:"supplier"`
	OwnershipStatus OwnershipStatus  `json:"ownership_status"`
	PurchasePrice   float64          `json:"purchase_price"`
	SellingPrice    float64          `json:"selling_price"`
	Description     string           `json:"description"`
	Keywords        string           `json:"keywords"`
	YouTubeURL      string           `json:"youtube_url"`
	FacebookURL     string           `json:"facebook_url"`
	IsActive        bool             `json:"is_active"`
	Variations      []VariationInput `json:"variations"`
}

// VariationInput is one variation row in a product payload.
type VariationInput struct {
	Color           ID      `json:"color"`
	SKU             string  `json:"sku"`
	Barcode         string  `json:"barcode"`
	AdditionalPrice float64 `json:"additional_price"`
	StockQuantity   int     `json:"stock_quantity"`
}

// NewProductInput returns the defaults used by the "New" form: owned stock, active,
// and one empty variation row.
func NewProductInput() ProductInput {
	return ProductInput{
		OwnershipStatus: OwnershipYes,
		IsActive:        true,
		Variations:      []VariationInput{{}},
	}
}

// ProductInputFrom converts a fetched product into an editable payload.
func ProductInputFrom(p Product) ProductInput {
	in := ProductInput{
		Name:            p.Name,
		Category:        p.Category.RefID(),
		Material:        p.Material.RefID(),
		Brand:           p.Brand.RefID(),
		Style:           p.Style.RefID(),
		Country:         p.Country.RefID(),
		Supplier:        p.Supplier.RefID(),
		OwnershipStatus: p.OwnershipStatus,
		PurchasePrice:   p.PurchasePrice,
		SellingPrice:    p.SellingPrice,
		Description:     p.Description,
		Keywords:        p.Keywords,
		YouTubeURL:      p.YouTubeURL,
		FacebookURL:     p.FacebookURL,
		IsActive:        p.IsActive,
	}
	for _, v := range p.Variations {
		in.Variations = append(in.Variations, VariationInput{
			Color:           v.Color.RefID(),
			SKU:             v.SKU,
			Barcode:         v.Barcode,
			AdditionalPrice: v.AdditionalPrice,
			StockQuantity:   v.StockQuantity,
		})
	}
	if len(in.Variations) == 0 {
		in.Variations = []VariationInput{{}}
	}
	return in
}

// Normalize trims text fields in place, including variation SKU and barcode.
func (in *ProductInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Keywords = strings.TrimSpace(in.Keywords)
	in.YouTubeURL = strings.TrimSpace(in.YouTubeURL)
	in.FacebookURL = strings.TrimSpace(in.FacebookURL)
	if s, ok := ParseOwnershipStatus(string(in.OwnershipStatus)); ok {
		in.OwnershipStatus = s
	}
	for i := range in.Variations {
		in.Variations[i].SKU = strings.TrimSpace(in.Variations[i].SKU)
		in.Variations[i].Barcode = strings.TrimSpace(in.Variations[i].Barcode)
	}
}

// Validate runs the advisory pre-submit checks. Keys match the form field names;
// variation problems use variation_<field>_<index>.
func (in ProductInput) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}
	required := []struct {
		key   string
		label string
		id    ID
	}{
		{"category", "Category", in.Category},
		{"material", "Material", in.Material},
		{"brand", "Brand", in.Brand},
		{"style", "Style", in.Style},
		{"country", "Country", in.Country},
	}
	for _, r := range required {
		if r.id.IsZero() {
			errs[r.key] = r.label + " is required"
		}
	}
	if !positivePrice(in.PurchasePrice) {
		errs["purchase_price"] = "Purchase price must be > 0"
	}
	if !positivePrice(in.SellingPrice) {
		errs["selling_price"] = "Selling price must be > 0"
	}
	if in.OwnershipStatus != "" {
		if _, ok := ParseOwnershipStatus(string(in.OwnershipStatus)); !ok {
			errs["ownership_status"] = "Ownership must be Yes or No"
		}
	}
	if msg := socialLinkProblem(in.YouTubeURL, "YouTube", youTubeDomains); msg != "" {
		errs["youtube_url"] = msg
	}
	if msg := socialLinkProblem(in.FacebookURL, "Facebook", facebookDomains); msg != "" {
		errs["facebook_url"] = msg
	}
	if len(in.Variations) == 0 {
		errs["variations"] = "At least one variation required"
	}
	for i, v := range in.Variations {
		if v.Color.IsZero() {
			errs[VariationField("color", i)] = "Color required"
		}
		if strings.TrimSpace(v.SKU) == "" {
			errs[VariationField("sku", i)] = "SKU required"
		}
		if v.StockQuantity < 0 {
			errs[VariationField("stock", i)] = "Stock required"
		}
		if !finite(v.AdditionalPrice) {
			errs[VariationField("additional_price", i)] = "Additional price must be a number"
		}
	}
	return errs
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// positivePrice rejects NaN and infinities, which cannot be encoded as JSON.
func positivePrice(p float64) bool { return finite(p) && p > 0 }

// VariationField returns the error key for a variation column.
func VariationField(field string, index int) string {
	return fmt.Sprintf("variation_%s_%d", field, index)
}

// socialLinkProblem checks an optional link points at one of the allowed registrable domains.
func socialLinkProblem(raw, site string, domains []string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return "Must be a valid http(s) URL"
	}
	etld1, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(u.Hostname()))
	if err != nil {
		return "Must be a valid http(s) URL"
	}
	for _, d := range domains {
		if etld1 == d {
			return ""
		}
	}
	return "Must be a " + site + " link"
}

// ProductFilter filters a product list.
type ProductFilter struct {
	ListOptions
	Category        ID
	Brand           ID
	OwnershipStatus OwnershipStatus
	IsActive        *bool
}

// Values implements Querier.
func (f ProductFilter) Values() url.Values {
	v := f.ListOptions.Values()
	setIf(v, "category", f.Category.String())
	setIf(v, "brand", f.Brand.String())
	setIf(v, "ownership_status", string(f.OwnershipStatus))
	if f.IsActive != nil {
		v.Set("is_active", strconv.FormatBool(*f.IsActive))
	}
	return v
}
