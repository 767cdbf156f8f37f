package testutil

import (
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
)

// ProductInputBuilder provides a fluent interface for building product payloads for testing.
type ProductInputBuilder struct {
	in model.ProductInput
}

// NewProductInput creates a builder with a payload that passes the advisory checks.
func NewProductInput() *ProductInputBuilder {
	return &ProductInputBuilder{
		in: model.ProductInput{
			Name:            "Weekender Tote",
			Category:        "3",
			Material:        "2",
			Brand:           "7",
			Style:           "4",
			Country:         "6",
			OwnershipStatus: model.OwnershipYes,
			PurchasePrice:   40,
			SellingPrice:    89.5,
			IsActive:        true,
			Variations: []model.VariationInput{
				{Color: "5", SKU: "WT-RED", StockQuantity: 4},
			},
		},
	}
}

// WithName sets the product name.
func (b *ProductInputBuilder) WithName(name string) *ProductInputBuilder {
	b.in.Name = name
	return b
}

// WithPrices sets the purchase and selling prices.
func (b *ProductInputBuilder) WithPrices(purchase, selling float64) *ProductInputBuilder {
	b.in.PurchasePrice = purchase
	b.in.SellingPrice = selling
	return b
}

// WithVariation appends a variation row.
func (b *ProductInputBuilder) WithVariation(color model.ID, sku string, stock int) *ProductInputBuilder {
	b.in.Variations = append(b.in.Variations, model.VariationInput{Color: color, SKU: sku, StockQuantity: stock})
	return b
}

// WithoutVariations drops every variation row.
func (b *ProductInputBuilder) WithoutVariations() *ProductInputBuilder {
	b.in.Variations = nil
	return b
}

// Build returns a copy of the payload.
func (b *ProductInputBuilder) Build() model.ProductInput {
	out := b.in
	out.Variations = append([]model.VariationInput(nil), b.in.Variations...)
	return out
}

// SupplierInputBuilder provides a fluent interface for building supplier payloads for testing.
type SupplierInputBuilder struct {
	in model.SupplierInput
}

// NewSupplierInput creates a builder with an active factory supplier.
func NewSupplierInput() *SupplierInputBuilder {
	return &SupplierInputBuilder{
		in: model.SupplierInput{
			Name:         "Dhaka Leather",
			SupplierType: model.SupplierFactory,
			IsActive:     true,
		},
	}
}

// WithName sets the supplier name.
func (b *SupplierInputBuilder) WithName(name string) *SupplierInputBuilder {
	b.in.Name = name
	return b
}

// WithEmail sets the contact email.
func (b *SupplierInputBuilder) WithEmail(email string) *SupplierInputBuilder {
	b.in.Email = email
	return b
}

// Build returns the payload.
func (b *SupplierInputBuilder) Build() model.SupplierInput {
	return b.in
}
