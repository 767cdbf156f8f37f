package bagbankapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

// Resource is the generic list/get/create/update/delete client for one endpoint.
type Resource[T any, In any] struct {
	c    *Client
	path string
}

// NewResource returns a resource client rooted at path, e.g. "/suppliers".
func NewResource[T any, In any](c *Client, path string) *Resource[T, In] {
	return &Resource[T, In]{c: c, path: path}
}

// Path returns the endpoint the resource talks to.
func (r *Resource[T, In]) Path() string { return r.path }

// List fetches one page. Bare-array and envelope responses are normalized here.
func (r *Resource[T, In]) List(ctx context.Context, creds ports.Credentials, query url.Values) (model.ListResult[T], error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, creds, call{method: http.MethodGet, path: r.path, query: query}, &raw); err != nil {
		return model.ListResult[T]{}, fmt.Errorf("list %s: %w", r.path, err)
	}
	res, err := model.DecodeList[T](raw)
	if err != nil {
		return model.ListResult[T]{}, apperrors.Wrap(err, apperrors.ErrCodeUnavailable,
			"Unexpected response from the BagBank API")
	}
	return res, nil
}

// Get fetches one record.
func (r *Resource[T, In]) Get(ctx context.Context, creds ports.Credentials, id model.ID) (T, error) {
	var out T
	if err := r.c.do(ctx, creds, call{method: http.MethodGet, path: r.itemPath(id)}, &out); err != nil {
		return out, fmt.Errorf("get %s: %w", r.itemPath(id), err)
	}
	return out, nil
}

// Create persists a new record and returns it as stored by the API.
func (r *Resource[T, In]) Create(ctx context.Context, creds ports.Credentials, in In) (T, error) {
	var out T
	if err := r.c.do(ctx, creds, call{method: http.MethodPost, path: r.path, body: in}, &out); err != nil {
		return out, fmt.Errorf("create %s: %w", r.path, err)
	}
	return out, nil
}

// Update replaces the mutable fields of a record.
func (r *Resource[T, In]) Update(ctx context.Context, creds ports.Credentials, id model.ID, in In) (T, error) {
	var out T
	if err := r.c.do(ctx, creds, call{method: http.MethodPut, path: r.itemPath(id), body: in}, &out); err != nil {
		return out, fmt.Errorf("update %s: %w", r.itemPath(id), err)
	}
	return out, nil
}

// Delete removes a record.
func (r *Resource[T, In]) Delete(ctx context.Context, creds ports.Credentials, id model.ID) error {
	if err := r.c.do(ctx, creds, call{method: http.MethodDelete, path: r.itemPath(id)}, nil); err != nil {
		return fmt.Errorf("delete %s: %w", r.itemPath(id), err)
	}
	return nil
}

func (r *Resource[T, In]) itemPath(id model.ID) string {
	return r.path + "/" + escapeID(id)
}

// Catalog groups the resource clients of every resource family.
type Catalog struct {
	attributes map[model.AttributeType]*Resource[model.Attribute, model.AttributeInput]
	suppliers  *Resource[model.Supplier, model.SupplierInput]
	products   *Resource[model.Product, model.ProductInput]
}

var _ ports.AttributeAPI = (*Catalog)(nil)

// NewCatalog wires the resource clients on top of c.
func NewCatalog(c *Client) *Catalog {
	attrs := make(map[model.AttributeType]*Resource[model.Attribute, model.AttributeInput], len(model.AttributeTypes))
	for _, t := range model.AttributeTypes {
		attrs[t] = NewResource[model.Attribute, model.AttributeInput](c, "/attributes/"+string(t))
	}
	return &Catalog{
		attributes: attrs,
		suppliers:  NewResource[model.Supplier, model.SupplierInput](c, "/suppliers"),
		products:   NewResource[model.Product, model.ProductInput](c, "/products"),
	}
}

// Collection returns the client for one attribute collection, or nil for an unknown type.
//
//nolint:ireturn // port accessor
func (c *Catalog) Collection(t model.AttributeType) ports.ResourceAPI[model.Attribute, model.AttributeInput] {
	r, ok := c.attributes[t]
	if !ok {
		return nil
	}
	return r
}

// Suppliers returns the supplier client.
func (c *Catalog) Suppliers() *Resource[model.Supplier, model.SupplierInput] { return c.suppliers }

// Products returns the product client.
func (c *Catalog) Products() *Resource[model.Product, model.ProductInput] { return c.products }
