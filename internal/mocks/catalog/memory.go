// Package catalog contains an in-memory stand-in for the BagBank resource endpoints.
package catalog

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

// MemoryResource keeps records in a map and answers List with an {items,total} page.
// The q parameter matches the record name case-insensitively.
type MemoryResource[T any, In any] struct {
	// Build turns a payload into a stored record.
	Build func(id model.ID, in In) T
	// IDOf and NameOf read a record's id and name.
	IDOf   func(T) model.ID
	NameOf func(T) string

	// Err, when set, is returned by every call.
	Err error

	mu     sync.Mutex
	nextID int
	items  map[model.ID]T
	calls  []string
}

// NewMemoryResource returns an empty resource.
func NewMemoryResource[T any, In any](build func(model.ID, In) T, idOf func(T) model.ID, nameOf func(T) string) *MemoryResource[T, In] {
	return &MemoryResource[T, In]{
		Build:  build,
		IDOf:   idOf,
		NameOf: nameOf,
		items:  make(map[model.ID]T),
	}
}

var _ ports.ResourceAPI[model.Supplier, model.SupplierInput] = (*MemoryResource[model.Supplier, model.SupplierInput])(nil)

// Seed stores records as-is.
func (m *MemoryResource[T, In]) Seed(items ...T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range items {
		id := m.IDOf(it)
		m.items[id] = it
		if n, err := strconv.Atoi(id.String()); err == nil && n > m.nextID {
			m.nextID = n
		}
	}
}

// Calls lists the operations performed, e.g. "list", "delete 42".
func (m *MemoryResource[T, In]) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MemoryResource[T, In]) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}

func (m *MemoryResource[T, In]) List(_ context.Context, _ ports.Credentials, query url.Values) (model.ListResult[T], error) {
	m.record("list")
	if m.Err != nil {
		return model.ListResult[T]{}, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	q := strings.ToLower(query.Get("q"))
	all := make([]T, 0, len(m.items))
	for _, it := range m.items {
		if q == "" || strings.Contains(strings.ToLower(m.NameOf(it)), q) {
			all = append(all, it)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		a, _ := strconv.Atoi(m.IDOf(all[i]).String())
		b, _ := strconv.Atoi(m.IDOf(all[j]).String())
		return a < b
	})

	page, _ := strconv.Atoi(query.Get("page"))
	size, _ := strconv.Atoi(query.Get("page_size"))
	opts := model.ListOptions{Page: page, PageSize: size}.Normalize()
	start := (opts.Page - 1) * opts.PageSize
	if start > len(all) {
		start = len(all)
	}
	end := min(start+opts.PageSize, len(all))
	return model.ListResult[T]{Items: all[start:end], Total: len(all)}, nil
}

func (m *MemoryResource[T, In]) Get(_ context.Context, _ ports.Credentials, id model.ID) (T, error) {
	m.record("get " + id.String())
	var zero T
	if m.Err != nil {
		return zero, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return zero, apperrors.NotFound("Resource not found")
	}
	return it, nil
}

func (m *MemoryResource[T, In]) Create(_ context.Context, _ ports.Credentials, in In) (T, error) {
	m.record("create")
	var zero T
	if m.Err != nil {
		return zero, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := model.ID(strconv.Itoa(m.nextID))
	it := m.Build(id, in)
	m.items[id] = it
	return it, nil
}

func (m *MemoryResource[T, In]) Update(_ context.Context, _ ports.Credentials, id model.ID, in In) (T, error) {
	m.record("update " + id.String())
	var zero T
	if m.Err != nil {
		return zero, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return zero, apperrors.NotFound("Resource not found")
	}
	it := m.Build(id, in)
	m.items[id] = it
	return it, nil
}

func (m *MemoryResource[T, In]) Delete(_ context.Context, _ ports.Credentials, id model.ID) error {
	m.record("delete " + id.String())
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return apperrors.NotFound("Resource not found")
	}
	delete(m.items, id)
	return nil
}

// NewSuppliers returns an in-memory supplier endpoint.
func NewSuppliers() *MemoryResource[model.Supplier, model.SupplierInput] {
	return NewMemoryResource(
		func(id model.ID, in model.SupplierInput) model.Supplier {
			return model.Supplier{
				ID: id, Name: in.Name, SupplierType: in.SupplierType, ContactPerson: in.ContactPerson,
				Email: in.Email, Phone: in.Phone, Address: in.Address, IsActive: in.IsActive,
			}
		},
		func(s model.Supplier) model.ID { return s.ID },
		func(s model.Supplier) string { return s.Name },
	)
}

// NewAttributes returns an in-memory attribute collection.
func NewAttributes() *MemoryResource[model.Attribute, model.AttributeInput] {
	return NewMemoryResource(
		func(id model.ID, in model.AttributeInput) model.Attribute {
			return model.Attribute{ID: id, Name: in.Name, IsActive: in.IsActive, Hex: in.Hex, RGB: in.RGB}
		},
		func(a model.Attribute) model.ID { return a.ID },
		func(a model.Attribute) string { return a.Name },
	)
}

// NewProducts returns an in-memory product endpoint. References are stored by id only.
func NewProducts() *MemoryResource[model.Product, model.ProductInput] {
	ref := func(id model.ID) *model.Ref {
		if id.IsZero() {
			return nil
		}
		return &model.Ref{ID: id}
	}
	return NewMemoryResource(
		func(id model.ID, in model.ProductInput) model.Product {
			p := model.Product{
				ID: id, Name: in.Name,
				Category: ref(in.Category), Material: ref(in.Material), Brand: ref(in.Brand),
				Style: ref(in.Style), Country: ref(in.Country), Supplier: ref(in.Supplier),
				OwnershipStatus: in.OwnershipStatus, PurchasePrice: in.PurchasePrice, SellingPrice: in.SellingPrice,
				Description: in.Description, Keywords: in.Keywords,
				YouTubeURL: in.YouTubeURL, FacebookURL: in.FacebookURL, IsActive: in.IsActive,
			}
			for _, v := range in.Variations {
				p.Variations = append(p.Variations, model.Variation{
					Color: ref(v.Color), SKU: v.SKU, Barcode: v.Barcode,
					AdditionalPrice: v.AdditionalPrice, StockQuantity: v.StockQuantity,
				})
			}
			return p
		},
		func(p model.Product) model.ID { return p.ID },
		func(p model.Product) string { return p.Name },
	)
}

// Attributes is an in-memory ports.AttributeAPI with one collection per attribute type.
type Attributes struct {
	collections map[model.AttributeType]*MemoryResource[model.Attribute, model.AttributeInput]
}

var _ ports.AttributeAPI = (*Attributes)(nil)

// NewAttributeCatalog returns empty collections for every attribute type.
func NewAttributeCatalog() *Attributes {
	a := &Attributes{collections: make(map[model.AttributeType]*MemoryResource[model.Attribute, model.AttributeInput])}
	for _, t := range model.AttributeTypes {
		a.collections[t] = NewAttributes()
	}
	return a
}

// Collection implements ports.AttributeAPI.
//
//nolint:ireturn // port accessor
func (a *Attributes) Collection(t model.AttributeType) ports.ResourceAPI[model.Attribute, model.AttributeInput] {
	c, ok := a.collections[t]
	if !ok {
		return nil
	}
	return c
}

// Memory returns the concrete collection for seeding and inspection.
func (a *Attributes) Memory(t model.AttributeType) *MemoryResource[model.Attribute, model.AttributeInput] {
	return a.collections[t]
}
