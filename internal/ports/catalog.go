package ports

import (
	"context"
	"net/url"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
)

// ResourceAPI is the list/get/create/update/delete contract shared by every resource family.
// T is the record type returned by the API and In the payload sent on create and update.
type ResourceAPI[T any, In any] interface {
	List(ctx context.Context, creds Credentials, query url.Values) (model.ListResult[T], error)
	Get(ctx context.Context, creds Credentials, id model.ID) (T, error)
	Create(ctx context.Context, creds Credentials, in In) (T, error)
	Update(ctx context.Context, creds Credentials, id model.ID, in In) (T, error)
	Delete(ctx context.Context, creds Credentials, id model.ID) error
}

// AttributeAPI resolves the resource client for one attribute collection.
type AttributeAPI interface {
	Collection(t model.AttributeType) ResourceAPI[model.Attribute, model.AttributeInput]
}

// SupplierAPI is the supplier resource.
type SupplierAPI = ResourceAPI[model.Supplier, model.SupplierInput]

// ProductAPI is the product resource.
type ProductAPI = ResourceAPI[model.Product, model.ProductInput]
