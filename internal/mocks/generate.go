// Package mocks provides mock implementations of the ports for testing the admin panel.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	suppliers := mocks.NewMockResourceAPI[model.Supplier, model.SupplierInput](ctrl)
//	suppliers.EXPECT().Delete(gomock.Any(), gomock.Any(), model.ID("42")).Return(nil)
package mocks

// Generate mocks for the session ports in internal/ports/auth.go:
// MockStorageArea (Get, Set, Delete), MockCredentials (Token, HandleUnauthorized),
// MockAuthAPI (Login, Me, Logout)
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_mock.go -source=../ports/auth.go

// Generate mocks for the catalog ports in internal/ports/catalog.go:
// MockResourceAPI (List, Get, Create, Update, Delete), MockAttributeAPI (Collection)
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=catalog_mock.go -source=../ports/catalog.go
