package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/http/ui/viewmodel"
)

func TestNewTemplateData(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/suppliers?flash=deleted", nil)
	data := NewTemplateData(r, PageMeta{Title: "Suppliers - BagBank Admin", PageTitle: "Suppliers", CurrentPage: PageSuppliers}).Build()

	if data["Title"] != "Suppliers - BagBank Admin" {
		t.Errorf("Title = %v", data["Title"])
	}
	if data["CurrentPage"] != PageSuppliers {
		t.Errorf("CurrentPage = %v", data["CurrentPage"])
	}
	if data["CurrentPath"] != "/suppliers" {
		t.Errorf("CurrentPath = %v", data["CurrentPath"])
	}
	if data["IsAuthenticated"] != false {
		t.Errorf("IsAuthenticated = %v, want false", data["IsAuthenticated"])
	}
	if data["Flash"] != ToastDeleted {
		t.Errorf("Flash = %v, want %q", data["Flash"], ToastDeleted)
	}
	if _, ok := data["User"]; ok {
		t.Error("User should be absent without a session")
	}
}

func TestNewTemplateData_SignedIn(t *testing.T) {
	st := newTestSession(t, true)
	r := withSession(httptest.NewRequest(http.MethodGet, "/dashboard", nil), st)

	data := NewTemplateData(r, PageMeta{CurrentPage: PageDashboard}).Build()

	if data["IsAuthenticated"] != true {
		t.Fatalf("IsAuthenticated = %v, want true", data["IsAuthenticated"])
	}
	u, ok := data["User"].(*viewmodel.User)
	if !ok {
		t.Fatalf("User = %T", data["User"])
	}
	if u.Username != "admin" || u.DisplayName != "Admin User" || u.Initial != "A" {
		t.Errorf("unexpected user %+v", u)
	}
}

func TestTemplateDataBuilder_WithPagination(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/products?q=tote&page=2&seq=5&brand=&flash=created", nil)
	data := NewTemplateData(r, PageMeta{}).
		WithPagination(PaginationData{Page: 2, PageSize: 20, Total: 45, BasePath: productsPath}).
		Build()

	p, ok := data["Pagination"].(viewmodel.Pagination)
	if !ok {
		t.Fatalf("Pagination = %T", data["Pagination"])
	}
	if p.PrevURL != "/products?page=1&page_size=20&q=tote" {
		t.Errorf("PrevURL = %q", p.PrevURL)
	}
	if p.NextURL != "/products?page=3&page_size=20&q=tote" {
		t.Errorf("NextURL = %q", p.NextURL)
	}
	if p.Label() != "Page 2 of 3 (45 items)" {
		t.Errorf("Label = %q", p.Label())
	}
}

func TestTemplateDataBuilder_Errors(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	data := NewTemplateData(r, PageMeta{}).
		WithError("Failed to load").
		WithFieldErrors(nil).
		With("Extra", 1).
		Build()

	if data["Error"] != true || data["ErrorMessage"] != "Failed to load" {
		t.Errorf("error fields = %v / %v", data["Error"], data["ErrorMessage"])
	}
	if _, ok := data["Errors"]; ok {
		t.Error("empty field errors should not be set")
	}
	if data["Extra"] != 1 {
		t.Errorf("Extra = %v", data["Extra"])
	}
}

func TestWithFlash(t *testing.T) {
	if got := withFlash("/suppliers", "created"); got != "/suppliers?flash=created" {
		t.Errorf("got %q", got)
	}
	if got := withFlash("/products?page=2", "deleted"); got != "/products?page=2&flash=deleted" {
		t.Errorf("got %q", got)
	}
	if got := withFlash("/x", ""); got != "/x" {
		t.Errorf("got %q", got)
	}
}

func TestExtractLayoutInfo(t *testing.T) {
	l := extractLayoutInfo(map[string]any{"Title": "T", "PageTitle": "P", "CurrentPage": PageProducts})
	if l.Title != "T" || l.PageTitle != "P" || l.CurrentPage != PageProducts {
		t.Errorf("unexpected layout %+v", l)
	}
	if l := extractLayoutInfo("nope"); !(l == viewmodel.Layout{}) {
		t.Errorf("expected empty layout, got %+v", l)
	}
}
