package httpx

import (
	"net/http"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/http/ui/viewmodel"
)

// PaginationData describes the page a list view is showing.
type PaginationData struct {
	Page     int
	PageSize int
	Total    int
	BasePath string
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{
		data: basePageData(r, meta),
		r:    r,
	}
}

// WithPagination adds a viewmodel.Pagination under "Pagination" with PrevURL/NextURL
// preserving the current filters.
func (b *TemplateDataBuilder) WithPagination(opts PaginationData) *TemplateDataBuilder {
	p := viewmodel.NewPagination(opts.Page, opts.PageSize, opts.Total)
	q := b.r.URL.Query()
	if p.HasPrev {
		p.PrevURL = buildPageURL(opts.BasePath, q, pageOpts{Page: p.Page - 1, PageSize: p.PageSize})
	}
	if p.HasNext {
		p.NextURL = buildPageURL(opts.BasePath, q, pageOpts{Page: p.Page + 1, PageSize: p.PageSize})
	}
	b.data["Pagination"] = p
	return b
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}
