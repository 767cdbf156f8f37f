package httpx

import (
	"context"
	"net/http"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/http/validation"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

const suppliersPath = "/suppliers"

// SupplierList lists suppliers filtered by search text and supplier type.
// GET /suppliers.
func (h *UIHandlers) SupplierList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Supplier, model.SupplierFilter]{
		Handler:  h,
		W:        w,
		R:        r,
		View:     viewSuppliers,
		Parse:    parseSupplierFilter,
		Load:     h.Suppliers.List,
		BasePath: suppliersPath,
		PageMeta: PageMeta{
			Title:       "Suppliers - BagBank Admin",
			PageTitle:   "Suppliers",
			CurrentPage: PageSuppliers,
		},
		ItemsKey:     "Suppliers",
		Fragment:     "suppliers-list",
		ErrorMessage: "Failed to load suppliers",
	})
}

// SupplierNew renders an empty form.
// GET /suppliers/new.
func (h *UIHandlers) SupplierNew(w http.ResponseWriter, r *http.Request) {
	h.renderDashboardPage(w, r, supplierFormData(r, FormModeCreate, "", model.NewSupplierInput()))
}

// SupplierEdit renders the form for an existing supplier.
// GET /suppliers/{id}/edit.
func (h *UIHandlers) SupplierEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	s, err := h.Suppliers.Get(r.Context(), creds(r), id)
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to load supplier")
		return
	}
	h.renderDashboardPage(w, r, supplierFormData(r, FormModeEdit, id, model.SupplierInputFrom(s)))
}

// SupplierCreate handles POST /suppliers.
func (h *UIHandlers) SupplierCreate(w http.ResponseWriter, r *http.Request) {
	h.submitSupplier(w, r, FormModeCreate, "")
}

// SupplierUpdate handles POST /suppliers/{id}.
func (h *UIHandlers) SupplierUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	h.submitSupplier(w, r, FormModeEdit, id)
}

func (h *UIHandlers) submitSupplier(w http.ResponseWriter, r *http.Request, mode FormMode, id model.ID) {
	HandleForm(FormHandlerOpts[model.SupplierInput]{
		W:      w,
		R:      r,
		Mode:   mode,
		Parser: parseSupplierForm,
		Save: func(ctx context.Context, c ports.Credentials, in model.SupplierInput) error {
			var err error
			if mode == FormModeEdit {
				_, err = h.Suppliers.Update(ctx, c, id, in)
			} else {
				_, err = h.Suppliers.Create(ctx, c, in)
			}
			return err
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			h.renderDashboardPage(w, r, data)
		},
		SuccessURL: suppliersPath,
		PageMeta:   supplierFormMeta(mode),
		ExtraData:  supplierFormExtras(mode, id),
	})
}

// SupplierDelete handles DELETE /suppliers/{id}.
func (h *UIHandlers) SupplierDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	h.handleDelete(w, r, deleteOpts{
		Delete: func(ctx context.Context, c ports.Credentials) error {
			return h.Suppliers.Delete(ctx, c, id)
		},
		Relist:  h.SupplierList,
		ListURL: suppliersPath,
	})
}

func parseSupplierForm(r *http.Request) (model.SupplierInput, map[string]string) {
	f := validation.NewForm(r.PostForm)
	in := model.SupplierInput{
		Name:          f.Text("name", validation.MaxLen("Name", maxNameLen)),
		SupplierType:  model.SupplierType(f.Text("supplier_type")),
		ContactPerson: f.Text("contact_person", validation.MaxLen("Contact person", maxNameLen)),
		Email:         f.Text("email", validation.MaxLen("Email", maxNameLen)),
		Phone:         f.Text("phone", validation.MaxLen("Phone", 50)),
		Address:       f.Text("address", validation.MaxLen("Address", 1000)),
		IsActive:      f.Bool("is_active"),
	}
	in.Normalize()
	return in, f.Merge(in.Validate()).Errors()
}

func supplierFormMeta(mode FormMode) PageMeta {
	title := "New Supplier"
	if mode == FormModeEdit {
		title = "Edit Supplier"
	}
	return PageMeta{Title: title + " - BagBank Admin", PageTitle: title, CurrentPage: PageSupplierForm}
}

func supplierFormExtras(mode FormMode, id model.ID) map[string]any {
	return map[string]any{
		"ID":            id,
		"Action":        editTarget(mode, suppliersPath, id.String()),
		"ListPath":      suppliersPath,
		"SupplierTypes": model.SupplierTypes,
	}
}

func supplierFormData(r *http.Request, mode FormMode, id model.ID, in model.SupplierInput) map[string]any {
	b := NewTemplateData(r, supplierFormMeta(mode)).
		With("Mode", mode).
		With("Form", in)
	for k, v := range supplierFormExtras(mode, id) {
		b.With(k, v)
	}
	return b.Build()
}
