package httpx

import (
	"context"
	"net/http"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/http/validation"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

const maxNameLen = 255

func attributesPath(t model.AttributeType) string { return "/attributes/" + string(t) }

// AttributeList lists one attribute collection.
// GET /attributes/{type}.
func (h *UIHandlers) AttributeList(w http.ResponseWriter, r *http.Request) {
	t, ok := attributeTypeParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	h.listAttributes(w, r, t)
}

func (h *UIHandlers) listAttributes(w http.ResponseWriter, r *http.Request, t model.AttributeType) {
	HandleList(ListHandlerOpts[model.Attribute, model.AttributeFilter]{
		Handler: h,
		W:       w,
		R:       r,
		View:    attributeView(t),
		Parse:   parseAttributeFilter,
		Load: func(ctx context.Context, c ports.Credentials, f model.AttributeFilter) (model.ListResult[model.Attribute], error) {
			return h.Attributes.List(ctx, c, t, f)
		},
		Extra:    map[string]any{"Type": t},
		BasePath: attributesPath(t),
		PageMeta: PageMeta{
			Title:       t.Label() + " - BagBank Admin",
			PageTitle:   t.Label(),
			CurrentPage: PageAttributes,
		},
		ItemsKey:     "Attributes",
		Fragment:     "attributes-list",
		ErrorMessage: "Failed to load " + t.Label(),
	})
}

// AttributeNew renders an empty form.
// GET /attributes/{type}/new.
func (h *UIHandlers) AttributeNew(w http.ResponseWriter, r *http.Request) {
	t, ok := attributeTypeParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	h.renderAttributeForm(w, r, attributeFormData(r, t, FormModeCreate, "", model.NewAttributeInput()))
}

// AttributeEdit renders the form for an existing entry.
// GET /attributes/{type}/{id}/edit.
func (h *UIHandlers) AttributeEdit(w http.ResponseWriter, r *http.Request) {
	t, okType := attributeTypeParam(r)
	id, okID := idParam(r)
	if !okType || !okID {
		h.NotFound(w, r)
		return
	}

	a, err := h.Attributes.Get(r.Context(), creds(r), t, id)
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to load "+t.Singular())
		return
	}
	h.renderAttributeForm(w, r, attributeFormData(r, t, FormModeEdit, id, model.AttributeInputFrom(a)))
}

// AttributeCreate handles POST /attributes/{type}.
func (h *UIHandlers) AttributeCreate(w http.ResponseWriter, r *http.Request) {
	t, ok := attributeTypeParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	h.submitAttribute(w, r, t, FormModeCreate, "")
}

// AttributeUpdate handles POST /attributes/{type}/{id}.
func (h *UIHandlers) AttributeUpdate(w http.ResponseWriter, r *http.Request) {
	t, okType := attributeTypeParam(r)
	id, okID := idParam(r)
	if !okType || !okID {
		h.NotFound(w, r)
		return
	}
	h.submitAttribute(w, r, t, FormModeEdit, id)
}

func (h *UIHandlers) submitAttribute(w http.ResponseWriter, r *http.Request, t model.AttributeType, mode FormMode, id model.ID) {
	meta := attributeFormMeta(t, mode)
	HandleForm(FormHandlerOpts[model.AttributeInput]{
		W:      w,
		R:      r,
		Mode:   mode,
		Parser: parseAttributeForm(t),
		Save: func(ctx context.Context, c ports.Credentials, in model.AttributeInput) error {
			var err error
			if mode == FormModeEdit {
				_, err = h.Attributes.Update(ctx, c, t, id, in)
			} else {
				_, err = h.Attributes.Create(ctx, c, t, in)
			}
			return err
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			h.renderAttributeForm(w, r, data)
		},
		SuccessURL: attributesPath(t),
		PageMeta:   meta,
		ExtraData:  attributeFormExtras(t, mode, id),
	})
}

// AttributeDelete handles DELETE /attributes/{type}/{id}.
func (h *UIHandlers) AttributeDelete(w http.ResponseWriter, r *http.Request) {
	t, okType := attributeTypeParam(r)
	id, okID := idParam(r)
	if !okType || !okID {
		h.NotFound(w, r)
		return
	}
	h.handleDelete(w, r, deleteOpts{
		Delete: func(ctx context.Context, c ports.Credentials) error {
			return h.Attributes.Delete(ctx, c, t, id)
		},
		Relist:  func(w http.ResponseWriter, r *http.Request) { h.listAttributes(w, r, t) },
		ListURL: attributesPath(t),
	})
}

func parseAttributeForm(t model.AttributeType) FormParser[model.AttributeInput] {
	return func(r *http.Request) (model.AttributeInput, map[string]string) {
		f := validation.NewForm(r.PostForm)
		in := model.AttributeInput{
			Name:     f.Text("name", validation.MaxLen("Name", maxNameLen)),
			IsActive: f.Bool("is_active"),
		}
		if t.HasSwatch() {
			in.Hex = f.Text("hex", validation.Pattern("Hex", validation.HexColor))
			in.RGB = f.Text("rgb", validation.Pattern("RGB", validation.RGBTriplet))
		}
		return in, f.Merge(in.Validate()).Errors()
	}
}

func attributeFormMeta(t model.AttributeType, mode FormMode) PageMeta {
	title := "New " + t.Singular()
	if mode == FormModeEdit {
		title = "Edit " + t.Singular()
	}
	return PageMeta{Title: title + " - BagBank Admin", PageTitle: title, CurrentPage: PageAttributeForm}
}

func attributeFormExtras(t model.AttributeType, mode FormMode, id model.ID) map[string]any {
	return map[string]any{
		"Type":     t,
		"ID":       id,
		"Action":   editTarget(mode, attributesPath(t), id.String()),
		"ListPath": attributesPath(t),
	}
}

func attributeFormData(r *http.Request, t model.AttributeType, mode FormMode, id model.ID, in model.AttributeInput) map[string]any {
	b := NewTemplateData(r, attributeFormMeta(t, mode)).
		With("Mode", mode).
		With("Form", in)
	for k, v := range attributeFormExtras(t, mode, id) {
		b.With(k, v)
	}
	return b.Build()
}

func (h *UIHandlers) renderAttributeForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	h.renderDashboardPage(w, r, data)
}
