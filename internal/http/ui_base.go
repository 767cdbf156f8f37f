package httpx

import (
	"context"
	"errors"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/http/ui/viewmodel"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/service"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/session"
)

const errMsgFixBelow = "Please fix the errors below."

// AttributesService is the slice of service.AttributeService the UI needs.
type AttributesService interface {
	List(ctx context.Context, creds ports.Credentials, t model.AttributeType, f model.AttributeFilter) (model.ListResult[model.Attribute], error)
	Get(ctx context.Context, creds ports.Credentials, t model.AttributeType, id model.ID) (model.Attribute, error)
	Create(ctx context.Context, creds ports.Credentials, t model.AttributeType, in model.AttributeInput) (model.Attribute, error)
	Update(ctx context.Context, creds ports.Credentials, t model.AttributeType, id model.ID, in model.AttributeInput) (model.Attribute, error)
	Delete(ctx context.Context, creds ports.Credentials, t model.AttributeType, id model.ID) error
}

// SuppliersService is the slice of service.SupplierService the UI needs.
type SuppliersService interface {
	List(ctx context.Context, creds ports.Credentials, f model.SupplierFilter) (model.ListResult[model.Supplier], error)
	Get(ctx context.Context, creds ports.Credentials, id model.ID) (model.Supplier, error)
	Create(ctx context.Context, creds ports.Credentials, in model.SupplierInput) (model.Supplier, error)
	Update(ctx context.Context, creds ports.Credentials, id model.ID, in model.SupplierInput) (model.Supplier, error)
	Delete(ctx context.Context, creds ports.Credentials, id model.ID) error
}

// ProductsService is the slice of service.ProductService the UI needs.
type ProductsService interface {
	List(ctx context.Context, creds ports.Credentials, f model.ProductFilter) (model.ListResult[model.Product], error)
	Get(ctx context.Context, creds ports.Credentials, id model.ID) (model.Product, error)
	Create(ctx context.Context, creds ports.Credentials, in model.ProductInput) (model.Product, error)
	Update(ctx context.Context, creds ports.Credentials, id model.ID, in model.ProductInput) (model.Product, error)
	Delete(ctx context.Context, creds ports.Credentials, id model.ID) error
	FormOptions(ctx context.Context, creds ports.Credentials) (service.FormOptions, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ AttributesService = (*service.AttributeService)(nil)
	_ SuppliersService  = (*service.SupplierService)(nil)
	_ ProductsService   = (*service.ProductService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T          *TemplateRenderer
	Attributes AttributesService
	Suppliers  SuppliersService
	Products   ProductsService
	IsDev      bool // Development mode flag for enhanced error reporting
	Logger     *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// sessionFrom returns the session RequireSession attached to r.
func sessionFrom(r *http.Request) *session.Store {
	st, _ := GetSessionFromContext(r.Context())
	return st
}

// creds returns the credentials API calls for r are made with.
func creds(r *http.Request) ports.Credentials {
	if st := sessionFrom(r); st != nil {
		return st
	}
	return anonymous{}
}

// anonymous is used when a handler runs outside RequireSession; every call it makes is
// unauthenticated.
type anonymous struct{}

func (anonymous) Token(context.Context) string { return "" }
func (anonymous) HandleUnauthorized(string)    {}

// parseListOptions parses q, page and page_size with the panel's defaults.
func parseListOptions(q url.Values) model.ListOptions {
	opts := model.ListOptions{Query: q.Get("q")}
	if p, err := strconv.Atoi(q.Get("page")); err == nil {
		opts.Page = p
	}
	if s, err := strconv.Atoi(q.Get("page_size")); err == nil {
		opts.PageSize = s
	}
	return opts.Normalize()
}

// parseSeq reads the browser-chosen request sequence number for a list view.
func parseSeq(q url.Values) (uint64, bool) {
	raw := strings.TrimSpace(q.Get("seq"))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// pageOpts represents pagination options for list views.
type pageOpts struct {
	Page     int
	PageSize int
}

// transientParams are request-scoped and never copied into pager links.
var transientParams = map[string]bool{"seq": true, "flash": true} //nolint:gochecknoglobals // read-only

// buildPageURL returns a URL with page and page_size set, preserving other query params.
// Empty values and htmx/transient params are dropped.
func buildPageURL(basePath string, q url.Values, p pageOpts) string {
	qq := make(url.Values, len(q))
	for k, v := range q {
		if strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") || transientParams[k] {
			continue
		}
		tmp := make([]string, 0, len(v))
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				tmp = append(tmp, s)
			}
		}
		if len(tmp) > 0 {
			qq[k] = tmp
		}
	}
	qq.Set("page", strconv.Itoa(p.Page))
	qq.Set("page_size", strconv.Itoa(p.PageSize))
	return basePath + "?" + qq.Encode()
}

// withFlash appends a flash key understood by the layout to a redirect target.
func withFlash(target, flash string) string {
	if flash == "" {
		return target
	}
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + "flash=" + url.QueryEscape(flash)
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
		Flash:       flashMessages[r.URL.Query().Get("flash")],
	}

	if st := sessionFrom(r); st != nil {
		state := st.State()
		if state.Authenticated() {
			layout.IsAuthenticated = true
			layout.User = &viewmodel.User{
				Username:    state.User.Username,
				DisplayName: state.User.DisplayName(),
				Initial:     state.User.Initial(),
				ImageURL:    state.User.ImageURL,
			}
		}
	}
	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"CurrentPath":     r.URL.Path,
	}
	if layout.CSRFToken != "" {
		data["CSRFToken"] = layout.CSRFToken
	}
	if layout.User != nil {
		data["User"] = layout.User
	}
	if layout.Flash != "" {
		data["Flash"] = layout.Flash
	}
	return data
}

// renderDashboardPage renders a page inside the layout, or only its content for htmx requests.
func (h *UIHandlers) renderDashboardPage(w http.ResponseWriter, r *http.Request, data any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	layout := extractLayoutInfo(data)

	// A <title> element lets htmx update document.title on partial swaps.
	if _, err := w.Write([]byte(`<title>` + html.EscapeString(layout.Title) + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}
	safeTitle := html.EscapeString(layout.PageTitle)
	if _, err := w.Write([]byte(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + safeTitle + `</h1>`)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.ExecuteTemplate(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
	}
}

// renderFragment renders a single named template, used for list-region refreshes.
func (h *UIHandlers) renderFragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.T.Render(w, name, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "fragment "+name)
	}
}

func extractLayoutInfo(data any) viewmodel.Layout {
	if provider, ok := data.(viewmodel.LayoutProvider); ok {
		if l := provider.LayoutData(); l != nil {
			return *l
		}
	}
	m, ok := data.(map[string]any)
	if !ok {
		return viewmodel.Layout{}
	}
	layout := viewmodel.Layout{}
	layout.Title, _ = m["Title"].(string)
	layout.PageTitle, _ = m["PageTitle"].(string)
	layout.CurrentPage, _ = m["CurrentPage"].(string)
	return layout
}

// handleServiceError answers a failed service call. An expired authorization sends the
// browser to the login page; everything else becomes an error toast for htmx requests or
// an error page otherwise.
func (h *UIHandlers) handleServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case apperrors.IsAuthorizationExpired(err):
		redirectToLogin(w, r)
		return
	case apperrors.IsCanceled(err) || errors.Is(err, context.Canceled):
		h.logger().DebugContext(r.Context(), "request canceled", "path", r.URL.Path)
		return
	}

	msg := apperrors.UserMessage(err, fallback)
	h.logger().WarnContext(r.Context(), "service call failed",
		"path", r.URL.Path,
		"code", string(apperrors.GetCode(err)),
		"error", err,
	)

	if IsHTMX(r) {
		HTMX(w).Toast(msg, "error").Discard()
		return
	}
	status := http.StatusBadGateway
	if apperrors.IsNotFound(err) {
		status = http.StatusNotFound
	}
	h.renderErrorPage(w, r, status, msg)
}

// NotFound renders the 404 page.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderErrorPage(w, r, http.StatusNotFound, "The page you are looking for does not exist.")
}

func (h *UIHandlers) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	data := NewTemplateData(r, PageMeta{Title: "BagBank Admin", PageTitle: http.StatusText(status)}).
		With("StatusCode", status).
		WithError(msg).
		Build()

	var buf strings.Builder
	if err := h.T.ExecuteTemplate(&buf, "error-layout", data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "error page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(buf.String())); err != nil {
		h.logger().Error("failed to write error page", "error", err)
	}
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		if _, writeErr := w.Write([]byte(`<div class="template-error"><h2>Template Rendering Error</h2>` +
			`<p><strong>Context:</strong> ` + html.EscapeString(context) + `</p>` +
			`<p><strong>Path:</strong> ` + html.EscapeString(r.URL.Path) + `</p>` +
			`<pre>` + html.EscapeString(err.Error()) + `</pre></div>`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// redirect navigates the browser to target, through Hx-Redirect for htmx requests.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
