package httpx

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	bagbank "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       *service.AuthService
	Attributes AttributesService
	Suppliers  SuppliersService
	Products   ProductsService

	// Session cookie settings
	CookieName   string
	CookieDomain string
	DurableTTL   time.Duration

	// Compression is applied to text responses when set.
	Compression *CompressionConfig
	// TemplateFS overrides the template source (tests).
	TemplateFS fs.FS

	IsDev  bool         // Development mode flag for template reloading and disk assets
	Logger *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates the admin panel's handler: public auth routes, the session-gated
// catalog pages and the middleware chain around them.
func NewRouter(services RouterServices) (http.Handler, error) {
	if services.Auth == nil {
		return nil, errors.New("auth service is required")
	}
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS(services),
		DevMode:    services.IsDev,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create template renderer: %w", err)
	}

	cookie := SessionCookie{
		Name:       services.CookieName,
		Domain:     services.CookieDomain,
		DurableTTL: services.DurableTTL,
	}
	ui := &UIHandlers{
		T:          tr,
		Attributes: services.Attributes,
		Suppliers:  services.Suppliers,
		Products:   services.Products,
		IsDev:      services.IsDev,
		Logger:     logger,
	}
	auth := &AuthHandlers{Svc: services.Auth, T: tr, Cookie: cookie, Logger: logger}
	events := &SessionEventHandlers{Sessions: services.Auth, Cookie: cookie, Logger: logger}

	mux := http.NewServeMux()
	registerAuthRoutes(mux, auth, events)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /static/", staticHandler(services.IsDev, logger))

	registerUIRoutes(mux, ui, RequireSession(services.Auth, cookie))
	mux.HandleFunc("/", ui.NotFound)

	var handler http.Handler = CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain})(mux)
	if services.Compression != nil {
		cfg := *services.Compression
		if cfg.Logger == nil {
			cfg.Logger = logger
		}
		handler = Compression(cfg)(handler)
	}
	handler = Logging(logger)(handler)
	return Recover(logger)(handler), nil
}

// templateFS picks the template source: disk in dev mode for reloading, the embedded
// copy otherwise.
//
//nolint:ireturn // fs.FS is the natural return type here.
func templateFS(services RouterServices) fs.FS {
	if services.TemplateFS != nil {
		return services.TemplateFS
	}
	if services.IsDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(bagbank.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// staticHandler serves /static/* from disk in dev mode and from the embedded FS otherwise.
func staticHandler(isDev bool, logger *slog.Logger) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), false)
	}

	staticSub, err := fs.Sub(bagbank.StaticFS, "frontend/static")
	if err != nil {
		logger.Error("failed to create sub-filesystem for static assets", "error", err)
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), false)
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))), true)
}

// staticWithCacheHeaders adds cache headers: embedded assets change only with a release,
// disk assets are edited live.
func staticWithCacheHeaders(handler http.Handler, cacheable bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cacheable {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		handler.ServeHTTP(w, r)
	})
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, events *SessionEventHandlers) {
	mux.HandleFunc("GET /login", h.LoginPage)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("POST /logout", h.Logout)
	mux.HandleFunc("GET /session/status", h.Status)
	mux.HandleFunc("GET /session/events", events.Stream)
}

// registerUIRoutes wires every page that needs a signed-in operator.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, wrap func(http.Handler) http.Handler) {
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, wrap(fn))
	}

	mux.Handle("GET /{$}", http.RedirectHandler("/dashboard", http.StatusSeeOther))
	handle("GET /dashboard", h.Dashboard)

	registerCRUD(handle, crudRoutes{
		Base:   "/attributes/{type}",
		List:   h.AttributeList,
		New:    h.AttributeNew,
		Edit:   h.AttributeEdit,
		Create: h.AttributeCreate,
		Update: h.AttributeUpdate,
		Delete: h.AttributeDelete,
	})
	registerCRUD(handle, crudRoutes{
		Base:   suppliersPath,
		List:   h.SupplierList,
		New:    h.SupplierNew,
		Edit:   h.SupplierEdit,
		Create: h.SupplierCreate,
		Update: h.SupplierUpdate,
		Delete: h.SupplierDelete,
	})
	registerCRUD(handle, crudRoutes{
		Base:   productsPath,
		List:   h.ProductList,
		New:    h.ProductNew,
		Edit:   h.ProductEdit,
		Create: h.ProductCreate,
		Update: h.ProductUpdate,
		Delete: h.ProductDelete,
	})
	handle("GET "+productsPath+"/{id}", h.ProductDetails)
}

// crudRoutes are the handlers of one resource's list, form and delete routes.
type crudRoutes struct {
	Base   string
	List   http.HandlerFunc
	New    http.HandlerFunc
	Edit   http.HandlerFunc
	Create http.HandlerFunc
	Update http.HandlerFunc
	Delete http.HandlerFunc
}

func registerCRUD(handle func(string, http.HandlerFunc), cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.List == nil ||
		cfg.New == nil ||
		cfg.Edit == nil ||
		cfg.Create == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	handle("GET "+cfg.Base, cfg.List)
	handle("GET "+cfg.Base+"/new", cfg.New)
	handle("GET "+cfg.Base+"/{id}/edit", cfg.Edit)
	handle("POST "+cfg.Base, cfg.Create)
	handle("POST "+cfg.Base+"/{id}", cfg.Update)
	handle("DELETE "+cfg.Base+"/{id}", cfg.Delete)
}
