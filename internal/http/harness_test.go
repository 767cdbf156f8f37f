package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/adapters/memstore"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	mockauth "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/mocks/auth"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/mocks/catalog"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/service"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/session"
)

const testCSRFToken = "test-csrf-token"

// testEnv is the full router over in-memory storage and a fake BagBank API.
type testEnv struct {
	t *testing.T

	Router     http.Handler
	AuthAPI    *mockauth.FakeAuthAPI
	Sessions   *session.Manager
	Durable    *memstore.Area
	Ephemeral  *memstore.Area
	Attributes *catalog.Attributes
	SupplierDB *catalog.MemoryResource[model.Supplier, model.SupplierInput]
	ProductDB  *catalog.MemoryResource[model.Product, model.ProductInput]

	sid string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	SkipIfNoTemplates(t)

	env := &testEnv{
		t:          t,
		AuthAPI:    mockauth.NewFakeAuthAPI(),
		Durable:    memstore.New(),
		Ephemeral:  memstore.New(),
		Attributes: catalog.NewAttributeCatalog(),
		SupplierDB: catalog.NewSuppliers(),
		ProductDB:  catalog.NewProducts(),
	}

	m, err := session.NewManager(session.ManagerOptions{
		Auth:         env.AuthAPI,
		Durable:      env.Durable,
		Ephemeral:    env.Ephemeral,
		TokenKey:     "bagbank_token",
		UserKey:      "bagbank_user",
		DurableTTL:   time.Hour,
		EphemeralTTL: time.Hour,
		Logger:       DiscardLogger(),
	})
	require.NoError(t, err)
	env.Sessions = m

	logger := DiscardLogger()
	router, err := NewRouter(RouterServices{
		Auth:       service.NewAuthService(service.AuthServiceOptions{Sessions: m, Logger: logger}),
		Attributes: service.NewAttributeService(service.AttributeServiceOptions{API: env.Attributes, Logger: logger}),
		Suppliers:  service.NewSupplierService(service.SupplierServiceOptions{API: env.SupplierDB, Logger: logger}),
		Products: service.NewProductService(service.ProductServiceOptions{
			API:     env.ProductDB,
			Lookups: service.ProductLookups{Attributes: env.Attributes, Suppliers: env.SupplierDB},
			Logger:  logger,
		}),
		DurableTTL: time.Hour,
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Logger:     logger,
	})
	require.NoError(t, err)
	env.Router = router
	return env
}

// request describes one call made through the router.
type request struct {
	Method string
	Path   string
	Form   url.Values
	HTMX   bool
	Target string
}

// do runs req with the env's session and CSRF cookies. Set-Cookie on the response
// updates the session id the env sends next.
func (e *testEnv) do(req request) *httptest.ResponseRecorder {
	e.t.Helper()
	if req.Method == "" {
		req.Method = http.MethodGet
	}

	var r *http.Request
	if req.Form != nil {
		r = httptest.NewRequest(req.Method, req.Path, strings.NewReader(req.Form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(req.Method, req.Path, nil)
	}
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		r.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	}
	if e.sid != "" {
		r.AddCookie(&http.Cookie{Name: DefaultSessionCookieName, Value: e.sid})
	}
	if req.HTMX {
		r.Header.Set("Hx-Request", "true")
	}
	if req.Target != "" {
		r.Header.Set("Hx-Target", req.Target)
	}

	rec := httptest.NewRecorder()
	e.Router.ServeHTTP(rec, r)

	for _, c := range rec.Result().Cookies() {
		if c.Name != DefaultSessionCookieName {
			continue
		}
		if c.MaxAge < 0 {
			e.sid = ""
		} else {
			e.sid = c.Value
		}
	}
	return rec
}

// login signs in as the fake API's operator.
func (e *testEnv) login(remember bool) {
	e.t.Helper()
	form := url.Values{"username": {"admin"}, "password": {"secret"}}
	if remember {
		form.Set("remember", "true")
	}
	rec := e.do(request{Method: http.MethodPost, Path: "/login", Form: form})
	require.Equal(e.t, http.StatusSeeOther, rec.Code, rec.Body.String())
	require.NotEmpty(e.t, e.sid)
}

// newTestSession returns a ready session, signed in as the fake operator when signedIn.
func newTestSession(t *testing.T, signedIn bool) *session.Store {
	t.Helper()
	st, err := session.NewStore(session.Options{
		ID:        "00000000-0000-0000-0000-000000000001",
		Auth:      mockauth.NewFakeAuthAPI(),
		Durable:   memstore.New(),
		Ephemeral: memstore.New(),
		TokenKey:  "bagbank_token",
		UserKey:   "bagbank_user",
		Logger:    DiscardLogger(),
	})
	require.NoError(t, err)
	st.Init(context.Background())
	if signedIn {
		_, err = st.Login(context.Background(), "admin", "secret", false)
		require.NoError(t, err)
	}
	return st
}

// withSession attaches st to r the way RequireSession does.
func withSession(r *http.Request, st *session.Store) *http.Request {
	return r.WithContext(SetSessionInContext(r.Context(), st))
}
