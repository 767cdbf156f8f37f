package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/service"
)

// fakeAPI is a minimal BagBank API: one operator, two suppliers and one product.
type fakeAPI struct {
	mu        sync.Mutex
	token     string
	suppliers map[string]string
	calls     []string
	queries   map[string]string
}

func newFakeAPI(t *testing.T) (*fakeAPI, string) {
	t.Helper()
	api := &fakeAPI{
		token:     "tok-1",
		suppliers: map[string]string{"41": "Acme Bags", "42": "Dhaka Leather"},
		queries:   map[string]string{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Username, Password string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Username != "admin" || body.Password != "secret" {
			http.Error(w, `{"detail":"Incorrect username or password"}`, http.StatusUnauthorized)
			return
		}
		api.record("login")
		writeBody(w, `{"access_token":"`+api.currentToken()+`","token_type":"bearer"}`)
	})
	mux.HandleFunc("GET /api/v1/auth/me", api.authed(func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, `{"id":"1","username":"admin","full_name":"Admin User","role":"admin"}`)
	}))
	mux.HandleFunc("POST /api/v1/auth/logout", api.authed(func(w http.ResponseWriter, _ *http.Request) {
		api.record("logout")
		w.WriteHeader(http.StatusNoContent)
	}))
	mux.HandleFunc("GET /api/v1/suppliers", api.authed(func(w http.ResponseWriter, r *http.Request) {
		api.record("list suppliers")
		api.mu.Lock()
		items := make([]string, 0, len(api.suppliers))
		for _, id := range []string{"41", "42"} {
			if name, ok := api.suppliers[id]; ok {
				items = append(items, `{"id":`+id+`,"name":"`+name+`","supplier_type":"Factory","is_active":true}`)
			}
		}
		api.queries["suppliers"] = r.URL.RawQuery
		api.mu.Unlock()
		writeBody(w, `{"items":[`+strings.Join(items, ",")+`],"total":`+jsonInt(len(items))+`}`)
	}))
	mux.HandleFunc("GET /api/v1/suppliers/{id}", api.authed(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		name, ok := api.suppliers[r.PathValue("id")]
		api.mu.Unlock()
		if !ok {
			http.Error(w, `{"detail":"Supplier not found"}`, http.StatusNotFound)
			return
		}
		writeBody(w, `{"id":`+r.PathValue("id")+`,"name":"`+name+`","supplier_type":"Factory","is_active":true}`)
	}))
	mux.HandleFunc("DELETE /api/v1/suppliers/{id}", api.authed(func(w http.ResponseWriter, r *http.Request) {
		api.record("delete " + r.PathValue("id"))
		api.mu.Lock()
		delete(api.suppliers, r.PathValue("id"))
		api.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	mux.HandleFunc("GET /api/v1/products", api.authed(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.queries["products"] = r.URL.RawQuery
		api.mu.Unlock()
		writeBody(w, `[{"id":1,"name":"Weekender Tote","category":{"id":3,"name":"Totes"},"selling_price":89.5,"is_active":true,
			"variations":[{"color":{"id":5,"name":"Red"},"sku":"WT-RED","stock_quantity":4},{"color":{"id":6},"sku":"WT-BLK","stock_quantity":2}]}]`)
	}))
	mux.HandleFunc("GET /api/v1/attributes/colors", api.authed(func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, `[{"id":5,"name":"Red","hex":"#ff0000","is_active":true}]`)
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return api, srv.URL + "/api/v1"
}

func (f *fakeAPI) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+f.currentToken() {
			http.Error(w, `{"detail":"Not authenticated"}`, http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) currentToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeAPI) rotateToken(tok string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = tok
}

func (f *fakeAPI) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) query(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[name]
}

func writeBody(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

// harness runs commands against one fake API and one session file, each run being a
// separate process invocation.
type harness struct {
	t           *testing.T
	api         *fakeAPI
	baseURL     string
	sessionFile string
	password    string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	api, baseURL := newFakeAPI(t)
	return &harness{
		t:           t,
		api:         api,
		baseURL:     baseURL,
		sessionFile: filepath.Join(t.TempDir(), "session.json"),
		password:    "secret",
	}
}

func (h *harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd(Options{
		In:           strings.NewReader(stdin),
		Out:          &out,
		Err:          &errOut,
		Environment:  map[string]string{"BAGBANK_API_BASE_URL": h.baseURL},
		ReadPassword: func() ([]byte, error) { return []byte(h.password), nil },
	})
	root.SetArgs(append([]string{"--session-file", h.sessionFile}, args...))
	err := root.Execute()
	return out.String(), err
}

func (h *harness) login() {
	h.t.Helper()
	out, err := h.run("", "login", "-u", "admin")
	require.NoError(h.t, err)
	require.Contains(h.t, out, "Signed in as Admin User")
}

func TestLoginWhoamiLogout(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("admin\n", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Username: ")
	assert.Contains(t, out, "Signed in as Admin User")

	info, err := os.Stat(h.sessionFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A later invocation restores the session from the file.
	out, err = h.run("", "whoami")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "admin") && strings.Contains(out, "durable"), out)

	out, err = h.run("", "whoami", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"full_name": "Admin User"`)

	out, err = h.run("", "logout")
	require.NoError(t, err)
	assert.Equal(t, "Signed out\n", out)
	assert.Equal(t, []string{"login", "logout"}, h.api.seen())

	_, err = h.run("", "whoami")
	assert.ErrorIs(t, err, errNotSignedIn)

	out, err = h.run("", "logout")
	require.NoError(t, err)
	assert.Equal(t, "Not signed in\n", out)
}

func TestLogin_Failures(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		h := newHarness(t)
		h.password = "nope"
		_, err := h.run("", "login", "-u", "admin")
		require.Error(t, err)
		assert.Equal(t, "Invalid username or password.", err.Error())
		_, statErr := os.Stat(h.sessionFile)
		assert.True(t, os.IsNotExist(statErr), "a rejected login writes nothing")
	})

	t.Run("empty password", func(t *testing.T) {
		h := newHarness(t)
		h.password = ""
		_, err := h.run("", "login", "-u", "admin")
		require.Error(t, err)
		assert.Equal(t, service.MsgMissingCredentials, err.Error())
		assert.Empty(t, h.api.seen())
	})

	t.Run("password from stdin", func(t *testing.T) {
		h := newHarness(t)
		h.password = "ignored"
		out, err := h.run("secret\n", "login", "-u", "admin", "--password-stdin")
		require.NoError(t, err)
		assert.Contains(t, out, "Signed in as Admin User")
	})
}

func TestSignedOutCommandsRefuse(t *testing.T) {
	h := newHarness(t)
	for _, args := range [][]string{
		{"suppliers", "list"},
		{"products", "get", "1"},
		{"attributes", "list", "colors"},
		{"suppliers", "delete", "42", "-y"},
	} {
		_, err := h.run("", args...)
		assert.ErrorIs(t, err, errNotSignedIn, args)
	}
	assert.Empty(t, h.api.seen())
}

func TestSuppliers(t *testing.T) {
	h := newHarness(t)
	h.login()

	out, err := h.run("", "suppliers", "list", "-q", "dhaka", "--type", "Factory")
	require.NoError(t, err)
	assert.True(t, containsAll(out, "NAME", "Acme Bags", "Dhaka Leather", "Factory", "active"), out)
	assert.Equal(t, "page=1&page_size=20&q=dhaka&supplier_type=Factory", h.api.query("suppliers"))

	_, err = h.run("", "suppliers", "list", "--type", "retailer")
	assert.EqualError(t, err, `unknown supplier type "retailer"`)

	out, err = h.run("", "suppliers", "get", "41")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Acme Bags"`)

	_, err = h.run("", "suppliers", "get", "99")
	require.Error(t, err)
	assert.Equal(t, "Supplier not found", err.Error())
}

func TestSuppliersDelete(t *testing.T) {
	h := newHarness(t)
	h.login()

	out, err := h.run("n\n", "suppliers", "delete", "42")
	require.NoError(t, err)
	assert.True(t, containsAll(out, "Delete Dhaka Leather? [y/N]", "Cancelled"), out)
	assert.NotContains(t, h.api.seen(), "delete 42")

	out, err = h.run("y\n", "suppliers", "delete", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted successfully")

	out, err = h.run("", "suppliers", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Bags")
	assert.NotContains(t, out, "Dhaka Leather")
	assert.Equal(t, []string{"login", "delete 42", "list suppliers"}, h.api.seen())
}

func TestProductsAndAttributes(t *testing.T) {
	h := newHarness(t)
	h.login()

	out, err := h.run("", "products", "list", "--active", "yes", "--ownership", "no", "--category", "3")
	require.NoError(t, err)
	assert.True(t, containsAll(out, "Weekender Tote", "Totes", "89.50", "6"), out)
	assert.Equal(t, "category=3&is_active=true&ownership_status=No&page=1&page_size=20", h.api.query("products"))

	_, err = h.run("", "products", "list", "--active", "maybe")
	assert.EqualError(t, err, `invalid --active value "maybe"`)

	out, err = h.run("", "attributes", "list", "colors", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"hex": "#ff0000"`)

	_, err = h.run("", "attributes", "list", "widgets")
	assert.EqualError(t, err, `unknown attribute type "widgets"`)
}

func TestExpiredTokenClearsSession(t *testing.T) {
	h := newHarness(t)
	h.login()

	// The API stops accepting the stored token between two invocations.
	h.api.rotateToken("tok-2")

	_, err := h.run("", "whoami")
	assert.ErrorIs(t, err, errNotSignedIn, "the restore fetch discards a rejected token")

	data, err := os.ReadFile(h.sessionFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "tok-1")
}

func TestRejectedMidCommand(t *testing.T) {
	h := newHarness(t)
	h.login()

	root := NewRootCmd(Options{
		In:          strings.NewReader(""),
		Out:         io.Discard,
		Err:         io.Discard,
		Environment: map[string]string{"BAGBANK_API_BASE_URL": h.baseURL},
	})
	root.SetArgs([]string{"--session-file", h.sessionFile, "suppliers", "list"})
	// Rotate once the session has been restored, before the list call goes out.
	cobraPre := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cobraPre(cmd, args); err != nil {
			return err
		}
		h.api.rotateToken("tok-2")
		return nil
	}

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session expired")

	data, readErr := os.ReadFile(h.sessionFile)
	require.NoError(t, readErr)
	assert.NotContains(t, string(data), "tok-1", "a 401 clears the stored session")
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
