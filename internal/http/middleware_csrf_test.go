package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func csrfEcho() http.Handler {
	return CSRFProtection(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetCSRFToken(r)))
	}))
}

func TestCSRFProtection_IssuesTokenOnGet(t *testing.T) {
	w := httptest.NewRecorder()
	csrfEcho().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == DefaultCSRFCookieName {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("CSRF cookie not set")
	}
	if cookie.HttpOnly {
		t.Error("the CSRF cookie must be readable by the page script")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("SameSite = %v", cookie.SameSite)
	}
	if w.Body.String() != cookie.Value {
		t.Errorf("context token %q does not match cookie %q", w.Body.String(), cookie.Value)
	}
}

func TestCSRFProtection_ReusesExistingCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "existing"})
	w := httptest.NewRecorder()
	csrfEcho().ServeHTTP(w, r)

	if len(w.Result().Cookies()) != 0 {
		t.Error("no new cookie expected")
	}
	if w.Body.String() != "existing" {
		t.Errorf("token = %q", w.Body.String())
	}
}

func TestCSRFProtection_Validation(t *testing.T) {
	tests := []struct {
		name   string
		method string
		header string
		form   url.Values
		want   int
	}{
		{name: "post without token", method: http.MethodPost, want: http.StatusForbidden},
		{name: "post with header", method: http.MethodPost, header: "tok", want: http.StatusOK},
		{name: "post with wrong header", method: http.MethodPost, header: "other", want: http.StatusForbidden},
		{name: "delete with header", method: http.MethodDelete, header: "tok", want: http.StatusOK},
		{name: "form field", method: http.MethodPost, form: url.Values{DefaultCSRFFormField: {"tok"}}, want: http.StatusOK},
		{name: "wrong form field", method: http.MethodPost, form: url.Values{DefaultCSRFFormField: {"nope"}}, want: http.StatusForbidden},
		{name: "head is safe", method: http.MethodHead, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r *http.Request
			if tt.form != nil {
				r = httptest.NewRequest(tt.method, "/suppliers", strings.NewReader(tt.form.Encode()))
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			} else {
				r = httptest.NewRequest(tt.method, "/suppliers", nil)
			}
			r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "tok"})
			if tt.header != "" {
				r.Header.Set(DefaultCSRFHeaderName, tt.header)
			}
			w := httptest.NewRecorder()
			csrfEcho().ServeHTTP(w, r)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestIsSecureRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if isSecureRequest(r) {
		t.Error("plain request reported secure")
	}
	r.Header.Set("X-Forwarded-Proto", "http, HTTPS")
	if !isSecureRequest(r) {
		t.Error("forwarded https not detected")
	}
}
