package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/session"
)

// supplierLister records the filters it was called with.
type supplierLister struct {
	items  []model.Supplier
	err    error
	calls  []model.SupplierFilter
	during func()
}

func (l *supplierLister) load(_ context.Context, _ ports.Credentials, f model.SupplierFilter) (model.ListResult[model.Supplier], error) {
	l.calls = append(l.calls, f)
	if l.during != nil {
		l.during()
	}
	if l.err != nil {
		return model.ListResult[model.Supplier]{}, l.err
	}
	return model.ListResult[model.Supplier]{Items: l.items, Total: len(l.items)}, nil
}

func serveSupplierList(t *testing.T, r *http.Request, l *supplierLister) *httptest.ResponseRecorder {
	t.Helper()
	h := CreateUIHandlersForTest(t)
	rec := httptest.NewRecorder()
	HandleList(ListHandlerOpts[model.Supplier, model.SupplierFilter]{
		Handler:      h,
		W:            rec,
		R:            r,
		View:         viewSuppliers,
		Parse:        parseSupplierFilter,
		Load:         l.load,
		BasePath:     suppliersPath,
		PageMeta:     PageMeta{Title: "Suppliers", PageTitle: "Suppliers", CurrentPage: PageSuppliers},
		ItemsKey:     "Suppliers",
		Fragment:     "suppliers-list",
		ErrorMessage: "Failed to load suppliers",
	})
	return rec
}

func htmxListRequest(target string, st *session.Store) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set("Hx-Request", "true")
	r.Header.Set("Hx-Target", listRegionID)
	return withSession(r, st)
}

func TestHandleList_FullPageBeginsSequence(t *testing.T) {
	st := newTestSession(t, true)
	l := &supplierLister{items: []model.Supplier{{ID: "1", Name: "Dhaka Leather", IsActive: true}}}

	r := withSession(httptest.NewRequest(http.MethodGet, "/suppliers?q=dhaka&supplier_type=factory", nil), st)
	rec := serveSupplierList(t, r, l)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, ContainsAll(body, []string{"<html", `id="list-region"`, "Dhaka Leather", `data-seq="1"`}), body)
	require.Len(t, l.calls, 1)
	assert.Equal(t, "dhaka", l.calls[0].Query)
	assert.Equal(t, model.SupplierFactory, l.calls[0].Type)
	assert.True(t, st.Views().IsLatest(viewSuppliers, 1))
}

func TestHandleList_FragmentForListRegion(t *testing.T) {
	st := newTestSession(t, true)
	l := &supplierLister{items: []model.Supplier{{ID: "1", Name: "Acme"}}}

	rec := serveSupplierList(t, htmxListRequest("/suppliers?seq=4", st), l)

	require.Equal(t, http.StatusOK, rec.Code)
	body := strings.TrimSpace(rec.Body.String())
	assert.True(t, strings.HasPrefix(body, `<div id="list-region"`), body)
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, `data-seq="4"`)
	assert.True(t, st.Views().IsLatest(viewSuppliers, 4))
}

func TestHandleList_DiscardsOlderSequence(t *testing.T) {
	st := newTestSession(t, true)
	require.True(t, st.Views().Observe(viewSuppliers, 5))
	l := &supplierLister{}

	rec := serveSupplierList(t, htmxListRequest("/suppliers?seq=3", st), l)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "none", rec.Header().Get("Hx-Reswap"))
	assert.Empty(t, l.calls, "a stale request is not sent")
}

func TestHandleList_DiscardsResponseOvertakenInFlight(t *testing.T) {
	st := newTestSession(t, true)
	l := &supplierLister{
		items: []model.Supplier{{ID: "1", Name: "Old result"}},
		// A newer request for the same view arrives while this one is loading.
		during: func() { st.Views().Observe(viewSuppliers, 8) },
	}

	rec := serveSupplierList(t, htmxListRequest("/suppliers?seq=7", st), l)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "none", rec.Header().Get("Hx-Reswap"))
	assert.NotContains(t, rec.Body.String(), "Old result")
}

func TestHandleList_OtherViewsDoNotInterfere(t *testing.T) {
	st := newTestSession(t, true)
	st.Views().Observe(viewProducts, 50)
	l := &supplierLister{items: []model.Supplier{{ID: "1", Name: "Acme"}}}

	rec := serveSupplierList(t, htmxListRequest("/suppliers?seq=2", st), l)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme")
}

func TestHandleList_LoadFailures(t *testing.T) {
	loadFailed := apperrors.Wrap(errors.New("503"), apperrors.ErrCodeLoadFailed, "Failed to load suppliers")

	t.Run("htmx keeps the region and toasts", func(t *testing.T) {
		st := newTestSession(t, true)
		rec := serveSupplierList(t, htmxListRequest("/suppliers?seq=1", st), &supplierLister{err: loadFailed})

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "none", rec.Header().Get("Hx-Reswap"))
		assert.Contains(t, rec.Header().Get("Hx-Trigger"), "Failed to load suppliers")
	})

	t.Run("full page renders an inline error", func(t *testing.T) {
		st := newTestSession(t, true)
		r := withSession(httptest.NewRequest(http.MethodGet, "/suppliers", nil), st)
		rec := serveSupplierList(t, r, &supplierLister{err: loadFailed})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, ContainsAll(rec.Body.String(), []string{"Failed to load suppliers", "No items"}))
	})

	t.Run("expired authorization goes to login", func(t *testing.T) {
		st := newTestSession(t, true)
		r := withSession(httptest.NewRequest(http.MethodGet, "/suppliers?page=2", nil), st)
		rec := serveSupplierList(t, r, &supplierLister{err: apperrors.AuthorizationExpired(errors.New("401"))})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login?redirect_uri="+url.QueryEscape("/suppliers?page=2"), rec.Header().Get("Location"))
	})
}

func TestHandleList_Misconfigured(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleList(ListHandlerOpts[model.Supplier, model.SupplierFilter]{
		W: rec,
		R: httptest.NewRequest(http.MethodGet, "/suppliers", nil),
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListQuery(t *testing.T) {
	q := url.Values{
		"q":         {"bag"},
		"page":      {"2"},
		"seq":       {"9"},
		"flash":     {"deleted"},
		"brand":     {""},
		"hx-target": {"x"},
	}
	assert.Equal(t, "page=2&q=bag", listQuery(q))
	assert.Empty(t, listQuery(url.Values{}))
}

func TestClaimSeq(t *testing.T) {
	st := newTestSession(t, true)

	// No session: every request is current.
	seq, ok := claimSeq(httptest.NewRequest(http.MethodGet, "/", nil), viewSuppliers, url.Values{})
	assert.True(t, ok)
	assert.Zero(t, seq)

	// A page load ignores a seq parameter and begins a new sequence.
	r := withSession(httptest.NewRequest(http.MethodGet, "/suppliers?seq=40", nil), st)
	seq, ok = claimSeq(r, viewSuppliers, r.URL.Query())
	assert.True(t, ok)
	assert.Equal(t, uint64(1), seq)

	r = htmxListRequest("/suppliers?seq=abc", st)
	seq, ok = claimSeq(r, viewSuppliers, r.URL.Query())
	assert.True(t, ok)
	assert.Equal(t, uint64(2), seq)
}
