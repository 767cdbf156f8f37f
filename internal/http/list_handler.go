package httpx

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

// listRegionID is the element list fragments replace. Requests targeting it get only the
// fragment back.
const listRegionID = "list-region"

// ListFilter is implemented by every list filter through its embedded model.ListOptions.
type ListFilter interface {
	Paging() model.ListOptions
}

// ListLoader fetches one page of T for the parsed filter.
type ListLoader[T any, F ListFilter] func(ctx context.Context, creds ports.Credentials, f F) (model.ListResult[T], error)

// DataEnricher adds view-specific data after a successful load.
type DataEnricher[T any, F ListFilter] func(builder *TemplateDataBuilder, res model.ListResult[T], f F)

// ListHandlerOpts contains everything the generic list handler needs.
type ListHandlerOpts[T any, F ListFilter] struct {
	Handler *UIHandlers
	W       http.ResponseWriter
	R       *http.Request

	// View keys the request sequence, e.g. "suppliers" or "attributes:colors".
	View   string
	Parse  func(url.Values) F
	Load   ListLoader[T, F]
	Enrich DataEnricher[T, F]
	// Extra is template data every render of the view needs, including error renders.
	Extra map[string]any

	// BasePath is the list URL pager links are built from.
	BasePath string
	PageMeta PageMeta
	// ItemsKey is the template data key for the items (e.g. "Suppliers").
	ItemsKey string
	// Fragment is rendered for requests targeting the list region, e.g. "suppliers-list".
	Fragment string
	// ErrorMessage is shown when the load fails, e.g. "Failed to load suppliers".
	ErrorMessage string
}

// HandleList loads and renders one page of a list view.
//
// Each request carries a sequence number for its view: a browser-chosen seq for htmx
// requests, a fresh one for page loads. A partial response whose seq is no longer the
// newest for the view is dropped with HX-Reswap: none so an older load never overwrites
// a newer one. A failed load leaves the region untouched and shows a toast.
func HandleList[T any, F ListFilter](opts ListHandlerOpts[T, F]) {
	if opts.Handler == nil || opts.W == nil || opts.R == nil || opts.Parse == nil || opts.Load == nil {
		if opts.W != nil {
			http.Error(opts.W, "misconfigured list handler", http.StatusInternalServerError)
		}
		return
	}

	w, r := opts.W, opts.R
	q := r.URL.Query()
	filter := opts.Parse(q)

	seq, current := claimSeq(r, opts.View, q)
	if !current {
		HTMX(w).Discard()
		return
	}

	res, err := opts.Load(r.Context(), creds(r), filter)
	if WantsPartial(r) && !isLatest(r, opts.View, seq) {
		opts.Handler.logger().DebugContext(r.Context(), "dropping stale list response",
			"view", opts.View, "seq", seq)
		HTMX(w).Discard()
		return
	}
	if err != nil {
		opts.renderLoadError(filter, seq, err)
		return
	}

	b := opts.baseData(filter, seq).With(opts.ItemsKey, res.Items)
	paging := filter.Paging()
	b.WithPagination(PaginationData{
		Page:     paging.Page,
		PageSize: paging.PageSize,
		Total:    res.Total,
		BasePath: opts.BasePath,
	})
	if opts.Enrich != nil {
		opts.Enrich(b, res, filter)
	}
	opts.render(b.Build())
}

func (opts ListHandlerOpts[T, F]) baseData(filter F, seq uint64) *TemplateDataBuilder {
	b := NewTemplateData(opts.R, opts.PageMeta).
		With("Filter", filter).
		With("View", opts.View).
		With("Seq", seq).
		With("ListPath", opts.BasePath).
		With("Query", listQuery(opts.R.URL.Query())).
		With(opts.ItemsKey, []T{})
	for k, v := range opts.Extra {
		b.With(k, v)
	}
	return b
}

func (opts ListHandlerOpts[T, F]) render(data map[string]any) {
	if WantsPartial(opts.R) && HXTarget(opts.R) == listRegionID && opts.Fragment != "" {
		opts.Handler.renderFragment(opts.W, opts.R, opts.Fragment, data)
		return
	}
	opts.Handler.renderDashboardPage(opts.W, opts.R, data)
}

// renderLoadError keeps what the browser already shows for htmx requests and renders the
// page with an inline error otherwise.
func (opts ListHandlerOpts[T, F]) renderLoadError(filter F, seq uint64, err error) {
	w, r := opts.W, opts.R
	if apperrors.IsAuthorizationExpired(err) || apperrors.IsCanceled(err) || WantsPartial(r) {
		opts.Handler.handleServiceError(w, r, err, opts.ErrorMessage)
		return
	}

	msg := apperrors.UserMessage(err, opts.ErrorMessage)
	opts.Handler.logger().WarnContext(r.Context(), "list load failed",
		"view", opts.View, "code", string(apperrors.GetCode(err)), "error", err)
	triggerToast(w, msg, "error")
	opts.render(opts.baseData(filter, seq).WithError(msg).Build())
}

// claimSeq returns the sequence number this request runs under and whether it is still
// current. Requests without a seq start a new one.
func claimSeq(r *http.Request, view string, q url.Values) (uint64, bool) {
	st := sessionFrom(r)
	if st == nil || view == "" {
		return 0, true
	}
	if seq, ok := parseSeq(q); ok && IsHTMX(r) {
		return seq, st.Views().Observe(view, seq)
	}
	return st.Views().Begin(view), true
}

func isLatest(r *http.Request, view string, seq uint64) bool {
	st := sessionFrom(r)
	if st == nil || view == "" {
		return true
	}
	return st.Views().IsLatest(view, seq)
}

// listQuery is the current filter state as a query string, for links that must come back
// to the same page of the same filtered list.
func listQuery(q url.Values) string {
	out := make(url.Values, len(q))
	for k, v := range q {
		if transientParams[k] || strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") {
			continue
		}
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				out.Add(k, s)
			}
		}
	}
	return out.Encode()
}
