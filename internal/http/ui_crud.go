package httpx

import (
	"context"
	"net/http"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/service"
)

// deleteOpts describes one delete action.
type deleteOpts struct {
	Delete func(ctx context.Context, creds ports.Credentials) error
	// Relist re-renders the list for the filters on the request, used when the delete
	// came from the list table.
	Relist func(w http.ResponseWriter, r *http.Request)
	// ListURL is where a delete from a details page returns to.
	ListURL string
}

// handleDelete deletes a record, then either refreshes the list region in place with the
// same filters and page or navigates back to the list. A failure leaves the page as it is.
func (h *UIHandlers) handleDelete(w http.ResponseWriter, r *http.Request, opts deleteOpts) {
	if err := opts.Delete(r.Context(), creds(r)); err != nil {
		h.handleServiceError(w, r, err, service.MsgDeleteFailed)
		return
	}

	if deleteTarget(r) && opts.Relist != nil {
		HTMX(w).Toast(ToastDeleted, "success")
		opts.Relist(w, r)
		return
	}
	redirect(w, r, withFlash(opts.ListURL, "deleted"))
}

// editTarget is the record an edit form posts back to.
func editTarget(mode FormMode, base string, id string) string {
	if mode == FormModeEdit {
		return base + "/" + id
	}
	return base
}
