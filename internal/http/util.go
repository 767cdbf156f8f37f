package httpx

import (
	"net/http"
	"strings"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
)

// idParam returns the {id} path value.
func idParam(r *http.Request) (model.ID, bool) {
	id := model.ID(strings.TrimSpace(r.PathValue("id")))
	return id, !id.IsZero()
}

// attributeTypeParam returns the {type} path value when it names a known collection.
func attributeTypeParam(r *http.Request) (model.AttributeType, bool) {
	return model.ParseAttributeType(r.PathValue("type"))
}

// deleteTarget reports whether a delete came from the list table, which is refreshed in
// place, rather than from a details page, which navigates back to the list.
func deleteTarget(r *http.Request) bool {
	return HXTarget(r) == listRegionID
}
