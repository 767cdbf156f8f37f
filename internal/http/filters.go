package httpx

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
)

const (
	// StrTrue represents the string "true" for boolean query parameters.
	StrTrue = "true"
	// StrFalse represents the string "false" for boolean query parameters.
	StrFalse = "false"
)

// ParseBoolParam reads an optional tri-state filter: "true", "false" or anything else
// for "no filter".
func ParseBoolParam(q url.Values, key string) *bool {
	raw := strings.ToLower(strings.TrimSpace(q.Get(key)))
	if raw != StrTrue && raw != StrFalse {
		return nil
	}
	b, _ := strconv.ParseBool(raw)
	return &b
}

func parseAttributeFilter(q url.Values) model.AttributeFilter {
	return model.AttributeFilter{ListOptions: parseListOptions(q)}
}

func parseSupplierFilter(q url.Values) model.SupplierFilter {
	f := model.SupplierFilter{ListOptions: parseListOptions(q)}
	if t, ok := model.ParseSupplierType(q.Get("supplier_type")); ok {
		f.Type = t
	}
	return f
}

func parseProductFilter(q url.Values) model.ProductFilter {
	f := model.ProductFilter{
		ListOptions: parseListOptions(q),
		Category:    model.ID(strings.TrimSpace(q.Get("category"))),
		Brand:       model.ID(strings.TrimSpace(q.Get("brand"))),
		IsActive:    ParseBoolParam(q, "is_active"),
	}
	if s, ok := model.ParseOwnershipStatus(q.Get("ownership_status")); ok {
		f.OwnershipStatus = s
	}
	return f
}
