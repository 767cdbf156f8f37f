package httpx

import "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"

// CurrentPage constants define the page identifiers used in templates and navigation.
const (
	PageDashboard = "dashboard"

	// Attribute pages are shared by every attribute collection.
	PageAttributes    = "attributes"
	PageAttributeForm = "attribute-form"

	PageSuppliers    = "suppliers"
	PageSupplierForm = "supplier-form"

	PageProducts    = "products"
	PageProductForm = "product-form"
	PageProduct     = "product"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"
	TemplatePathFromTest = "../../frontend/templates"
)

// List view names used for request sequence tracking.
const (
	viewSuppliers = "suppliers"
	viewProducts  = "products"
)

func attributeView(t model.AttributeType) string { return "attributes:" + string(t) }

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Toast messages shown after mutations.
const (
	ToastCreated   = "Created"
	ToastUpdated   = "Updated"
	ToastDeleted   = "Deleted successfully"
	ToastLoggedIn  = "Logged in"
	ToastLoggedOut = "Logged out successfully"
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageDashboard:     "dashboard-content",
	PageAttributes:    "attributes-content",
	PageAttributeForm: "attribute-form-content",
	PageSuppliers:     "suppliers-content",
	PageSupplierForm:  "supplier-form-content",
	PageProducts:      "products-content",
	PageProductForm:   "product-form-content",
	PageProduct:       "product-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to dashboard-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "dashboard-content"
}

// flashMessages maps the flash query parameter carried across full-page redirects to the
// toast it shows.
//
//nolint:gochecknoglobals // static read-only lookup
var flashMessages = map[string]string{
	"logged-in":  ToastLoggedIn,
	"logged-out": ToastLoggedOut,
	"created":    ToastCreated,
	"updated":    ToastUpdated,
	"deleted":    ToastDeleted,
}
