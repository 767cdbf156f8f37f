package httpx

import (
	"context"
	"net/http"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/http/validation"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/service"
)

const (
	productsPath          = "/products"
	msgFormOptionsFailed  = "Failed to load form options"
	maxProductTextLen     = 5000
	maxProductKeywordsLen = 1000
)

// productSelects are the select box options of the product form and list filters.
type productSelects struct {
	Categories []model.Attribute
	Materials  []model.Attribute
	Styles     []model.Attribute
	Brands     []model.Attribute
	Colors     []model.Attribute
	Countries  []model.Attribute
	Suppliers  []model.Supplier
}

func selectsFrom(o service.FormOptions) productSelects {
	return productSelects{
		Categories: o.Options(model.AttributeCategories),
		Materials:  o.Options(model.AttributeMaterials),
		Styles:     o.Options(model.AttributeStyles),
		Brands:     o.Options(model.AttributeBrands),
		Colors:     o.Options(model.AttributeColors),
		Countries:  o.Options(model.AttributeCountries),
		Suppliers:  o.Suppliers,
	}
}

// ProductList lists products filtered by search text, category, brand, ownership and
// active flag.
// GET /products.
func (h *UIHandlers) ProductList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Product, model.ProductFilter]{
		Handler: h,
		W:       w,
		R:       r,
		View:    viewProducts,
		Parse:   parseProductFilter,
		Load:    h.Products.List,
		Enrich: func(b *TemplateDataBuilder, _ model.ListResult[model.Product], _ model.ProductFilter) {
			// The filter bar is outside the list region; fragment refreshes keep theirs.
			if HXTarget(r) == listRegionID {
				return
			}
			b.With("Selects", h.filterSelects(r))
		},
		BasePath: productsPath,
		PageMeta: PageMeta{
			Title:       "Products - BagBank Admin",
			PageTitle:   "Products",
			CurrentPage: PageProducts,
		},
		ItemsKey:     "Products",
		Fragment:     "products-list",
		ErrorMessage: "Failed to load products",
	})
}

// filterSelects loads the category and brand filter options. Failures only cost the
// operator those two filters.
func (h *UIHandlers) filterSelects(r *http.Request) productSelects {
	var out productSelects
	unpaged := model.AttributeFilter{ListOptions: model.Unpaged()}
	if res, err := h.Attributes.List(r.Context(), creds(r), model.AttributeCategories, unpaged); err == nil {
		out.Categories = res.Items
	} else {
		h.logger().DebugContext(r.Context(), "category filter options unavailable", "error", err)
	}
	if res, err := h.Attributes.List(r.Context(), creds(r), model.AttributeBrands, unpaged); err == nil {
		out.Brands = res.Items
	} else {
		h.logger().DebugContext(r.Context(), "brand filter options unavailable", "error", err)
	}
	return out
}

// ProductDetails renders one product with its variations.
// GET /products/{id}.
func (h *UIHandlers) ProductDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	p, err := h.Products.Get(r.Context(), creds(r), id)
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to load product")
		return
	}

	data := NewTemplateData(r, PageMeta{
		Title:       p.Name + " - BagBank Admin",
		PageTitle:   p.Name,
		CurrentPage: PageProduct,
	}).
		With("Product", p).
		With("ListPath", productsPath).
		Build()
	h.renderDashboardPage(w, r, data)
}

// ProductNew renders an empty form with one variation row.
// GET /products/new.
func (h *UIHandlers) ProductNew(w http.ResponseWriter, r *http.Request) {
	selects, ok := h.productFormSelects(w, r)
	if !ok {
		return
	}
	h.renderDashboardPage(w, r, productFormData(r, FormModeCreate, "", model.NewProductInput(), selects))
}

// ProductEdit renders the form for an existing product.
// GET /products/{id}/edit.
func (h *UIHandlers) ProductEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	p, err := h.Products.Get(r.Context(), creds(r), id)
	if err != nil {
		h.handleServiceError(w, r, err, "Failed to load product")
		return
	}
	selects, ok := h.productFormSelects(w, r)
	if !ok {
		return
	}
	h.renderDashboardPage(w, r, productFormData(r, FormModeEdit, id, model.ProductInputFrom(p), selects))
}

// productFormSelects loads the form options. When they cannot be loaded the form still
// renders, with empty selects and an error toast.
func (h *UIHandlers) productFormSelects(w http.ResponseWriter, r *http.Request) (productSelects, bool) {
	opts, err := h.Products.FormOptions(r.Context(), creds(r))
	switch {
	case err == nil:
		return selectsFrom(opts), true
	case apperrors.IsAuthorizationExpired(err):
		redirectToLogin(w, r)
		return productSelects{}, false
	case apperrors.IsCanceled(err):
		return productSelects{}, false
	default:
		h.logger().WarnContext(r.Context(), "product form options failed", "error", err)
		triggerToast(w, apperrors.UserMessage(err, msgFormOptionsFailed), "error")
		return productSelects{}, true
	}
}

// ProductCreate handles POST /products.
func (h *UIHandlers) ProductCreate(w http.ResponseWriter, r *http.Request) {
	h.submitProduct(w, r, FormModeCreate, "")
}

// ProductUpdate handles POST /products/{id}.
func (h *UIHandlers) ProductUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	h.submitProduct(w, r, FormModeEdit, id)
}

func (h *UIHandlers) submitProduct(w http.ResponseWriter, r *http.Request, mode FormMode, id model.ID) {
	extras := productFormExtras(mode, id)
	renderer := func(w http.ResponseWriter, r *http.Request, data map[string]any) {
		// Options are only fetched when the form has to be shown again.
		selects, ok := h.productFormSelects(w, r)
		if !ok {
			return
		}
		data["Selects"] = selects
		h.renderDashboardPage(w, r, data)
	}

	HandleForm(FormHandlerOpts[model.ProductInput]{
		W:      w,
		R:      r,
		Mode:   mode,
		Parser: parseProductForm,
		Save: func(ctx context.Context, c ports.Credentials, in model.ProductInput) error {
			var err error
			if mode == FormModeEdit {
				_, err = h.Products.Update(ctx, c, id, in)
			} else {
				_, err = h.Products.Create(ctx, c, in)
			}
			return err
		},
		Renderer:   renderer,
		SuccessURL: productsPath,
		PageMeta:   productFormMeta(mode),
		ExtraData:  extras,
	})
}

// ProductDelete handles DELETE /products/{id}, from the list or the details page.
func (h *UIHandlers) ProductDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	h.handleDelete(w, r, deleteOpts{
		Delete: func(ctx context.Context, c ports.Credentials) error {
			return h.Products.Delete(ctx, c, id)
		},
		Relist:  h.ProductList,
		ListURL: productsPath,
	})
}

func parseProductForm(r *http.Request) (model.ProductInput, map[string]string) {
	f := validation.NewForm(r.PostForm)
	in := model.ProductInput{
		Name:            f.Text("name", validation.MaxLen("Name", maxNameLen)),
		Category:        model.ID(f.Text("category")),
		Material:        model.ID(f.Text("material")),
		Brand:           model.ID(f.Text("brand")),
		Style:           model.ID(f.Text("style")),
		Country:         model.ID(f.Text("country")),
		Supplier:        model.ID(f.Text("supplier")),
		OwnershipStatus: model.OwnershipStatus(f.Text("ownership_status")),
		PurchasePrice:   f.Float("purchase_price", "Purchase price"),
		SellingPrice:    f.Float("selling_price", "Selling price"),
		Description:     f.Text("description", validation.MaxLen("Description", maxProductTextLen)),
		Keywords:        f.Text("keywords", validation.MaxLen("Keywords", maxProductKeywordsLen)),
		YouTubeURL:      f.Text("youtube_url"),
		FacebookURL:     f.Text("facebook_url"),
		IsActive:        f.Bool("is_active"),
		Variations:      parseVariations(f),
	}
	in.Normalize()
	return in, f.Merge(in.Validate()).Errors()
}

// parseVariations reads the repeated variation_* columns row by row. Rows are numbered
// in submission order, which is also how their errors are keyed.
func parseVariations(f *validation.Form) []model.VariationInput {
	colors := f.Values("variation_color")
	skus := f.Values("variation_sku")
	barcodes := f.Values("variation_barcode")
	prices := f.Values("variation_additional_price")
	stocks := f.Values("variation_stock")

	n := max(len(colors), len(skus), len(barcodes), len(prices), len(stocks))
	out := make([]model.VariationInput, 0, n)
	for i := range n {
		stockKey := model.VariationField("stock", i)
		f.Check(stockKey, valueAt(stocks, i), validation.Required("Stock required"))
		out = append(out, model.VariationInput{
			Color:           model.ID(valueAt(colors, i)),
			SKU:             valueAt(skus, i),
			Barcode:         valueAt(barcodes, i),
			AdditionalPrice: f.FloatValue(model.VariationField("additional_price", i), valueAt(prices, i), "Additional price"),
			StockQuantity:   f.IntValue(stockKey, valueAt(stocks, i), "Stock"),
		})
	}
	return out
}

func valueAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func productFormMeta(mode FormMode) PageMeta {
	title := "New Product"
	if mode == FormModeEdit {
		title = "Edit Product"
	}
	return PageMeta{Title: title + " - BagBank Admin", PageTitle: title, CurrentPage: PageProductForm}
}

func productFormExtras(mode FormMode, id model.ID) map[string]any {
	return map[string]any{
		"ID":       id,
		"Action":   editTarget(mode, productsPath, id.String()),
		"ListPath": productsPath,
	}
}

func productFormData(r *http.Request, mode FormMode, id model.ID, in model.ProductInput, selects productSelects) map[string]any {
	b := NewTemplateData(r, productFormMeta(mode)).
		With("Mode", mode).
		With("Form", in).
		With("Selects", selects)
	for k, v := range productFormExtras(mode, id) {
		b.With(k, v)
	}
	return b.Build()
}
