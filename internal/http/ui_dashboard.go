package httpx

import "net/http"

const dashboardWelcome = "Welcome to BagBank dashboard."

// Dashboard serves the landing page.
// GET /dashboard.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{
		Title:       "Dashboard - BagBank Admin",
		PageTitle:   "Dashboard",
		CurrentPage: PageDashboard,
	}).
		With("Welcome", dashboardWelcome).
		Build()
	h.renderDashboardPage(w, r, data)
}
