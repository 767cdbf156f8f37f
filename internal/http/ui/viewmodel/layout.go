// Package viewmodel holds the typed data shared by every rendered page.
package viewmodel

// User is the signed-in operator as shown in the navbar.
type User struct {
	Username    string
	DisplayName string
	Initial     string
	ImageURL    string
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	User            *User
	// Flash is a toast carried across a full-page redirect.
	Flash string
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
