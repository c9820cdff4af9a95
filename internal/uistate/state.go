package uistate

// State is the dashboard chrome state shared by every page.
type State struct {
	SignedIn         bool `json:"signedIn"`
	SidebarCollapsed bool `json:"sidebarCollapsed"`
}

// Initial is the state before anything was persisted: signed out, sidebar expanded.
func Initial() State {
	return State{}
}
