package models

// ViewState is the dashboard's ephemeral UI state. It is never persisted.
type ViewState struct {
	SearchQuery      string
	SelectedCategory *string
	IsGridView       bool
	IsUploading      bool
}

// Route is the screen a workflow hands control to.
type Route int

const (
	RouteLogin Route = iota
	RouteDashboard
)

func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}
