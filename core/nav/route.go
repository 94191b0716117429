package nav

// Route is the static metadata attached to a navigable path. Descriptors
// are defined at startup and never mutated; the guard only reads them.
type Route struct {
	// Path is the canonical route path, e.g. "/admin/events".
	Path string
	// Title is the human-readable page title shown for this route.
	Title string
	// RequiresAuth gates the route behind an active session.
	RequiresAuth bool
	// RequiresAdmin gates the route behind the administrator role.
	RequiresAdmin bool
}
