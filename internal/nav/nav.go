// Package nav carries the navigation callback type and the previous-location
// state that survives across Login container instances.
package nav

// OnNavigate is supplied by the host; calling it re-renders the view at path.
type OnNavigate func(path string)

// History remembers the last route navigated to after a session was
// established. It is process-wide state: a fresh Login container per page view
// must not lose the previous route. Reset only on a full application reload.
type History struct {
	previous string
}

// Previous returns the last recorded route, empty until a login succeeds.
func (h *History) Previous() string {
	return h.previous
}

// SetPrevious records path as the last route. Last writer wins.
func (h *History) SetPrevious(path string) {
	h.previous = path
}

// Reset clears the recorded route. Only a full application reload calls this.
func (h *History) Reset() {
	h.previous = ""
}

// Default is the process-wide history the application wires in. Tests inject
// their own History so cases stay independent.
var Default = &History{}
