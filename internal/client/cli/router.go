package cli

import (
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/services"
)

// Router records navigation requests from the session controller. The REPL
// drains it after each command and opens the requested screen.
type Router struct {
	mu      sync.Mutex
	current services.Route
	pending []services.Route
}

func NewRouter() *Router {
	return &Router{current: services.RouteHome}
}

// Navigate implements services.Navigator.
func (r *Router) Navigate(to services.Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, to)
}

// Next pops the oldest pending route and makes it current.
func (r *Router) Next() (services.Route, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pending) == 0 {
		return "", false
	}
	to := r.pending[0]
	r.pending = r.pending[1:]
	r.current = to
	return to, true
}

func (r *Router) Current() services.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
