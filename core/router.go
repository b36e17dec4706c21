package core

import (
	"net/http"
	"strings"
)

type Route struct {
	Method string
	Path   string
}

func (r Route) String() string {
	if r.Method == "" {
		return r.Path
	}
	return r.Method + " " + r.Path
}

// Router is a ServeMux that remembers what was registered on it.
type Router struct {
	mux    *http.ServeMux
	routes []Route
}

func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Handle registers handler for a ServeMux pattern such as "GET /math/{operation}".
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
	r.routes = append(r.routes, parseRoute(pattern))
}

func (r *Router) HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	r.Handle(pattern, http.HandlerFunc(handler))
}

func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func parseRoute(pattern string) Route {
	method, path, found := strings.Cut(strings.TrimSpace(pattern), " ")
	if !found {
		return Route{Path: method}
	}
	return Route{Method: method, Path: strings.TrimSpace(path)}
}
