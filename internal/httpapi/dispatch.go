package httpapi

import (
	"net/http"
)

// matcher claims requests for a handler.
type matcher struct {
	name    string
	match   func(r *http.Request) bool
	handler http.Handler
}

// dispatcher tries its matchers in order and serves the request with the
// first one that claims it.  The last matcher should claim everything;
// if none does, the request gets a bare 404.
type dispatcher struct {
	matchers []matcher
}

func (d *dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if m, ok := d.find(r); ok {
		m.handler.ServeHTTP(w, r)
		return
	}
	http.NotFound(w, r)
}

func (d *dispatcher) find(r *http.Request) (matcher, bool) {
	for _, m := range d.matchers {
		if m.match(r) {
			return m, true
		}
	}
	return matcher{}, false
}

func always(*http.Request) bool { return true }
