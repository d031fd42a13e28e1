package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/ziadkadry99/fragredirect/internal/redirect"
)

// resolveResponse is the JSON response for the /api/resolve endpoint.
type resolveResponse struct {
	Redirect bool   `json:"redirect"`
	Location string `json:"location"`
}

// locationFromQuery reads ?path= and ?fragment= from the request. The path
// must be a site-local absolute path so the redirect endpoints can never
// send a browser to another host.
func locationFromQuery(r *http.Request) (redirect.Location, bool) {
	q := r.URL.Query()
	p := q.Get("path")
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return redirect.Location{}, false
	}
	if u, err := url.Parse(p); err != nil || u.Scheme != "" || u.Host != "" {
		return redirect.Location{}, false
	}
	return redirect.Location{
		Path:     p,
		Fragment: strings.TrimPrefix(q.Get("fragment"), "#"),
	}, true
}

// unchanged renders the location as given.
func unchanged(loc redirect.Location) string {
	return redirect.Target{Path: loc.Path, Fragment: loc.Fragment}.String()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	loc, ok := locationFromQuery(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "path must be an absolute site path"})
		return
	}

	resp := resolveResponse{Location: unchanged(loc)}
	if target, ok := redirect.Resolve(loc); ok {
		resp.Redirect = true
		resp.Location = target.String()
	}

	s.logger.Debug().
		Str("path", loc.Path).
		Str("fragment", loc.Fragment).
		Bool("redirect", resp.Redirect).
		Str("location", resp.Location).
		Msg("resolved legacy anchor")

	writeJSON(w, http.StatusOK, resp)
}

// handleRedirect answers with a 302 to the new page, or back to the
// unchanged location when no redirect applies. It is meant for links that
// carry the legacy anchor in the query. The shim must use /api/resolve
// instead, since a page loading /r for itself would bounce back to itself.
func (s *Server) handleRedirect(w http.ResponseWriter, r *http.Request) {
	loc, ok := locationFromQuery(r)
	if !ok {
		http.Error(w, "path must be an absolute site path", http.StatusBadRequest)
		return
	}

	redirected, err := redirect.New(redirect.StaticLocation(loc), redirect.HTTPNavigator{W: w, R: r}).Run()
	if err != nil {
		s.logger.Error().Err(err).Str("path", loc.Path).Msg("redirect failed")
		http.Error(w, "redirect failed", http.StatusInternalServerError)
		return
	}
	if !redirected {
		http.Redirect(w, r, unchanged(loc), http.StatusFound)
	}
}
