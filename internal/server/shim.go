package server

import "net/http"

// ShimPath is where the browser shim is served.
const ShimPath = "/_static/js/fragredirect.js"

// shimContent asks /api/resolve about the current location and replaces it
// when the answer says so. Pages include it with
// <script src="/_static/js/fragredirect.js" data-endpoint="https://host"></script>;
// data-endpoint defaults to the page's own origin.
const shimContent = `(function () {
  "use strict";
  var fragment = window.location.hash.substring(1);
  var path = window.location.pathname;
  if (!fragment || path.indexOf("/services/") === -1 || !window.fetch) {
    return;
  }
  var script = document.currentScript;
  var endpoint = (script && script.getAttribute("data-endpoint")) || "";
  var query = "?path=" + encodeURIComponent(path) + "&fragment=" + encodeURIComponent(fragment);
  window.fetch(endpoint + "/api/resolve" + query, { headers: { Accept: "application/json" } })
    .then(function (resp) { return resp.ok ? resp.json() : null; })
    .then(function (body) {
      if (body && body.redirect) {
        window.location.replace(body.location);
      }
    })
    .catch(function () {});
}());
`

func handleShim(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(shimContent))
}
