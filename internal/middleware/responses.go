package middleware

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the body htmx callers get on a refused request. The
// storefront swaps fragments straight into the page, so a plain-text
// error would land in the DOM as markup; JSON keeps refusals (CSRF,
// panel-token checks) out of the rendered page and inspectable from the
// htmx response hooks instead.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError answers a refused request: JSON for htmx, text otherwise.
func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
		return
	}
	http.Error(w, msg, code)
}
