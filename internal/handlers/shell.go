package handlers

import (
	"net/http"

	"fleet-dashboard/internal/middleware"
	"fleet-dashboard/internal/session"
	"fleet-dashboard/internal/shell"
	"fleet-dashboard/pkg/utils"
)

// Navigate resolves a browser path to a view descriptor. Redirects are
// answered with 302 and the target in both the Location header and body.
func Navigate(store *session.Store, authRequired bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, hasToken := middleware.GetUserFromContext(r)
		authenticated := hasToken || store.IsAuthenticated()

		res := shell.Guard(shell.Resolve(r.URL.Path), authenticated, authRequired)
		if res.Redirect != "" {
			w.Header().Set("Location", res.Redirect)
			utils.RespondSuccess(w, http.StatusFound, res)
			return
		}
		utils.RespondSuccess(w, http.StatusOK, res)
	}
}

// NotFound answers unknown API paths
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.RespondError(w, http.StatusNotFound, "Not found")
}
