package handlers

import (
	"net/http"

	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/session"
	"fleet-dashboard/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type LoginResponse struct {
	User      models.Session `json:"user"`
	Token     string         `json:"token"`
	Persisted bool           `json:"persisted"`
	Redirect  string         `json:"redirect"`
}

type AuthStatusResponse struct {
	Authenticated bool            `json:"authenticated"`
	User          *models.Session `json:"user,omitempty"`
}

// Login starts a session. A storage failure does not fail the login; the
// response reports that the session will not survive a restart.
func Login(store *session.Store, tokens *session.Tokens, validate *validator.Validate, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.Session
		if !bind(w, r, validate, &req) {
			return
		}

		log.WithField("email", req.Email).Info("🔐 Login attempt")

		tokenString, err := tokens.Issue(req)
		if err != nil {
			log.WithError(err).Error("❌ Failed to create token")
			utils.RespondError(w, http.StatusInternalServerError, "Failed to create token")
			return
		}

		persisted := store.Login(r.Context(), req) == nil

		utils.RespondSuccess(w, http.StatusOK, LoginResponse{
			User:      req,
			Token:     tokenString,
			Persisted: persisted,
			Redirect:  "/dashboard",
		})
	}
}

func Logout(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		redirect := store.Logout(r.Context())
		utils.RespondSuccess(w, http.StatusOK, map[string]string{"redirect": redirect})
	}
}

func GetAuthStatus(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := AuthStatusResponse{}
		if identity, ok := store.Current(); ok {
			resp.Authenticated = true
			resp.User = &identity
		}
		utils.RespondSuccess(w, http.StatusOK, resp)
	}
}
