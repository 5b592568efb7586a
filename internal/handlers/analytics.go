package handlers

import (
	"fmt"
	"net/http"

	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/middleware"
	"fleet-dashboard/internal/providers"
	"fleet-dashboard/internal/session"
	"fleet-dashboard/internal/shell"
	"fleet-dashboard/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetDashboard returns the overview page for the current user
func GetDashboard(fleet *providers.Fleet, store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := ""
		if identity, ok := middleware.GetUserFromContext(r); ok {
			name = identity.Name
		} else if identity, ok := store.Current(); ok {
			name = identity.Name
		}

		overview := shell.BuildOverview(name,
			fleet.TruckLocations.Snapshot().Items,
			fleet.Deliveries.Snapshot().Items)
		utils.RespondSuccess(w, http.StatusOK, overview)
	}
}

func GetAnalytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng, err := shell.ParseRange(r.URL.Query().Get("range"))
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondSuccess(w, http.StatusOK, shell.BuildAnalytics(rng))
	}
}

// ExportAnalytics downloads the analytics page as an xlsx workbook
func ExportAnalytics(log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng, err := shell.ParseRange(r.URL.Query().Get("range"))
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}

		data, err := shell.ExportAnalytics(shell.BuildAnalytics(rng))
		if err != nil {
			log.WithError(err).Error("❌ Failed to build analytics workbook")
			utils.RespondError(w, http.StatusInternalServerError, "Failed to export analytics")
			return
		}

		log.WithField("range", rng).Info("📊 Analytics exported")
		utils.RespondAttachment(w, xlsxContentType, fmt.Sprintf("fleet-analytics-%s.xlsx", rng), data)
	}
}
