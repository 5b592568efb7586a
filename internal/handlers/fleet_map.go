package handlers

import (
	"net/http"

	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/providers"
	"fleet-dashboard/internal/shell"
	"fleet-dashboard/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type SelectTruckRequest struct {
	ID string `json:"id" validate:"required"`
}

func mapView(fleet *providers.Fleet) (shell.MapView, providers.State[models.TruckLocation]) {
	state := fleet.TruckLocations.Snapshot()
	return shell.NewMapView(state.Items), state
}

// GetMapLocations returns the live map framed on the whole fleet
func GetMapLocations(fleet *providers.Fleet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, state := mapView(fleet)
		utils.RespondSuccess(w, http.StatusOK, map[string]interface{}{
			"map":       view,
			"isLoading": state.IsLoading,
			"error":     state.Error,
		})
	}
}

// GetMapGeoJSON returns the map markers as a GeoJSON FeatureCollection
func GetMapGeoJSON(fleet *providers.Fleet, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, _ := mapView(fleet)
		data, err := shell.FeatureCollection(view.Markers)
		if err != nil {
			log.WithError(err).Error("❌ Failed to encode GeoJSON")
			utils.RespondError(w, http.StatusInternalServerError, "Failed to encode locations")
			return
		}
		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

// SelectTruck centers the map on one truck and opens its popup
func SelectTruck(fleet *providers.Fleet, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectTruckRequest
		if !bind(w, r, validate, &req) {
			return
		}

		view, _ := mapView(fleet)
		focused, ok := view.Focus(req.ID)
		if !ok {
			utils.RespondError(w, http.StatusNotFound, "Truck not found")
			return
		}
		utils.RespondSuccess(w, http.StatusOK, map[string]interface{}{"map": focused})
	}
}
