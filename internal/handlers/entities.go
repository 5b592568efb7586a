package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fleet-dashboard/internal/detail"
	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/providers"
	"fleet-dashboard/internal/query"
	"fleet-dashboard/internal/shell"
	"fleet-dashboard/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// ListResponse is a list page plus the loading state of its collection
type ListResponse[T any] struct {
	query.Result[T]
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}

// DetailResponse is a found record with its tab data
type DetailResponse[T, A any] struct {
	Record T      `json:"record"`
	Aux    A      `json:"aux"`
	Back   string `json:"back"`
}

func listHandler[T any](p *providers.Provider[T], spec query.Spec[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := p.Snapshot()
		utils.RespondSuccess(w, http.StatusOK, ListResponse[T]{
			Result:    query.Apply(spec, state.Items, listParams(r)),
			IsLoading: state.IsLoading,
			Error:     state.Error,
		})
	}
}

type lookupFunc[T, A any] func(ctx context.Context, id string) (detail.Outcome[T, A], error)

// detailHandler answers 200 with the record, 202 while the collection is
// loading and 404 with a back link when the id is unknown
func detailHandler[T, A any](lookup lookupFunc[T, A], collection, noun string, log *logger.Logger) http.HandlerFunc {
	back := shell.ListPath(collection)
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		outcome, err := lookup(r.Context(), id)
		if err != nil {
			var fetchErr *providers.FetchFailedError
			if errors.As(err, &fetchErr) {
				log.WithError(err).WithField("id", id).Warn("⚠️  Detail lookup against failed collection")
				utils.RespondError(w, http.StatusServiceUnavailable, fetchErr.Message)
				return
			}
			log.WithError(err).WithField("id", id).Error("❌ Detail lookup failed")
			utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		switch outcome.Status {
		case detail.Loading:
			utils.RespondJSON(w, http.StatusAccepted, map[string]interface{}{
				"success": true,
				"status":  detail.Loading,
			})
		case detail.NotFound:
			utils.RespondJSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"status":  detail.NotFound,
				"error":   noun + " not found",
				"message": "The " + strings.ToLower(noun) + " you're looking for doesn't exist or has been removed.",
				"back":    back,
			})
		default:
			utils.RespondSuccess(w, http.StatusOK, DetailResponse[T, A]{
				Record: *outcome.Record,
				Aux:    *outcome.Aux,
				Back:   back,
			})
		}
	}
}

func ListTrucks(fleet *providers.Fleet) http.HandlerFunc {
	return listHandler(fleet.Trucks, query.Trucks)
}

func GetTruck(assembler *detail.Assembler, log *logger.Logger) http.HandlerFunc {
	return detailHandler[models.Truck, detail.TruckAux](assembler.Truck, "trucks", "Truck", log)
}

func ListDrivers(fleet *providers.Fleet) http.HandlerFunc {
	return listHandler(fleet.Drivers, query.Drivers)
}

func GetDriver(assembler *detail.Assembler, log *logger.Logger) http.HandlerFunc {
	return detailHandler[models.Driver, detail.DriverAux](assembler.Driver, "drivers", "Driver", log)
}

func ListDeliveries(fleet *providers.Fleet) http.HandlerFunc {
	return listHandler(fleet.Deliveries, query.Deliveries)
}

func GetDelivery(assembler *detail.Assembler, log *logger.Logger) http.HandlerFunc {
	return detailHandler[models.Delivery, detail.DeliveryAux](assembler.Delivery, "deliveries", "Delivery", log)
}
