package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fleet-dashboard/internal/query"
	"fleet-dashboard/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// bind decodes and validates a JSON body. On failure it writes a 400 and
// returns false. Validation failures are reported per field.
func bind(w http.ResponseWriter, r *http.Request, validate *validator.Validate, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	switch err := validate.Struct(req).(type) {
	case nil:
		return true
	case validator.ValidationErrors:
		fields := make(map[string][]string)
		for _, ferr := range err {
			fields[ferr.Field()] = append(fields[ferr.Field()], ferr.Tag())
		}
		utils.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Validation failed",
			"fields":  fields,
		})
	default:
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
	}
	return false
}

// listParams reads the list controls from the query string
func listParams(r *http.Request) query.Params {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	return query.Params{
		Search:    q.Get("search"),
		Status:    q.Get("status"),
		Sort:      q.Get("sort"),
		Direction: query.Direction(q.Get("direction")),
		Page:      page,
	}
}
