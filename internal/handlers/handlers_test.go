package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleet-dashboard/internal/detail"
	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/providers"
	"fleet-dashboard/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Status  string          `json:"status"`
	Back    string          `json:"back"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func loadedFleet(t *testing.T) *providers.Fleet {
	t.Helper()
	fleet := providers.NewFleet(time.Millisecond, logger.Discard())
	t.Cleanup(fleet.Dispose)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	fleet.Activate(ctx)
	require.NoError(t, fleet.Wait(ctx))
	return fleet
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLoginLogoutStatus(t *testing.T) {
	store := session.NewStore(session.NewMemoryStorage(), logger.Discard())
	tokens := session.NewTokens("secret", time.Hour)

	r := chi.NewRouter()
	r.Post("/login", Login(store, tokens, validator.New(), logger.Discard()))
	r.Post("/logout", Logout(store))
	r.Get("/status", GetAuthStatus(store))

	rec := serve(r, http.MethodPost, "/login", `{"email":"dispatch@roadrunner.com","name":"Dispatch"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var login LoginResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &login))
	assert.True(t, login.Persisted)
	assert.Equal(t, "/dashboard", login.Redirect)
	parsed, err := tokens.Parse(login.Token)
	require.NoError(t, err)
	assert.Equal(t, "Dispatch", parsed.Name)

	var status AuthStatusResponse
	require.NoError(t, json.Unmarshal(decode(t, serve(r, http.MethodGet, "/status", "")).Data, &status))
	assert.True(t, status.Authenticated)
	require.NotNil(t, status.User)
	assert.Equal(t, "dispatch@roadrunner.com", status.User.Email)

	rec = serve(r, http.MethodPost, "/logout", "")
	assert.JSONEq(t, `{"success":true,"data":{"redirect":"/login"}}`, rec.Body.String())

	status = AuthStatusResponse{}
	require.NoError(t, json.Unmarshal(decode(t, serve(r, http.MethodGet, "/status", "")).Data, &status))
	assert.False(t, status.Authenticated)
	assert.Nil(t, status.User)
}

func TestLoginValidation(t *testing.T) {
	store := session.NewStore(session.NewMemoryStorage(), logger.Discard())
	h := Login(store, session.NewTokens("secret", time.Hour), validator.New(), logger.Discard())

	rec := serve(h, http.MethodPost, "/login", `{"email":"not-an-email","name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Fields map[string][]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"email"}, body.Fields["Email"])
	assert.Equal(t, []string{"required"}, body.Fields["Name"])
	assert.False(t, store.IsAuthenticated())

	rec = serve(h, http.MethodPost, "/login", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTrucks(t *testing.T) {
	fleet := loadedFleet(t)
	rec := serve(ListTrucks(fleet), http.MethodGet, "/api/trucks?status=active&sort=load&direction=desc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list ListResponse[models.Truck]
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
	assert.False(t, list.IsLoading)
	assert.Equal(t, 8, list.Total)
	require.Len(t, list.Items, 4)
	assert.Equal(t, "T-104", list.Items[0].ID)
	for _, truck := range list.Items {
		assert.Equal(t, models.TruckStatusActive, truck.Status)
	}
}

func TestListDriversSearch(t *testing.T) {
	fleet := loadedFleet(t)
	rec := serve(ListDrivers(fleet), http.MethodGet, "/api/drivers?search=chicago", "")

	var list ListResponse[models.Driver]
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "D-101", list.Items[0].ID)
}

func TestListDeliveriesNoMatches(t *testing.T) {
	fleet := loadedFleet(t)
	rec := serve(ListDeliveries(fleet), http.MethodGet, "/api/deliveries?search=zzz", "")

	var list ListResponse[models.Delivery]
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
	assert.Empty(t, list.Items)
	assert.Equal(t, "no_matches", string(list.Empty))
}

func TestListWhileLoading(t *testing.T) {
	fleet := providers.NewFleet(time.Hour, logger.Discard())
	defer fleet.Dispose()
	fleet.Activate(context.Background())

	rec := serve(ListTrucks(fleet), http.MethodGet, "/api/trucks", "")
	var list ListResponse[models.Truck]
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
	assert.True(t, list.IsLoading)
	assert.Empty(t, list.Items)
}

func detailRouter(assembler *detail.Assembler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/trucks/{id}", GetTruck(assembler, logger.Discard()))
	r.Get("/api/drivers/{id}", GetDriver(assembler, logger.Discard()))
	r.Get("/api/deliveries/{id}", GetDelivery(assembler, logger.Discard()))
	return r
}

func TestGetDetail(t *testing.T) {
	r := detailRouter(detail.NewAssembler(loadedFleet(t), nil, 0))

	rec := serve(r, http.MethodGet, "/api/trucks/T-103", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var truck DetailResponse[models.Truck, detail.TruckAux]
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &truck))
	assert.Equal(t, "T-103", truck.Record.ID)
	assert.Equal(t, models.Idle{}, truck.Record.Trip)
	assert.Equal(t, "/dashboard/trucks", truck.Back)
	assert.NotEmpty(t, truck.Aux.Maintenance)

	rec = serve(r, http.MethodGet, "/api/deliveries/DEL-1092", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDetailNotFound(t *testing.T) {
	r := detailRouter(detail.NewAssembler(loadedFleet(t), nil, 0))

	rec := serve(r, http.MethodGet, "/api/drivers/D-999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "not_found", env.Status)
	assert.Equal(t, "Driver not found", env.Error)
	assert.Equal(t, "/dashboard/drivers", env.Back)
}

func TestGetDetailLoading(t *testing.T) {
	fleet := providers.NewFleet(time.Hour, logger.Discard())
	defer fleet.Dispose()
	fleet.Activate(context.Background())

	r := detailRouter(detail.NewAssembler(fleet, nil, 0))
	rec := serve(r, http.MethodGet, "/api/deliveries/DEL-1092", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "loading", decode(t, rec).Status)
}

func TestMapEndpoints(t *testing.T) {
	fleet := loadedFleet(t)

	rec := serve(GetMapLocations(fleet), http.MethodGet, "/api/map/locations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var locations struct {
		Map struct {
			Center  [2]float64        `json:"center"`
			Zoom    float64           `json:"zoom"`
			Markers []json.RawMessage `json:"markers"`
		} `json:"map"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &locations))
	assert.Equal(t, [2]float64{-96, 38}, locations.Map.Center)
	assert.Equal(t, 3.5, locations.Map.Zoom)
	assert.Len(t, locations.Map.Markers, 8)

	geo := serve(GetMapGeoJSON(fleet, logger.Discard()), http.MethodGet, "/api/map/locations.geojson", "")
	assert.Equal(t, "application/geo+json", geo.Header().Get("Content-Type"))
	assert.Contains(t, geo.Body.String(), `"FeatureCollection"`)

	sel := SelectTruck(fleet, validator.New())
	rec = serve(sel, http.MethodPost, "/api/map/select", `{"id":"T-101"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"zoom":12`)

	assert.Equal(t, http.StatusNotFound, serve(sel, http.MethodPost, "/api/map/select", `{"id":"T-000"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(sel, http.MethodPost, "/api/map/select", `{}`).Code)
}

func TestDashboardAndAnalytics(t *testing.T) {
	fleet := loadedFleet(t)
	store := session.NewStore(session.NewMemoryStorage(), logger.Discard())
	require.NoError(t, store.Login(context.Background(), models.Session{Email: "a@b.com", Name: "Avery"}))

	rec := serve(GetDashboard(fleet, store), http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome back, Avery")

	rec = serve(GetAnalytics(), http.MethodGet, "/api/analytics?range=month", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"range":"month"`)

	assert.Equal(t, http.StatusBadRequest, serve(GetAnalytics(), http.MethodGet, "/api/analytics?range=decade", "").Code)

	export := serve(ExportAnalytics(logger.Discard()), http.MethodGet, "/api/analytics/export?range=week", "")
	require.Equal(t, http.StatusOK, export.Code)
	assert.Equal(t, xlsxContentType, export.Header().Get("Content-Type"))
	assert.Contains(t, export.Header().Get("Content-Disposition"), "fleet-analytics-week.xlsx")
	assert.True(t, bytes.HasPrefix(export.Body.Bytes(), []byte("PK")), "xlsx is a zip archive")
}

func TestNavigate(t *testing.T) {
	store := session.NewStore(session.NewMemoryStorage(), logger.Discard())

	open := Navigate(store, false)
	rec := serve(open, http.MethodGet, "/dashboard/trucks/T-101", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"truck_detail"`)

	rec = serve(open, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	guarded := Navigate(store, true)
	rec = serve(guarded, http.MethodGet, "/dashboard/map", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	require.NoError(t, store.Login(context.Background(), models.Session{Email: "a@b.com", Name: "A"}))
	assert.Equal(t, http.StatusOK, serve(guarded, http.MethodGet, "/dashboard/map", "").Code)
}
