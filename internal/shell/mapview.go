package shell

import (
	"encoding/json"
	"fmt"

	"fleet-dashboard/internal/models"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

var DefaultCenter = models.Coordinates{-96, 38}

const (
	DefaultZoom = 3.5
	FocusZoom   = 12
)

// LoadBand colors a marker's load bar
type LoadBand string

const (
	LoadNormal LoadBand = "normal"
	LoadHigh   LoadBand = "high"
	LoadDanger LoadBand = "danger"
)

func loadBand(ratio float64) LoadBand {
	switch {
	case ratio > 0.9:
		return LoadDanger
	case ratio > 0.75:
		return LoadHigh
	default:
		return LoadNormal
	}
}

// Marker is one truck on the map
type Marker struct {
	models.TruckLocation
	Pulse    bool     `json:"pulse"`
	LoadBand LoadBand `json:"loadBand"`
	Summary  string   `json:"summary"`
}

func NewMarker(l models.TruckLocation) Marker {
	return Marker{
		TruckLocation: l,
		Pulse:         l.Status == models.TruckStatusActive,
		LoadBand:      loadBand(l.LoadRatio()),
		Summary:       fmt.Sprintf("%g/%g tons", l.Load, l.Capacity),
	}
}

// MapView is the camera plus the markers to draw
type MapView struct {
	Center   models.Coordinates `json:"center"`
	Zoom     float64            `json:"zoom"`
	Markers  []Marker           `json:"markers"`
	Selected *Marker            `json:"selected,omitempty"`
}

// NewMapView frames the whole country
func NewMapView(locations []models.TruckLocation) MapView {
	markers := make([]Marker, len(locations))
	for i, l := range locations {
		markers[i] = NewMarker(l)
	}
	return MapView{Center: DefaultCenter, Zoom: DefaultZoom, Markers: markers}
}

// Focus centers the view on one truck and opens its popup. It reports
// false when id is not on the map.
func (m MapView) Focus(id string) (MapView, bool) {
	for i := range m.Markers {
		if m.Markers[i].ID == id {
			selected := m.Markers[i]
			m.Center = selected.Coordinates
			m.Zoom = FocusZoom
			m.Selected = &selected
			return m, true
		}
	}
	return m, false
}

// FeatureCollection encodes markers as GeoJSON points
func FeatureCollection(markers []Marker) ([]byte, error) {
	fc := geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(markers))}
	for _, m := range markers {
		point := geom.NewPointFlat(geom.XY, []float64{m.Coordinates.Lon(), m.Coordinates.Lat()})
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       m.ID,
			Geometry: point,
			Properties: map[string]interface{}{
				"name":       m.Name,
				"driver":     m.Driver,
				"status":     m.Status,
				"location":   m.Location,
				"load":       m.Load,
				"capacity":   m.Capacity,
				"lastUpdate": m.LastUpdate,
				"loadBand":   m.LoadBand,
			},
		})
	}
	return json.Marshal(&fc)
}
