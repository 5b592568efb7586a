package models

// ChartKind is the renderer a chart is meant for
type ChartKind string

const (
	ChartLine  ChartKind = "line"
	ChartBar   ChartKind = "bar"
	ChartDonut ChartKind = "donut"
)

// Dataset is one series of a chart
type Dataset struct {
	Label  string    `json:"label,omitempty"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors,omitempty"`
	Fill   bool      `json:"fill,omitempty"`
}

// Chart is a renderer-agnostic chart description
type Chart struct {
	Title    string         `json:"title"`
	Kind     ChartKind      `json:"kind"`
	Labels   []string       `json:"labels"`
	Datasets []Dataset      `json:"datasets"`
	Options  map[string]any `json:"options,omitempty"`
}

// StatCard is a headline metric with its change against the previous period
type StatCard struct {
	Title  string  `json:"title"`
	Value  string  `json:"value"`
	Change float64 `json:"change"` // percent
}
