// Package shell is the navigation and presentation layer of the
// dashboard: route resolution, the map view and chart/stat assembly.
package shell

import (
	"path"
	"strings"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Layout is the page chrome a view renders in
type Layout string

const (
	LayoutAuth      Layout = "auth"
	LayoutDashboard Layout = "dashboard"
)

// View names
const (
	ViewLogin          = "login"
	ViewOverview       = "overview"
	ViewMap            = "map"
	ViewAnalytics      = "analytics"
	ViewTrucks         = "trucks"
	ViewTruckDetail    = "truck_detail"
	ViewDrivers        = "drivers"
	ViewDriverDetail   = "driver_detail"
	ViewDeliveries     = "deliveries"
	ViewDeliveryDetail = "delivery_detail"
)

// View is a resolved page
type View struct {
	Name   string `json:"name"`
	Layout Layout `json:"layout"`
	ID     string `json:"id,omitempty"`
	Back   string `json:"back,omitempty"`
}

// Resolution is either a view or a redirect target
type Resolution struct {
	View     *View  `json:"view,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// collections maps a list segment to its list and detail view names
var collections = map[string][2]string{
	"trucks":     {ViewTrucks, ViewTruckDetail},
	"drivers":    {ViewDrivers, ViewDriverDetail},
	"deliveries": {ViewDeliveries, ViewDeliveryDetail},
}

var sections = map[string]string{
	"map":       ViewMap,
	"analytics": ViewAnalytics,
}

func redirect(to string) Resolution {
	return Resolution{Redirect: to}
}

func view(v View) Resolution {
	return Resolution{View: &v}
}

// Resolve maps a browser path to a view. The root and every unknown path
// redirect to the dashboard.
func Resolve(p string) Resolution {
	clean := path.Clean("/" + p)
	if clean == LoginPath {
		return view(View{Name: ViewLogin, Layout: LayoutAuth})
	}
	if clean != DashboardPath && !strings.HasPrefix(clean, DashboardPath+"/") {
		return redirect(DashboardPath)
	}

	parts := strings.Split(strings.TrimPrefix(clean, DashboardPath), "/")[1:]
	switch len(parts) {
	case 0:
		return view(View{Name: ViewOverview, Layout: LayoutDashboard})
	case 1:
		if name, ok := sections[parts[0]]; ok {
			return view(View{Name: name, Layout: LayoutDashboard})
		}
		if names, ok := collections[parts[0]]; ok {
			return view(View{Name: names[0], Layout: LayoutDashboard})
		}
	case 2:
		if names, ok := collections[parts[0]]; ok && parts[1] != "" {
			return view(View{Name: names[1], Layout: LayoutDashboard, ID: parts[1], Back: ListPath(parts[0])})
		}
	}
	return redirect(DashboardPath)
}

// Guard sends anonymous visitors of dashboard views to the login page
// when authentication is enforced
func Guard(r Resolution, authenticated, required bool) Resolution {
	if !required || authenticated || r.View == nil || r.View.Layout != LayoutDashboard {
		return r
	}
	return redirect(LoginPath)
}

// ListPath is the list page of a collection, used as the back link of
// detail pages
func ListPath(collection string) string {
	return DashboardPath + "/" + collection
}

// DetailPath is the detail page of one record
func DetailPath(collection, id string) string {
	return ListPath(collection) + "/" + id
}
