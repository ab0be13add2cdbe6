package util

import (
	"fmt"
	"log"
	"os"

	"dm-server/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// PlotRoutePath generates an HTML file rendering a decoded route path.
// Debugging aid for inspecting what the provider returned without a map
// surface attached.
func PlotRoutePath(path []models.Point, outputFile string) {
	if len(path) == 0 {
		log.Println("[Plotter] Empty route path, nothing to plot")
		return
	}

	points := make([]opts.GeoData, 0, len(path))
	for i, p := range path {
		name := ""
		if i == 0 {
			name = "Origin"
		} else if i == len(path)-1 {
			name = "Destination"
		}
		points = append(points, opts.GeoData{Name: name, Value: []float64{p.Lng, p.Lat}})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Route Path Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("RoutePath", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outputFile)
	if err != nil {
		log.Printf("[Plotter] Failed to create HTML file: %v", err)
		return
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		log.Printf("[Plotter] Failed to render route path chart: %v", err)
		return
	}

	fmt.Println("Route path chart written to " + outputFile)
}
