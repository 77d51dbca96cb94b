package report

import (
	"encoding/json"
	"fmt"

	"github.com/purnamedha/riskscan/internal/catalog"
	"github.com/purnamedha/riskscan/internal/scan"
)

// jsonReport wraps the scan result with the catalog legends so a consumer
// can resolve layer and metric codes without a copy of the catalog.
type jsonReport struct {
	*scan.Result
	LayerLegend  map[string]string `json:"layers"`
	MetricLegend map[string]string `json:"metrics"`
}

// JSON renders the scan result as indented JSON.
func JSON(cat *catalog.Catalog, res *scan.Result) ([]byte, error) {
	layers := make(map[string]string, len(cat.Layers))
	for _, l := range cat.Layers {
		layers[l.Code] = l.Name
	}
	metricNames := make(map[string]string, len(cat.Metrics))
	for _, m := range cat.Metrics {
		metricNames[m.Code] = m.Name
	}

	out, err := json.MarshalIndent(jsonReport{Result: res, LayerLegend: layers, MetricLegend: metricNames}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return out, nil
}
