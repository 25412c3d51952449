package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/aretw0/notestats/pkg/core"
	"gopkg.in/yaml.v3"
)

// Exporter writes the metric sections of a report in a machine-readable format.
type Exporter interface {
	Export(w io.Writer, sections map[string]core.MetricSet) error
}

// Exporters returns the standard set of exporters keyed by format name.
func Exporters() map[string]Exporter {
	return map[string]Exporter{
		"json": JSONExporter{},
		"yaml": YAMLExporter{},
		"csv":  CSVExporter{},
	}
}

// ExporterFor looks up an exporter by format name.
func ExporterFor(format string) (Exporter, error) {
	e, ok := Exporters()[format]
	if !ok {
		return nil, fmt.Errorf("unknown export format: %q (want json, yaml or csv)", format)
	}
	return e, nil
}

// --- JSON ---

// JSONExporter writes indented JSON.
type JSONExporter struct{}

func (JSONExporter) Export(w io.Writer, sections map[string]core.MetricSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sections)
}

// --- YAML ---

// YAMLExporter writes YAML with two space indentation.
type YAMLExporter struct{}

func (YAMLExporter) Export(w io.Writer, sections map[string]core.MetricSet) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(sections); err != nil {
		return err
	}
	return encoder.Close()
}

// --- CSV ---

// CSVExporter writes one section,metric,value row per metric, sorted by section then metric.
// Composite values (month and weekday series, the length distribution) are JSON encoded.
type CSVExporter struct{}

func (CSVExporter) Export(w io.Writer, sections map[string]core.MetricSet) error {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"section", "metric", "value"}); err != nil {
		return err
	}
	for _, name := range names {
		set := sections[name]
		for _, key := range set.Keys() {
			if err := cw.Write([]string{name, key, MarshalCSVValue(set[key])}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalCSVValue converts a value to a string, using JSON for maps and slices.
func MarshalCSVValue(v any) string {
	switch v.(type) {
	case map[string]any, []any, map[string]int, []map[string]any, []string:
		b, err := json.Marshal(v)
		if err == nil {
			return string(b)
		}
	}
	return fmt.Sprintf("%v", v)
}
