package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	RunMetadata
	Times  []float64 `json:"times"`
	Prey   []float64 `json:"prey"`
	Pred   []float64 `json:"predator"`
	Energy []Float   `json:"energy"`
}

// ExportJSON writes a run with its trajectory as a single JSON document.
func ExportJSON(w io.Writer, meta RunMetadata, rows []Row) error {
	data := ExportData{
		RunMetadata: meta,
		Times:       make([]float64, len(rows)),
		Prey:        make([]float64, len(rows)),
		Pred:        make([]float64, len(rows)),
		Energy:      make([]Float, len(rows)),
	}

	for i, r := range rows {
		data.Times[i] = r.T
		data.Prey[i] = r.X
		data.Pred[i] = r.Y
		data.Energy[i] = Float(r.H)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
