package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/san-kum/lvsim/internal/lotka"
)

// Time column names accepted by WriteTrajectory.
const (
	ColumnTime = "t"
	ColumnStep = "step"
)

// Row is one stored state as read back from trajectory.csv. Only one of T and
// Step is present in a given file.
type Row struct {
	T    float64 `csv:"t"`
	Step int     `csv:"step"`
	X    float64 `csv:"x"`
	Y    float64 `csv:"y"`
	H    float64 `csv:"H"`
}

type timeRow struct {
	T float64 `csv:"t"`
	X float64 `csv:"x"`
	Y float64 `csv:"y"`
	H float64 `csv:"H"`
}

type stepRow struct {
	Step int     `csv:"step"`
	X    float64 `csv:"x"`
	Y    float64 `csv:"y"`
	H    float64 `csv:"H"`
}

// Rows flattens the history of sim. T is always i·dt and Step is i.
func Rows(sim *lotka.Simulation) []Row {
	hist := sim.History()
	rows := make([]Row, len(hist))
	for i, s := range hist {
		rows[i] = Row{T: sim.Time(i), Step: i, X: s.X, Y: s.Y, H: s.H}
	}
	return rows
}

// WriteTrajectory writes rows as CSV with header "t,x,y,H" or
// "step,x,y,H" depending on column.
func WriteTrajectory(w io.Writer, rows []Row, column string) error {
	switch column {
	case ColumnTime, "":
		out := make([]timeRow, len(rows))
		for i, r := range rows {
			out[i] = timeRow{T: r.T, X: r.X, Y: r.Y, H: r.H}
		}
		return gocsv.Marshal(out, w)
	case ColumnStep:
		out := make([]stepRow, len(rows))
		for i, r := range rows {
			out[i] = stepRow{Step: r.Step, X: r.X, Y: r.Y, H: r.H}
		}
		return gocsv.Marshal(out, w)
	default:
		return fmt.Errorf("storage: unknown time column %q", column)
	}
}

// ReadTrajectory parses a table produced by WriteTrajectory.
func ReadTrajectory(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
