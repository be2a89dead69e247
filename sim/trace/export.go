package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatAllowed(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return formatFloat(v)
}

// WriteTimelineCSV writes the per-tick samples as CSV with columns
// t, metric, replicas, desired, stabilized.
func WriteTimelineCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"t", "metric", "replicas", "desired", "stabilized"}); err != nil {
		return fmt.Errorf("writing timeline header: %w", err)
	}
	for _, s := range samples {
		row := []string{
			formatFloat(s.T),
			formatFloat(s.Metric),
			strconv.Itoa(s.Replicas),
			strconv.Itoa(s.DesiredRaw),
			strconv.Itoa(s.DesiredStabilized),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing timeline row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDecisionsCSV writes the sync-boundary decision log as CSV.
func WriteDecisionsCSV(w io.Writer, decisions []Decision) error {
	cw := csv.NewWriter(w)
	header := []string{"t", "metric", "ratio", "desired", "stabilized", "direction", "allowed", "applied", "replicas_after", "reason"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing decision header: %w", err)
	}
	for _, d := range decisions {
		row := []string{
			formatFloat(d.T),
			formatFloat(d.Metric),
			formatFloat(d.Ratio),
			strconv.Itoa(d.DesiredRaw),
			strconv.Itoa(d.DesiredStabilized),
			d.Direction,
			formatAllowed(d.AllowedChange),
			strconv.Itoa(d.AppliedChange),
			strconv.Itoa(d.ReplicasAfter),
			d.Reason,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing decision row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
