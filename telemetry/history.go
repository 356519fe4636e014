// Package telemetry records per-day aggregates for a simulation run and
// writes them out as JSON, CSV, and a summary report.
package telemetry

import "log/slog"

// DayStats holds the aggregates recorded at the end of one simulated day.
type DayStats struct {
	Day        int     `csv:"day" json:"day"`
	PreyCount  int     `csv:"prey_count" json:"prey_count"`
	PredCount  int     `csv:"pred_count" json:"pred_count"`
	Resource   float64 `csv:"resource" json:"resource"`
	PreyAvgEff float64 `csv:"prey_avg_eff" json:"prey_avg_eff"`
	PredAvgEff float64 `csv:"pred_avg_eff" json:"pred_avg_eff"`

	// Event counts for the day
	Kills      int `csv:"kills" json:"kills"`
	PreyBirths int `csv:"prey_births" json:"prey_births"`
	PredBirths int `csv:"pred_births" json:"pred_births"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s DayStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("day", s.Day),
		slog.Int("prey", s.PreyCount),
		slog.Int("pred", s.PredCount),
		slog.Float64("resource", s.Resource),
		slog.Float64("prey_avg_eff", s.PreyAvgEff),
		slog.Float64("pred_avg_eff", s.PredAvgEff),
		slog.Int("kills", s.Kills),
		slog.Int("prey_births", s.PreyBirths),
		slog.Int("pred_births", s.PredBirths),
	)
}

// History holds the full time series of a run: one entry per metric per day,
// all series always equal in length. The engine appends exactly once per day;
// everything downstream (report writer, charts) only reads.
type History struct {
	Day        []int     `json:"day"`
	PreyCount  []int     `json:"prey_count"`
	PredCount  []int     `json:"pred_count"`
	Resource   []float64 `json:"resource"`
	PreyAvgEff []float64 `json:"prey_avg_eff"`
	PredAvgEff []float64 `json:"pred_avg_eff"`
	Kills      []int     `json:"kills"`
	PreyBirths []int     `json:"prey_births"`
	PredBirths []int     `json:"pred_births"`
}

// NewHistory creates a history with capacity for the given number of days.
func NewHistory(days int) *History {
	return &History{
		Day:        make([]int, 0, days),
		PreyCount:  make([]int, 0, days),
		PredCount:  make([]int, 0, days),
		Resource:   make([]float64, 0, days),
		PreyAvgEff: make([]float64, 0, days),
		PredAvgEff: make([]float64, 0, days),
		Kills:      make([]int, 0, days),
		PreyBirths: make([]int, 0, days),
		PredBirths: make([]int, 0, days),
	}
}

// Append records one day's aggregates across every series.
func (h *History) Append(s DayStats) {
	h.Day = append(h.Day, s.Day)
	h.PreyCount = append(h.PreyCount, s.PreyCount)
	h.PredCount = append(h.PredCount, s.PredCount)
	h.Resource = append(h.Resource, s.Resource)
	h.PreyAvgEff = append(h.PreyAvgEff, s.PreyAvgEff)
	h.PredAvgEff = append(h.PredAvgEff, s.PredAvgEff)
	h.Kills = append(h.Kills, s.Kills)
	h.PreyBirths = append(h.PreyBirths, s.PreyBirths)
	h.PredBirths = append(h.PredBirths, s.PredBirths)
}

// Len returns the number of recorded days.
func (h *History) Len() int {
	return len(h.Day)
}

// At returns the recorded stats for one day.
func (h *History) At(i int) DayStats {
	return DayStats{
		Day:        h.Day[i],
		PreyCount:  h.PreyCount[i],
		PredCount:  h.PredCount[i],
		Resource:   h.Resource[i],
		PreyAvgEff: h.PreyAvgEff[i],
		PredAvgEff: h.PredAvgEff[i],
		Kills:      h.Kills[i],
		PreyBirths: h.PreyBirths[i],
		PredBirths: h.PredBirths[i],
	}
}

// Rows returns the history as one record per day, for CSV export.
func (h *History) Rows() []DayStats {
	rows := make([]DayStats, h.Len())
	for i := range rows {
		rows[i] = h.At(i)
	}
	return rows
}
