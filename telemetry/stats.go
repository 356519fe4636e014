package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// Summary holds whole-run aggregate statistics derived from a history.
type Summary struct {
	Days int `json:"days"`

	FinalPrey int `json:"final_prey"`
	FinalPred int `json:"final_pred"`
	PeakPrey  int `json:"peak_prey"`
	PeakPred  int `json:"peak_pred"`

	MeanPrey   float64 `json:"mean_prey"`
	MeanPred   float64 `json:"mean_pred"`
	StdDevPrey float64 `json:"stddev_prey"`
	StdDevPred float64 `json:"stddev_pred"`

	MeanResource float64 `json:"mean_resource"`

	FinalPreyEff float64 `json:"final_prey_eff"`
	FinalPredEff float64 `json:"final_pred_eff"`

	TotalKills int `json:"total_kills"`

	// CoexistenceDays counts days on which both populations were non-empty.
	CoexistenceDays int `json:"coexistence_days"`
}

// Summarize condenses a run's history into whole-run aggregates.
func Summarize(h *History) Summary {
	s := Summary{Days: h.Len()}
	if s.Days == 0 {
		return s
	}

	prey := make([]float64, s.Days)
	pred := make([]float64, s.Days)
	for i := 0; i < s.Days; i++ {
		prey[i] = float64(h.PreyCount[i])
		pred[i] = float64(h.PredCount[i])
		if h.PreyCount[i] > s.PeakPrey {
			s.PeakPrey = h.PreyCount[i]
		}
		if h.PredCount[i] > s.PeakPred {
			s.PeakPred = h.PredCount[i]
		}
		if h.PreyCount[i] > 0 && h.PredCount[i] > 0 {
			s.CoexistenceDays++
		}
		s.TotalKills += h.Kills[i]
	}

	s.FinalPrey = h.PreyCount[s.Days-1]
	s.FinalPred = h.PredCount[s.Days-1]
	s.FinalPreyEff = h.PreyAvgEff[s.Days-1]
	s.FinalPredEff = h.PredAvgEff[s.Days-1]

	s.MeanPrey = stat.Mean(prey, nil)
	s.MeanPred = stat.Mean(pred, nil)
	s.MeanResource = stat.Mean(h.Resource, nil)
	if s.Days > 1 {
		s.StdDevPrey = stat.StdDev(prey, nil)
		s.StdDevPred = stat.StdDev(pred, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("days", s.Days),
		slog.Int("final_prey", s.FinalPrey),
		slog.Int("final_pred", s.FinalPred),
		slog.Int("peak_prey", s.PeakPrey),
		slog.Int("peak_pred", s.PeakPred),
		slog.Float64("mean_prey", s.MeanPrey),
		slog.Float64("mean_pred", s.MeanPred),
		slog.Float64("mean_resource", s.MeanResource),
		slog.Float64("final_prey_eff", s.FinalPreyEff),
		slog.Float64("final_pred_eff", s.FinalPredEff),
		slog.Int("total_kills", s.TotalKills),
		slog.Int("coexistence_days", s.CoexistenceDays),
	)
}
