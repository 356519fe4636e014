package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/harshith718/ecolens/config"
)

// OutputManager writes run artifacts into a single output directory: the
// history log (JSON and CSV), a config snapshot, and a summary report.
type OutputManager struct {
	dir string
}

// NewOutputManager creates an output manager and its output directory.
// Returns nil if dir is empty (output disabled); a nil manager is a no-op.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// Dir returns the output directory, or "" for a disabled manager.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteHistory serializes the full history to history.json and returns the
// file path.
func (om *OutputManager) WriteHistory(h *History) (string, error) {
	if om == nil {
		return "", nil
	}
	path := filepath.Join(om.dir, "history.json")
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling history: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing history: %w", err)
	}
	return path, nil
}

// WriteCSV writes the history as one CSV row per day and returns the file path.
func (om *OutputManager) WriteCSV(h *History) (string, error) {
	if om == nil {
		return "", nil
	}
	path := filepath.Join(om.dir, "history.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating history.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal(h.Rows(), f); err != nil {
		return "", fmt.Errorf("writing history.csv: %w", err)
	}
	return path, nil
}

// WriteConfig saves the run's configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// Report is the run summary document: what ran, with which parameters, and
// where the artifacts went.
type Report struct {
	Description string                  `json:"description"`
	Parameters  config.RunConfig        `json:"parameters"`
	Population  config.PopulationConfig `json:"population"`
	Summary     Summary                 `json:"summary"`
	Graphs      []string                `json:"graphs"`
	Log         string                  `json:"log"`
}

// WriteReport writes report.json tying together the run parameters, the
// whole-run summary, and the paths of the produced artifacts.
func (om *OutputManager) WriteReport(cfg *config.Config, summary Summary, graphs []string, logPath string) (string, error) {
	if om == nil {
		return "", nil
	}
	report := Report{
		Description: "EcoLens predator-prey-resource simulation",
		Parameters:  cfg.Run,
		Population:  cfg.Population,
		Summary:     summary,
		Graphs:      graphs,
		Log:         logPath,
	}
	path := filepath.Join(om.dir, "report.json")
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
