package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/bva/internal/model"
)

// ReportStore persists and retrieves boundary value reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) (m.Path, error)
	LoadReport(path m.Path) (m.Report, error)
}

// LocalReportStore writes one YAML file per report, named after the method
// and a hash of the report content.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SaveReport writes report into dir and returns the file path.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s.yaml", unsafeFileChars.ReplaceAllString(report.Method, "_"), rs.computeReportHash(data))
	path := filepath.Join(string(dir), name)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return m.Path(path), nil
}

// LoadReport reads a report written by SaveReport.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to read report: %w", err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return report, nil
}

func (rs *LocalReportStore) computeReportHash(data []byte) string {
	sum := sha256.Sum256(data)

	return fmt.Sprintf("%x", sum[:8])
}
