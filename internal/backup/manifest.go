package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the provenance record written at the backup root.
const ManifestFile = "backup_info.yaml"

// Manifest records where and when a completed backup run came from.
type Manifest struct {
	RunID     string         `yaml:"run_id"`
	Timestamp string         `yaml:"timestamp"`
	Server    string         `yaml:"server"`
	Format    string         `yaml:"format"`
	Counts    map[string]int `yaml:"resource_counts"`
}

func (e *Exporter) writeManifest(counts map[string]int) error {
	m := Manifest{
		RunID:     uuid.New().String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Server:    e.cfg.BaseURL(),
		Format:    e.cfg.Format,
		Counts:    counts,
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("serializing manifest: %w", err)
	}
	path := filepath.Join(e.cfg.BackupDir, ManifestFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
