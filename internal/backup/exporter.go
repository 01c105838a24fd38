package backup

import (
	"fmt"
	"os"

	"github.com/rflorenc/foreman-backup/internal/config"
	"github.com/rflorenc/foreman-backup/internal/models"
)

// Exporter drives a full backup: for every resource type, in fixed order,
// list the entries, dereference each one, and hand the result to the Writer.
type Exporter struct {
	client ResourceClient
	cfg    *config.Config
	writer Writer
	log    func(string)
}

// NewExporter creates an Exporter. logger may be nil.
func NewExporter(client ResourceClient, cfg *config.Config, writer Writer, logger func(string)) *Exporter {
	return &Exporter{client: client, cfg: cfg, writer: writer, log: logger}
}

// Run performs the whole backup. The first failure aborts the run; resource
// types already written stay on disk. A manifest is written at the backup
// root once every type completed.
func (e *Exporter) Run() error {
	if err := os.MkdirAll(e.cfg.BackupDir, 0755); err != nil {
		return fmt.Errorf("creating backup dir: %w", err)
	}

	counts := make(map[string]int)
	for _, rt := range models.BackupTypes(e.cfg.Katello) {
		n, err := e.backupType(rt)
		if err != nil {
			return fmt.Errorf("%s: %w", rt.Name, err)
		}
		counts[rt.Name] = n
	}
	return e.writeManifest(counts)
}

// backupType backs up one resource type and returns how many resources it
// wrote out.
func (e *Exporter) backupType(rt models.ResourceType) (int, error) {
	summaries, err := e.client.ListResources(rt.APIPath)
	if err != nil {
		return 0, err
	}

	resources := make([]models.Resource, 0, len(summaries))
	for _, summary := range summaries {
		res, err := dereference(e.client, rt, summary)
		if err != nil {
			return 0, err
		}
		resources = append(resources, res)
	}

	e.logf("Backed up %d %s", len(resources), rt.Name)

	if err := e.writer.Write(rt.Name, resources, e.cfg.BackupDir); err != nil {
		return 0, err
	}
	return len(resources), nil
}

func (e *Exporter) logf(format string, args ...interface{}) {
	if e.log != nil {
		e.log(fmt.Sprintf(format, args...))
	}
}
