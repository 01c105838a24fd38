package backup

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rflorenc/foreman-backup/internal/config"
	"github.com/rflorenc/foreman-backup/internal/models"
)

// Writer persists the dereferenced resources of one type under the backup
// root. Existing files are overwritten so a re-run replaces prior output.
type Writer interface {
	Write(typeName string, resources []models.Resource, rootDir string) error
}

// NewWriter returns the Writer for the configured output format.
func NewWriter(format string, logger func(string)) Writer {
	if format == config.FormatAnsible {
		return &AggregateWriter{}
	}
	return &PerFileWriter{Log: logger}
}

// safeName replaces path separators so a resource name is usable as a filename.
var safeName = strings.NewReplacer("/", "_", "\\", "_").Replace

// PerFileWriter writes each resource as one self-contained YAML document in
// <root>/<type>/<title|login|name>.yaml. Resources that carry none of the
// naming fields are skipped with a diagnostic.
type PerFileWriter struct {
	Log func(string)
}

func (w *PerFileWriter) Write(typeName string, resources []models.Resource, rootDir string) error {
	dir := filepath.Join(rootDir, typeName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	for _, res := range resources {
		name := models.ExportName(res)
		if name == "" {
			w.logf("  WARNING: skipping %s resource without title, login or name (id=%d)",
				typeName, models.ResourceID(res))
			continue
		}
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("serializing %s %q: %w", typeName, name, err)
		}
		path := filepath.Join(dir, safeName(name)+".yaml")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

func (w *PerFileWriter) logf(format string, args ...interface{}) {
	if w.Log != nil {
		w.Log(fmt.Sprintf(format, args...))
	}
}

// AggregateWriter writes all resources of a type into a single file
// <root>/<type>, shaped as an Ansible variables document: one
// foreman_<type> key bound to the sanitized resource sequence, each element
// tagged state: present for the downstream apply step.
type AggregateWriter struct{}

func (w *AggregateWriter) Write(typeName string, resources []models.Resource, rootDir string) error {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	fmt.Fprintf(&buf, "foreman_%s: ", typeName)

	if len(resources) > 0 {
		entries := make([]interface{}, 0, len(resources))
		for _, res := range resources {
			Sanitize(res, DefaultRemoveKeys)
			res["state"] = "present"
			entries = append(entries, map[string]interface{}(res))
		}
		buf.WriteByte('\n')
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("serializing %s: %w", typeName, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("serializing %s: %w", typeName, err)
		}
	}

	path := filepath.Join(rootDir, typeName)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
