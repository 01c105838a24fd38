package backup

import (
	"errors"

	"github.com/rflorenc/foreman-backup/internal/foreman"
	"github.com/rflorenc/foreman-backup/internal/models"
)

// ResourceClient is the part of the Foreman API the Exporter consumes.
type ResourceClient interface {
	ListResources(apiPath string) ([]models.Resource, error)
	GetResource(apiPath string, id int) (models.Resource, error)
}

// dereference resolves a list entry to its full record. Entries without an
// id field already embed the full record and pass through without a fetch.
// A 404 on the fetch also falls back to the list entry: Foreman answers 404
// for ids taken from its own list output on some endpoints, and the list
// entry is the best available copy of the same resource. Any other fetch
// failure aborts the run.
func dereference(client ResourceClient, rt models.ResourceType, summary models.Resource) (models.Resource, error) {
	if !models.HasID(summary) {
		return summary, nil
	}
	full, err := client.GetResource(rt.APIPath, models.ResourceID(summary))
	if err != nil {
		var apiErr *foreman.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return summary, nil
		}
		return nil, err
	}
	return full, nil
}
