package backup

import "github.com/rflorenc/foreman-backup/internal/models"

// DefaultRemoveKeys are the server-assigned fields stripped from every
// resource before it is written in ansible format.
var DefaultRemoveKeys = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// Sanitize recursively strips every key in remove from mappings at any depth
// of v, mutating in place. Sequence length and order are preserved; scalars
// are returned unchanged.
func Sanitize(v interface{}, remove map[string]bool) interface{} {
	switch node := v.(type) {
	case models.Resource:
		sanitizeMap(node, remove)
	case map[string]interface{}:
		sanitizeMap(node, remove)
	case []interface{}:
		for i, elem := range node {
			node[i] = Sanitize(elem, remove)
		}
	}
	return v
}

func sanitizeMap(m map[string]interface{}, remove map[string]bool) {
	for key := range m {
		if remove[key] {
			delete(m, key)
		}
	}
	for key, val := range m {
		m[key] = Sanitize(val, remove)
	}
}
