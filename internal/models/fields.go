package models

import "encoding/json"

// exportNameKeys are the fields a resource file name is derived from,
// in priority order.
var exportNameKeys = []string{"title", "login", "name"}

// ResourceID extracts the numeric ID from a Resource, 0 if absent.
func ResourceID(r Resource) int {
	return toInt(r["id"])
}

// HasID reports whether the resource carries an id field at all.
// List responses for some types embed the full record and have none.
func HasID(r Resource) bool {
	_, ok := r["id"]
	return ok
}

// ExportName returns the value used to name a resource's backup file:
// title, then login, then name. Empty string if none is present.
func ExportName(r Resource) string {
	for _, key := range exportNameKeys {
		if v := StringField(r, key); v != "" {
			return v
		}
	}
	return ""
}

// StringField safely extracts a string field, returning "" if nil or absent.
func StringField(r Resource, field string) string {
	if v, ok := r[field].(string); ok {
		return v
	}
	return ""
}

// toInt converts various numeric types to int.
func toInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	}
	return 0
}
