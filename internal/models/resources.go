package models

// Resource represents a generic Foreman API record (host, domain, user, etc.),
// either a full record or the abbreviated entry returned by a list call.
type Resource map[string]interface{}

// ResourceType describes one backupable Foreman resource type.
type ResourceType struct {
	Name        string // "architectures", "hosts", etc.; also the output directory/file name
	APIPath     string // "/api/architectures"
	KatelloOnly bool   // only backed up when Katello support is enabled
}

// backupOrder is the fixed order resource types are exported in.
// Katello-gated types come last.
var backupOrder = []ResourceType{
	{Name: "architectures", APIPath: "/api/architectures"},
	{Name: "common_parameters", APIPath: "/api/common_parameters"},
	{Name: "compute_resources", APIPath: "/api/compute_resources"},
	{Name: "compute_profiles", APIPath: "/api/compute_profiles"},
	{Name: "config_templates", APIPath: "/api/config_templates"},
	{Name: "domains", APIPath: "/api/domains"},
	{Name: "environments", APIPath: "/api/environments"},
	{Name: "hosts", APIPath: "/api/hosts"},
	{Name: "hostgroups", APIPath: "/api/hostgroups"},
	{Name: "media", APIPath: "/api/media"},
	{Name: "operatingsystems", APIPath: "/api/operatingsystems"},
	{Name: "ptables", APIPath: "/api/ptables"},
	{Name: "roles", APIPath: "/api/roles"},
	{Name: "smart_proxies", APIPath: "/api/smart_proxies"},
	{Name: "subnets", APIPath: "/api/subnets"},
	{Name: "users", APIPath: "/api/users"},
	{Name: "locations", APIPath: "/api/locations", KatelloOnly: true},
	{Name: "organizations", APIPath: "/api/organizations", KatelloOnly: true},
}

// BackupTypes returns the resource types to back up, in order.
// Locations and organizations are included only when katello is true.
func BackupTypes(katello bool) []ResourceType {
	types := make([]ResourceType, 0, len(backupOrder))
	for _, rt := range backupOrder {
		if rt.KatelloOnly && !katello {
			continue
		}
		types = append(types, rt)
	}
	return types
}
