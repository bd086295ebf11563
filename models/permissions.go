package models

type Permission struct {
	Role      UserRole
	Resource  string
	Action    string
	CanAccess bool
}

// Static permission table consulted by the route gates. Vendors only see
// their own data; consultants review; admins see everything.
var permissionTable = []Permission{
	{UserRoleAdmin, "users", "manage", true},
	{UserRoleAdmin, "reports", "read", true},
	{UserRoleAdmin, "activity", "read", true},
	{UserRoleAdmin, "artifacts", "download", true},
	{UserRoleConsultant, "reviews", "write", true},
	{UserRoleConsultant, "reports", "read", true},
	{UserRoleConsultant, "artifacts", "download", true},
	{UserRoleVendor, "submissions", "write", true},
}

func CanAccess(role UserRole, resource, action string) bool {
	for _, p := range permissionTable {
		if p.Role == role && p.Resource == resource && p.Action == action {
			return p.CanAccess
		}
	}
	return false
}
