package authroles

import (
	domainauth "github.com/campuswell/cw-ui-api/internal/domain/auth"
)

// StaticRoleMapper maps IdP groups by simple string membership rules.
// Admin wins over counselor; anyone else is a student.
type StaticRoleMapper struct {
	AdminGroup     string
	CounselorGroup string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	for _, g := range groups {
		if m.CounselorGroup != "" && g == m.CounselorGroup {
			return domainauth.RoleCounselor
		}
	}
	return domainauth.RoleStudent
}
