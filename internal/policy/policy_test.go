package policy

import "testing"

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"coordinacion":  RoleCoordinacion,
		"documentacion": RoleDocumentacion,
		"cotizacion":    RoleCotizacion,
		"user":          RoleUser,
		"":              RoleUser,
		"superadmin":    RoleUser,
		"Coordinacion":  RoleUser,
	}
	for in, want := range cases {
		if got := ParseRole(in); got != want {
			t.Errorf("ParseRole(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPermissionMatrix(t *testing.T) {
	roles := []Role{RoleCoordinacion, RoleDocumentacion, RoleCotizacion, RoleUser}

	predicates := []struct {
		name    string
		fn      func(Role) bool
		allowed map[Role]bool
	}{
		{"CanManageAssignments", CanManageAssignments, map[Role]bool{RoleCoordinacion: true}},
		{"CanManageCatalog", CanManageCatalog, map[Role]bool{RoleCoordinacion: true}},
		{"CanManageColors", CanManageColors, map[Role]bool{RoleCoordinacion: true}},
		{"CanViewTeamProgress", CanViewTeamProgress, map[Role]bool{RoleCoordinacion: true}},
		{"CanSeeAllCalendars", CanSeeAllCalendars, map[Role]bool{RoleCoordinacion: true}},
		{"CanUpdateAnyChargeStatus", CanUpdateAnyChargeStatus, map[Role]bool{RoleCoordinacion: true}},
		{"CanUpdateOwnChargeStatus", CanUpdateOwnChargeStatus, map[Role]bool{
			RoleCoordinacion:  true,
			RoleDocumentacion: true,
			RoleCotizacion:    true,
		}},
	}

	for _, p := range predicates {
		for _, r := range roles {
			if got, want := p.fn(r), p.allowed[r]; got != want {
				t.Errorf("%s(%s) = %v, want %v", p.name, r, got, want)
			}
		}
	}
}
