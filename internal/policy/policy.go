// Package policy holds the role model and its permission predicates.
// Roles form a closed set; every check is a pure function over Role so
// the permission matrix stays exhaustively testable.
package policy

type Role string

const (
	// RoleCoordinacion is the operations manager.
	RoleCoordinacion Role = "coordinacion"
	// RoleDocumentacion and RoleCotizacion are the two operational roles.
	RoleDocumentacion Role = "documentacion"
	RoleCotizacion    Role = "cotizacion"
	RoleUser          Role = "user"
)

func ParseRole(s string) Role {
	switch Role(s) {
	case RoleCoordinacion, RoleDocumentacion, RoleCotizacion:
		return Role(s)
	default:
		return RoleUser
	}
}

// CanManageAssignments reports whether the role may add, remove or
// replace the responsibles of any event.
func CanManageAssignments(r Role) bool {
	return r == RoleCoordinacion
}

// CanManageCatalog reports whether the role may edit the activity catalog.
func CanManageCatalog(r Role) bool {
	return r == RoleCoordinacion
}

// CanManageColors reports whether the role may edit user display colors.
func CanManageColors(r Role) bool {
	return r == RoleCoordinacion
}

// CanViewTeamProgress reports whether the role may see team-wide
// progress and cross-user data.
func CanViewTeamProgress(r Role) bool {
	return r == RoleCoordinacion
}

// CanSeeAllCalendars reports whether the role sees every calendar, not
// just its own and those it holds charges on.
func CanSeeAllCalendars(r Role) bool {
	return r == RoleCoordinacion
}

// CanUpdateOwnChargeStatus reports whether the role may move its own
// charges through the status lifecycle.
func CanUpdateOwnChargeStatus(r Role) bool {
	switch r {
	case RoleCoordinacion, RoleDocumentacion, RoleCotizacion:
		return true
	}
	return false
}

// CanUpdateAnyChargeStatus reports whether the role may change charges
// held by other users.
func CanUpdateAnyChargeStatus(r Role) bool {
	return r == RoleCoordinacion
}
