package constants

import "fmt"

const (
	RoleAdmin  = "admin"
	RoleJamaah = "jamaah"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "Forbidden: hanya admin yang boleh mengakses fitur %s."
	ErrOnlyMembersCanAccess = "Forbidden: akses fitur %s tidak diizinkan."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorMember(feature string) string {
	return fmt.Sprintf(ErrOnlyMembersCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleAdmin,
		RoleJamaah,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
