package rbac

import (
	"strings"

	"go-payroll/internal/domain"
)

func normalize(role, resource, action string) (string, string, string) {
	return strings.ToUpper(strings.TrimSpace(role)),
		strings.ToLower(strings.TrimSpace(resource)),
		strings.ToLower(strings.TrimSpace(action))
}

func mapToResponse(rp RolePermission) domain.PermissionResponse {
	return domain.PermissionResponse{
		Role:     rp.Role,
		Resource: rp.Resource,
		Action:   rp.Action,
	}
}
