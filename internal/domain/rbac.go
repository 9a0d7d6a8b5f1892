package domain

// EnforceRequest asks whether role may perform action on resource.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type GrantPermissionRequest struct {
	Role     string `json:"role" binding:"required,oneof=ADMIN EMPLOYEE"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}
