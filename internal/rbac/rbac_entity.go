package rbac

import "time"

// RolePermission is one casbin "p" line: role may perform action on resource.
type RolePermission struct {
	Role      string    `gorm:"primaryKey;type:varchar(20)"`
	Resource  string    `gorm:"primaryKey;type:varchar(50)"`
	Action    string    `gorm:"primaryKey;type:varchar(20)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}
