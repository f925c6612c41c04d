package domain

// Fixed role ids, seeded once
const (
	RoleAdmin         uint = 1
	RoleStudent       uint = 2
	RoleDeliveryAgent uint = 3
)

// Role Model
type Role struct {
	ID   uint   `gorm:"column:role_id;primaryKey" json:"role_id"`
	Name string `gorm:"column:role_name;size:50;unique;not null" json:"role_name"`
}

func (Role) TableName() string { return "P9_roles" }
