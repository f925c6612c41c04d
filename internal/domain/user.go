package domain

import "time"

// User Model
type User struct {
	ID           uint      `gorm:"column:user_id;primaryKey" json:"user_id"`               // Primary key
	Username     string    `gorm:"size:50;unique;not null" json:"username"`                // Unique username
	PasswordHash string    `gorm:"size:255;not null" json:"-"`                             // Hashed password (MD5 hex or bcrypt)
	FullName     *string   `gorm:"size:100" json:"full_name"`                              // Display name
	RoleID       uint      `gorm:"default:2" json:"role_id"`                               // Foreign key to Role, student by default
	Role         *Role     `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE" json:"-"` // Only declared for the FK constraint
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`                       // Creation timestamp
}

func (User) TableName() string { return "P9_users" }

// DisplayName returns the full name or an empty string
func (u *User) DisplayName() string {
	if u.FullName == nil {
		return ""
	}
	return *u.FullName
}
