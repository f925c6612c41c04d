package domain

// Package Model
type Package struct {
	ID               uint    `gorm:"column:package_id;primaryKey" json:"package_id"`
	Address          string  `gorm:"size:255;not null" json:"address"`
	Description      *string `gorm:"size:255" json:"description"`
	AssignedToUserID *uint   `gorm:"index" json:"assigned_to_user_id"`     // Agent responsible for delivery
	Agent            *User   `gorm:"foreignKey:AssignedToUserID" json:"-"` // Only declared for the FK constraint
	IsDelivered      bool    `gorm:"not null;default:false" json:"is_delivered"`
}

func (Package) TableName() string { return "P9_packages" }

// AssignedTo reports whether userID is the package's assigned agent
func (p *Package) AssignedTo(userID uint) bool {
	return p.AssignedToUserID != nil && *p.AssignedToUserID == userID
}
