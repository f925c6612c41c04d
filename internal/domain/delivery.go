package domain

import "time"

// Delivery Model. The unique package_id allows at most one delivery per package.
type Delivery struct {
	ID                uint      `gorm:"column:delivery_id;primaryKey" json:"delivery_id"`
	PackageID         uint      `gorm:"uniqueIndex" json:"package_id"`
	Package           *Package  `gorm:"foreignKey:PackageID" json:"-"`
	DeliveredByUserID uint      `gorm:"index" json:"delivered_by_user_id"`
	Deliverer         *User     `gorm:"foreignKey:DeliveredByUserID" json:"-"`
	DeliveryLatitude  float64   `gorm:"type:decimal(10,8);not null" json:"delivery_latitude"`
	DeliveryLongitude float64   `gorm:"type:decimal(11,8);not null" json:"delivery_longitude"`
	DeliveryAddress   string    `gorm:"size:255" json:"delivery_address"`
	PhotoRoute        string    `gorm:"size:255" json:"photo_route"`
	DeliveredAt       time.Time `gorm:"autoCreateTime" json:"delivered_at"`
}

func (Delivery) TableName() string { return "P9_deliveries" }
