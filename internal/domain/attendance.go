package domain

import "time"

// Attendance is a single check-in. Rows are never updated after insert.
type Attendance struct {
	ID           uint      `gorm:"column:attendance_id;primaryKey" json:"attendance_id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	User         *User     `gorm:"foreignKey:UserID" json:"-"`
	Latitude     float64   `gorm:"type:decimal(10,8);not null" json:"latitude"`
	Longitude    float64   `gorm:"type:decimal(11,8);not null" json:"longitude"`
	Address      string    `gorm:"size:255" json:"address"`
	RegisteredAt time.Time `gorm:"autoCreateTime;index" json:"registered_at"`
}

func (Attendance) TableName() string { return "P9_attendance" }
