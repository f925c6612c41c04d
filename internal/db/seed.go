package db

import (
	"uni3_backend/internal/domain"
	"uni3_backend/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Demo accounts created by Seed
const (
	DemoAdminID       uint = 1
	DemoAdminUsername      = "admin"
	DemoAdminPassword      = "adminpass"
	DemoAgentID       uint = 3
	DemoAgentUsername      = "agent"
	DemoAgentPassword      = "agentpass"
)

// Seed inserts the fixed roles, the demo users and the demo packages.
// Each step is guarded by an existence check so running it again inserts nothing.
func Seed(db *gorm.DB) error {
	var roles int64
	if err := db.Model(&domain.Role{}).Count(&roles).Error; err != nil {
		return err
	}
	if roles == 0 {
		logrus.Info("Creating initial roles")
		if err := db.Create([]domain.Role{
			{ID: domain.RoleAdmin, Name: "admin"},
			{ID: domain.RoleStudent, Name: "student"},
			{ID: domain.RoleDeliveryAgent, Name: "delivery_agent"},
		}).Error; err != nil {
			return err
		}
	}

	if err := ensureUser(db, DemoAdminID, DemoAdminUsername, DemoAdminPassword, "Admin User", domain.RoleAdmin); err != nil {
		return err
	}
	if err := ensureUser(db, DemoAgentID, DemoAgentUsername, DemoAgentPassword, "Delivery Agent", domain.RoleDeliveryAgent); err != nil {
		return err
	}

	var packages int64
	if err := db.Model(&domain.Package{}).Count(&packages).Error; err != nil {
		return err
	}
	if packages == 0 {
		logrus.Info("Creating demo packages")
		agent, admin := DemoAgentID, DemoAdminID
		if err := db.Create([]domain.Package{
			{ID: 1, Address: "Calle Falsa 123, Ciudad A", Description: ptr("TV 55 pulgadas"), AssignedToUserID: &agent},
			{ID: 2, Address: "Avenida Siempre Viva 456, Ciudad B", Description: ptr("Documentos urgentes"), AssignedToUserID: &agent},
			{ID: 3, Address: "Bulevard de los Sueños 789, Ciudad C", Description: ptr("Libros de texto"), AssignedToUserID: &admin},
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureUser(db *gorm.DB, id uint, username, password, fullName string, roleID uint) error {
	var n int64
	if err := db.Model(&domain.User{}).Where("user_id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	logrus.WithFields(logrus.Fields{"user_id": id, "username": username}).Info("Creating demo user")
	return db.Create(&domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: utils.MD5Hex(password),
		FullName:     ptr(fullName),
		RoleID:       roleID,
	}).Error
}

func ptr(s string) *string { return &s }
