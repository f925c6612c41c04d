package repository

import (
	"context"
	"errors"
	"slices"

	"uni3_backend/internal/domain"

	"gorm.io/gorm"
)

// ErrAlreadyDelivered is returned when a delivery races another one for the same package
var ErrAlreadyDelivered = errors.New("package already delivered")

// Repository holds every query the service needs. Lookups return nil, nil when nothing matches.
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Ping checks that the database answers
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	return first[domain.User](r.db.WithContext(ctx).Where("user_id = ?", id))
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return first[domain.User](r.db.WithContext(ctx).Where("username = ?", username))
}

// HasRole reports whether userID exists and holds one of allowed
func (r *Repository) HasRole(ctx context.Context, userID uint, allowed ...uint) (bool, error) {
	u, err := r.UserByID(ctx, userID)
	if err != nil || u == nil {
		return false, err
	}
	return slices.Contains(allowed, u.RoleID), nil
}

func (r *Repository) CreateAttendance(ctx context.Context, a *domain.Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// AttendanceHistory returns every check-in, newest first
func (r *Repository) AttendanceHistory(ctx context.Context) ([]domain.Attendance, error) {
	out := []domain.Attendance{}
	err := r.db.WithContext(ctx).Order("registered_at desc").Order("attendance_id desc").Find(&out).Error
	return out, err
}

func (r *Repository) CreateFoto(ctx context.Context, f *domain.Foto) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// ListFotos returns every gallery row in primary key order
func (r *Repository) ListFotos(ctx context.Context) ([]domain.Foto, error) {
	out := []domain.Foto{}
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *Repository) PackageByID(ctx context.Context, id uint) (*domain.Package, error) {
	return first[domain.Package](r.db.WithContext(ctx).Where("package_id = ?", id))
}

// PackagesAssignedTo lists packages assigned to userID, optionally only those still pending
func (r *Repository) PackagesAssignedTo(ctx context.Context, userID uint, undeliveredOnly bool) ([]domain.Package, error) {
	q := r.db.WithContext(ctx).Where("assigned_to_user_id = ?", userID)
	if undeliveredOnly {
		q = q.Where("is_delivered = ?", false)
	}
	out := []domain.Package{}
	err := q.Order("package_id").Find(&out).Error
	return out, err
}

// RecordDelivery marks the package of d delivered and inserts d in one transaction.
// The conditional update runs first: it takes the package row lock, so a concurrent
// delivery of the same package waits for it and then sees zero rows affected.
func (r *Repository) RecordDelivery(ctx context.Context, d *domain.Delivery) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Package{}).
			Where("package_id = ? AND is_delivered = ?", d.PackageID, false).
			Update("is_delivered", true)
		if res.Error != nil {
			return res.Error // Return error to rollback
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyDelivered
		}
		if err := tx.Create(d).Error; err != nil {
			return err
		}
		return nil // Commit transaction
	})
}

func first[T any](q *gorm.DB) (*T, error) {
	var v T
	if err := q.First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}
