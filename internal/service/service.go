package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"uni3_backend/internal/config"
	"uni3_backend/internal/domain"
	"uni3_backend/internal/geocode"
	"uni3_backend/internal/report"
	"uni3_backend/internal/repository"
	"uni3_backend/internal/storage"
	"uni3_backend/internal/utils"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Gallery listings are cached per generation; uploads advance the generation
const (
	fotosVersionKey = "fotos:version"
	fotosCacheKey   = "fotos:all:%d"
)

// FileStore persists uploaded files and returns their stored route
type FileStore interface {
	Save(name string, src io.Reader) (string, error)
}

// Options tune behavior that differs between deployments
type Options struct {
	TokenMode string
	JWTSecret string
	TokenTTL  time.Duration

	// DeliveryGeocodeFallback stores the fallback address when the geocoding
	// service cannot be reached during a delivery instead of failing it.
	DeliveryGeocodeFallback bool

	Redis         *redis.Client // Optional
	FotosCacheTTL time.Duration
}

// Service implements the attendance, gallery and delivery operations
type Service struct {
	repo  *repository.Repository
	geo   geocode.Reverser
	files FileStore
	opts  Options
}

func New(repo *repository.Repository, geo geocode.Reverser, files FileStore, opts Options) *Service {
	if opts.TokenMode == "" {
		opts.TokenMode = config.TokenModeLegacy
	}
	if opts.FotosCacheTTL == 0 {
		opts.FotosCacheTTL = 60 * time.Second
	}
	return &Service{repo: repo, geo: geo, files: files, opts: opts}
}

// Ping reports database health
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// LoginResult is what a successful login returns
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      uint   `json:"user_id"`
	RoleID      uint   `json:"role_id"`
	FullName    string `json:"full_name"`
}

// Login checks username/password and issues a token
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.repo.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || !utils.VerifyPassword(password, user.PasswordHash) {
		return nil, newError(ErrUnauthorized, "Credenciales incorrectas")
	}

	token := utils.LegacyToken(user.Username, user.PasswordHash)
	if s.opts.TokenMode == config.TokenModeJWT {
		token, err = utils.GenerateJWT(user.ID, user.RoleID, s.opts.JWTSecret, s.opts.TokenTTL)
		if err != nil {
			return nil, fmt.Errorf("sign token: %w", err)
		}
	}
	return &LoginResult{
		AccessToken: token,
		TokenType:   utils.TokenType,
		UserID:      user.ID,
		RoleID:      user.RoleID,
		FullName:    user.DisplayName(),
	}, nil
}

// RecordAttendance stores a check-in. Geocoding problems never fail it; the fallback address is stored instead.
func (s *Service) RecordAttendance(ctx context.Context, userID uint, lat, lon float64) (*domain.Attendance, error) {
	address, err := s.geo.Reverse(ctx, lat, lon)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Attendance geocoding failed, using fallback")
		address = geocode.Fallback
	}
	record := &domain.Attendance{
		UserID:    userID,
		Latitude:  lat,
		Longitude: lon,
		Address:   address,
	}
	if err := s.repo.CreateAttendance(ctx, record); err != nil {
		return nil, fmt.Errorf("save attendance: %w", err)
	}
	return record, nil
}

// AttendanceHistory returns every attendance row, newest first. Only admins may call it.
func (s *Service) AttendanceHistory(ctx context.Context, requestingUserID uint) ([]domain.Attendance, error) {
	if err := s.requireRole(ctx, requestingUserID,
		"Permiso denegado. Solo administradores pueden ver el historial completo.", domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.AttendanceHistory(ctx)
}

// ExportAttendanceHistory renders AttendanceHistory as an xlsx workbook
func (s *Service) ExportAttendanceHistory(ctx context.Context, requestingUserID uint) ([]byte, error) {
	records, err := s.AttendanceHistory(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	buf, err := report.AttendanceWorkbook(records)
	if err != nil {
		return nil, fmt.Errorf("render attendance workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// UploadPhoto stores the file as user_<id>_<filename> and records it in the gallery
func (s *Service) UploadPhoto(ctx context.Context, description string, userID uint, filename string, src io.Reader) (*domain.Foto, error) {
	route, err := s.files.Save(storage.PhotoName(userID, filename), src)
	if err != nil {
		return nil, fmt.Errorf("save photo: %w", err)
	}
	foto := &domain.Foto{Descripcion: description, RutaFoto: route}
	if err := s.repo.CreateFoto(ctx, foto); err != nil {
		return nil, fmt.Errorf("save foto row: %w", err)
	}
	if err := utils.BumpCacheVersion(ctx, s.opts.Redis, fotosVersionKey); err != nil {
		logrus.WithError(err).Warn("Failed to invalidate gallery cache")
	}
	return foto, nil
}

// ListPhotos returns the whole gallery
func (s *Service) ListPhotos(ctx context.Context) ([]domain.Foto, error) {
	version, err := utils.CacheVersion(ctx, s.opts.Redis, fotosVersionKey)
	if err != nil {
		return s.repo.ListFotos(ctx) // Redis trouble only costs the cache
	}
	key := fmt.Sprintf(fotosCacheKey, version)

	var cached []domain.Foto
	if found, err := utils.GetCache(ctx, s.opts.Redis, key, &cached); err == nil && found {
		return cached, nil
	}
	fotos, err := s.repo.ListFotos(ctx)
	if err != nil {
		return nil, err
	}
	// A listing read before a concurrent upload lands under the old generation and is never served.
	_ = utils.SetCache(ctx, s.opts.Redis, key, fotos, s.opts.FotosCacheTTL)
	return fotos, nil
}

// AssignedPackages lists the undelivered packages of userID.
// The same id is both requester and owner: there is no separate caller identity.
func (s *Service) AssignedPackages(ctx context.Context, userID uint) ([]domain.Package, error) {
	if err := s.requireRole(ctx, userID,
		"Permiso denegado. Solo Agentes y Admin.", domain.RoleAdmin, domain.RoleDeliveryAgent); err != nil {
		return nil, err
	}
	return s.repo.PackagesAssignedTo(ctx, userID, true)
}

// DeliveryInput carries a delivery report and its proof photo
type DeliveryInput struct {
	PackageID         uint
	DeliveredByUserID uint
	Latitude          float64
	Longitude         float64
	Filename          string
	Photo             io.Reader
}

// RecordDelivery validates the package, stores the proof photo, resolves the address
// and then writes the delivery and the package flip atomically.
func (s *Service) RecordDelivery(ctx context.Context, in DeliveryInput) (*domain.Delivery, error) {
	pkg, err := s.repo.PackageByID(ctx, in.PackageID)
	if err != nil {
		return nil, fmt.Errorf("lookup package: %w", err)
	}
	if pkg == nil {
		return nil, newError(ErrNotFound, "Paquete no encontrado.")
	}
	if pkg.IsDelivered {
		return nil, newError(ErrAlreadyDelivered, "El paquete ya ha sido entregado.")
	}
	if !pkg.AssignedTo(in.DeliveredByUserID) {
		return nil, newError(ErrForbidden, "El paquete no está asignado a este agente.")
	}

	route, err := s.files.Save(storage.DeliveryPhotoName(in.PackageID, in.Filename), in.Photo)
	if err != nil {
		return nil, &PhotoSaveError{Err: err}
	}

	address, err := s.geo.Reverse(ctx, in.Latitude, in.Longitude)
	if err != nil {
		if !errors.Is(err, geocode.ErrUnavailable) && !s.opts.DeliveryGeocodeFallback {
			return nil, fmt.Errorf("geocode delivery: %w", err)
		}
		logrus.WithFields(logrus.Fields{"package_id": in.PackageID, "error": err.Error()}).Warn("Delivery geocoding failed, using fallback")
		address = geocode.Fallback
	}

	delivery := &domain.Delivery{
		PackageID:         in.PackageID,
		DeliveredByUserID: in.DeliveredByUserID,
		DeliveryLatitude:  in.Latitude,
		DeliveryLongitude: in.Longitude,
		DeliveryAddress:   address,
		PhotoRoute:        route,
	}
	if err := s.repo.RecordDelivery(ctx, delivery); err != nil {
		if errors.Is(err, repository.ErrAlreadyDelivered) {
			return nil, newError(ErrAlreadyDelivered, "El paquete ya ha sido entregado.")
		}
		return nil, fmt.Errorf("record delivery: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"package_id":  delivery.PackageID,
		"delivery_id": delivery.ID,
		"user_id":     delivery.DeliveredByUserID,
	}).Info("Delivery recorded")
	return delivery, nil
}

// PhotoSaveError reports a proof-of-delivery photo that could not be written
type PhotoSaveError struct {
	Err error
}

func (e *PhotoSaveError) Error() string { return "save delivery photo: " + e.Err.Error() }

func (e *PhotoSaveError) Unwrap() error { return e.Err }

// requireRole is the single authorization check: userID must exist and hold one of allowed
func (s *Service) requireRole(ctx context.Context, userID uint, detail string, allowed ...uint) error {
	ok, err := s.repo.HasRole(ctx, userID, allowed...)
	if err != nil {
		return fmt.Errorf("check role: %w", err)
	}
	if !ok {
		return newError(ErrForbidden, detail)
	}
	return nil
}
