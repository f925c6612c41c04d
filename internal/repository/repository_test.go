package repository

import (
	"context"
	"testing"
	"time"

	"uni3_backend/internal/domain"
	"uni3_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *Repository {
	t.Helper()
	return New(testutil.OpenSeededDB(t))
}

func deliveriesOf(t *testing.T, repo *Repository, packageID uint) []domain.Delivery {
	t.Helper()
	var out []domain.Delivery
	require.NoError(t, repo.db.Where("package_id = ?", packageID).Find(&out).Error)
	return out
}

func TestUsers(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	u, err := repo.UserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, uint(1), u.ID)
	assert.Equal(t, "Admin User", u.DisplayName())

	u, err = repo.UserByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "agent", u.Username)

	u, err = repo.UserByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.UserByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestHasRole(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		userID  uint
		allowed []uint
		want    bool
	}{
		{"admin as admin", 1, []uint{domain.RoleAdmin}, true},
		{"agent as admin", 3, []uint{domain.RoleAdmin}, false},
		{"agent as agent or admin", 3, []uint{domain.RoleAdmin, domain.RoleDeliveryAgent}, true},
		{"missing user", 42, []uint{domain.RoleAdmin, domain.RoleStudent, domain.RoleDeliveryAgent}, false},
		{"no roles allowed", 1, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.HasRole(ctx, tc.userID, tc.allowed...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAttendanceHistory_NewestFirst(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	for i, userID := range []uint{1, 3, 1} {
		a := &domain.Attendance{
			UserID:       userID,
			Latitude:     19.4,
			Longitude:    -99.1,
			Address:      "Somewhere",
			RegisteredAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.CreateAttendance(ctx, a))
		assert.NotZero(t, a.ID)
	}

	history, err := repo.AttendanceHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].RegisteredAt.After(history[i-1].RegisteredAt))
	}
	assert.Equal(t, uint(1), history[0].UserID)
	assert.Equal(t, uint(3), history[1].UserID)
}

func TestCreateAttendance_UnknownUser(t *testing.T) {
	repo := newRepo(t)
	err := repo.CreateAttendance(context.Background(), &domain.Attendance{UserID: 404, Latitude: 1, Longitude: 1})
	assert.Error(t, err, "user_id is a foreign key")
}

func TestFotos(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	list, err := repo.ListFotos(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.CreateFoto(ctx, &domain.Foto{Descripcion: "a", RutaFoto: "uploads/user_1_a.jpg"}))
	require.NoError(t, repo.CreateFoto(ctx, &domain.Foto{Descripcion: "b", RutaFoto: "uploads/user_1_a.jpg"}))

	list, err = repo.ListFotos(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Descripcion)
	assert.NotEqual(t, list[0].ID, list[1].ID)
	assert.False(t, list[0].Fecha.IsZero())
}

func TestPackagesAssignedTo(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	pkgs, err := repo.PackagesAssignedTo(ctx, 3, true)
	require.NoError(t, err)
	require.Len(t, pkgs, 2)
	assert.Equal(t, uint(1), pkgs[0].ID)
	assert.Equal(t, uint(2), pkgs[1].ID)

	pkgs, err = repo.PackagesAssignedTo(ctx, 2, true)
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestRecordDelivery(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	d := &domain.Delivery{
		PackageID:         1,
		DeliveredByUserID: 3,
		DeliveryLatitude:  19.4,
		DeliveryLongitude: -99.1,
		DeliveryAddress:   "Calle Falsa 123",
		PhotoRoute:        "uploads/delivery_1_p.jpg",
	}
	require.NoError(t, repo.RecordDelivery(ctx, d))
	assert.NotZero(t, d.ID)

	pkg, err := repo.PackageByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, pkg.IsDelivered)

	pending, err := repo.PackagesAssignedTo(ctx, 3, true)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, uint(2), pending[0].ID)

	all, err := repo.PackagesAssignedTo(ctx, 3, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got := deliveriesOf(t, repo, 1)
	require.Len(t, got, 1)
	assert.Equal(t, d.ID, got[0].ID)
}

func TestRecordDelivery_RollsBackWhenAlreadyDelivered(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	// Flip the flag without a delivery row to simulate a concurrent winner.
	require.NoError(t, repo.db.Model(&domain.Package{}).Where("package_id = ?", 2).Update("is_delivered", true).Error)

	err := repo.RecordDelivery(ctx, &domain.Delivery{PackageID: 2, DeliveredByUserID: 3, DeliveryLatitude: 1, DeliveryLongitude: 1})
	assert.ErrorIs(t, err, ErrAlreadyDelivered)

	assert.Empty(t, deliveriesOf(t, repo, 2), "no delivery row without the package update")
}

func TestRecordDelivery_UniquePerPackage(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordDelivery(ctx, &domain.Delivery{PackageID: 1, DeliveredByUserID: 3, DeliveryLatitude: 1, DeliveryLongitude: 1}))
	err := repo.RecordDelivery(ctx, &domain.Delivery{PackageID: 1, DeliveredByUserID: 3, DeliveryLatitude: 1, DeliveryLongitude: 1})
	assert.ErrorIs(t, err, ErrAlreadyDelivered)
}

func TestRecordDelivery_FailedInsertKeepsPackagePending(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	// delivered_by_user_id 999 violates the users foreign key after the flag was flipped
	err := repo.RecordDelivery(ctx, &domain.Delivery{PackageID: 1, DeliveredByUserID: 999, DeliveryLatitude: 1, DeliveryLongitude: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyDelivered)

	pkg, err := repo.PackageByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, pkg.IsDelivered)
}
