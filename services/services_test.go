package services

import (
	"context"
	"fmt"
	"io"
	"testing"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"
	"food-ordering-api/postal"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh named in-memory sqlite database. The shared
// cache keeps all pooled connections on the same database; the unique
// name isolates tests from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Hotel{},
		&models.Category{},
		&models.Food{},
		&models.Cart{},
		&models.CartItem{},
	))
	return db
}

func intToStr(id uint) string {
	return fmt.Sprintf("%d", id)
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// assertAppErr checks that err resolves to the catalogue entry for key.
func assertAppErr(t *testing.T, err error, key string) {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, key, appErr.Entry.Key)
}

// stubResolver is a canned postal.Resolver for tests.
type stubResolver struct {
	loc postal.Location
	err error
}

func (s stubResolver) Lookup(_ context.Context, _ string) (postal.Location, error) {
	return s.loc, s.err
}

// seedAddress inserts an active address directly.
func seedAddress(t *testing.T, db *gorm.DB) *models.Address {
	t.Helper()
	addr := models.Address{
		Area:    "Indiranagar",
		Street:  "Main Street",
		Pincode: "560038",
		City:    "Bangalore",
		State:   "Karnataka",
	}
	require.NoError(t, db.Create(&addr).Error)
	return &addr
}

// seedHotel inserts an active hotel on a fresh address and user.
func seedHotel(t *testing.T, db *gorm.DB, name string) *models.Hotel {
	t.Helper()
	addr := models.Address{Area: "Koramangala", Street: "First Cross", Pincode: "560034"}
	require.NoError(t, db.Create(&addr).Error)
	user := models.User{
		Name:         "Manager " + name,
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "x",
		Role:         models.RoleManager,
	}
	require.NoError(t, db.Create(&user).Error)

	hotel := models.Hotel{Name: name, AddressID: addr.ID, UserID: user.ID}
	require.NoError(t, db.Create(&hotel).Error)
	return &hotel
}

// seedFood inserts an active food under a fresh category.
func seedFood(t *testing.T, db *gorm.DB, hotelID uint, name string, price float64) *models.Food {
	t.Helper()
	cat := models.Category{Name: "Snacks"}
	require.NoError(t, db.Create(&cat).Error)
	food := models.Food{Name: name, Price: price, CategoryID: cat.ID, HotelID: hotelID}
	require.NoError(t, db.Create(&food).Error)
	return &food
}
