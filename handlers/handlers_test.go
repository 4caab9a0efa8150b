package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/postal"
	"food-ordering-api/routes"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubResolver struct {
	loc postal.Location
	err error
}

func (s stubResolver) Lookup(_ context.Context, _ string) (postal.Location, error) {
	return s.loc, s.err
}

type testApp struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestApp(t *testing.T, resolver postal.Resolver) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Address{}, &models.Hotel{},
		&models.Category{}, &models.Food{}, &models.Cart{}, &models.CartItem{},
	))

	hotelSvc := services.NewHotelService(db)
	foodSvc := services.NewFoodService(db)
	hotelSvc.OnDeactivate(foodSvc.DeactivateByHotel)

	r := gin.New()
	r.Use(middleware.RequestID())
	routes.SetupRoutes(r, routes.Handlers{
		Auth:    handlers.NewAuthHandler(services.NewAuthService(db)),
		Address: handlers.NewAddressHandler(services.NewAddressService(db, resolver)),
		Hotel:   handlers.NewHotelHandler(hotelSvc),
		Food:    handlers.NewFoodHandler(foodSvc),
		Cart:    handlers.NewCartHandler(services.NewCartService(db)),
	})
	return &testApp{db: db, router: r}
}

func (a *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user through the API and returns its access token.
func (a *testApp) registerAndLogin(t *testing.T, email string, role models.UserRole) string {
	t.Helper()
	w := a.request(t, http.MethodPost, "/auth/register", "", gin.H{
		"email": email, "name": "Test Person", "password": "secret123", "role": role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.request(t, http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Access string `json:"access"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Access)
	return resp.Access
}

func TestAddressFlow(t *testing.T) {
	app := newTestApp(t, stubResolver{loc: postal.Location{City: "Bangalore", State: "Karnataka"}})
	admin := app.registerAndLogin(t, "admin@example.com", models.RoleAdmin)

	w := app.request(t, http.MethodPost, "/address", admin, gin.H{
		"area": "Indiranagar", "street": "Main Street", "pincode": "560038",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"city":"Bangalore"`)

	w = app.request(t, http.MethodGet, "/address", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "address_items")
}

func TestAddressCreate_UnsupportedPincodeEnvelope(t *testing.T) {
	app := newTestApp(t, stubResolver{})
	admin := app.registerAndLogin(t, "admin@example.com", models.RoleAdmin)

	w := app.request(t, http.MethodPost, "/address", admin, gin.H{
		"area": "Indiranagar", "street": "Main Street", "pincode": "999999",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ERROR_012", resp.Code)
	assert.NotEmpty(t, resp.Message)
}

func TestAddressCreate_CustomerForbidden(t *testing.T) {
	app := newTestApp(t, stubResolver{})
	customer := app.registerAndLogin(t, "customer@example.com", models.RoleCustomer)

	w := app.request(t, http.MethodPost, "/address", customer, gin.H{
		"area": "Indiranagar", "street": "Main Street", "pincode": "560038",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCartMutation_CustomerForbidden(t *testing.T) {
	app := newTestApp(t, stubResolver{})
	customer := app.registerAndLogin(t, "customer@example.com", models.RoleCustomer)

	w := app.request(t, http.MethodPost, "/cart", customer, gin.H{"food_id": 1, "quantity": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUnauthenticatedAlwaysRejected(t *testing.T) {
	app := newTestApp(t, stubResolver{})
	for _, path := range []string{"/address", "/hotels", "/foods", "/cart"} {
		w := app.request(t, http.MethodGet, path, "", nil)
		assert.Equalf(t, http.StatusUnauthorized, w.Code, "GET %s", path)
	}
}

func TestFoodListDisplayFields(t *testing.T) {
	app := newTestApp(t, stubResolver{})
	admin := app.registerAndLogin(t, "admin@example.com", models.RoleAdmin)

	// Seed hotel + category directly, then create the food over the API.
	addr := models.Address{Area: "Indiranagar", Street: "Main Street", Pincode: "560038"}
	require.NoError(t, app.db.Create(&addr).Error)
	owner := models.User{Name: "Owner Person", Email: "owner@example.com", PasswordHash: "x", Role: models.RoleManager}
	require.NoError(t, app.db.Create(&owner).Error)
	hotel := models.Hotel{Name: "Spice Garden", AddressID: addr.ID, UserID: owner.ID}
	require.NoError(t, app.db.Create(&hotel).Error)
	cat := models.Category{Name: "Breakfast"}
	require.NoError(t, app.db.Create(&cat).Error)

	w := app.request(t, http.MethodPost, "/foods", admin, gin.H{
		"name": "Masala Dosa", "price": 85.50, "category_id": cat.ID, "hotel_id": hotel.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.request(t, http.MethodGet, "/foods", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		FoodItems []struct {
			Price        float64 `json:"price"`
			DisplayPrice string  `json:"display_price"`
			PriceWithTax float64 `json:"price_with_tax"`
		} `json:"food_items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.FoodItems, 1)
	assert.Equal(t, "₹85.50", resp.FoodItems[0].DisplayPrice)
	// price_with_tax mirrors the raw price; no tax is applied.
	assert.Equal(t, resp.FoodItems[0].Price, resp.FoodItems[0].PriceWithTax)
}

func TestHotelDeactivateEndpoint(t *testing.T) {
	app := newTestApp(t, stubResolver{})
	admin := app.registerAndLogin(t, "admin@example.com", models.RoleAdmin)

	addr := models.Address{Area: "Indiranagar", Street: "Main Street", Pincode: "560038"}
	require.NoError(t, app.db.Create(&addr).Error)
	owner := models.User{Name: "Owner Person", Email: "owner@example.com", PasswordHash: "x", Role: models.RoleManager}
	require.NoError(t, app.db.Create(&owner).Error)
	hotel := models.Hotel{Name: "Spice Garden", AddressID: addr.ID, UserID: owner.ID}
	require.NoError(t, app.db.Create(&hotel).Error)
	cat := models.Category{Name: "Breakfast"}
	require.NoError(t, app.db.Create(&cat).Error)
	food := models.Food{Name: "Dosa", Price: 50, CategoryID: cat.ID, HotelID: hotel.ID}
	require.NoError(t, app.db.Create(&food).Error)

	w := app.request(t, http.MethodDelete, fmt.Sprintf("/hotels?hotel_id=%d", hotel.ID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reloaded models.Food
	require.NoError(t, app.db.First(&reloaded, food.ID).Error)
	assert.Equal(t, models.StatusInactive, reloaded.Status)

	// Missing id
	w = app.request(t, http.MethodDelete, "/hotels", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ERROR_029")
}
