package services

import (
	"testing"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItem_CreatesCartAndComputesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	hotel := seedHotel(t, db, "Spice Garden")
	food := seedFood(t, db, hotel.ID, "Dosa", 50.00)
	user := seedUser(t, db, "customer@example.com")

	item, err := svc.AddItem(testLogger(), user.ID, AddCartItemInput{FoodID: food.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 50.00, item.Price)
	assert.Equal(t, 2, item.Quantity)

	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&cart).Error)
	assert.Equal(t, 100.00, cart.TotalPrice)

	// Second add keeps the running sum.
	naan := seedFood(t, db, hotel.ID, "Naan", 40.00)
	_, err = svc.AddItem(testLogger(), user.ID, AddCartItemInput{FoodID: naan.ID, Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, db.Where("user_id = ?", user.ID).First(&cart).Error)
	assert.Equal(t, 220.00, cart.TotalPrice)
}

func TestCartAddItem_ReusesExistingCart(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	hotel := seedHotel(t, db, "Spice Garden")
	food := seedFood(t, db, hotel.ID, "Dosa", 50)
	user := seedUser(t, db, "customer@example.com")

	first, err := svc.AddItem(testLogger(), user.ID, AddCartItemInput{FoodID: food.ID, Quantity: 1})
	require.NoError(t, err)
	second, err := svc.AddItem(testLogger(), user.ID, AddCartItemInput{FoodID: food.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, first.CartID, second.CartID)

	var carts int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&carts).Error)
	assert.Equal(t, int64(1), carts)
}

func TestCartAddItem_SnapshotSurvivesPriceChange(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	hotel := seedHotel(t, db, "Spice Garden")
	food := seedFood(t, db, hotel.ID, "Dosa", 50.00)
	user := seedUser(t, db, "customer@example.com")

	item, err := svc.AddItem(testLogger(), user.ID, AddCartItemInput{FoodID: food.ID, Quantity: 2})
	require.NoError(t, err)

	// Food price changes after the item was added.
	require.NoError(t, db.Model(food).Update("price", 80.00).Error)

	updated, err := svc.UpdateItem(testLogger(), UpdateCartItemInput{ItemID: item.ID, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 50.00, updated.Price)

	var cart models.Cart
	require.NoError(t, db.First(&cart, item.CartID).Error)
	// Total uses the stored snapshot, not the new food price.
	assert.Equal(t, 250.00, cart.TotalPrice)
}

func TestCartAddItem_InactiveFood(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	hotel := seedHotel(t, db, "Spice Garden")
	food := seedFood(t, db, hotel.ID, "Dosa", 50)
	require.NoError(t, db.Model(food).Update("status", models.StatusInactive).Error)
	user := seedUser(t, db, "customer@example.com")

	_, err := svc.AddItem(testLogger(), user.ID, AddCartItemInput{FoodID: food.ID, Quantity: 1})
	assertAppErr(t, err, apperrors.InactiveFood)
}

func TestCartAddItem_InvalidQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	for _, qty := range []int{0, -1} {
		_, err := svc.AddItem(testLogger(), 1, AddCartItemInput{FoodID: 1, Quantity: qty})
		assertAppErr(t, err, apperrors.InvalidQuantity)
	}
}

func TestCartUpdateItem_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	_, err := svc.UpdateItem(testLogger(), UpdateCartItemInput{ItemID: 9999, Quantity: 2})
	assertAppErr(t, err, apperrors.CartItemNotFound)
}

func TestCartUpdateItem_InvalidQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	_, err := svc.UpdateItem(testLogger(), UpdateCartItemInput{ItemID: 1, Quantity: 0})
	assertAppErr(t, err, apperrors.InvalidQuantity)
}

func TestCartGet_EmptyShapeWithoutCart(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	cart, err := svc.Get(testLogger(), 42)
	require.NoError(t, err)
	assert.Equal(t, uint(42), cart.UserID)
	assert.Zero(t, cart.ID)
	assert.Empty(t, cart.Items)
}

func TestCartGet_WithItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	hotel := seedHotel(t, db, "Spice Garden")
	food := seedFood(t, db, hotel.ID, "Dosa", 50)
	user := seedUser(t, db, "customer@example.com")

	_, err := svc.AddItem(testLogger(), user.ID, AddCartItemInput{FoodID: food.ID, Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.Get(testLogger(), user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Dosa", cart.Items[0].Food.Name)
	assert.Equal(t, 100.00, cart.TotalPrice)
}
