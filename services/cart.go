package services

import (
	"errors"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CartService manages per-user shopping carts. Item prices are
// snapshotted from the food at add time; the cart total is recomputed
// from those snapshots after every item mutation.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

type AddCartItemInput struct {
	FoodID   uint `json:"food_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// AddItem adds a food item to the user's cart, creating the cart first
// if none exists. The get-or-create is race-safe: the unique index on
// carts.user_id rejects a concurrent duplicate insert, in which case the
// existing cart is refetched.
func (s *CartService) AddItem(log *logrus.Entry, userID uint, in AddCartItemInput) (*models.CartItem, error) {
	if in.Quantity < 1 {
		return nil, apperrors.New(apperrors.InvalidQuantity)
	}

	var food models.Food
	err := s.db.Where("status = ?", models.StatusActive).First(&food, in.FoodID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.InactiveFood)
		}
		return nil, err
	}

	var item models.CartItem
	err = s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := s.getOrCreateCart(tx, log, userID)
		if err != nil {
			return err
		}

		item = models.CartItem{
			CartID:   cart.ID,
			FoodID:   food.ID,
			Price:    food.Price, // snapshot, immune to later price changes
			Quantity: in.Quantity,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		return recomputeCartTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"cart_id": item.CartID,
		"item_id": item.ID,
	}).Info("Cart item added")
	return &item, nil
}

func (s *CartService) getOrCreateCart(tx *gorm.DB, log *logrus.Entry, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := tx.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{UserID: userID, TotalPrice: 0}
	if err := tx.Create(&cart).Error; err != nil {
		if isUniqueViolation(err) {
			// Lost the create race; the winner's cart is the cart.
			cart = models.Cart{}
			if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
				return nil, err
			}
			return &cart, nil
		}
		return nil, err
	}

	log.WithField("user_id", userID).Info("Cart created")
	return &cart, nil
}

// recomputeCartTotal rewrites the cart's total from its item snapshots
// in a single SQL statement so concurrent mutations cannot lose updates.
func recomputeCartTotal(tx *gorm.DB, cartID uint) error {
	return tx.Exec(`
		UPDATE carts
		   SET total_price = (SELECT COALESCE(SUM(price * quantity), 0)
		                        FROM cart_items WHERE cart_id = ?)
		 WHERE id = ?
	`, cartID, cartID).Error
}

type UpdateCartItemInput struct {
	ItemID   uint `json:"id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// UpdateItem changes the quantity of an existing cart item and
// recomputes the cart total from the stored price snapshots.
func (s *CartService) UpdateItem(log *logrus.Entry, in UpdateCartItemInput) (*models.CartItem, error) {
	if in.Quantity < 1 {
		return nil, apperrors.New(apperrors.InvalidQuantity)
	}

	var item models.CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, in.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.CartItemNotFound)
			}
			return err
		}

		if err := tx.Model(&item).Update("quantity", in.Quantity).Error; err != nil {
			return err
		}

		return recomputeCartTotal(tx, item.CartID)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"item_id":  item.ID,
		"quantity": in.Quantity,
	}).Info("Cart item updated")
	return &item, nil
}

// Get returns the user's cart with its items. A user without a cart gets
// an empty cart shape rather than an error.
func (s *CartService) Get(log *logrus.Entry, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Food").
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}
