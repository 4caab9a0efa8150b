package services

import (
	"errors"
	"math"
	"strconv"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// FoodService manages food items listed by hotels.
type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

type CreateFoodInput struct {
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
	CategoryID uint    `json:"category_id" binding:"required"`
	HotelID    uint    `json:"hotel_id" binding:"required"`
}

// validPrice requires a positive amount with at most two decimal places.
func validPrice(price float64) bool {
	if price <= 0 {
		return false
	}
	cents := price * 100
	return math.Abs(cents-math.Round(cents)) < 1e-9
}

// Create validates and persists a new food item. Category and hotel must
// both be active at creation time.
func (s *FoodService) Create(log *logrus.Entry, in CreateFoodInput) (*models.Food, error) {
	if !namePattern.MatchString(in.Name) {
		return nil, apperrors.New(apperrors.InvalidFoodName)
	}
	if !validPrice(in.Price) {
		return nil, apperrors.New(apperrors.InvalidPrice)
	}

	var category models.Category
	err := s.db.Where("status = ?", models.StatusActive).First(&category, in.CategoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.InactiveCategory)
		}
		return nil, err
	}

	var hotel models.Hotel
	err = s.db.Where("status = ?", models.StatusActive).First(&hotel, in.HotelID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.InactiveHotel)
		}
		return nil, err
	}

	food := models.Food{
		Name:       in.Name,
		Price:      math.Round(in.Price*100) / 100,
		CategoryID: in.CategoryID,
		HotelID:    in.HotelID,
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}

	log.WithField("food_id", food.ID).Info("Food item created")
	return &food, nil
}

// FoodFilter carries the raw query filters for List. Any combination is
// allowed; all present filters are ANDed.
type FoodFilter struct {
	FoodID     string
	HotelID    string
	CategoryID string
}

// List returns active food items matching the filter with category and
// hotel embedded. Non-integer filter values are rejected.
func (s *FoodService) List(log *logrus.Entry, filter FoodFilter) ([]models.Food, error) {
	query := s.db.Where("status = ?", models.StatusActive).
		Preload("Category").
		Preload("Hotel")

	if filter.FoodID != "" {
		id, err := strconv.Atoi(filter.FoodID)
		if err != nil {
			return nil, apperrors.New(apperrors.InvalidFoodFilter)
		}
		query = query.Where("id = ?", id)
	}
	if filter.HotelID != "" {
		id, err := strconv.Atoi(filter.HotelID)
		if err != nil {
			return nil, apperrors.New(apperrors.InvalidFoodFilter)
		}
		query = query.Where("hotel_id = ?", id)
	}
	if filter.CategoryID != "" {
		id, err := strconv.Atoi(filter.CategoryID)
		if err != nil {
			return nil, apperrors.New(apperrors.InvalidFoodFilter)
		}
		query = query.Where("category_id = ?", id)
	}

	var foods []models.Food
	if err := query.Find(&foods).Error; err != nil {
		return nil, err
	}
	log.WithField("count", len(foods)).Debug("Food items fetched")
	return foods, nil
}

// DeactivateByHotel marks every food item of a hotel Inactive. Registered
// as a hotel deactivation hook so the cascade runs in the same
// transaction as the hotel status change.
func (s *FoodService) DeactivateByHotel(tx *gorm.DB, log *logrus.Entry, hotelID uint) error {
	result := tx.Model(&models.Food{}).Where("hotel_id = ?", hotelID).
		Update("status", models.StatusInactive)
	if result.Error != nil {
		return result.Error
	}
	log.WithFields(logrus.Fields{
		"hotel_id": hotelID,
		"count":    result.RowsAffected,
	}).Info("Food items deactivated with hotel")
	return nil
}
