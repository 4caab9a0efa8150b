package services

import (
	"errors"
	"strconv"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DeactivateHook runs inside the deactivation transaction whenever a
// hotel's status is persisted as Inactive. Hooks are registered at
// wiring time; there is no implicit global listener.
type DeactivateHook func(tx *gorm.DB, log *logrus.Entry, hotelID uint) error

// HotelService manages hotel listings: creation, filtered reads with
// view counting, updates and soft deletion with cascading hooks.
type HotelService struct {
	db              *gorm.DB
	deactivateHooks []DeactivateHook
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{db: db}
}

// OnDeactivate registers a hook to run whenever a hotel goes Inactive.
func (s *HotelService) OnDeactivate(h DeactivateHook) {
	s.deactivateHooks = append(s.deactivateHooks, h)
}

type CreateHotelInput struct {
	Name      string `json:"name" binding:"required"`
	AddressID uint   `json:"address_id" binding:"required"`
	UserID    uint   `json:"user_id" binding:"required"`
}

// Create validates and persists a new hotel. The address must be active
// and not already backing another hotel; the check runs up front and the
// unique index on address_id catches the insert race.
func (s *HotelService) Create(log *logrus.Entry, in CreateHotelInput) (*models.Hotel, error) {
	if !namePattern.MatchString(in.Name) {
		return nil, apperrors.New(apperrors.InvalidHotelName)
	}

	var address models.Address
	err := s.db.Where("status = ?", models.StatusActive).First(&address, in.AddressID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.InactiveAddress)
		}
		return nil, err
	}

	var attached int64
	if err := s.db.Model(&models.Hotel{}).Where("address_id = ?", in.AddressID).Count(&attached).Error; err != nil {
		return nil, err
	}
	if attached > 0 {
		return nil, apperrors.New(apperrors.HotelWithAddressExists)
	}

	hotel := models.Hotel{
		Name:      in.Name,
		AddressID: in.AddressID,
		UserID:    in.UserID,
	}
	if err := s.db.Create(&hotel).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.New(apperrors.HotelWithAddressExists)
		}
		return nil, err
	}

	log.WithField("hotel_id", hotel.ID).Info("Hotel created")
	return &hotel, nil
}

// HotelFilter carries the raw query filters for List. Filters are
// mutually exclusive; precedence is ID, then Name, then Area.
type HotelFilter struct {
	ID   string
	Name string
	Area string
}

// List returns active hotels matching the filter, each with its address
// and active food items embedded. Every returned hotel's view count is
// incremented by one as a side effect of being read; the increment is a
// single SQL expression so concurrent reads cannot lose updates.
func (s *HotelService) List(log *logrus.Entry, filter HotelFilter) ([]models.Hotel, error) {
	query := s.db.Model(&models.Hotel{}).Where("hotels.status = ?", models.StatusActive).
		Preload("Address").
		Preload("Foods", "status = ?", models.StatusActive)

	switch {
	case filter.ID != "":
		id, err := strconv.Atoi(filter.ID)
		if err != nil {
			return nil, apperrors.New(apperrors.InvalidHotelFieldOrValue)
		}
		query = query.Where("hotels.id = ?", id)
	case filter.Name != "":
		if !namePattern.MatchString(filter.Name) {
			return nil, apperrors.New(apperrors.InvalidHotelName)
		}
		query = query.Where("hotels.name = ?", filter.Name)
	case filter.Area != "":
		if !namePattern.MatchString(filter.Area) {
			return nil, apperrors.New(apperrors.InvalidArea)
		}
		query = query.Joins("JOIN addresses ON addresses.id = hotels.address_id").
			Where("addresses.area = ?", filter.Area)
	}

	var hotels []models.Hotel
	if err := query.Find(&hotels).Error; err != nil {
		return nil, err
	}

	if len(hotels) > 0 {
		ids := make([]uint, len(hotels))
		for i, h := range hotels {
			ids[i] = h.ID
		}
		err := s.db.Model(&models.Hotel{}).Where("id IN ?", ids).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
		if err != nil {
			return nil, err
		}
		for i := range hotels {
			hotels[i].ViewCount++
		}
	}

	log.WithField("count", len(hotels)).Debug("Hotels fetched")
	return hotels, nil
}

type UpdateHotelInput struct {
	Name      string `json:"name"`
	AddressID uint   `json:"address_id"`
}

// Update changes a hotel's name and/or address.
func (s *HotelService) Update(log *logrus.Entry, id uint, in UpdateHotelInput) (*models.Hotel, error) {
	updates := map[string]interface{}{}

	if in.Name != "" {
		if !namePattern.MatchString(in.Name) {
			return nil, apperrors.New(apperrors.InvalidHotelName)
		}
		updates["name"] = in.Name
	}

	if in.AddressID != 0 {
		var address models.Address
		err := s.db.Where("status = ?", models.StatusActive).First(&address, in.AddressID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.New(apperrors.InactiveAddress)
			}
			return nil, err
		}
		updates["address_id"] = in.AddressID
	}

	var hotel models.Hotel
	if err := s.db.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NoHotelFound)
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&hotel).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return nil, apperrors.New(apperrors.HotelWithAddressExists)
			}
			return nil, err
		}
	}

	log.WithField("hotel_id", id).Info("Hotel updated")
	return &hotel, nil
}

// Deactivate soft-deletes a hotel and runs the registered deactivation
// hooks (food cascade) inside the same transaction.
func (s *HotelService) Deactivate(log *logrus.Entry, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.NoHotelFound)
			}
			return err
		}

		if err := tx.Model(&hotel).Update("status", models.StatusInactive).Error; err != nil {
			return err
		}

		for _, hook := range s.deactivateHooks {
			if err := hook(tx, log, id); err != nil {
				return err
			}
		}

		log.WithField("hotel_id", id).Info("Hotel deactivated")
		return nil
	})
}
