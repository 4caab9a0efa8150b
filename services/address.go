package services

import (
	"context"
	"errors"
	"strings"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"
	"food-ordering-api/postal"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AddressService manages address records and their derived city/state
// fields.
type AddressService struct {
	db     *gorm.DB
	postal postal.Resolver
}

func NewAddressService(db *gorm.DB, resolver postal.Resolver) *AddressService {
	return &AddressService{db: db, postal: resolver}
}

type CreateAddressInput struct {
	Area    string `json:"area" binding:"required"`
	Street  string `json:"street" binding:"required"`
	Pincode string `json:"pincode" binding:"required"`
}

// Create validates and persists a new address. City and state are
// resolved from the pincode through the enrichment adapter:
//   - the adapter answers but cannot resolve the pincode → UNSUPPORTED_PINCODE
//   - the call itself fails (timeout/network) → the address is saved with
//     empty city/state rather than failing the creation
func (s *AddressService) Create(ctx context.Context, log *logrus.Entry, in CreateAddressInput) (*models.Address, error) {
	if len(strings.TrimSpace(in.Area)) < 3 {
		return nil, apperrors.Newf(apperrors.InvalidAddressField, "Area must be at least 3 characters long.")
	}
	if len(strings.TrimSpace(in.Street)) < 3 {
		return nil, apperrors.Newf(apperrors.InvalidAddressField, "Street must be at least 3 characters long.")
	}
	if !pincodePattern.MatchString(in.Pincode) {
		return nil, apperrors.New(apperrors.InvalidPincode)
	}

	loc, err := s.postal.Lookup(ctx, in.Pincode)
	if err != nil {
		log.WithError(err).Warn("Pincode enrichment failed, saving address without city/state")
		loc = postal.Location{}
	} else if loc.City == "" || loc.State == "" {
		log.WithField("pincode", in.Pincode).Info("Unsupported pincode rejected")
		return nil, apperrors.New(apperrors.UnsupportedPincode)
	}

	address := models.Address{
		Area:    in.Area,
		Street:  in.Street,
		Pincode: in.Pincode,
		City:    loc.City,
		State:   loc.State,
	}
	if err := s.db.Create(&address).Error; err != nil {
		return nil, err
	}

	log.WithField("address_id", address.ID).Info("Address created")
	return &address, nil
}

// List returns all active addresses, or the single active address with
// the given id. A missing or inactive id yields an empty slice.
func (s *AddressService) List(log *logrus.Entry, id *uint) ([]models.Address, error) {
	query := s.db.Where("status = ?", models.StatusActive)
	if id != nil {
		query = query.Where("id = ?", *id)
	}

	var addresses []models.Address
	if err := query.Find(&addresses).Error; err != nil {
		return nil, err
	}
	log.WithField("count", len(addresses)).Debug("Addresses fetched")
	return addresses, nil
}

type UpdateAddressInput struct {
	Area   string `json:"area"`
	Street string `json:"street"`
}

// Update changes area and/or street of an existing address. Pincode (and
// with it city/state) cannot be changed through this path; re-enrichment
// on update is not supported.
func (s *AddressService) Update(log *logrus.Entry, id uint, in UpdateAddressInput) (*models.Address, error) {
	updates := map[string]interface{}{}

	if in.Area != "" {
		if !namePattern.MatchString(in.Area) {
			return nil, apperrors.New(apperrors.InvalidAddressField)
		}
		updates["area"] = in.Area
	}
	if in.Street != "" {
		if !namePattern.MatchString(in.Street) {
			return nil, apperrors.New(apperrors.InvalidAddressField)
		}
		updates["street"] = in.Street
	}

	var address models.Address
	if err := s.db.First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.AddressNotFound)
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&address).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return nil, apperrors.New(apperrors.DatabaseIntegrity)
			}
			return nil, err
		}
	}

	if err := s.db.Where("status = ?", models.StatusActive).First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.AddressNotFound)
		}
		return nil, err
	}

	log.WithField("address_id", id).Info("Address updated")
	return &address, nil
}
