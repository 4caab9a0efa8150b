// Package apperrors defines the closed registry of domain errors. Every
// handled failure in the system maps to exactly one catalogue entry
// carrying a stable symbolic key, a numeric code, a human message and an
// HTTP status. Unrecognized failures fall back to the generic
// BAD_REQUEST entry.
package apperrors

import (
	"fmt"
	"net/http"
)

// Symbolic keys of the catalogue.
const (
	UnauthorizedError      = "UNAUTHORIZED_ERROR"
	InactiveUser           = "INACTIVE_USER"
	InvalidLoginCredential = "INVALID_LOGIN_CREDENTIAL"
	BadRequest             = "BAD_REQUEST"
	DatabaseIntegrity      = "DATABASE_INTEGRITY"
	DuplicateEmail         = "DUPLICATE_EMAIL"
	InvalidRole            = "INVALID_ROLE"
	InvalidName            = "INVALID_NAME"

	InvalidPincode      = "INVALID_PINCODE"
	UnsupportedPincode  = "UNSUPPORTED_PINCODE"
	InvalidAddressField = "INVALID_ADDRESS_FIELD"
	AddressNotFound     = "ADDRESS_NOT_FOUND"
	InactiveAddress     = "INACTIVE_ADDRESS"

	InvalidHotelName         = "INVALID_HOTEL_NAME"
	InvalidArea              = "INVALID_AREA"
	InvalidHotelFieldOrValue = "INVALID_HOTEL_FIELD_OR_FORMAT"
	HotelWithAddressExists   = "HOTEL_WITH_ADDRESS_EXISTS"
	NoHotelFound             = "NO_HOTEL_FOUND"
	HotelIDRequired          = "HOTEL_ID_REQUIRED"

	InvalidFoodName   = "INVALID_FOOD_NAME"
	InvalidPrice      = "INVALID_PRICE"
	InactiveCategory  = "INACTIVE_CATEGORY"
	InactiveHotel     = "INACTIVE_HOTEL"
	InvalidFoodFilter = "INVALID_FOOD_FILTER"

	InactiveFood     = "INACTIVE_FOOD"
	InvalidQuantity  = "INVALID_QUANTITY"
	CartItemNotFound = "CART_ITEM_NOT_FOUND"

	InternalError = "INTERNAL_ERROR"
)

// Entry is one row of the error catalogue.
type Entry struct {
	Key        string
	Code       string
	Message    string
	HTTPStatus int
}

// catalogue maps every symbolic key to its entry. The AUTH_0NN codes are
// kept for the authentication group; the rest use ERROR_0NN. Not-found
// failures deliberately map to 400, not 404.
var catalogue = map[string]Entry{
	UnauthorizedError:      {UnauthorizedError, "AUTH_001", "Unauthorized user", http.StatusUnauthorized},
	InactiveUser:           {InactiveUser, "AUTH_002", "Inactive user", http.StatusForbidden},
	InvalidLoginCredential: {InvalidLoginCredential, "AUTH_003", "Invalid login credential", http.StatusUnauthorized},
	BadRequest:             {BadRequest, "AUTH_004", "Bad request", http.StatusBadRequest},
	DatabaseIntegrity:      {DatabaseIntegrity, "AUTH_005", "Database integrity violation", http.StatusConflict},
	DuplicateEmail:         {DuplicateEmail, "AUTH_006", "Email already registered", http.StatusConflict},
	InvalidRole:            {InvalidRole, "AUTH_007", "Role must be admin, manager or customer", http.StatusBadRequest},
	InvalidName:            {InvalidName, "AUTH_008", "Name must be at least 3 characters, letters and spaces only", http.StatusBadRequest},

	InvalidPincode:      {InvalidPincode, "ERROR_011", "Pincode must be a 6-digit number", http.StatusBadRequest},
	UnsupportedPincode:  {UnsupportedPincode, "ERROR_012", "Invalid or unsupported pincode", http.StatusBadRequest},
	InvalidAddressField: {InvalidAddressField, "ERROR_013", "Invalid address format or field", http.StatusBadRequest},
	AddressNotFound:     {AddressNotFound, "ERROR_014", "Address not present", http.StatusBadRequest},
	InactiveAddress:     {InactiveAddress, "ERROR_015", "Given address is inactive or missing", http.StatusBadRequest},

	InvalidHotelName:         {InvalidHotelName, "ERROR_023", "Given hotel name is invalid", http.StatusBadRequest},
	InvalidArea:              {InvalidArea, "ERROR_024", "Given area is invalid", http.StatusBadRequest},
	InvalidHotelFieldOrValue: {InvalidHotelFieldOrValue, "ERROR_025", "Invalid hotel filter value or field", http.StatusBadRequest},
	HotelWithAddressExists:   {HotelWithAddressExists, "ERROR_026", "A hotel already exists at the given address", http.StatusConflict},
	NoHotelFound:             {NoHotelFound, "ERROR_028", "No hotel found for the given id", http.StatusBadRequest},
	HotelIDRequired:          {HotelIDRequired, "ERROR_029", "Hotel id is required", http.StatusBadRequest},

	InvalidFoodName:   {InvalidFoodName, "ERROR_031", "Given food name is invalid", http.StatusBadRequest},
	InvalidPrice:      {InvalidPrice, "ERROR_032", "Given price is invalid", http.StatusBadRequest},
	InactiveCategory:  {InactiveCategory, "ERROR_033", "Given category is inactive or missing", http.StatusBadRequest},
	InactiveHotel:     {InactiveHotel, "ERROR_034", "Given hotel is inactive or missing", http.StatusBadRequest},
	InvalidFoodFilter: {InvalidFoodFilter, "ERROR_035", "Invalid food filter value or field", http.StatusBadRequest},

	InactiveFood:     {InactiveFood, "ERROR_041", "The food item is no longer available", http.StatusBadRequest},
	InvalidQuantity:  {InvalidQuantity, "ERROR_042", "Quantity must be at least 1", http.StatusBadRequest},
	CartItemNotFound: {CartItemNotFound, "ERROR_043", "Cart item does not exist", http.StatusBadRequest},

	InternalError: {InternalError, "ERROR_500", "Something went wrong", http.StatusInternalServerError},
}

// AppError is a domain error resolved against the catalogue.
type AppError struct {
	Entry  Entry
	Detail string // optional extra context, appended to the message
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return e.Entry.Code + ": " + e.Detail
	}
	return e.Entry.Code + ": " + e.Entry.Message
}

// PublicMessage is what goes into the response envelope.
func (e *AppError) PublicMessage() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Entry.Message
}

// New returns the AppError for a catalogue key. Unknown keys resolve to
// the generic BAD_REQUEST entry so a typo can never escape the registry.
func New(key string) *AppError {
	if entry, ok := catalogue[key]; ok {
		return &AppError{Entry: entry}
	}
	return &AppError{Entry: catalogue[BadRequest]}
}

// Newf is New with formatted detail text.
func Newf(key, format string, args ...interface{}) *AppError {
	e := New(key)
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Lookup returns the catalogue entry for a key and whether it exists.
func Lookup(key string) (Entry, bool) {
	entry, ok := catalogue[key]
	return entry, ok
}
