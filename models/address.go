package models

// Address is a physical location backing a hotel. City and state are
// derived from the pincode through the postal lookup at creation time,
// never supplied by the caller.
type Address struct {
	Base
	Area    string `json:"area" gorm:"not null"`
	Street  string `json:"street" gorm:"not null"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode" gorm:"not null"`
}
