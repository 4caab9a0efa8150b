package models

// Category groups food items (e.g. Biriyani, Desserts, Drinks).
type Category struct {
	Base
	Name string `json:"name" gorm:"not null"`
}

// Food is a single menu item listed by a hotel.
type Food struct {
	Base
	Name       string   `json:"name" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"`
	CategoryID uint     `json:"category_id" gorm:"not null"`
	Category   Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	HotelID    uint     `json:"hotel_id" gorm:"not null;constraint:OnDelete:CASCADE"`
	Hotel      Hotel    `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}
