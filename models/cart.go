package models

// Cart is a user's shopping cart. One per user, enforced by the unique
// index on UserID; TotalPrice is recomputed from the items after every
// item mutation.
type Cart struct {
	Base
	UserID     uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	User       User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TotalPrice float64    `json:"total_price" gorm:"not null;default:0"`
	Items      []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID"`
}

type CartItem struct {
	Base
	CartID   uint    `json:"cart_id" gorm:"not null;constraint:OnDelete:CASCADE"`
	FoodID   uint    `json:"food_id" gorm:"not null"`
	Food     Food    `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	Price    float64 `json:"price" gorm:"not null"` // snapshot of Food.Price at add time
	Quantity int     `json:"quantity" gorm:"not null"`
}
