package models

// Hotel is a restaurant listing. Each hotel belongs to exactly one
// manager user and sits on exactly one address; both pairings are 1:1,
// backed by unique indexes so concurrent inserts cannot double-attach.
type Hotel struct {
	Base
	Name      string  `json:"name" gorm:"not null"`
	UserID    uint    `json:"user_id" gorm:"uniqueIndex;not null"`
	User      User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	AddressID uint    `json:"address_id" gorm:"uniqueIndex;not null"`
	Address   Address `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	ViewCount uint    `json:"view_count" gorm:"not null;default:0"`
	Foods     []Food  `json:"foods,omitempty" gorm:"foreignKey:HotelID"`
}
