package handlers

import (
	"fmt"

	"food-ordering-api/models"
)

// Display shapes returned to clients. Food views carry a formatted
// currency string and a price_with_tax field; tax computation is a
// pass-through of the raw price.

type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type HotelRefView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type FoodView struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	Price        float64       `json:"price"`
	DisplayPrice string        `json:"display_price"`
	PriceWithTax float64       `json:"price_with_tax"`
	Category     *CategoryView `json:"category,omitempty"`
	Hotel        *HotelRefView `json:"hotel,omitempty"`
}

func toFoodView(f models.Food) FoodView {
	v := FoodView{
		ID:           f.ID,
		Name:         f.Name,
		Price:        f.Price,
		DisplayPrice: fmt.Sprintf("₹%.2f", f.Price),
		PriceWithTax: f.Price,
	}
	if f.Category.ID != 0 {
		v.Category = &CategoryView{ID: f.Category.ID, Name: f.Category.Name}
	}
	if f.Hotel.ID != 0 {
		v.Hotel = &HotelRefView{ID: f.Hotel.ID, Name: f.Hotel.Name}
	}
	return v
}

func toFoodViews(foods []models.Food) []FoodView {
	views := make([]FoodView, len(foods))
	for i, f := range foods {
		views[i] = toFoodView(f)
	}
	return views
}

type AddressView struct {
	Area   string `json:"area"`
	Street string `json:"street"`
	City   string `json:"city"`
}

type HotelView struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Status    models.Status `json:"status"`
	ViewCount uint          `json:"view_count"`
	Address   AddressView   `json:"address"`
	FoodItems []FoodView    `json:"food_items"`
}

func toHotelView(h models.Hotel) HotelView {
	return HotelView{
		ID:        h.ID,
		Name:      h.Name,
		Status:    h.Status,
		ViewCount: h.ViewCount,
		Address: AddressView{
			Area:   h.Address.Area,
			Street: h.Address.Street,
			City:   h.Address.City,
		},
		FoodItems: toFoodViews(h.Foods),
	}
}
