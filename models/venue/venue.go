package venue

import "fmt"

// Venue represents a discount-eligible venue shown on the map.
type Venue struct {
	VenueID      string  `json:"venue_id"`
	VenueName    string  `json:"venue_name"`
	VenueAddress string  `json:"venue_address"`
	VenueLat     float64 `json:"venue_lat"`
	VenueLng     float64 `json:"venue_lng"`
	Phone        string  `json:"phone"`
	CategoryCode string  `json:"category_code"`

	// Discount metadata
	MinAge          int    `json:"min_age,omitempty"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
	DiscountAmount  int    `json:"discount_amount,omitempty"`
	ServiceType     string `json:"service_type,omitempty"`
	ExtraInfo       string `json:"extra_info,omitempty"`

	Hours OperatingHours `json:"operating_hours"`

	// Only populated on the detail endpoint.
	Menus    *[]MenuItem `json:"menus,omitempty"`
	Discount *Discount   `json:"discount,omitempty"`
}

// MenuItem is one entry of a venue's menu list (detail view only).
type MenuItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Discount is the structured discount object of a detailed venue.
type Discount struct {
	Percent     int    `json:"percent,omitempty"`
	Amount      int    `json:"amount,omitempty"`
	ServiceType string `json:"service_type"`
	Condition   string `json:"condition,omitempty"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(name=%s, address=%s, lat=%f, lng=%f)",
		v.VenueName, v.VenueAddress, v.VenueLat, v.VenueLng)
}
