package model

// Availability values as they appear in the product table.
const (
	AvailabilityInStock    = "In Stock"
	AvailabilityLimited    = "Limited"
	AvailabilityOutOfStock = "Out of Stock"
)

// PartRecord is one row of the product table. The engine never mutates it.
type PartRecord struct {
	VehicleMake  string  `json:"vehicle_make"`
	VehicleModel string  `json:"vehicle_model"`
	Category     string  `json:"category"`
	PartName     string  `json:"part_name"`
	SKU          string  `json:"sku"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability"`
	YearRange    string  `json:"year_range"`
}

// AvailabilityRank orders records for display: in-stock first, then limited,
// then out of stock, then anything unrecognized.
func AvailabilityRank(availability string) int {
	switch availability {
	case AvailabilityInStock:
		return 0
	case AvailabilityLimited:
		return 1
	case AvailabilityOutOfStock:
		return 2
	default:
		return 3
	}
}
