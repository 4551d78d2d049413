package inventory

import "github.com/autoparts-agent/server/internal/agent/model"

// SeedRecords returns the demo product table used when no CSV is configured.
var SeedRecords = []model.PartRecord{
	{VehicleMake: "Honda", VehicleModel: "Civic", Category: "Battery", PartName: "DieHard Gold 51R", SKU: "BAT-HON-001", Price: 159.99, Availability: model.AvailabilityInStock, YearRange: "2016-2023"},
	{VehicleMake: "Honda", VehicleModel: "Accord", Category: "Battery", PartName: "Optima RedTop 35", SKU: "BAT-HON-002", Price: 219.99, Availability: model.AvailabilityLimited, YearRange: "2014-2022"},
	{VehicleMake: "Honda", VehicleModel: "CR-V", Category: "Brakes", PartName: "Brembo Ceramic Pad Set", SKU: "BRK-HON-001", Price: 89.50, Availability: model.AvailabilityInStock, YearRange: "2017-2024"},
	{VehicleMake: "Honda", VehicleModel: "Civic", Category: "Filters", PartName: "K&N Oil Filter HP-1010", SKU: "FLT-HON-001", Price: 16.99, Availability: model.AvailabilityInStock, YearRange: "2012-2023"},
	{VehicleMake: "Honda", VehicleModel: "Civic", Category: "Spark Plugs", PartName: "NGK Laser Iridium Set", SKU: "SPK-HON-001", Price: 47.80, Availability: model.AvailabilityInStock, YearRange: "2016-2023"},
	{VehicleMake: "Honda", VehicleModel: "Accord", Category: "Lighting", PartName: "Philips LED Headlight Pair", SKU: "LGT-HON-001", Price: 129.00, Availability: model.AvailabilityOutOfStock, YearRange: "2018-2024"},

	{VehicleMake: "Toyota", VehicleModel: "Corolla", Category: "Battery", PartName: "Interstate MTP-35", SKU: "BAT-TOY-001", Price: 174.95, Availability: model.AvailabilityInStock, YearRange: "2014-2023"},
	{VehicleMake: "Toyota", VehicleModel: "Camry", Category: "Tires", PartName: "Michelin Defender 215/55R17", SKU: "TIR-TOY-001", Price: 142.00, Availability: model.AvailabilityInStock, YearRange: "2018-2024"},
	{VehicleMake: "Toyota", VehicleModel: "RAV4", Category: "Brakes", PartName: "Akebono ProACT Pad Set", SKU: "BRK-TOY-001", Price: 74.25, Availability: model.AvailabilityLimited, YearRange: "2019-2024"},
	{VehicleMake: "Toyota", VehicleModel: "Corolla", Category: "Engine Oil", PartName: "Mobil 1 0W-20 5qt", SKU: "OIL-TOY-001", Price: 34.99, Availability: model.AvailabilityInStock, YearRange: "2010-2024"},
	{VehicleMake: "Toyota", VehicleModel: "Camry", Category: "Suspension", PartName: "KYB Excel-G Strut Pair", SKU: "SUS-TOY-001", Price: 198.00, Availability: model.AvailabilityInStock, YearRange: "2012-2017"},

	{VehicleMake: "Ford", VehicleModel: "F-150", Category: "Battery", PartName: "Motorcraft BXT-65", SKU: "BAT-FOR-001", Price: 189.99, Availability: model.AvailabilityInStock, YearRange: "2015-2023"},
	{VehicleMake: "Ford", VehicleModel: "Focus", Category: "Tires", PartName: "Goodyear Assurance 205/60R16", SKU: "TIR-FOR-001", Price: 118.50, Availability: model.AvailabilityInStock, YearRange: "2012-2018"},
	{VehicleMake: "Ford", VehicleModel: "Escape", Category: "Filters", PartName: "Motorcraft FA-1883 Air Filter", SKU: "FLT-FOR-001", Price: 21.40, Availability: model.AvailabilityInStock, YearRange: "2013-2019"},
	{VehicleMake: "Ford", VehicleModel: "F-150", Category: "Lighting", PartName: "Sylvania ZEVO Fog Light Pair", SKU: "LGT-FOR-001", Price: 64.99, Availability: model.AvailabilityLimited, YearRange: "2015-2020"},

	{VehicleMake: "BMW", VehicleModel: "3 Series", Category: "Battery", PartName: "Bosch S6 AGM 94R", SKU: "BAT-BMW-001", Price: 259.00, Availability: model.AvailabilityLimited, YearRange: "2012-2019"},
	{VehicleMake: "BMW", VehicleModel: "X5", Category: "Brakes", PartName: "Zimmermann Coated Rotor Pair", SKU: "BRK-BMW-001", Price: 214.80, Availability: model.AvailabilityInStock, YearRange: "2014-2021"},
	{VehicleMake: "BMW", VehicleModel: "3 Series", Category: "Suspension", PartName: "Bilstein B4 Shock Pair", SKU: "SUS-BMW-001", Price: 242.00, Availability: model.AvailabilityInStock, YearRange: "2012-2018"},

	{VehicleMake: "Nissan", VehicleModel: "Altima", Category: "Battery", PartName: "Duralast Gold 35-DLG", SKU: "BAT-NIS-001", Price: 169.99, Availability: model.AvailabilityInStock, YearRange: "2013-2022"},
	{VehicleMake: "Nissan", VehicleModel: "Rogue", Category: "Tires", PartName: "Bridgestone Ecopia 225/65R17", SKU: "TIR-NIS-001", Price: 151.00, Availability: model.AvailabilityInStock, YearRange: "2014-2020"},
	{VehicleMake: "Nissan", VehicleModel: "Altima", Category: "Accessories", PartName: "Side Mirror Assembly LH", SKU: "ACC-NIS-001", Price: 87.30, Availability: model.AvailabilityInStock, YearRange: "2013-2018"},

	{VehicleMake: "Chevrolet", VehicleModel: "Silverado", Category: "Battery", PartName: "ACDelco Gold 48AGM", SKU: "BAT-CHE-001", Price: 199.95, Availability: model.AvailabilityInStock, YearRange: "2014-2023"},
	{VehicleMake: "Chevrolet", VehicleModel: "Malibu", Category: "Electrical", PartName: "ACDelco Oxygen Sensor", SKU: "ELE-CHE-001", Price: 58.60, Availability: model.AvailabilityInStock, YearRange: "2016-2021"},
	{VehicleMake: "Chevrolet", VehicleModel: "Equinox", Category: "Filters", PartName: "WIX Cabin Filter 24211", SKU: "FLT-CHE-001", Price: 18.75, Availability: model.AvailabilityInStock, YearRange: "2018-2024"},

	{VehicleMake: "Subaru", VehicleModel: "Outback", Category: "Tires", PartName: "Yokohama Geolandar 225/60R18", SKU: "TIR-SUB-001", Price: 163.00, Availability: model.AvailabilityInStock, YearRange: "2015-2022"},
	{VehicleMake: "Subaru", VehicleModel: "Forester", Category: "Spark Plugs", PartName: "Denso Iridium TT Set", SKU: "SPK-SUB-001", Price: 39.99, Availability: model.AvailabilityLimited, YearRange: "2014-2021"},

	{VehicleMake: "Audi", VehicleModel: "A4", Category: "Brakes", PartName: "Textar Epad Set", SKU: "BRK-AUD-001", Price: 132.40, Availability: model.AvailabilityInStock, YearRange: "2016-2023"},
	{VehicleMake: "Volkswagen", VehicleModel: "Golf", Category: "Filters", PartName: "Mann Oil Filter HU719", SKU: "FLT-VOL-001", Price: 14.20, Availability: model.AvailabilityInStock, YearRange: "2010-2021"},
	{VehicleMake: "Jeep", VehicleModel: "Wrangler", Category: "Suspension", PartName: "Rancho RS5000X Shock Set", SKU: "SUS-JEE-001", Price: 268.00, Availability: model.AvailabilityInStock, YearRange: "2012-2018"},
	{VehicleMake: "Mercedes-Benz", VehicleModel: "C-Class", Category: "Lighting", PartName: "Hella Xenon Bulb Pair", SKU: "LGT-MER-001", Price: 154.90, Availability: model.AvailabilityLimited, YearRange: "2015-2021"},
}
