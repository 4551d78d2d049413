// Package synonyms supplies the lowercase-term to canonical-name tables the
// entity extractor matches against.
package synonyms

// Provider exposes the synonym tables. Keys are lowercase user-facing terms;
// values are canonical names as they appear in the product table.
type Provider interface {
	CategorySynonyms() map[string]string
	VehicleSynonyms() map[string]string
}

// Builtin serves the default tables compiled into the binary. Custom tables
// can be layered on top via WithCategories.
type Builtin struct {
	categories map[string]string
	vehicles   map[string]string
}

// NewBuiltin returns a provider backed by the default tables.
func NewBuiltin() *Builtin {
	return &Builtin{
		categories: defaultCategorySynonyms(),
		vehicles:   defaultVehicleSynonyms(),
	}
}

// WithCategories merges extra category synonyms over the defaults.
func (b *Builtin) WithCategories(extra map[string]string) *Builtin {
	for k, v := range extra {
		b.categories[k] = v
	}
	return b
}

func (b *Builtin) CategorySynonyms() map[string]string { return b.categories }

func (b *Builtin) VehicleSynonyms() map[string]string { return b.vehicles }

func defaultCategorySynonyms() map[string]string {
	return map[string]string{
		"battery":    "Battery",
		"batteries":  "Battery",
		"tire":       "Tires",
		"tires":      "Tires",
		"tyre":       "Tires",
		"tyres":      "Tires",
		"wheel":      "Tires",
		"wheels":     "Tires",
		"brake":      "Brakes",
		"brakes":     "Brakes",
		"pads":       "Brakes",
		"rotor":      "Brakes",
		"rotors":     "Brakes",
		"oil":        "Engine Oil",
		"lubricant":  "Engine Oil",
		"filter":     "Filters",
		"filters":    "Filters",
		"spark":      "Spark Plugs",
		"plug":       "Spark Plugs",
		"plugs":      "Spark Plugs",
		"sparkplug":  "Spark Plugs",
		"sparkplugs": "Spark Plugs",
		"suspension": "Suspension",
		"shock":      "Suspension",
		"shocks":     "Suspension",
		"strut":      "Suspension",
		"struts":     "Suspension",
		"light":      "Lighting",
		"lights":     "Lighting",
		"headlight":  "Lighting",
		"headlights": "Lighting",
		"taillight":  "Lighting",
		"bulb":       "Lighting",
		"bulbs":      "Lighting",
		"lamp":       "Lighting",
		"lamps":      "Lighting",
		"mirror":     "Accessories",
		"mirrors":    "Accessories",
		"bumper":     "Accessories",
		"bumpers":    "Accessories",
		"fender":     "Accessories",
		"windshield": "Accessories",
		"wiper":      "Accessories",
		"wipers":     "Accessories",
		"mat":        "Accessories",
		"mats":       "Accessories",
		"seat":       "Accessories",
		"seats":      "Accessories",
		"cover":      "Accessories",
		"covers":     "Accessories",
		"sensor":     "Electrical",
		"sensors":    "Electrical",
		"switch":     "Electrical",
		"switches":   "Electrical",
		"alternator": "Electrical",
		"starter":    "Electrical",
	}
}

func defaultVehicleSynonyms() map[string]string {
	return map[string]string{
		"honda":         "Honda",
		"hond":          "Honda",
		"toyota":        "Toyota",
		"toyta":         "Toyota",
		"ford":          "Ford",
		"bmw":           "BMW",
		"nissan":        "Nissan",
		"chevrolet":     "Chevrolet",
		"chevy":         "Chevrolet",
		"subaru":        "Subaru",
		"audi":          "Audi",
		"volkswagen":    "Volkswagen",
		"vw":            "Volkswagen",
		"jeep":          "Jeep",
		"mercedes":      "Mercedes-Benz",
		"mercedes-benz": "Mercedes-Benz",
		"hyundai":       "Hyundai",
		"kia":           "Kia",
		"mazda":         "Mazda",
		"mitsubishi":    "Mitsubishi",
		"lexus":         "Lexus",
		"acura":         "Acura",
		"infiniti":      "Infiniti",
		"volvo":         "Volvo",
	}
}
