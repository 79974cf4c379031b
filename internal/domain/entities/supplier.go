package entities

// MaterialSupplier is static reference data returned per component key.
type MaterialSupplier struct {
	Name              string   `json:"name"`
	Address           string   `json:"address"`
	Phone             string   `json:"phone"`
	Specialties       []string `json:"specialties"`
	EstimatedDistance string   `json:"estimated_distance"`
}

// materialSuppliers is a fixed lookup table keyed by component name.
var materialSuppliers = map[string][]MaterialSupplier{
	"demolition": {
		{Name: "Demo Pro Supplies", Address: "123 Industrial Ave", Phone: "02-1234-5678", Specialties: []string{"Demolition tools", "Waste disposal"}, EstimatedDistance: "2.5km"},
		{Name: "Construction Depot", Address: "456 Trade St", Phone: "02-2345-6789", Specialties: []string{"Tools", "Safety equipment"}, EstimatedDistance: "4.1km"},
	},
	"framing": {
		{Name: "Timber Masters", Address: "789 Lumber Rd", Phone: "02-3456-7890", Specialties: []string{"Timber framing", "Steel frames"}, EstimatedDistance: "3.2km"},
		{Name: "Frame & Build", Address: "321 Builder Ave", Phone: "02-4567-8901", Specialties: []string{"Framing materials", "Insulation"}, EstimatedDistance: "5.8km"},
	},
	"plumbing_rough_in": {
		{Name: "Plumb Perfect", Address: "654 Pipe Lane", Phone: "02-5678-9012", Specialties: []string{"Pipes", "Fittings", "Fixtures"}, EstimatedDistance: "1.9km"},
		{Name: "Water Works Supply", Address: "987 Flow St", Phone: "02-6789-0123", Specialties: []string{"Plumbing supplies", "Drainage"}, EstimatedDistance: "3.7km"},
	},
	"electrical_rough_in": {
		{Name: "Sparky Supplies", Address: "159 Electric Blvd", Phone: "02-7890-1234", Specialties: []string{"Wiring", "Switches", "Outlets"}, EstimatedDistance: "2.8km"},
		{Name: "Current Solutions", Address: "753 Voltage Ave", Phone: "02-8901-2345", Specialties: []string{"Electrical components", "Safety switches"}, EstimatedDistance: "4.5km"},
	},
	"plastering": {
		{Name: "Smooth Finish Supplies", Address: "852 Render Rd", Phone: "02-9012-3456", Specialties: []string{"Plaster", "Render", "Tools"}, EstimatedDistance: "3.1km"},
		{Name: "Wall Perfect", Address: "741 Surface St", Phone: "02-0123-4567", Specialties: []string{"Plastering materials", "Finishing supplies"}, EstimatedDistance: "6.2km"},
	},
	"waterproofing": {
		{Name: "Seal Tight", Address: "963 Barrier Blvd", Phone: "02-1357-9246", Specialties: []string{"Waterproof membranes", "Sealants"}, EstimatedDistance: "2.3km"},
		{Name: "Dry Solutions", Address: "258 Protect Ave", Phone: "02-2468-0135", Specialties: []string{"Waterproofing", "Moisture control"}, EstimatedDistance: "4.9km"},
	},
	"tiling": {
		{Name: "Tile World", Address: "147 Ceramic St", Phone: "02-3691-4725", Specialties: []string{"Tiles", "Adhesives", "Grout"}, EstimatedDistance: "1.5km"},
		{Name: "Surface Specialists", Address: "369 Mosaic Rd", Phone: "02-4714-5826", Specialties: []string{"Premium tiles", "Natural stone"}, EstimatedDistance: "3.8km"},
	},
	"fit_off": {
		{Name: "Finish Line", Address: "582 Complete Ave", Phone: "02-5825-9637", Specialties: []string{"Fixtures", "Fittings", "Accessories"}, EstimatedDistance: "2.7km"},
		{Name: "Final Touch", Address: "714 Detail St", Phone: "02-6936-7418", Specialties: []string{"Bathroom accessories", "Hardware"}, EstimatedDistance: "5.1km"},
	},
}

// SuppliersForComponent resolves the supplier list for a component key.
// Unknown keys report false rather than an empty list.
func SuppliersForComponent(component string) ([]MaterialSupplier, bool) {
	suppliers, ok := materialSuppliers[component]
	return suppliers, ok
}
