package catalog

// Condition is the airworthiness state a part is sold in.
type Condition string

const (
	ConditionNew        Condition = "New"
	ConditionOverhauled Condition = "Overhauled"
	ConditionUsed       Condition = "Used"
)

// Valid reports whether c is one of the known conditions.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionOverhauled, ConditionUsed:
		return true
	}
	return false
}

// Part is a sellable aviation component. Parts are reference data and are
// never modified by the storefront.
type Part struct {
	ID            string    `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	PartNumber    string    `json:"partNumber" yaml:"partNumber"`
	Description   string    `json:"description" yaml:"description"`
	Manufacturer  string    `json:"manufacturer" yaml:"manufacturer"`
	Category      string    `json:"category" yaml:"category"`
	Condition     Condition `json:"condition" yaml:"condition"`
	Compatibility []string  `json:"compatibility" yaml:"compatibility"`
	Price         float64   `json:"price" yaml:"price"`
	Currency      string    `json:"currency" yaml:"currency"`
	Images        []string  `json:"images" yaml:"images"`
	Stock         int       `json:"stock" yaml:"stock"`
	SellerID      string    `json:"sellerId" yaml:"sellerId"`
	Featured      bool      `json:"featured,omitempty" yaml:"featured,omitempty"`
	CreatedAt     string    `json:"createdAt" yaml:"createdAt"`
}

// ProductFilters narrows a part search. Every field is optional; a zero
// string or nil pointer places no constraint on that dimension.
type ProductFilters struct {
	// Category must equal the part category exactly.
	Category string `json:"category,omitempty"`
	// Manufacturer must equal the part manufacturer exactly.
	Manufacturer string `json:"manufacturer,omitempty"`
	// Condition must equal the part condition exactly.
	Condition Condition `json:"condition,omitempty"`
	// MinPrice keeps parts with price >= MinPrice.
	MinPrice *float64 `json:"minPrice,omitempty"`
	// MaxPrice keeps parts with price <= MaxPrice.
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	// Compatibility is a case-insensitive substring of any aircraft model
	// the part fits.
	Compatibility string `json:"compatibility,omitempty"`
	// Search is a case-insensitive substring of the name, part number or
	// description.
	Search string `json:"search,omitempty"`
}

// Facets are the distinct values the filter sidebar offers.
type Facets struct {
	Categories    []string `json:"categories"`
	Manufacturers []string `json:"manufacturers"`
}
