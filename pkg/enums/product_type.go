package enums

// ProductType tags catalog entries with the device family they belong to.
// The catalog accepts free-form tags; these are the values the storefront
// knows how to render.
type ProductType string

const (
	ProductTypeLaptop     ProductType = "laptop"
	ProductTypePhone      ProductType = "phone"
	ProductTypeHeadphones ProductType = "headphones"
	ProductTypeWatch      ProductType = "watch"
	ProductTypeOther      ProductType = "other"
)

var knownProductTypes = []ProductType{
	ProductTypeLaptop,
	ProductTypePhone,
	ProductTypeHeadphones,
	ProductTypeWatch,
	ProductTypeOther,
}

// String implements fmt.Stringer.
func (t ProductType) String() string {
	return string(t)
}

// IsKnown reports whether the value is one of the renderable product types.
func (t ProductType) IsKnown() bool {
	for _, candidate := range knownProductTypes {
		if candidate == t {
			return true
		}
	}
	return false
}
