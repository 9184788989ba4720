package taxonomy

import "fmt"

// Category is the fixed classification attached to every transaction.
// The zero value is not a valid category.
type Category int8

const (
	CategoryFood Category = iota + 1
	CategoryTransportation
	CategoryHousing
	CategoryLeisure
	CategoryHealth
	CategoryEducation
	CategoryOther
)

var categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryHousing,
	CategoryLeisure,
	CategoryHealth,
	CategoryEducation,
	CategoryOther,
}

// Portuguese names used by the first version of the ledger.
var categoryAliases = map[string]Category{
	"Alimentação": CategoryFood,
	"Transporte":  CategoryTransportation,
	"Moradia":     CategoryHousing,
	"Lazer":       CategoryLeisure,
	"Saúde":       CategoryHealth,
	"Educação":    CategoryEducation,
	"Outros":      CategoryOther,
}

var categoryIndex = buildIndex(categories, categoryAliases)

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ResolveCategory normalizes text and looks it up in the closed category set.
// It never fails on malformed input; the second result is false when no
// member matches.
func ResolveCategory(text string) (Category, bool) {
	c, ok := categoryIndex[lookupKey(text)]
	return c, ok
}

func (c Category) String() string {
	switch c {
	case CategoryFood:
		return "Food"
	case CategoryTransportation:
		return "Transportation"
	case CategoryHousing:
		return "Housing"
	case CategoryLeisure:
		return "Leisure"
	case CategoryHealth:
		return "Health"
	case CategoryEducation:
		return "Education"
	case CategoryOther:
		return "Other"
	}
	return ""
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	return c.String() != ""
}

func buildIndex[T fmt.Stringer](members []T, aliases map[string]T) map[string]T {
	index := make(map[string]T, len(members)+len(aliases))
	for _, m := range members {
		index[lookupKey(m.String())] = m
	}
	for alias, m := range aliases {
		index[lookupKey(alias)] = m
	}
	return index
}
