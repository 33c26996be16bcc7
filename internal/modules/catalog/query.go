package catalog

import "strings"

// The functions in this file are pure: they never modify parts and are safe
// to call concurrently. Results keep collection order.

// SearchParts returns the parts that satisfy every present filter.
func SearchParts(parts []Part, f ProductFilters) []Part {
	search := strings.ToLower(f.Search)
	compat := strings.ToLower(f.Compatibility)

	out := make([]Part, 0, len(parts))
	for _, p := range parts {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.PartNumber), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Manufacturer != "" && p.Manufacturer != f.Manufacturer {
			continue
		}
		if f.Condition != "" && p.Condition != f.Condition {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if compat != "" && !fitsModel(p, compat) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// fitsModel expects model already lower-cased.
func fitsModel(p Part, model string) bool {
	for _, m := range p.Compatibility {
		if strings.Contains(strings.ToLower(m), model) {
			return true
		}
	}
	return false
}

// FindPart returns the part with the given id.
func FindPart(parts []Part, id string) (Part, bool) {
	for _, p := range parts {
		if p.ID == id {
			return p, true
		}
	}
	return Part{}, false
}

// PartsByCategory matches the category case-insensitively.
func PartsByCategory(parts []Part, category string) []Part {
	out := make([]Part, 0)
	for _, p := range parts {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

func PartsBySeller(parts []Part, sellerID string) []Part {
	out := make([]Part, 0)
	for _, p := range parts {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out
}

// FeaturedParts returns at most limit featured parts. A negative limit is
// treated as zero.
func FeaturedParts(parts []Part, limit int) []Part {
	out := make([]Part, 0)
	for _, p := range parts {
		if len(out) >= limit {
			break
		}
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// RelatedParts suggests up to limit other parts: first those in the same
// category, then those from the same manufacturer. Unknown ids yield an
// empty result.
func RelatedParts(parts []Part, id string, limit int) []Part {
	out := make([]Part, 0)
	subject, ok := FindPart(parts, id)
	if !ok || limit <= 0 {
		return out
	}

	picked := make(map[string]struct{})
	for _, p := range parts {
		if len(out) >= limit {
			return out
		}
		if p.ID != id && p.Category == subject.Category {
			out = append(out, p)
			picked[p.ID] = struct{}{}
		}
	}
	for _, p := range parts {
		if len(out) >= limit {
			break
		}
		if _, dup := picked[p.ID]; dup || p.ID == id {
			continue
		}
		if p.Manufacturer == subject.Manufacturer {
			out = append(out, p)
		}
	}
	return out
}

// CollectFacets lists distinct categories and manufacturers in first-seen order.
func CollectFacets(parts []Part) Facets {
	f := Facets{Categories: []string{}, Manufacturers: []string{}}
	seenCat := make(map[string]struct{})
	seenMfr := make(map[string]struct{})
	for _, p := range parts {
		if _, ok := seenCat[p.Category]; !ok {
			seenCat[p.Category] = struct{}{}
			f.Categories = append(f.Categories, p.Category)
		}
		if _, ok := seenMfr[p.Manufacturer]; !ok {
			seenMfr[p.Manufacturer] = struct{}{}
			f.Manufacturers = append(f.Manufacturers, p.Manufacturer)
		}
	}
	return f
}
