package cart

import (
	"sort"
	"strings"
	"unicode"
)

// Property is one name/value pair attached to an order line item.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// sizeTypeMarker tags a line as custom-sized so fulfillment can tell it apart
// from standard sizing.
const (
	sizeTypeName   = "Size Type"
	sizeTypeCustom = "Custom Size"
)

// LineProperties flattens an item's sizing into order-line properties.
// Custom measurements win over a standard size: the marker property comes
// first, then one property per measurement with the key humanized
// ("chestWidth" becomes "Chest Width"). A standard size alone yields a single
// "Size" property. Measurement order is sorted by key so payloads are stable.
func LineProperties(it Item) []Property {
	if len(it.CustomMeasurements) > 0 {
		props := make([]Property, 0, len(it.CustomMeasurements)+1)
		props = append(props, Property{Name: sizeTypeName, Value: sizeTypeCustom})

		keys := make([]string, 0, len(it.CustomMeasurements))
		for k := range it.CustomMeasurements {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			props = append(props, Property{Name: HumanizeKey(k), Value: it.CustomMeasurements[k]})
		}
		return props
	}
	if it.Size != "" {
		return []Property{{Name: "Size", Value: it.Size}}
	}
	return nil
}

// HumanizeKey converts a camelCase measurement key to space-separated,
// capitalized words: "chestWidth" -> "Chest Width", "sleeveLength" ->
// "Sleeve Length". Existing spaces and non-letter runes pass through.
func HumanizeKey(key string) string {
	var words []string
	var cur []rune
	for _, r := range key {
		if unicode.IsUpper(r) && len(cur) > 0 && unicode.IsLower(cur[len(cur)-1]) {
			words = append(words, string(cur))
			cur = cur[:0]
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		words = append(words, string(cur))
	}
	for i, w := range words {
		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}
