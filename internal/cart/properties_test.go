package cart

import (
	"testing"
)

func TestHumanizeKey(t *testing.T) {
	cases := map[string]string{
		"chestWidth":   "Chest Width",
		"sleeveLength": "Sleeve Length",
		"waist":        "Waist",
		"hipRound":     "Hip Round",
		"Size":         "Size",
	}
	for in, want := range cases {
		if got := HumanizeKey(in); got != want {
			t.Fatalf("HumanizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLinePropertiesCustomMeasurements(t *testing.T) {
	it := Item{
		VariantID: "v1",
		Quantity:  1,
		CustomMeasurements: map[string]string{
			"sleeveLength": "24",
			"chestWidth":   "40",
		},
	}

	props := LineProperties(it)
	if len(props) != 3 {
		t.Fatalf("expected 3 properties, got %d: %v", len(props), props)
	}
	if props[0].Name != "Size Type" || props[0].Value != "Custom Size" {
		t.Fatalf("expected custom-size marker first, got %v", props[0])
	}
	// sorted by raw key: chestWidth before sleeveLength
	if props[1].Name != "Chest Width" || props[1].Value != "40" {
		t.Fatalf("unexpected second property: %v", props[1])
	}
	if props[2].Name != "Sleeve Length" || props[2].Value != "24" {
		t.Fatalf("unexpected third property: %v", props[2])
	}
}

func TestLinePropertiesStandardSize(t *testing.T) {
	props := LineProperties(Item{VariantID: "v1", Quantity: 1, Size: "M"})
	if len(props) != 1 {
		t.Fatalf("expected single Size property, got %v", props)
	}
	if props[0].Name != "Size" || props[0].Value != "M" {
		t.Fatalf("unexpected property: %v", props[0])
	}
}

func TestLinePropertiesCustomWinsOverSize(t *testing.T) {
	it := Item{
		VariantID:          "v1",
		Quantity:           1,
		Size:               "L",
		CustomMeasurements: map[string]string{"waist": "32"},
	}
	props := LineProperties(it)
	if len(props) != 2 {
		t.Fatalf("expected marker plus one measurement, got %v", props)
	}
	for _, p := range props {
		if p.Name == "Size" {
			t.Fatalf("standard Size property must not appear with custom measurements: %v", props)
		}
	}
}

func TestLinePropertiesNone(t *testing.T) {
	if props := LineProperties(Item{VariantID: "v1", Quantity: 1}); props != nil {
		t.Fatalf("expected nil, got %v", props)
	}
}

func TestSubtotal(t *testing.T) {
	items := []Item{
		{Price: 500, Quantity: 2},
		{Price: 129.5, Quantity: 1},
	}
	if got := Subtotal(items); got != 1129.5 {
		t.Fatalf("expected 1129.5, got %v", got)
	}
}
