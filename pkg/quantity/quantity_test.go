package quantity

import (
	"strings"
	"testing"
)

func TestAll(t *testing.T) {
	qs := All()
	if len(qs) != int(numQuantities)-1 {
		t.Fatalf("All() returned %d quantities, want %d", len(qs), int(numQuantities)-1)
	}
	for i, q := range qs {
		if !q.Valid() {
			t.Errorf("quantity %d is not valid", i)
		}
		if q == Unknown {
			t.Error("All() must not include Unknown")
		}
	}
}

func TestQuantity_String(t *testing.T) {
	tests := []struct {
		q        Quantity
		expected string
	}{
		{CatalyticActivity, "Catalytic Activity"},
		{AmountOfSubstance, "Amount of Substance"},
		{Time, "Time"},
		{Unknown, "Unknown"},
		{Quantity(999), "Quantity(999)"},
	}

	for _, tt := range tests {
		if got := tt.q.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestQuantity_SIUnit(t *testing.T) {
	tests := []struct {
		q      Quantity
		symbol string
	}{
		{Length, "m"},
		{Weight, "kg"},
		{Time, "s"},
		{Temperature, "K"},
		{AmountOfSubstance, "mol"},
		{CatalyticActivity, "kat"},
		{Density, "kg/m3"},
		{ElectricConductance, "S"},
		{Molarity, "mol/m3"},
	}

	for _, tt := range tests {
		if got := tt.q.SIUnit().Symbol(); got != tt.symbol {
			t.Errorf("%s.SIUnit() = %s, want %s", tt.q, got, tt.symbol)
		}
	}

	if !Unknown.SIUnit().IsZero() {
		t.Error("Unknown should have no SI unit")
	}
}

func TestQuantity_Units(t *testing.T) {
	for _, q := range All() {
		us := q.Units()
		if len(us) == 0 {
			t.Errorf("%s has no units", q)
			continue
		}
		if us[0] != q.SIUnit() {
			t.Errorf("%s: first unit %s is not the SI unit", q, us[0].Symbol())
		}
		for _, u := range us {
			if u.Quantity() != q {
				t.Errorf("%s listed under %s", u.Symbol(), q)
			}
		}
	}

	// callers get a copy
	us := Time.Units()
	us[0] = Katal
	if Time.Units()[0] != Second {
		t.Error("Units() exposed internal storage")
	}
}

func TestQuantity_Dimension(t *testing.T) {
	if got := CatalyticActivity.Dimension(); got != AmountOfSubstance.Dimension().Div(Time.Dimension()) {
		t.Errorf("catalytic activity dimension = %s", got)
	}
	if got := Energy.Dimension().String(); got != "m^2 kg s^-2" {
		t.Errorf("energy dimension = %q", got)
	}
	if got := (Dimension{}).String(); got != "1" {
		t.Errorf("dimensionless = %q", got)
	}
	if !Unknown.Dimension().IsDimensionless() {
		t.Error("Unknown should be dimensionless")
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in       string
		expected Quantity
	}{
		{"catalytic-activity", CatalyticActivity},
		{"CatalyticActivity", CatalyticActivity},
		{"amount of substance", AmountOfSubstance},
		{" time ", Time},
		{"mass_flow_rate", MassFlowRate},
	}

	for _, tt := range tests {
		got, err := ParseQuantity(tt.in)
		if err != nil {
			t.Errorf("ParseQuantity(%q): %v", tt.in, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseQuantity(%q) = %s, want %s", tt.in, got, tt.expected)
		}
	}

	if _, err := ParseQuantity("flux capacitance"); err == nil || !strings.Contains(err.Error(), "unknown quantity") {
		t.Errorf("expected unknown quantity error, got %v", err)
	}
}
