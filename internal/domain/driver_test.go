package domain

import "testing"

func TestParseDriverType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want DriverType
	}{
		{"COMPANY", DriverTypeCompany},
		{"Company", DriverTypeCompany},
		{"COM", DriverTypeCompany},
		{"Rental", DriverTypeRental},
		{"RNR", DriverTypeRental},
		{" rnr ", DriverTypeRental},
		{"OWNER_OPERATOR", DriverTypeOwnerOperator},
		{"OwnerOperator", DriverTypeOwnerOperator},
		{"Owner-Operator", DriverTypeOwnerOperator},
		{"owner operator", DriverTypeOwnerOperator},
		{"OO", DriverTypeOwnerOperator},
		{"", DefaultDriverType},
		{"CONTRACTOR", DefaultDriverType},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseDriverType(tt.raw); got != tt.want {
				t.Errorf("ParseDriverType(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDriverType_Normalize(t *testing.T) {
	t.Parallel()

	if got := DriverType("RNR").Normalize(); got != DriverTypeRental {
		t.Errorf("expected RNR to normalize to %s, got %s", DriverTypeRental, got)
	}
	if got := DriverType("SPACESHIP").Normalize(); got != DefaultDriverType {
		t.Errorf("expected unknown type to normalize to %s, got %s", DefaultDriverType, got)
	}
}

func TestDriverType_Order(t *testing.T) {
	t.Parallel()

	if !(DriverTypeCompany.Order() < DriverTypeRental.Order() && DriverTypeRental.Order() < DriverTypeOwnerOperator.Order()) {
		t.Errorf("expected COMPANY < RENTAL < OWNER_OPERATOR, got %d, %d, %d",
			DriverTypeCompany.Order(), DriverTypeRental.Order(), DriverTypeOwnerOperator.Order())
	}
}
