package domain

import "strings"

// DriverType represents the labor model operating a trip.
type DriverType string

const (
	DriverTypeCompany       DriverType = "COMPANY"
	DriverTypeRental        DriverType = "RENTAL"
	DriverTypeOwnerOperator DriverType = "OWNER_OPERATOR"
)

// DefaultDriverType is used whenever a caller supplies an unknown or empty type.
const DefaultDriverType = DriverTypeCompany

// DriverTypes lists every supported driver type in ranking order.
var DriverTypes = []DriverType{
	DriverTypeCompany,
	DriverTypeRental,
	DriverTypeOwnerOperator,
}

// ParseDriverType maps free-form input onto a DriverType. The short codes
// COM, RNR and OO used by booking and dispatch clients are accepted.
// Unknown values resolve to DefaultDriverType.
func ParseDriverType(raw string) DriverType {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	switch normalized {
	case "COMPANY", "COM":
		return DriverTypeCompany
	case "RENTAL", "RNR":
		return DriverTypeRental
	case "OWNER_OPERATOR", "OWNEROPERATOR", "OO":
		return DriverTypeOwnerOperator
	default:
		return DefaultDriverType
	}
}

// Normalize returns t, or DefaultDriverType if t is not a known type.
func (t DriverType) Normalize() DriverType {
	switch t {
	case DriverTypeCompany, DriverTypeRental, DriverTypeOwnerOperator:
		return t
	default:
		return ParseDriverType(string(t))
	}
}

// Order returns the position of t in DriverTypes, used as a ranking tie-break.
func (t DriverType) Order() int {
	for i, dt := range DriverTypes {
		if dt == t.Normalize() {
			return i
		}
	}
	return len(DriverTypes)
}

// DriverProfile is the class of labor operating a trip, resolved by the caller
// from its own driver and unit records.
type DriverProfile struct {
	ID              string     `json:"id,omitempty"`
	Name            string     `json:"name,omitempty"`
	Type            DriverType `json:"type"`
	WeeklyTruckCost float64    `json:"weekly_truck_cost"` // 0 when unknown
}
