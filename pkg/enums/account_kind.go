package enums

import "fmt"

// AccountKind tags which identity table an account lives in.
type AccountKind string

const (
	AccountKindDonor     AccountKind = "donor"
	AccountKindRecipient AccountKind = "recipient"
	AccountKindNGO       AccountKind = "ngo"
)

var validAccountKinds = []AccountKind{
	AccountKindDonor,
	AccountKindRecipient,
	AccountKindNGO,
}

// String implements fmt.Stringer.
func (k AccountKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known AccountKind.
func (k AccountKind) IsValid() bool {
	for _, candidate := range validAccountKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseAccountKind converts raw input into an AccountKind.
func ParseAccountKind(value string) (AccountKind, error) {
	for _, candidate := range validAccountKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid account kind %q", value)
}
