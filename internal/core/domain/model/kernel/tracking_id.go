package kernel

import (
	"fmt"
	"math/big"

	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// trackingIDLength is the number of decimal digits in a tracking identifier.
const trackingIDLength = 10

// ErrTrackingIDIsNotConstructed indicates that a TrackingID was not properly
// initialized through NewTrackingID or TrackingIDFromString.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingID must be created via NewTrackingID or TrackingIDFromString",
)

// TrackingID is the unique identifier of one shipment, stable for its
// lifetime. It is a 10-digit decimal string derived from a random UUID:
// the UUID is interpreted as a 128-bit integer and the leading ten decimal
// digits become the identifier. Customers quote this number when tracking
// a shipment, so it is kept short and digits-only.
type TrackingID struct {
	value string
}

// NewTrackingID generates a fresh tracking identifier.
func NewTrackingID() TrackingID {
	id := uuid.New()
	n := new(big.Int).SetBytes(id[:])
	digits := n.String()
	// A 128-bit integer has at least 10 decimal digits except for
	// vanishingly small values; left-pad those instead of failing.
	for len(digits) < trackingIDLength {
		digits = "0" + digits
	}
	return TrackingID{value: digits[:trackingIDLength]}
}

// TrackingIDFromString parses a tracking identifier supplied by a caller.
// The identifier must be exactly ten decimal digits.
func TrackingIDFromString(s string) (TrackingID, error) {
	if len(s) != trackingIDLength {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingId",
			fmt.Errorf("%q is not %d characters long", s, trackingIDLength),
		)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return TrackingID{}, errs.NewValueIsInvalidErrorWithCause(
				"trackingId",
				fmt.Errorf("%q contains a non-digit character", s),
			)
		}
	}
	return TrackingID{value: s}, nil
}

// String returns the ten-digit identifier.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual compares two tracking identifiers for equality.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate checks if the TrackingID is properly constructed.
func (t TrackingID) Validate() error {
	if t.value == "" {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
