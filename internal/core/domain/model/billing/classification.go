package billing

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Classification determines how a customer pays for shipments.
type Classification string

const (
	// ClassificationNonContract customers pay per shipment, immediately.
	ClassificationNonContract Classification = "NON_CONTRACT"

	// ClassificationPrepaid customers settled up front; charges record as zero.
	ClassificationPrepaid Classification = "PREPAID"

	// ClassificationContract customers accrue charges on a monthly statement.
	ClassificationContract Classification = "CONTRACT"
)

// Validate checks the classification against the known set.
func (c Classification) Validate() error {
	switch c {
	case ClassificationNonContract, ClassificationPrepaid, ClassificationContract:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("classification", fmt.Errorf("%q is not a valid customer classification", string(c)))
}

// PaymentMethod maps the classification to the payment method used when a
// shipment charge is recorded.
func (c Classification) PaymentMethod() (Method, error) {
	switch c {
	case ClassificationNonContract:
		return MethodImmediate, nil
	case ClassificationPrepaid:
		return MethodPrepaid, nil
	case ClassificationContract:
		return MethodMonthly, nil
	}
	return "", c.Validate()
}
