// Package rates holds the rate schedule: immutable service tiers and the
// deterministic shipping cost derivation.
package rates

import (
	"errors"
	"fmt"
	"math"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// Pricing constants shared by every tier.
const (
	// distanceRatePerKm is charged per kilometer regardless of tier.
	distanceRatePerKm = 0.5

	// insuranceRate is charged on the declared value regardless of tier.
	insuranceRate = 0.01
)

// Delivery speed classes.
const (
	SpeedStandard  = "Standard"
	SpeedOvernight = "Overnight"
	SpeedEconomy   = "Economy"
)

// ErrTierIsNotConstructed is returned when a Tier was not created through
// the NewTier factory method.
var ErrTierIsNotConstructed = errors.New("Tier must be created via NewTier constructor")

// Tier is an immutable rate card: a named service class with its base rate,
// per-kilogram weight rate, and the fee table for special service tags.
//
// Quote is a pure function of its inputs. Unknown special tags contribute
// nothing rather than erroring, so new tags introduced by callers degrade
// gracefully instead of failing shipment creation.
type Tier struct {
	id          string
	name        string
	speed       string
	baseRate    float64
	weightRate  float64
	specialFees map[string]float64

	guard guard.ConstructorGuard
}

// NewTier creates a rate card. The fee table is copied, keeping the tier
// immutable even if the caller mutates its map afterwards.
func NewTier(id, name, speed string, baseRate, weightRate float64, specialFees map[string]float64) (*Tier, error) {
	tier := &Tier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tier.setID(id),
		tier.setName(name),
		tier.setSpeed(speed),
		tier.setRate("baseRate", baseRate, &tier.baseRate),
		tier.setRate("weightRate", weightRate, &tier.weightRate),
	); err != nil {
		return nil, err
	}

	tier.specialFees = make(map[string]float64, len(specialFees))
	for tag, fee := range specialFees {
		tier.specialFees[tag] = fee
	}

	return tier, nil
}

// StandardTier returns the built-in standard delivery rate card.
func StandardTier() *Tier {
	tier, err := NewTier("STD", "Standard Delivery", SpeedStandard, 50.0, 15.0, map[string]float64{
		"Oversize": 100.0,
		"Fragile":  20.0,
	})
	if err != nil {
		panic(err) // built-in rate card is statically valid
	}
	return tier
}

// ExpressOvernightTier returns the built-in overnight rate card.
func ExpressOvernightTier() *Tier {
	tier, err := NewTier("OVN", "Express Overnight", SpeedOvernight, 150.0, 25.0, map[string]float64{
		"Dangerous": 200.0,
		"Fragile":   75.0,
	})
	if err != nil {
		panic(err) // built-in rate card is statically valid
	}
	return tier
}

// BuiltInTiers returns the two rate cards that must exist at process start.
func BuiltInTiers() []*Tier {
	return []*Tier{StandardTier(), ExpressOvernightTier()}
}

// Validate ensures the Tier was constructed via NewTier.
func (t *Tier) Validate() error {
	if t == nil {
		return ErrTierIsNotConstructed
	}
	return t.guard.Validate(ErrTierIsNotConstructed)
}

// ID returns the tier identifier (e.g. "STD").
func (t *Tier) ID() string {
	return t.id
}

// Name returns the display name of the tier.
func (t *Tier) Name() string {
	return t.name
}

// Speed returns the delivery speed class.
func (t *Tier) Speed() string {
	return t.speed
}

// BaseRate returns the flat fee charged per shipment.
func (t *Tier) BaseRate() float64 {
	return t.baseRate
}

// WeightRate returns the fee charged per kilogram.
func (t *Tier) WeightRate() float64 {
	return t.weightRate
}

// SpecialFee looks up the fee for a special service tag.
func (t *Tier) SpecialFee(tag string) (float64, bool) {
	fee, ok := t.specialFees[tag]
	return fee, ok
}

// Quote derives the shipping cost for this tier:
//
//	base + weight*weightRate + distance*0.5 + Σ fees[tag] + declaredValue*0.01
//
// rounded to two decimal places. Tags without a fee entry contribute zero.
func (t *Tier) Quote(weight, distanceKm float64, specialTags []string, declaredValue float64) float64 {
	cost := t.baseRate
	cost += weight * t.weightRate
	cost += distanceKm * distanceRatePerKm

	for _, tag := range specialTags {
		if fee, ok := t.specialFees[tag]; ok {
			cost += fee
		}
	}

	cost += declaredValue * insuranceRate

	return round2(cost)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (t *Tier) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id is required")
	}
	t.id = id
	return nil
}

func (t *Tier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	t.name = name
	return nil
}

func (t *Tier) setSpeed(speed string) error {
	if speed == "" {
		return errs.NewValueIsRequiredError("speed is required")
	}
	t.speed = speed
	return nil
}

func (t *Tier) setRate(param string, value float64, target *float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v is negative", value))
	}
	*target = value
	return nil
}
