package usecase

// Fare table per car type, in rubles. Unknown car types fall back to the
// comfort fare.
const (
	fallbackBasePrice int64 = 250

	// DefaultDistanceKm is assumed when a request carries no distance.
	DefaultDistanceKm float64 = 5

	// PriceCurrency tags calculate-price responses; it is not persisted.
	PriceCurrency = "RUB"

	surchargeFreeKm float64 = 10
	surchargePerKm  int64   = 20
)

var basePrices = map[string]int64{
	"economy":  150,
	"comfort":  250,
	"business": 400,
	"minivan":  500,
}

// PricingCalculator maps a car-type tag to a base fare and applies a linear
// distance surcharge beyond the included kilometers.
type PricingCalculator struct{}

// NewPricingCalculator constructs PricingCalculator.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// BasePrice returns the flat fare for carType.
func (p *PricingCalculator) BasePrice(carType string) int64 {
	if base, ok := basePrices[carType]; ok {
		return base
	}
	return fallbackBasePrice
}

// Price returns the full fare for a trip of distanceKm kilometers.
func (p *PricingCalculator) Price(carType string, distanceKm float64) int64 {
	base := p.BasePrice(carType)
	if distanceKm > surchargeFreeKm {
		return base + int64((distanceKm-surchargeFreeKm)*float64(surchargePerKm))
	}
	return base
}
