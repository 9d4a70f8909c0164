package traffic

import "math"

// Default sales assumptions for e-commerce prospects. The conversion rate
// is the share of visits that become orders; the average order value is
// currency-unit agnostic.
const (
	DefaultConversionRatePercent = 2.0
	DefaultAverageOrderValue     = 75.0
)

// ShipmentSurchargeFactor accounts for multi-item orders that ship in
// more than one parcel: shipments = orders x 1.05. Single authoritative
// constant, applied both to the aggregate and to each country slice.
const ShipmentSurchargeFactor = 1.05

// Assumptions are the tunable inputs of the business estimate. Nil fields
// fall back to the documented defaults; a zero value is a deliberate
// override.
type Assumptions struct {
	ConversionRatePercent *float64 `json:"conversionRatePercent"`
	AverageOrderValue     *float64 `json:"averageOrderValue"`
}

// EstimateBusiness derives monthly order, shipment and revenue estimates
// from a normalized profile. It is deterministic: identical inputs always
// produce identical outputs, with rounding fixed as round-half-up at each
// step. Per-country figures round independently from the aggregate and are
// not reconciled against it.
//
// Fails with InvalidInputError when an assumption override is negative.
func EstimateBusiness(profile *SiteTrafficProfile, assumptions Assumptions) (*BusinessEstimate, error) {
	conversionRate := DefaultConversionRatePercent
	if assumptions.ConversionRatePercent != nil {
		conversionRate = *assumptions.ConversionRatePercent
	}
	orderValue := DefaultAverageOrderValue
	if assumptions.AverageOrderValue != nil {
		orderValue = *assumptions.AverageOrderValue
	}

	if conversionRate < 0 {
		return nil, &InvalidInputError{Reason: "conversion rate cannot be negative"}
	}
	if orderValue < 0 {
		return nil, &InvalidInputError{Reason: "average order value cannot be negative"}
	}

	monthlyOrders := int64(math.Round(float64(profile.TotalVisits) * conversionRate / 100))
	estimate := &BusinessEstimate{
		ConversionRatePercent: conversionRate,
		AverageOrderValue:     orderValue,
		MonthlyOrders:         monthlyOrders,
		MonthlyShipments:      int64(math.Round(float64(monthlyOrders) * ShipmentSurchargeFactor)),
		MonthlyRevenue:        float64(monthlyOrders) * orderValue,
		PerCountry:            make([]CountryEstimate, 0, len(profile.Countries)),
	}

	for _, country := range profile.Countries {
		countryOrders := int64(math.Round(float64(monthlyOrders) * float64(country.SharePercent) / 100))
		estimate.PerCountry = append(estimate.PerCountry, CountryEstimate{
			Code:      country.Code,
			Name:      country.Name,
			Orders:    countryOrders,
			Shipments: int64(math.Round(float64(countryOrders) * ShipmentSurchargeFactor)),
		})
	}

	return estimate, nil
}
