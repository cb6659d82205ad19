package constants

// Statutory discount values mandated by Philippine law (RA 9994 for senior
// citizens, RA 10754 for persons with disability). These are fixed by
// regulation, not merchant-configurable.
const (
	// StatutoryDiscountPercent is the mandated discount for senior citizens
	// and PWDs.
	StatutoryDiscountPercent = 20.0

	// SeniorCitizenMinimumAge is the qualifying age for the senior citizen
	// discount.
	SeniorCitizenMinimumAge = 60

	// DefaultVATRatePercent is the standard Philippine VAT rate.
	DefaultVATRatePercent = 12.0
)

// Defaults used by rule suggestions and impact estimation
const (
	// ImpactAdoptionRate is the assumed share of eligible customers that
	// actually claim a discount when estimating revenue impact.
	ImpactAdoptionRate = 0.7

	// EarlyBirdCutoffHour is the booking hour (24h clock) before which the
	// suggested early-bird discount applies.
	EarlyBirdCutoffHour = 6

	FirstTimeGuestDiscountPercent = 10.0
	EarlyBirdDiscountPercent      = 15.0
	StudentDiscountPercent        = 15.0
)
