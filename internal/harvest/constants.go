package harvest

// Simulation constants
const (
	// HorizonDays is the last day offset simulated; scenarios cover 0..HorizonDays inclusive.
	HorizonDays = 30

	DefaultGrowthRate     = 2.0 // maturity percentage points per day
	DefaultPestDamageRate = 1.5 // pest damage percentage points per day

	maxPercent = 100.0

	// Daily holding cost = fixedDailyCost + expectedYield*price*valueCostFraction
	fixedDailyCost    = 100.0
	valueCostFraction = 0.02
)

// Confidence scoring constants
const (
	maxConfidence = 100
	minConfidence = 0

	lowMaturityThreshold  = 70.0
	lowMaturityPenalty    = 0.5
	highMaturityThreshold = 95.0
	highMaturityPenalty   = 2.0

	pestDamageThreshold = 30.0
	pestDamagePenalty   = 0.8

	shortWaitDays    = 3
	shortWaitPenalty = 5.0
	longWaitDays     = 21
	longWaitPenalty  = 2.0
)

// Recommendation day bands and infestation threshold
const (
	shortTermDays        = 7
	mediumTermDays       = 14
	highInfestationLevel = 50.0
)

// History limits
const (
	DefaultHistoryLimit = 10
	DefaultRecentLimit  = 5
	MaxHistoryLimit     = 50
)

// Recommendation templates
const (
	msgHarvestNow      = "Your crop is ready to harvest now. Current conditions suggest immediate harvest will maximize your profit at %s."
	msgShortTerm       = "Wait %d %s for optimal harvest. Your crop will reach %s%% maturity, increasing profit by %s to %s. Monitor pest levels closely."
	msgMediumTerm      = "Optimal harvest in %d days. Waiting allows crop to mature to %s%%, increasing profit by %s. However, pest damage may reach %s%%, so implement pest control measures now."
	msgHighInfestation = "High pest infestation detected. While waiting %d days could increase maturity to %s%%, pest damage will reach %s%%. Consider harvesting earlier or implementing aggressive pest control immediately."
	msgLongTerm        = "Wait %d days for optimal harvest at %s%% maturity. Expected profit: %s. Implement pest control to minimize damage risk (projected %s%%)."

	wordDay  = "day"
	wordDays = "days"
)
