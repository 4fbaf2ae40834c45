package domain

import "time"

// HarvestInputs describes the current state of a crop submitted for harvest planning.
// GrowthRate and PestDamageRate are optional; nil selects the planner defaults.
type HarvestInputs struct {
	CropType           string   `json:"cropType"`
	CurrentMaturity    float64  `json:"currentMaturity"`
	PestInfestation    float64  `json:"pestInfestation"`
	CurrentMarketPrice float64  `json:"currentMarketPrice"`
	ExpectedYield      float64  `json:"expectedYield"`
	GrowthRate         *float64 `json:"growthRate,omitempty"`
	PestDamageRate     *float64 `json:"pestDamageRate,omitempty"`
}

// Scenario is the projected crop state if harvested Days days from now
type Scenario struct {
	Days           int       `json:"days"`
	Date           time.Time `json:"date"`
	Maturity       float64   `json:"maturity"`
	PestDamage     float64   `json:"pestDamage"`
	EffectiveYield float64   `json:"effectiveYield"`
	Profit         int       `json:"profit"`
}

// HarvestAnalysis summarizes the optimal scenario against harvesting today
type HarvestAnalysis struct {
	CurrentValue    int     `json:"currentValue"`
	PotentialGrowth int     `json:"potentialGrowth"`
	PestDamageRisk  float64 `json:"pestDamageRisk"`
	MaturityLevel   float64 `json:"maturityLevel"`
}

// HarvestResult is the full output of one harvest planning run
type HarvestResult struct {
	OptimalDate    time.Time       `json:"optimalDate"`
	OptimalDays    int             `json:"optimalDays"`
	ExpectedProfit int             `json:"expectedProfit"`
	Confidence     int             `json:"confidence"`
	Scenarios      []Scenario      `json:"scenarios"`
	Recommendation string          `json:"recommendation"`
	Analysis       HarvestAnalysis `json:"analysis"`
}

// HarvestCalculation is a stored harvest planning run
type HarvestCalculation struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId,omitempty"`
	CropType  string        `json:"cropType"`
	Inputs    HarvestInputs `json:"inputs"`
	Result    HarvestResult `json:"result"`
	CreatedAt time.Time     `json:"timestamp"`
}
