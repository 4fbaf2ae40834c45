package harvest

import (
	"math"
	"time"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
)

// Planner provides pure harvest timing logic (no DB dependencies).
// Every method is safe for concurrent use.
type Planner struct{}

// NewPlanner creates a new harvest planner
func NewPlanner() *Planner {
	return &Planner{}
}

// Calculate runs the full simulation for inputs anchored at now
func (p *Planner) Calculate(inputs domain.HarvestInputs, now time.Time) *domain.HarvestResult {
	scenarios := p.GenerateScenarios(inputs, now)
	optimal := p.SelectOptimal(scenarios)
	current := scenarios[0]

	return &domain.HarvestResult{
		OptimalDate:    optimal.Date,
		OptimalDays:    optimal.Days,
		ExpectedProfit: optimal.Profit,
		Confidence:     p.CalculateConfidence(optimal.Maturity, optimal.PestDamage, optimal.Days),
		Scenarios:      scenarios,
		Recommendation: p.GenerateRecommendation(optimal, current, inputs.CurrentMaturity, inputs.PestInfestation),
		Analysis: domain.HarvestAnalysis{
			CurrentValue:    current.Profit,
			PotentialGrowth: optimal.Profit - current.Profit,
			PestDamageRisk:  optimal.PestDamage,
			MaturityLevel:   optimal.Maturity,
		},
	}
}

// GenerateScenarios projects the crop state for every day offset 0..HorizonDays.
// All dates are relative to the single anchor now.
func (p *Planner) GenerateScenarios(inputs domain.HarvestInputs, now time.Time) []domain.Scenario {
	growthRate, pestDamageRate := ratesOrDefault(inputs)
	dailyCost := fixedDailyCost + inputs.ExpectedYield*inputs.CurrentMarketPrice*valueCostFraction

	scenarios := make([]domain.Scenario, 0, HorizonDays+1)
	for days := 0; days <= HorizonDays; days++ {
		d := float64(days)
		maturity := math.Min(maxPercent, inputs.CurrentMaturity+growthRate*d)
		pestDamage := math.Min(maxPercent, inputs.PestInfestation+pestDamageRate*d)

		effectiveYield := inputs.ExpectedYield * (maturity / maxPercent) * ((maxPercent - pestDamage) / maxPercent)
		profit := effectiveYield*inputs.CurrentMarketPrice - dailyCost*d

		scenarios = append(scenarios, domain.Scenario{
			Days:           days,
			Date:           now.AddDate(0, 0, days),
			Maturity:       roundTenth(maturity),
			PestDamage:     roundTenth(pestDamage),
			EffectiveYield: roundTenth(effectiveYield),
			Profit:         roundProfit(profit),
		})
	}
	return scenarios
}

// SelectOptimal returns the most profitable scenario.
// The running best is only replaced on strict improvement, so the earliest day wins ties.
func (p *Planner) SelectOptimal(scenarios []domain.Scenario) domain.Scenario {
	best := scenarios[0]
	for _, s := range scenarios[1:] {
		if s.Profit > best.Profit {
			best = s
		}
	}
	return best
}

// CalculateConfidence scores the recommendation 0-100 from additive penalties on
// maturity, pest damage and wait time
func (p *Planner) CalculateConfidence(maturity, pestDamage float64, days int) int {
	if math.IsNaN(maturity) || math.IsNaN(pestDamage) {
		return minConfidence
	}

	confidence := float64(maxConfidence)

	if maturity < lowMaturityThreshold {
		confidence -= (lowMaturityThreshold - maturity) * lowMaturityPenalty
	} else if maturity > highMaturityThreshold {
		confidence -= (maturity - highMaturityThreshold) * highMaturityPenalty
	}

	if pestDamage > pestDamageThreshold {
		confidence -= (pestDamage - pestDamageThreshold) * pestDamagePenalty
	}

	if days < shortWaitDays {
		confidence -= float64(shortWaitDays-days) * shortWaitPenalty
	} else if days > longWaitDays {
		confidence -= float64(days-longWaitDays) * longWaitPenalty
	}

	score := math.Round(confidence)
	if score > maxConfidence {
		return maxConfidence
	}
	if score < minConfidence {
		return minConfidence
	}
	return int(score)
}

func ratesOrDefault(inputs domain.HarvestInputs) (float64, float64) {
	growthRate := DefaultGrowthRate
	if inputs.GrowthRate != nil {
		growthRate = *inputs.GrowthRate
	}
	pestDamageRate := DefaultPestDamageRate
	if inputs.PestDamageRate != nil {
		pestDamageRate = *inputs.PestDamageRate
	}
	return growthRate, pestDamageRate
}

// roundProfit rounds to the nearest rupee, saturating at the int range
func roundProfit(v float64) int {
	r := math.Round(v)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= float64(math.MaxInt):
		return math.MaxInt
	case r <= float64(math.MinInt):
		return math.MinInt
	}
	return int(r)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
