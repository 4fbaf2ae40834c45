package harvest

import (
	"fmt"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
)

// GenerateRecommendation picks the farmer-facing message for the optimal scenario.
// Branches are evaluated in order: harvest now, short term (<=7 days), medium term
// (<=14 days), high infestation (by the submitted pest level), long term.
func (p *Planner) GenerateRecommendation(optimal, current domain.Scenario, currentMaturity, pestInfestation float64) string {
	profitDiff := optimal.Profit - current.Profit
	days := optimal.Days

	switch {
	case days == 0:
		return fmt.Sprintf(msgHarvestNow, FormatRupees(optimal.Profit))
	case days <= shortTermDays:
		return fmt.Sprintf(msgShortTerm,
			days, pluralDays(days),
			FormatPercent(optimal.Maturity),
			FormatRupees(profitDiff),
			FormatRupees(optimal.Profit))
	case days <= mediumTermDays:
		return fmt.Sprintf(msgMediumTerm,
			days,
			FormatPercent(optimal.Maturity),
			FormatRupees(profitDiff),
			FormatPercent(optimal.PestDamage))
	case pestInfestation > highInfestationLevel:
		return fmt.Sprintf(msgHighInfestation,
			days,
			FormatPercent(optimal.Maturity),
			FormatPercent(optimal.PestDamage))
	default:
		return fmt.Sprintf(msgLongTerm,
			days,
			FormatPercent(optimal.Maturity),
			FormatRupees(optimal.Profit),
			FormatPercent(optimal.PestDamage))
	}
}

func pluralDays(days int) string {
	if days > 1 {
		return wordDays
	}
	return wordDay
}
