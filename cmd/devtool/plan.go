package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/harvest"
)

type PlanCommand struct {
	out io.Writer
}

func (c *PlanCommand) Name() string {
	return "plan"
}

func (c *PlanCommand) Description() string {
	return "Print the harvest scenario table for the given crop state"
}

func (c *PlanCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	crop := fs.String("crop", "wheat", "crop type")
	maturity := fs.Float64("maturity", 80, "current maturity percent")
	pest := fs.Float64("pest", 10, "current pest infestation percent")
	price := fs.Float64("price", 2000, "market price per unit")
	yield := fs.Float64("yield", 50, "expected yield in units")
	growth := fs.Float64("growth-rate", harvest.DefaultGrowthRate, "maturity gain per day")
	damage := fs.Float64("pest-rate", harvest.DefaultPestDamageRate, "pest damage gain per day")
	if err := fs.Parse(args); err != nil {
		return err
	}

	inputs := domain.HarvestInputs{
		CropType:           *crop,
		CurrentMaturity:    *maturity,
		PestInfestation:    *pest,
		CurrentMarketPrice: *price,
		ExpectedYield:      *yield,
		GrowthRate:         growth,
		PestDamageRate:     damage,
	}
	result := harvest.NewPlanner().Calculate(inputs, time.Now())

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	return printPlan(out, result)
}

func printPlan(out io.Writer, result *domain.HarvestResult) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "day\tdate\tmaturity\tpest\tyield\tprofit\t")
	for _, s := range result.Scenarios {
		marker := ""
		if s.Days == result.OptimalDays {
			marker = " *"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s%%\t%s%%\t%.2f\t%s%s\t\n",
			s.Days, s.Date.Format(time.DateOnly),
			harvest.FormatPercent(s.Maturity), harvest.FormatPercent(s.PestDamage),
			s.EffectiveYield, harvest.FormatRupees(s.Profit), marker)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nOptimal: day %d, %s, confidence %d%%\n",
		result.OptimalDays, harvest.FormatRupees(result.ExpectedProfit), result.Confidence)
	_, err := fmt.Fprintln(out, result.Recommendation)
	return err
}
