package domain

import "time"

// Price units and currencies accepted for market prices
const (
	PriceUnitQuintal = "quintal"
	PriceUnitKg      = "kg"
	PriceUnitTon     = "ton"

	CurrencyINR = "INR"
	CurrencyUSD = "USD"

	DefaultPriceSource = "Manual Entry"
)

// MarketPrice is one observed price for a crop at a market
type MarketPrice struct {
	ID         string    `json:"id"`
	Crop       string    `json:"crop"`
	Market     string    `json:"market"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Price      float64   `json:"price"`
	Unit       string    `json:"unit"`
	Currency   string    `json:"currency"`
	Source     string    `json:"source"`
	RecordedAt time.Time `json:"timestamp"`
}

// PriceTrendPoint is the daily aggregate of prices for a crop
type PriceTrendPoint struct {
	Date     string  `json:"date"`
	AvgPrice float64 `json:"avgPrice"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

// MarketAverage is the average and latest price for a crop at one market
type MarketAverage struct {
	Market      string    `json:"market"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	AvgPrice    float64   `json:"avgPrice"`
	LatestPrice float64   `json:"latestPrice"`
	LastUpdated time.Time `json:"lastUpdated"`
}
