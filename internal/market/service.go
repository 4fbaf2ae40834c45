package market

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/crops"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/logger"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/metrics"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/repository"
)

// Service defines the market price interface
type Service interface {
	RecordPrice(ctx context.Context, price *domain.MarketPrice) (*domain.MarketPrice, error)
	LatestPrices(ctx context.Context, crop string, limit int) ([]domain.MarketPrice, error)
	PriceTrend(ctx context.Context, crop string, days int) ([]domain.PriceTrendPoint, error)
	AverageByMarket(ctx context.Context, crop string) ([]domain.MarketAverage, error)
}

// CropCatalog is the subset of the crop catalog used for metric labels
type CropCatalog interface {
	Has(name string) bool
}

// Config holds the latest-price cache settings
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	repo    repository.Market
	catalog CropCatalog
	cache   *priceCache
	clock   func() time.Time
}

// NewService creates a new market price service
func NewService(repo repository.Market, catalog CropCatalog, cfg Config, clock func() time.Time) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{
		repo:    repo,
		catalog: catalog,
		cache:   newPriceCache(cfg.CacheSize, cfg.CacheTTL),
		clock:   clock,
	}
}

// RecordPrice validates and stores one observation, filling unit, currency and source defaults
func (s *service) RecordPrice(ctx context.Context, price *domain.MarketPrice) (*domain.MarketPrice, error) {
	price.Crop = crops.Normalize(price.Crop)
	price.Market = strings.TrimSpace(price.Market)
	price.City = strings.TrimSpace(price.City)
	price.State = strings.TrimSpace(price.State)
	applyDefaults(price)

	if err := validatePrice(price); err != nil {
		return nil, err
	}

	price.ID = uuid.NewString()
	if price.RecordedAt.IsZero() {
		price.RecordedAt = s.clock()
	}

	if err := s.repo.InsertPrice(ctx, price); err != nil {
		return nil, fmt.Errorf("failed to record price: %w", err)
	}
	s.cache.InvalidateCrop(price.Crop)

	label := metrics.CropOther
	if s.catalog != nil && s.catalog.Has(price.Crop) {
		label = price.Crop
	}
	metrics.MarketPricesRecorded.WithLabelValues(label).Inc()
	logger.FromContext(ctx).Info("Market price recorded",
		"crop", price.Crop,
		"market", price.Market,
		"price", price.Price,
		"unit", price.Unit)

	return price, nil
}

// LatestPrices returns the newest observations for crop, served from cache when possible
func (s *service) LatestPrices(ctx context.Context, crop string, limit int) ([]domain.MarketPrice, error) {
	crop = crops.Normalize(crop)
	if crop == "" {
		return nil, fmt.Errorf("%w: crop is required", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	if limit > MaxLatestLimit {
		limit = MaxLatestLimit
	}

	if prices, ok := s.cache.Get(crop, limit); ok {
		return prices, nil
	}

	gen := s.cache.Generation(crop)
	prices, err := s.repo.LatestPrices(ctx, crop, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest prices: %w", err)
	}
	s.cache.SetIfCurrent(crop, limit, gen, prices)
	return prices, nil
}

// PriceTrend aggregates observations of the last days days into daily points, oldest first
func (s *service) PriceTrend(ctx context.Context, crop string, days int) ([]domain.PriceTrendPoint, error) {
	crop = crops.Normalize(crop)
	if crop == "" {
		return nil, fmt.Errorf("%w: crop is required", domain.ErrInvalidInput)
	}
	if days <= 0 {
		days = DefaultTrendDays
	}
	if days > MaxTrendDays {
		days = MaxTrendDays
	}

	prices, err := s.repo.PricesSince(ctx, crop, s.clock().AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("failed to get price history: %w", err)
	}
	return dailyTrend(prices), nil
}

// AverageByMarket returns the average and latest price per market, cheapest average first
func (s *service) AverageByMarket(ctx context.Context, crop string) ([]domain.MarketAverage, error) {
	crop = crops.Normalize(crop)
	if crop == "" {
		return nil, fmt.Errorf("%w: crop is required", domain.ErrInvalidInput)
	}

	prices, err := s.repo.PricesSince(ctx, crop, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to get market prices: %w", err)
	}
	return marketAverages(prices), nil
}

func applyDefaults(price *domain.MarketPrice) {
	if price.Unit == "" {
		price.Unit = domain.PriceUnitQuintal
	}
	if price.Currency == "" {
		price.Currency = domain.CurrencyINR
	}
	if strings.TrimSpace(price.Source) == "" {
		price.Source = domain.DefaultPriceSource
	}
}

func validatePrice(price *domain.MarketPrice) error {
	if price.Crop == "" || price.Market == "" {
		return fmt.Errorf("%w: crop and market are required", domain.ErrInvalidInput)
	}
	if price.Price < 0 || math.IsNaN(price.Price) {
		return fmt.Errorf("%w: %v", domain.ErrNegativePrice, price.Price)
	}
	switch price.Unit {
	case domain.PriceUnitQuintal, domain.PriceUnitKg, domain.PriceUnitTon:
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidPriceUnit, price.Unit)
	}
	switch price.Currency {
	case domain.CurrencyINR, domain.CurrencyUSD:
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidCurrency, price.Currency)
	}
	return nil
}

// dailyTrend expects prices oldest first
func dailyTrend(prices []domain.MarketPrice) []domain.PriceTrendPoint {
	points := make([]domain.PriceTrendPoint, 0)
	var sum float64
	var count int

	flush := func() {
		if count == 0 {
			return
		}
		last := &points[len(points)-1]
		last.AvgPrice = round2(sum / float64(count))
	}

	for _, p := range prices {
		day := p.RecordedAt.UTC().Format(trendDateLayout)
		if len(points) == 0 || points[len(points)-1].Date != day {
			flush()
			points = append(points, domain.PriceTrendPoint{Date: day, MinPrice: p.Price, MaxPrice: p.Price})
			sum, count = 0, 0
		}
		last := &points[len(points)-1]
		last.MinPrice = math.Min(last.MinPrice, p.Price)
		last.MaxPrice = math.Max(last.MaxPrice, p.Price)
		sum += p.Price
		count++
	}
	flush()

	return points
}

// marketAverages expects prices oldest first
func marketAverages(prices []domain.MarketPrice) []domain.MarketAverage {
	type acc struct {
		avg   domain.MarketAverage
		sum   float64
		count int
	}
	byMarket := make(map[string]*acc)
	order := make([]string, 0)

	for _, p := range prices {
		a, ok := byMarket[p.Market]
		if !ok {
			a = &acc{avg: domain.MarketAverage{Market: p.Market}}
			byMarket[p.Market] = a
			order = append(order, p.Market)
		}
		a.sum += p.Price
		a.count++
		if !p.RecordedAt.Before(a.avg.LastUpdated) {
			a.avg.City = p.City
			a.avg.State = p.State
			a.avg.LatestPrice = p.Price
			a.avg.LastUpdated = p.RecordedAt
		}
	}

	out := make([]domain.MarketAverage, 0, len(order))
	for _, market := range order {
		a := byMarket[market]
		a.avg.AvgPrice = round2(a.sum / float64(a.count))
		out = append(out, a.avg)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgPrice < out[j].AvgPrice })
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
