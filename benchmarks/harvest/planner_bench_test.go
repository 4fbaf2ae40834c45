package harvest_bench

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/harvest"
)

// --- Stubs (Zero-overhead collaborators for benchmarking) ---

type StubRepository struct{}

func (s *StubRepository) SaveCalculation(ctx context.Context, calc *domain.HarvestCalculation) error {
	return nil
}
func (s *StubRepository) GetUserHistory(ctx context.Context, userID string, limit int) ([]domain.HarvestCalculation, error) {
	return nil, nil
}
func (s *StubRepository) GetRecentByCrop(ctx context.Context, cropType string, limit int) ([]domain.HarvestCalculation, error) {
	return nil, nil
}

type StubCatalog struct{}

func (s StubCatalog) Has(name string) bool { return name == "wheat" }

var (
	benchNow    = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	benchInputs = domain.HarvestInputs{
		CropType:           "wheat",
		CurrentMaturity:    72,
		PestInfestation:    12,
		CurrentMarketPrice: 2150,
		ExpectedYield:      40,
	}
	sink *domain.HarvestResult
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func BenchmarkPlanner_Calculate(b *testing.B) {
	planner := harvest.NewPlanner()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = planner.Calculate(benchInputs, benchNow)
	}
}

func BenchmarkPlanner_GenerateScenarios(b *testing.B) {
	planner := harvest.NewPlanner()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = planner.GenerateScenarios(benchInputs, benchNow)
	}
}

func BenchmarkService_Calculate(b *testing.B) {
	svc := harvest.NewService(&StubRepository{}, StubCatalog{}, func() time.Time { return benchNow })
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := svc.Calculate(ctx, "bench-user", benchInputs)
		if err != nil {
			b.Fatal(err)
		}
		sink = res
	}
}

func BenchmarkService_CalculateParallel(b *testing.B) {
	svc := harvest.NewService(&StubRepository{}, StubCatalog{}, func() time.Time { return benchNow })
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		for pb.Next() {
			if _, err := svc.Calculate(ctx, "", benchInputs); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
