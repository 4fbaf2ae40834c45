package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/database/postgres"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	Harvest  repository.Harvest
	Calendar repository.Calendar
	Market   repository.Market
}

// InitializeRepositories creates the postgres repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Harvest:  postgres.NewHarvestRepository(dbPool),
		Calendar: postgres.NewCalendarRepository(dbPool),
		Market:   postgres.NewMarketRepository(dbPool),
	}
}
