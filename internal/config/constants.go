package config

import "time"

// Configuration file paths
const (
	ConfigPathCropCatalog = "configs/crops.json"
	ConfigPathCropSchema  = "configs/schemas/crops.schema.json"
)

// Defaults applied when a variable is unset
const (
	defaultPort              = "8080"
	defaultLogLevel          = "info"
	defaultLogFormat         = "text"
	defaultLogDir            = "logs"
	defaultEnvironment       = "dev"
	defaultServiceName       = "krishiraksha"
	defaultVersion           = "dev"
	defaultDBName            = "krishiraksha"
	defaultDBMaxConns        = 10
	defaultMarketCacheSize   = 256
	defaultMarketCacheTTL    = 5 * time.Minute
	defaultReminderInterval  = 15 * time.Minute
	defaultReminderLeadTime  = 24 * time.Hour
	defaultWorkerCount       = 2
	defaultWorkerQueueSize   = 16
	defaultDBMaxConnIdleTime = 5 * time.Minute
	defaultDBMaxConnLifetime = time.Hour
)
