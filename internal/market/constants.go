package market

import "time"

// Query defaults
const (
	DefaultLatestLimit = 10
	MaxLatestLimit     = 100
	DefaultTrendDays   = 30
	MaxTrendDays       = 365
)

// Cache defaults used when the config leaves them unset
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

const trendDateLayout = "2006-01-02"
