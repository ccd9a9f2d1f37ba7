package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN
//	-max-open-conns connection pool open-connection cap
//	-max-idle-conns connection pool idle-connection cap
//	-cleanup-interval expired temp-code cleanup interval (e.g., "10m", "1h")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var maxOpenConns int
	var maxIdleConns int
	var cleanupInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.IntVar(&maxOpenConns, "max-open-conns", 0, "Max open DB connections")
	flag.IntVar(&maxIdleConns, "max-idle-conns", 0, "Max idle DB connections")
	flag.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Expired code cleanup interval (e.g., 10m, 1h)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN:          databaseDSN,
				MaxOpenConns: maxOpenConns,
				MaxIdleConns: maxIdleConns,
			},
		},
		Workers: Workers{
			CleanupInterval: cleanupInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
