package gochap

import "github.com/vitalvas/gochap/pkg/log"

// Option configures a ChallengeResponse during Init.
type Option func(*initConfig)

type initConfig struct {
	logger log.Logger
}

func defaultInitConfig() initConfig {
	return initConfig{
		logger: log.NewNopLogger(),
	}
}

// WithLogger attaches a logger for lifecycle debug events. The default
// discards all output, keeping observability strictly opt-in.
func WithLogger(logger log.Logger) Option {
	return func(cfg *initConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
