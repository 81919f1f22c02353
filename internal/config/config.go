package config

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Sample SampleConfig `mapstructure:"sample"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// SampleConfig controls the sample question built at startup.
type SampleConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
