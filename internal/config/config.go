package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Batch   BatchConfig   `yaml:"batch" mapstructure:"batch"`
	Render  RenderConfig  `yaml:"render" mapstructure:"render"`
	Scoring ScoringConfig `yaml:"scoring" mapstructure:"scoring"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the generation history backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	RateLimitRPS   float64  `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
	RateLimitBurst int      `yaml:"rate_limit_burst" mapstructure:"rate_limit_burst"`
	CORSOrigins    []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// BatchConfig configures batch generation.
type BatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" mapstructure:"max_concurrent"`
}

// RenderConfig configures document rendering.
type RenderConfig struct {
	ChromePath     string `yaml:"chrome_path" mapstructure:"chrome_path"`
	PDFTimeoutSecs int    `yaml:"pdf_timeout_secs" mapstructure:"pdf_timeout_secs"`
}

// ScoringConfig is the single table of weights, thresholds and answer
// defaults consulted by every scoring function.
type ScoringConfig struct {
	// Capacity weights (sum = 1).
	HoursWeight     float64 `yaml:"hours_weight" mapstructure:"hours_weight"`
	TeamWeight      float64 `yaml:"team_weight" mapstructure:"team_weight"`
	CameraWeight    float64 `yaml:"camera_weight" mapstructure:"camera_weight"`
	OutsourceWeight float64 `yaml:"outsource_weight" mapstructure:"outsource_weight"`

	// Capacity caps.
	MaxWeeklyHours float64 `yaml:"max_weekly_hours" mapstructure:"max_weekly_hours"`
	MaxTeamSize    float64 `yaml:"max_team_size" mapstructure:"max_team_size"`

	// Budget band upper bounds: Micro is < MicroBelow, Small <= SmallMax,
	// Medium <= MediumMax, Growth above.
	MicroBelow float64 `yaml:"micro_below" mapstructure:"micro_below"`
	SmallMax   float64 `yaml:"small_max" mapstructure:"small_max"`
	MediumMax  float64 `yaml:"medium_max" mapstructure:"medium_max"`

	// Ad viability.
	AcquisitionMargin float64 `yaml:"acquisition_margin" mapstructure:"acquisition_margin"`
	MaxSalesCycleDays float64 `yaml:"max_sales_cycle_days" mapstructure:"max_sales_cycle_days"`

	// Advanced results computed from fewer supplied fields are flagged as estimated.
	EstimationThreshold int `yaml:"estimation_threshold" mapstructure:"estimation_threshold"`

	Defaults AnswerDefaults `yaml:"defaults" mapstructure:"defaults"`
}

// AnswerDefaults holds the value substituted for every unanswered
// advanced-tier field.
type AnswerDefaults struct {
	MonthlyAdBudget          float64 `yaml:"monthly_ad_budget" mapstructure:"monthly_ad_budget"`
	MonthlyToolsBudget       float64 `yaml:"monthly_tools_budget" mapstructure:"monthly_tools_budget"`
	AOV                      float64 `yaml:"aov" mapstructure:"aov"`
	ConversionRate           float64 `yaml:"conversion_rate" mapstructure:"conversion_rate"`
	SalesCycleDays           float64 `yaml:"sales_cycle_days" mapstructure:"sales_cycle_days"`
	CustomerObjection        string  `yaml:"customer_objection" mapstructure:"customer_objection"`
	USP                      string  `yaml:"usp" mapstructure:"usp"`
	PrimaryBusinessObjective string  `yaml:"primary_business_objective" mapstructure:"primary_business_objective"`
	ObjectiveKPILabel        string  `yaml:"objective_kpi_label" mapstructure:"objective_kpi_label"`
	ObjectiveTarget          float64 `yaml:"objective_target" mapstructure:"objective_target"`
	TeamExecutionCapacity    float64 `yaml:"team_execution_capacity" mapstructure:"team_execution_capacity"`
	WeeklyHoursCapacity      float64 `yaml:"weekly_hours_capacity" mapstructure:"weekly_hours_capacity"`
	CameraComfort            float64 `yaml:"camera_comfort" mapstructure:"camera_comfort"`
	WillingToOutsource       string  `yaml:"willing_to_outsource" mapstructure:"willing_to_outsource"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks the configuration sections required by a CLI mode.
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "generate":
	case "serve":
		if c.Server.Port <= 0 {
			errs = append(errs, "server.port must be > 0")
		}
		if c.Server.RateLimitRPS < 0 {
			errs = append(errs, "server.rate_limit_rps must be >= 0")
		}
	case "batch":
		if c.Batch.MaxConcurrent < 1 || c.Batch.MaxConcurrent > 64 {
			errs = append(errs, "batch.max_concurrent must be between 1 and 64")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	switch c.Store.Driver {
	case "none", "sqlite":
	case "postgres":
		if c.Store.DatabaseURL == "" {
			errs = append(errs, "store.database_url is required for postgres")
		}
	default:
		errs = append(errs, fmt.Sprintf("store.driver %q is not one of none, sqlite, postgres", c.Store.Driver))
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("STRATEGY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "none")
	v.SetDefault("store.database_url", "strategy.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit_rps", 10.0)
	v.SetDefault("server.rate_limit_burst", 20)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("batch.max_concurrent", 4)
	v.SetDefault("render.pdf_timeout_secs", 30)

	if err := setStructDefaults(v, "scoring", DefaultScoring()); err != nil {
		return nil, err
	}

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
