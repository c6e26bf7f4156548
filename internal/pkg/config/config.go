package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		EventSweepInterval time.Duration
	}

	Simulation struct {
		SweepBatchLimit   int
		MinTransitHops    int
		MaxTransitHops    int
		HopInterval       time.Duration
		BusinessHourStart int // час начала рабочего окна, 0-23
		BusinessHourEnd   int // час конца рабочего окна, 0-23
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Kafka struct {
		PortHealthcheck    string
		Brokers            string
		NotificationsTopic string
		DeliveryTopic      string
		ConsumerGroup      string
		Sarama             Sarama
		Handlers           KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		DeliveryCreated DeliveryCreated
	}

	DeliveryCreated struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks      Tasks
		Simulation Simulation
		Server     HTTPServer
		Database   Database
		Kafka      Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	sweepInterval, err := osGetEnvDuration("BACKGROUND_EVENT_SWEEP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sweepBatchLimit, err := osGetInt("SIMULATION_SWEEP_BATCH_LIMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minTransitHops, err := osGetInt("SIMULATION_MIN_TRANSIT_HOPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxTransitHops, err := osGetInt("SIMULATION_MAX_TRANSIT_HOPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	hopInterval, err := osGetEnvDuration("SIMULATION_HOP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	businessHourStart, err := osGetInt("SIMULATION_BUSINESS_HOUR_START")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	businessHourEnd, err := osGetInt("SIMULATION_BUSINESS_HOUR_END")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	deliveryCreatedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_DELIVERY_CREATED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			EventSweepInterval: sweepInterval,
		},
		Simulation: Simulation{
			SweepBatchLimit:   sweepBatchLimit,
			MinTransitHops:    minTransitHops,
			MaxTransitHops:    maxTransitHops,
			HopInterval:       hopInterval,
			BusinessHourStart: businessHourStart,
			BusinessHourEnd:   businessHourEnd,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Kafka: Kafka{
			Brokers:            os.Getenv("KAFKA_BROKERS"),
			NotificationsTopic: os.Getenv("KAFKA_NOTIFICATIONS_TOPIC"),
			DeliveryTopic:      os.Getenv("KAFKA_DELIVERY_CREATED_TOPIC"),
			ConsumerGroup:      os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:    os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				DeliveryCreated: DeliveryCreated{
					ProcessTimeout: deliveryCreatedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.EventSweepInterval == time.Duration(0) {
		return errors.New("BACKGROUND_EVENT_SWEEP_INTERVAL is required")
	}

	if cfg.Simulation.SweepBatchLimit <= 0 {
		return errors.New("SIMULATION_SWEEP_BATCH_LIMIT is required")
	}
	if cfg.Simulation.MinTransitHops <= 0 {
		return errors.New("SIMULATION_MIN_TRANSIT_HOPS is required")
	}
	if cfg.Simulation.MaxTransitHops < cfg.Simulation.MinTransitHops {
		return errors.New("SIMULATION_MAX_TRANSIT_HOPS must be >= SIMULATION_MIN_TRANSIT_HOPS")
	}
	if cfg.Simulation.HopInterval == time.Duration(0) {
		return errors.New("SIMULATION_HOP_INTERVAL is required")
	}
	if cfg.Simulation.BusinessHourStart < 0 || cfg.Simulation.BusinessHourStart > 23 {
		return errors.New("SIMULATION_BUSINESS_HOUR_START must be within 0-23")
	}
	if cfg.Simulation.BusinessHourEnd <= cfg.Simulation.BusinessHourStart || cfg.Simulation.BusinessHourEnd > 23 {
		return errors.New("SIMULATION_BUSINESS_HOUR_END must be within business window")
	}

	// Kafka опционален для HTTP-сервиса: без брокеров уведомления
	// отключаются. Воркер проверяет обязательность полей сам.
	if cfg.Kafka.Brokers != "" {
		if cfg.Kafka.NotificationsTopic == "" {
			return errors.New("KAFKA_NOTIFICATIONS_TOPIC is required when KAFKA_BROKERS is set")
		}
	}

	return nil
}

// ValidateKafkaConsumer проверяет поля, обязательные только для
// kafka-воркера (cmd/worker-delivery-created).
func ValidateKafkaConsumer(cfg *Config) error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.DeliveryTopic == "" {
		return errors.New("KAFKA_DELIVERY_CREATED_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.DeliveryCreated.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_DELIVERY_CREATED_PROCESS_TIMEOUT is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
