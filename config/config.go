package config

import (
	"elevsim/logger"
	"elevsim/types"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ENV_FLOORS       = "ELEVSIM_FLOORS"
	ENV_ELEVATORS    = "ELEVSIM_ELEVATORS"
	ENV_MAX_DISTANCE = "ELEVSIM_MAX_DISTANCE"
	ENV_TIME_SCALE   = "ELEVSIM_TIME_SCALE"
	ENV_LOG_LEVEL    = "ELEVSIM_LOG_LEVEL"
)

type Config struct {
	Floors               int           `yaml:"floors"`
	Elevators            int           `yaml:"elevators"`
	MaxDistanceThreshold *int          `yaml:"max_distance_threshold"`
	DoorOpenDuration     time.Duration `yaml:"door_open_duration"`
	SettleDuration       time.Duration `yaml:"settle_duration"`
	TimeScale            float64       `yaml:"time_scale"`
	LogLevel             string        `yaml:"log_level"`
	StartFloors          []int         `yaml:"start_floors"`
	OutOfService         []int         `yaml:"out_of_service"`
}

func Default() Config {
	return Config{
		Floors:           10,
		Elevators:        2,
		DoorOpenDuration: 7 * time.Second,
		SettleDuration:   2 * time.Second,
		LogLevel:         "info",
	}
}

/*
 * Read a YAML config file on top of the defaults. An empty path gives the defaults.
 */
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

/*
 * Apply overrides from a dotenv file. A missing file is not an error.
 */
func (c *Config) ApplyEnv(path string) error {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read env file %s: %w", path, err)
	}

	return c.applyValues(env)
}

func (c *Config) applyValues(env map[string]string) error {
	ints := map[string]*int{
		ENV_FLOORS:    &c.Floors,
		ENV_ELEVATORS: &c.Elevators,
	}

	for key, field := range ints {
		value, ok := env[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*field = n
	}

	if value, ok := env[ENV_MAX_DISTANCE]; ok {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", ENV_MAX_DISTANCE, err)
		}
		c.MaxDistanceThreshold = &n
	}

	if value, ok := env[ENV_TIME_SCALE]; ok {
		scale, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", ENV_TIME_SCALE, err)
		}
		c.TimeScale = scale
	}

	if value, ok := env[ENV_LOG_LEVEL]; ok {
		c.LogLevel = value
	}

	return nil
}

func (c Config) Validate() error {
	if c.Floors < 1 {
		return fmt.Errorf("floors must be at least 1, got %d", c.Floors)
	}

	if c.Elevators < 1 {
		return fmt.Errorf("elevators must be at least 1, got %d", c.Elevators)
	}

	if c.DoorOpenDuration < 0 || c.SettleDuration < 0 {
		return errors.New("durations must not be negative")
	}

	if c.TimeScale < 0 {
		return fmt.Errorf("time_scale must not be negative, got %v", c.TimeScale)
	}

	if len(c.StartFloors) > c.Elevators {
		return fmt.Errorf("%d start floors given for %d elevators", len(c.StartFloors), c.Elevators)
	}

	for i, floor := range c.StartFloors {
		if err := types.CheckFloor(floor, c.Floors); err != nil {
			return fmt.Errorf("start floor of elevator %d: %w", i, err)
		}
	}

	for _, id := range c.OutOfService {
		if id < 0 || id >= c.Elevators {
			return fmt.Errorf("out_of_service: no elevator %d", id)
		}
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

func (c Config) Building() types.BuildingConfig {
	return types.BuildingConfig{
		NumFloors:            c.Floors,
		NumElevators:         c.Elevators,
		MaxDistanceThreshold: c.MaxDistanceThreshold,
		DoorOpenDuration:     c.DoorOpenDuration,
		SettleDuration:       c.SettleDuration,
	}
}

func (c Config) StartFloor(elevator int) int {
	if elevator < len(c.StartFloors) {
		return c.StartFloors[elevator]
	}
	return 0
}
