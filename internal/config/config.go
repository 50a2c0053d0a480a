package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации инструментария.

type Config struct {
	Explore  ExploreConfig  `yaml:"explore"`
	Storage  StorageConfig  `yaml:"storage"`
	EventBus EventBusConfig `yaml:"eventbus"`
	DataGen  DataGenConfig  `yaml:"datagen"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ExploreConfig параметры обходчика регионов
type ExploreConfig struct {
	StepBudget int `yaml:"step_budget"` // Максимум клеток за один вызов Explore
	MaxRegion  int `yaml:"max_region"`  // Предохранитель от неограниченного роста региона
}

// StorageConfig параметры хранилищ
type StorageConfig struct {
	DataPath      string `yaml:"data_path"`      // Каталог BadgerDB
	RedisURL      string `yaml:"redis_url"`      // Адрес Redis (host:port)
	RedisPassword string `yaml:"redis_password"` //
	RedisDB       int    `yaml:"redis_db"`       //
}

// EventBusConfig параметры шины событий
type EventBusConfig struct {
	URL       string `yaml:"url"`             // nats://host:port; пусто — in-memory шина
	Stream    string `yaml:"stream"`          //
	Retention int    `yaml:"retention_hours"` //
	Buffer    int    `yaml:"buffer"`          // Ёмкость буфера in-memory шины
}

// DataGenConfig параметры генерации JSON-ресурсов
type DataGenConfig struct {
	OutputDir string `yaml:"output_dir"` // Корневой каталог для data/<namespace>/...
	Indent    bool   `yaml:"indent"`     // Форматировать JSON с отступами
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Port int `yaml:"port"`
}

// GetStepBudget возвращает бюджет шагов с поддержкой fallback значений
func (e *ExploreConfig) GetStepBudget() int {
	return getIntWithEnvFallback(e.StepBudget, "VOXELKIT_STEP_BUDGET", 64)
}

// GetMaxRegion возвращает предельный размер региона с поддержкой fallback значений
func (e *ExploreConfig) GetMaxRegion() int {
	return getIntWithEnvFallback(e.MaxRegion, "VOXELKIT_MAX_REGION", 65536)
}

// GetDataPath возвращает каталог данных с поддержкой fallback значений
func (s *StorageConfig) GetDataPath() string {
	return getStringWithEnvFallback(s.DataPath, "VOXELKIT_DATA_PATH", "data")
}

// GetRedisURL возвращает адрес Redis с поддержкой fallback значений
func (s *StorageConfig) GetRedisURL() string {
	return getStringWithEnvFallback(s.RedisURL, "VOXELKIT_REDIS_URL", "localhost:6379")
}

// GetOutputDir возвращает каталог вывода датагена с поддержкой fallback значений
func (d *DataGenConfig) GetOutputDir() string {
	return getStringWithEnvFallback(d.OutputDir, "VOXELKIT_DATAGEN_OUT", "generated")
}

// GetMetricsPort возвращает порт Prometheus с поддержкой fallback значений
func (m *MetricsConfig) GetMetricsPort() int {
	return getIntWithEnvFallback(m.Port, "VOXELKIT_METRICS_PORT", 2112)
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configValue int, envVar string, defaultValue int) int {
	if configValue > 0 {
		return configValue
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if value, err := strconv.Atoi(envVal); err == nil && value > 0 {
			return value
		}
	}

	return defaultValue
}

// getStringWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getStringWithEnvFallback(configValue string, envVar string, defaultValue string) string {
	if configValue != "" {
		return configValue
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}

	return defaultValue
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV VOXELKIT_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VOXELKIT_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации %s: %w", path, err)
	}

	return &cfg, nil
}

//================ Reloadable configuration =================//

// Reloadable хранит текущий Config и список слушателей, которым
// рассылаются значения при каждой загрузке или перезагрузке файла.
type Reloadable struct {
	mu        sync.RWMutex
	path      string
	current   *Config
	listeners []func(*Config)
}

// NewReloadable создаёт перезагружаемую конфигурацию и сразу читает файл.
// Пустой path допустим: слушатели получат nil и должны применить дефолты.
func NewReloadable(path string) (*Reloadable, error) {
	r := &Reloadable{path: path}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Subscribe регистрирует слушателя и немедленно передаёт ему текущее значение
func (r *Reloadable) Subscribe(listener func(*Config)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, listener)
	current := r.current
	r.mu.Unlock()

	listener(current)
}

// Reload перечитывает файл и рассылает новое значение всем слушателям
func (r *Reloadable) Reload() error {
	cfg, err := Load(r.path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.current = cfg
	listeners := make([]func(*Config), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, listener := range listeners {
		listener(cfg)
	}
	return nil
}

// Current возвращает последнюю загруженную конфигурацию (может быть nil)
func (r *Reloadable) Current() *Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}
