package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/annel0/voxel-kit/internal/logging"
)

// RedisRegionRepo хранит именованные области в Redis для быстрого
// доступа из нескольких процессов.
type RedisRegionRepo struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig содержит настройки подключения к Redis
type RedisConfig struct {
	Addr      string        // Адрес Redis сервера
	Password  string        // Пароль (пустой если не требуется)
	DB        int           // Номер базы данных
	KeyPrefix string        // Префикс для ключей
	TTL       time.Duration // Время жизни записей; 0 — без истечения
}

// DefaultRedisConfig возвращает конфигурацию по умолчанию
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:      "localhost:6379",
		Password:  "",
		DB:        0,
		KeyPrefix: "voxelkit:region:",
		TTL:       0,
	}
}

// NewRedisRegionRepo создаёт Redis-репозиторий областей и проверяет
// подключение.
func NewRedisRegionRepo(config *RedisConfig) (*RedisRegionRepo, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("не удалось подключиться к Redis: %w", err)
	}

	logging.Info("RedisRegionRepo: подключение к %s установлено", config.Addr)
	return &RedisRegionRepo{
		client:    client,
		keyPrefix: config.KeyPrefix,
		ttl:       config.TTL,
	}, nil
}

// Save сохраняет область в Redis.
func (r *RedisRegionRepo) Save(ctx context.Context, record RegionRecord) error {
	if record.Name == "" {
		return fmt.Errorf("область без имени")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("ошибка сериализации области %q: %w", record.Name, err)
	}

	if err := r.client.Set(ctx, r.keyPrefix+record.Name, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("ошибка сохранения области %q: %w", record.Name, err)
	}
	return nil
}

// Load загружает область из Redis.
func (r *RedisRegionRepo) Load(ctx context.Context, name string) (RegionRecord, bool, error) {
	if name == "" {
		return RegionRecord{}, false, fmt.Errorf("пустое имя области")
	}

	data, err := r.client.Get(ctx, r.keyPrefix+name).Result()
	if err == redis.Nil {
		return RegionRecord{}, false, nil
	}
	if err != nil {
		return RegionRecord{}, false, fmt.Errorf("ошибка чтения области %q: %w", name, err)
	}

	var record RegionRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return RegionRecord{}, false, fmt.Errorf("ошибка десериализации области %q: %w", name, err)
	}
	return record, true, nil
}

// Delete удаляет сохранённую область из Redis.
func (r *RedisRegionRepo) Delete(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("пустое имя области")
	}

	removed, err := r.client.Del(ctx, r.keyPrefix+name).Result()
	if err != nil {
		return fmt.Errorf("ошибка удаления области %q: %w", name, err)
	}
	if removed == 0 {
		return fmt.Errorf("область %q не найдена", name)
	}
	return nil
}

// List возвращает имена всех сохранённых областей.
func (r *RedisRegionRepo) List(ctx context.Context) ([]string, error) {
	keys, err := r.client.Keys(ctx, r.keyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("ошибка перечисления областей: %w", err)
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, strings.TrimPrefix(key, r.keyPrefix))
	}
	return names, nil
}

// Close закрывает подключение к Redis.
func (r *RedisRegionRepo) Close() error {
	return r.client.Close()
}
