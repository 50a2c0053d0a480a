package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRegionRepo реализует RegionRepo в памяти.
// Используется как fallback, когда Redis недоступен,
// или для CI/локальной разработки без внешних сервисов.
// ВНИМАНИЕ: данные теряются при перезапуске!
type MemoryRegionRepo struct {
	mu   sync.RWMutex
	data map[string]RegionRecord
}

// NewMemoryRegionRepo создаёт новый репозиторий областей в памяти.
func NewMemoryRegionRepo() *MemoryRegionRepo {
	return &MemoryRegionRepo{
		data: make(map[string]RegionRecord),
	}
}

// Save сохраняет область в памяти.
func (r *MemoryRegionRepo) Save(ctx context.Context, record RegionRecord) error {
	// Валидация входных данных
	if record.Name == "" {
		return fmt.Errorf("область без имени")
	}

	// Проверяем контекст на отмену
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[record.Name] = record
	return nil
}

// Load загружает область из памяти.
func (r *MemoryRegionRepo) Load(ctx context.Context, name string) (RegionRecord, bool, error) {
	if name == "" {
		return RegionRecord{}, false, fmt.Errorf("пустое имя области")
	}

	select {
	case <-ctx.Done():
		return RegionRecord{}, false, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.data[name]
	return record, exists, nil
}

// Delete удаляет сохранённую область из памяти.
func (r *MemoryRegionRepo) Delete(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("пустое имя области")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[name]; !exists {
		return fmt.Errorf("область %q не найдена", name)
	}

	delete(r.data, name)
	return nil
}

// List возвращает имена всех сохранённых областей.
func (r *MemoryRegionRepo) List(ctx context.Context) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.data))
	for name := range r.data {
		names = append(names, name)
	}
	return names, nil
}

// Count возвращает количество сохранённых областей (для отладки).
func (r *MemoryRegionRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

// Clear очищает все сохранённые области (для тестов).
func (r *MemoryRegionRepo) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[string]RegionRecord)
}
