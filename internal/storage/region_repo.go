package storage

import (
	"context"
	"time"

	"github.com/annel0/voxel-kit/internal/vec"
)

// RegionRecord — результат заливки связной области, сохранённый под
// именем. Позволяет переиспользовать дорогие сканы между тиками и
// сессиями.
type RegionRecord struct {
	Name    string     `json:"name"`
	Seed    vec.Vec3   `json:"seed"`    // Затравка обхода
	Cells   []vec.Vec3 `json:"cells"`   // Совпавшие ячейки
	SavedAt time.Time  `json:"saved_at"`
}

// RegionRepo определяет интерфейс для сохранения и загрузки именованных
// областей. Области привязаны к имени скана, а не к конкретному миру:
// за согласованность имён отвечает вызывающий код.
type RegionRepo interface {
	// Save сохраняет область под её именем, перезаписывая прежнюю.
	Save(ctx context.Context, record RegionRecord) error

	// Load загружает область по имени.
	// Второе значение — false, если область не найдена.
	Load(ctx context.Context, name string) (RegionRecord, bool, error)

	// Delete удаляет сохранённую область.
	Delete(ctx context.Context, name string) error

	// List возвращает имена всех сохранённых областей.
	List(ctx context.Context) ([]string, error)
}
