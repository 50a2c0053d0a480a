package storage

import (
	"testing"

	"github.com/annel0/voxel-kit/internal/vec"
	"github.com/annel0/voxel-kit/internal/world"
	"github.com/annel0/voxel-kit/internal/world/block"
	// Регистрация поведений блоков
	_ "github.com/annel0/voxel-kit/internal/world/block/implementations"
)

func newTestStorage(t *testing.T) *WorldStorage {
	t.Helper()
	ws, err := NewWorldStorage(t.TempDir())
	if err != nil {
		t.Fatalf("Ошибка создания хранилища: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func TestSaveLoadChunkDelta(t *testing.T) {
	ws := newTestStorage(t)

	chunk := world.NewChunk(vec.Vec2{X: 3, Y: -2})
	chunk.SetBlock(vec.Vec3{X: 1, Y: 60, Z: 1}, block.StoneBlockID)
	chunk.SetBlock(vec.Vec3{X: 2, Y: 61, Z: 5}, block.WaterBlockID)
	chunk.SetBlockMetadata(vec.Vec3{X: 2, Y: 61, Z: 5}, "level", 7)

	if err := ws.SaveChunk(chunk); err != nil {
		t.Fatalf("Ошибка сохранения чанка: %v", err)
	}
	if chunk.HasChanges() {
		t.Error("После сохранения изменения должны быть очищены")
	}

	delta, err := ws.LoadChunk(vec.Vec2{X: 3, Y: -2})
	if err != nil {
		t.Fatalf("Ошибка загрузки дельты: %v", err)
	}
	if len(delta.Blocks) != 2 {
		t.Errorf("В дельте %d блоков, ожидалось 2", len(delta.Blocks))
	}

	stored, ok := delta.Blocks["2:61:5"]
	if !ok {
		t.Fatal("Блок воды отсутствует в дельте")
	}
	if stored.ID != block.WaterBlockID {
		t.Errorf("ID блока %d, ожидался %d", stored.ID, block.WaterBlockID)
	}
	// JSON приводит числа к float64
	if stored.Metadata["level"] != float64(7) {
		t.Errorf("Метаданные потеряны: %+v", stored.Metadata)
	}
}

func TestLoadMissingChunk(t *testing.T) {
	ws := newTestStorage(t)

	delta, err := ws.LoadChunk(vec.Vec2{X: 100, Y: 100})
	if err != nil {
		t.Fatalf("Отсутствующий чанк не должен давать ошибку: %v", err)
	}
	if len(delta.Blocks) != 0 {
		t.Errorf("Дельта отсутствующего чанка непуста: %d блоков", len(delta.Blocks))
	}
}

func TestSaveChunkWithoutChanges(t *testing.T) {
	ws := newTestStorage(t)

	chunk := world.NewChunk(vec.Vec2{})
	if err := ws.SaveChunk(chunk); err != nil {
		t.Fatalf("Сохранение неизменённого чанка не должно падать: %v", err)
	}

	// На диск ничего не записано
	delta, err := ws.LoadChunk(vec.Vec2{})
	if err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}
	if len(delta.Blocks) != 0 {
		t.Error("Неизменённый чанк не должен попадать на диск")
	}
}

func TestApplyDeltaRoundtrip(t *testing.T) {
	ws := newTestStorage(t)

	original := world.NewChunk(vec.Vec2{X: 1, Y: 1})
	original.SetBlock(vec.Vec3{X: 4, Y: 50, Z: 4}, block.GrassBlockID)
	original.SetBlock(vec.Vec3{X: 5, Y: 50, Z: 4}, block.StoneBlockID)

	if err := ws.SaveChunk(original); err != nil {
		t.Fatalf("Ошибка сохранения: %v", err)
	}

	restored := world.NewChunk(vec.Vec2{X: 1, Y: 1})
	if err := ws.LoadAndApplyChunk(restored); err != nil {
		t.Fatalf("Ошибка загрузки и применения: %v", err)
	}

	if restored.GetBlock(vec.Vec3{X: 4, Y: 50, Z: 4}) != block.GrassBlockID {
		t.Error("Трава не восстановлена")
	}
	if restored.GetBlock(vec.Vec3{X: 5, Y: 50, Z: 4}) != block.StoneBlockID {
		t.Error("Камень не восстановлен")
	}
	if restored.BlockCount() != original.BlockCount() {
		t.Errorf("Восстановлено %d блоков, ожидалось %d", restored.BlockCount(), original.BlockCount())
	}
}

func TestApplyDeltaBoundsChecking(t *testing.T) {
	ws := newTestStorage(t)
	chunk := world.NewChunk(vec.Vec2{})

	delta := &ChunkDelta{
		Coords: vec.Vec2{},
		Blocks: map[string]BlockDelta{
			"99:0:0":  {ID: block.StoneBlockID}, // X вне чанка
			"garbage": {ID: block.StoneBlockID}, // Неразборчивый ключ
			"1:1:1":   {ID: block.StoneBlockID}, // Корректный
		},
	}

	if err := ws.ApplyDeltaToChunk(chunk, delta); err != nil {
		t.Fatalf("Применение дельты не должно падать: %v", err)
	}
	if chunk.BlockCount() != 1 {
		t.Errorf("Применено %d блоков, ожидался 1 (остальные отброшены)", chunk.BlockCount())
	}
}

func TestStorageClosedRejectsOperations(t *testing.T) {
	ws := newTestStorage(t)
	ws.Close()

	chunk := world.NewChunk(vec.Vec2{})
	chunk.SetBlock(vec.Vec3{X: 0, Y: 1, Z: 0}, block.StoneBlockID)

	if err := ws.SaveChunk(chunk); err == nil {
		t.Error("Закрытое хранилище должно отклонять сохранение")
	}
	if _, err := ws.LoadChunk(vec.Vec2{}); err == nil {
		t.Error("Закрытое хранилище должно отклонять загрузку")
	}

	// Повторное закрытие безопасно
	if err := ws.Close(); err != nil {
		t.Errorf("Повторное закрытие вернуло ошибку: %v", err)
	}
}
