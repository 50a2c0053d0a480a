package world

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/annel0/voxel-kit/internal/eventbus"
	"github.com/annel0/voxel-kit/internal/logging"
	"github.com/annel0/voxel-kit/internal/vec"
	"github.com/annel0/voxel-kit/internal/world/block"
	"github.com/google/uuid"
)

// EventTypeBlockChange — тип события изменения блока для шины событий
const EventTypeBlockChange = "BlockChangeEvent"

// BlockChangePayload — полезная нагрузка события изменения блока
type BlockChangePayload struct {
	Pos      vec.Vec3      `json:"pos"`
	Previous block.BlockID `json:"previous"`
	Current  block.BlockID `json:"current"`
}

// World представляет игровой мир: карту чанков с доступом по глобальным координатам.
// Чанки создаются по требованию генератором (если задан) либо пустыми.
type World struct {
	mu        sync.RWMutex
	chunks    map[vec.Vec2]*Chunk
	generator *WorldGenerator // Может быть nil — тогда чанки создаются пустыми
	bus       eventbus.EventBus
	source    string // Имя источника для событий
}

// NewWorld создаёт мир без генератора
func NewWorld() *World {
	return &World{
		chunks: make(map[vec.Vec2]*Chunk),
		source: "world",
	}
}

// NewWorldWithGenerator создаёт мир с генератором ландшафта
func NewWorldWithGenerator(generator *WorldGenerator) *World {
	w := NewWorld()
	w.generator = generator
	return w
}

// AttachEventBus подключает шину событий: изменения блоков будут публиковаться
// от имени указанного источника
func (w *World) AttachEventBus(bus eventbus.EventBus, source string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bus = bus
	if source != "" {
		w.source = source
	}
}

// chunkCoords возвращает координаты чанка для глобальной позиции блока
func chunkCoords(pos vec.Vec3) vec.Vec2 {
	return vec.Vec2{X: pos.X, Y: pos.Z}.ToChunkCoords()
}

// localCoords возвращает локальные координаты блока внутри чанка
func localCoords(pos vec.Vec3) vec.Vec3 {
	return vec.Vec3{X: pos.X & 0xF, Y: pos.Y, Z: pos.Z & 0xF}
}

// IsLoaded проверяет, загружен ли чанк, содержащий позицию
func (w *World) IsLoaded(pos vec.Vec3) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, exists := w.chunks[chunkCoords(pos)]
	return exists
}

// LoadChunk возвращает чанк по координатам, создавая его при необходимости
func (w *World) LoadChunk(coords vec.Vec2) *Chunk {
	w.mu.RLock()
	chunk, exists := w.chunks[coords]
	w.mu.RUnlock()
	if exists {
		return chunk
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	// Повторная проверка под write-lock
	if chunk, exists = w.chunks[coords]; exists {
		return chunk
	}

	if w.generator != nil {
		chunk = w.generator.GenerateChunk(coords)
	} else {
		chunk = NewChunk(coords)
	}
	w.chunks[coords] = chunk
	return chunk
}

// ChunkAt возвращает чанк, содержащий позицию, без создания нового.
// Второй результат false, если чанк не загружен.
func (w *World) ChunkAt(pos vec.Vec3) (*Chunk, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	chunk, exists := w.chunks[chunkCoords(pos)]
	return chunk, exists
}

// GetBlock возвращает ID блока по глобальным координатам.
// Для незагруженного чанка возвращается воздух.
func (w *World) GetBlock(pos vec.Vec3) block.BlockID {
	if pos.Y < 0 || pos.Y >= ChunkHeight {
		return block.AirBlockID
	}
	chunk, exists := w.ChunkAt(pos)
	if !exists {
		return block.AirBlockID
	}
	return chunk.GetBlock(localCoords(pos))
}

// SetBlock устанавливает блок по глобальным координатам, загружая чанк при необходимости
func (w *World) SetBlock(pos vec.Vec3, blockID block.BlockID) {
	if pos.Y < 0 || pos.Y >= ChunkHeight {
		return
	}
	chunk := w.LoadChunk(chunkCoords(pos))
	previous := chunk.GetBlock(localCoords(pos))
	chunk.SetBlock(localCoords(pos), blockID)
	w.publishBlockChange(pos, previous, blockID)
}

// BreakBlock разрушает блок: устанавливает воздух и возвращает дроп
func (w *World) BreakBlock(pos vec.Vec3) []block.Drop {
	current := w.GetBlock(pos)
	if current == block.AirBlockID {
		return nil
	}

	var drops []block.Drop
	if behavior, exists := block.Get(current); exists {
		drops = behavior.Drops()
	}

	w.SetBlock(pos, block.AirBlockID)
	return drops
}

// LoadedChunkCount возвращает количество загруженных чанков
func (w *World) LoadedChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// ForEachChunk вызывает fn для каждого загруженного чанка
func (w *World) ForEachChunk(fn func(*Chunk)) {
	w.mu.RLock()
	chunks := make([]*Chunk, 0, len(w.chunks))
	for _, chunk := range w.chunks {
		chunks = append(chunks, chunk)
	}
	w.mu.RUnlock()

	for _, chunk := range chunks {
		fn(chunk)
	}
}

// publishBlockChange публикует событие изменения блока, если шина подключена
func (w *World) publishBlockChange(pos vec.Vec3, previous, current block.BlockID) {
	w.mu.RLock()
	bus := w.bus
	w.mu.RUnlock()
	if bus == nil || previous == current {
		return
	}

	payload, err := json.Marshal(BlockChangePayload{Pos: pos, Previous: previous, Current: current})
	if err != nil {
		logging.Error("Ошибка сериализации события блока: %v", err)
		return
	}

	ev := &eventbus.Envelope{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    w.source,
		EventType: EventTypeBlockChange,
		Version:   1,
		Priority:  3,
		Payload:   payload,
	}
	if err := bus.Publish(context.Background(), ev); err != nil {
		logging.Warn("Не удалось опубликовать событие блока %v: %v", pos, err)
	}
}
