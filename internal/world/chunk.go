package world

import (
	"sync"

	"github.com/annel0/voxel-kit/internal/vec"
	"github.com/annel0/voxel-kit/internal/world/block"
)

// ChunkHeight — количество вертикальных слоёв в чанке
const ChunkHeight = 256

// Chunk представляет участок мира размером 16x16 блоков по горизонтали.
// Блоки хранятся разреженно: отсутствие записи означает воздух.
type Chunk struct {
	Coords vec.Vec2 // Координаты чанка в мире

	// Blocks хранит ненулевые блоки по локальным координатам
	// (X, Z в диапазоне 0..15, Y в диапазоне 0..ChunkHeight-1)
	Blocks map[vec.Vec3]block.BlockID

	Metadata map[vec.Vec3]block.Metadata // Метаданные блоков
	Changes  map[vec.Vec3]struct{}       // Изменённые с последнего сохранения блоки
	Tickable map[vec.Vec3]struct{}       // Блоки, требующие тиков

	ChangeCounter int          // Счетчик изменений
	Mu            sync.RWMutex // Мьютекс для безопасного доступа
}

// NewChunk создаёт новый чанк с указанными координатами
func NewChunk(coords vec.Vec2) *Chunk {
	return &Chunk{
		Coords:   coords,
		Blocks:   make(map[vec.Vec3]block.BlockID),
		Metadata: make(map[vec.Vec3]block.Metadata),
		Changes:  make(map[vec.Vec3]struct{}),
		Tickable: make(map[vec.Vec3]struct{}),
	}
}

// GetBlock возвращает ID блока по локальным координатам
func (c *Chunk) GetBlock(local vec.Vec3) block.BlockID {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	return c.Blocks[local] // Нулевое значение — воздух
}

// SetBlock устанавливает блок по локальным координатам
func (c *Chunk) SetBlock(local vec.Vec3, blockID block.BlockID) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	if blockID == block.AirBlockID {
		delete(c.Blocks, local)
		delete(c.Metadata, local)
	} else {
		c.Blocks[local] = blockID
	}
	c.Changes[local] = struct{}{}
	c.ChangeCounter++

	// Обновляем тикаемые блоки
	if behavior, exists := block.Get(blockID); exists && behavior.NeedsTick() {
		c.Tickable[local] = struct{}{}
	} else {
		delete(c.Tickable, local)
	}
}

// SetBlockWithBehavior устанавливает блок и инициализирует его метаданные
func (c *Chunk) SetBlockWithBehavior(local vec.Vec3, behavior block.BlockBehavior) {
	c.SetBlock(local, behavior.ID())

	c.Mu.Lock()
	defer c.Mu.Unlock()
	if _, exists := c.Metadata[local]; !exists && behavior.ID() != block.AirBlockID {
		c.Metadata[local] = behavior.CreateMetadata()
	}
}

// GetBlockMetadata возвращает копию метаданных блока
func (c *Chunk) GetBlockMetadata(local vec.Vec3) block.Metadata {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	if metadata, exists := c.Metadata[local]; exists {
		result := make(block.Metadata, len(metadata))
		for k, v := range metadata {
			result[k] = v
		}
		return result
	}
	return block.Metadata{}
}

// SetBlockMetadata устанавливает значение метаданных для блока
func (c *Chunk) SetBlockMetadata(local vec.Vec3, key string, value interface{}) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	if _, exists := c.Metadata[local]; !exists {
		c.Metadata[local] = make(block.Metadata)
	}
	c.Metadata[local][key] = value
	c.Changes[local] = struct{}{}
	c.ChangeCounter++
}

// HasChanges возвращает true, если в чанке есть изменения
func (c *Chunk) HasChanges() bool {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	return c.ChangeCounter > 0
}

// ClearChanges очищает список изменений
func (c *Chunk) ClearChanges() {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.Changes = make(map[vec.Vec3]struct{})
	c.ChangeCounter = 0
}

// BlockCount возвращает количество ненулевых блоков
func (c *Chunk) BlockCount() int {
	c.Mu.RLock()
	defer c.Mu.RUnlock()
	return len(c.Blocks)
}
