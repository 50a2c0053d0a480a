package implementations

import (
	"github.com/annel0/voxel-kit/internal/world/block"
)

// GrassBehavior реализует поведение блока травы
type GrassBehavior struct{}

// ID возвращает идентификатор блока
func (b *GrassBehavior) ID() block.BlockID {
	return block.GrassBlockID
}

// Name возвращает имя блока
func (b *GrassBehavior) Name() string {
	return "grass"
}

// Passable возвращает false, блок травы твёрдый
func (b *GrassBehavior) Passable() bool {
	return false
}

// NeedsTick возвращает true, трава растёт
func (b *GrassBehavior) NeedsTick() bool {
	return true
}

// CreateMetadata создает начальные метаданные для блока
func (b *GrassBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"growth": 0,
	}
}

// Drops возвращает землю при разрушении
func (b *GrassBehavior) Drops() []block.Drop {
	return []block.Drop{{Item: "voxelkit:dirt", Count: 1}}
}

func init() {
	block.Register(block.GrassBlockID, &GrassBehavior{})
}
