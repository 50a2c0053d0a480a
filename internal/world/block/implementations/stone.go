package implementations

import (
	"github.com/annel0/voxel-kit/internal/world/block"
)

// StoneBehavior реализует поведение блока камня
type StoneBehavior struct{}

// ID возвращает идентификатор блока
func (b *StoneBehavior) ID() block.BlockID {
	return block.StoneBlockID
}

// Name возвращает имя блока
func (b *StoneBehavior) Name() string {
	return "stone"
}

// Passable возвращает false, камень твёрдый
func (b *StoneBehavior) Passable() bool {
	return false
}

// NeedsTick возвращает false, камень статичен
func (b *StoneBehavior) NeedsTick() bool {
	return false
}

// CreateMetadata создает начальные метаданные для блока
func (b *StoneBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"hardness": 10,
	}
}

// Drops возвращает булыжник при разрушении
func (b *StoneBehavior) Drops() []block.Drop {
	return []block.Drop{{Item: "voxelkit:cobblestone", Count: 1}}
}

func init() {
	block.Register(block.StoneBlockID, &StoneBehavior{})
}
