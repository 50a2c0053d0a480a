package implementations

import (
	"github.com/annel0/voxel-kit/internal/world/block"
)

// WaterBehavior реализует поведение воды
type WaterBehavior struct{}

// ID возвращает идентификатор блока
func (b *WaterBehavior) ID() block.BlockID {
	return block.WaterBlockID
}

// Name возвращает имя блока
func (b *WaterBehavior) Name() string {
	return "water"
}

// Passable возвращает true, сквозь воду можно пройти
func (b *WaterBehavior) Passable() bool {
	return true
}

// NeedsTick возвращает true, вода растекается
func (b *WaterBehavior) NeedsTick() bool {
	return true
}

// CreateMetadata создает начальные метаданные для блока
func (b *WaterBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"level": 7, // Уровень воды от 1 до 7
	}
}

// Drops возвращает nil, вода ничего не дропает
func (b *WaterBehavior) Drops() []block.Drop {
	return nil
}

func init() {
	block.Register(block.WaterBlockID, &WaterBehavior{})
}
