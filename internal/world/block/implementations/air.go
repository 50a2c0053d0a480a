package implementations

import (
	"github.com/annel0/voxel-kit/internal/world/block"
)

// AirBehavior реализует поведение воздуха
type AirBehavior struct{}

// ID возвращает идентификатор блока
func (b *AirBehavior) ID() block.BlockID {
	return block.AirBlockID
}

// Name возвращает имя блока
func (b *AirBehavior) Name() string {
	return "air"
}

// Passable возвращает true, сквозь воздух можно пройти
func (b *AirBehavior) Passable() bool {
	return true
}

// NeedsTick возвращает false, воздух статичен
func (b *AirBehavior) NeedsTick() bool {
	return false
}

// CreateMetadata возвращает пустые метаданные
func (b *AirBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{}
}

// Drops возвращает nil, воздух ничего не дропает
func (b *AirBehavior) Drops() []block.Drop {
	return nil
}

func init() {
	block.Register(block.AirBlockID, &AirBehavior{})
}
