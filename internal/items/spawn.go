package items

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/annel0/voxel-kit/internal/vec"
)

// DefaultPickupDelay — задержка подбора выпавшего предмета в тиках
const DefaultPickupDelay = 10

// ItemEntity — выпавший предмет в мире.
type ItemEntity struct {
	EntityID    string // UUID
	Stack       ItemStack
	Pos         vec.Vec3Float
	PickupDelay int // Тиков до возможности подбора
}

// EntitySink принимает создаваемые сущности. Реализуется миром или
// его заглушкой в тестах.
type EntitySink interface {
	AddEntity(entity *ItemEntity)
}

// SpawnItem создаёт выпавший предмет в точных координатах со
// стандартной задержкой подбора. Для пустого или nil стека ничего не
// делает и возвращает nil.
func SpawnItem(sink EntitySink, stack *ItemStack, x, y, z float64) *ItemEntity {
	return SpawnItemWithDelay(sink, stack, x, y, z, DefaultPickupDelay)
}

// SpawnItemWithDelay создаёт выпавший предмет с указанной задержкой
// подбора.
func SpawnItemWithDelay(sink EntitySink, stack *ItemStack, x, y, z float64, pickupDelay int) *ItemEntity {
	if !StackValid(stack) {
		return nil
	}

	entity := &ItemEntity{
		EntityID:    uuid.New().String(),
		Stack:       stack.Copy(),
		Pos:         vec.Vec3Float{X: x, Y: y, Z: z},
		PickupDelay: pickupDelay,
	}
	sink.AddEntity(entity)
	return entity
}

// SpawnItemNear создаёт выпавший предмет со случайным смещением до
// spread по каждой координате.
func SpawnItemNear(sink EntitySink, stack *ItemStack, x, y, z float64, rng *rand.Rand, spread float64) *ItemEntity {
	return SpawnItem(sink, stack,
		x+spawnOffset(rng, spread),
		y+spawnOffset(rng, spread),
		z+spawnOffset(rng, spread))
}

// SpawnItemNearBlock создаёт выпавший предмет у центра блока со
// случайным смещением до spread.
func SpawnItemNearBlock(sink EntitySink, stack *ItemStack, pos vec.Vec3, rng *rand.Rand, spread float64) *ItemEntity {
	center := pos.Center()
	return SpawnItemNear(sink, stack, center.X, center.Y, center.Z, rng, spread)
}

// SpawnItems создаёт выпавший предмет для каждого стека из среза.
func SpawnItems(sink EntitySink, stacks []ItemStack, x, y, z float64) {
	for i := range stacks {
		SpawnItem(sink, &stacks[i], x, y, z)
	}
}

// SpawnItemsNearBlock создаёт выпавшие предметы у центра блока со
// случайным разбросом. Удобно для дропа при разрушении блока.
func SpawnItemsNearBlock(sink EntitySink, stacks []ItemStack, pos vec.Vec3, rng *rand.Rand, spread float64) {
	for i := range stacks {
		SpawnItemNearBlock(sink, &stacks[i], pos, rng, spread)
	}
}

// spawnOffset возвращает случайное смещение в диапазоне (-spread, spread]
func spawnOffset(rng *rand.Rand, spread float64) float64 {
	return spread - rng.Float64()*2.0*spread
}
