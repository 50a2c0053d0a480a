package items

import (
	"github.com/annel0/voxel-kit/internal/util"
)

// RegisterSimpleFuel регистрирует предмет-топливо с фиксированным
// временем горения.
func RegisterSimpleFuel(id util.ResourceName, burnTicks int) error {
	return Register(ItemDefinition{
		ID:           id,
		MaxStackSize: DefaultMaxStackSize,
		BurnTicks:    burnTicks,
	})
}

// IsFuel сообщает, является ли предмет топливом.
func IsFuel(id util.ResourceName) bool {
	def, ok := GetDefinition(id)
	return ok && def.BurnTicks > 0
}

// BurnTicksFor возвращает время горения одного предмета из стека.
// Для не-топлива и пустых стеков — 0.
func BurnTicksFor(stack ItemStack) int {
	if stack.IsEmpty() {
		return 0
	}
	def, ok := GetDefinition(stack.ID)
	if !ok {
		return 0
	}
	return def.BurnTicks
}

// SmeltingCapacity возвращает, сколько предметов можно переплавить,
// сжигая весь стек топлива целиком.
func SmeltingCapacity(stack ItemStack) int {
	total := BurnTicksFor(stack) * stack.Count
	return total / util.BurnTicksSingleItem
}
