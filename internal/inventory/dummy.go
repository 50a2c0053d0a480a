package inventory

import (
	"github.com/annel0/voxel-kit/internal/items"
)

// DummyHandler — хранилище-заглушка: ноль слотов, не принимает и не
// отдаёт ничего. Полезна там, где интерфейс требует непустое значение,
// а инвентаря по смыслу нет.
type DummyHandler struct{}

func (DummyHandler) Slots() int { return 0 }

func (DummyHandler) StackInSlot(slot int) items.ItemStack { return items.ItemStack{} }

func (DummyHandler) InsertItem(slot int, stack items.ItemStack, simulate bool) items.ItemStack {
	return stack
}

func (DummyHandler) ExtractItem(slot int, amount int, simulate bool) items.ItemStack {
	return items.ItemStack{}
}

func (DummyHandler) SlotLimit(slot int) int { return 0 }

func (DummyHandler) IsItemValid(slot int, stack items.ItemStack) bool { return false }
