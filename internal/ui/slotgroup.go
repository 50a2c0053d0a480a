package ui

import (
	"fmt"
	"math"

	"github.com/annel0/voxel-kit/internal/inventory"
	"github.com/annel0/voxel-kit/internal/items"
)

// Раскладка классического экрана инвентаря игрока
const (
	PlayerInventoryColumns = 9
	PlayerInventoryRows    = 3
	HotbarSlots            = 9
)

// SlotGroup — неизменяемая группа слотов, осмысленная как целое:
// инвентарь игрока, хотбар, кластер входов или выходов станка.
type SlotGroup struct {
	slots      map[int]*Slot
	minX, minY int
	maxX, maxY int
	minIndex   int
	maxIndex   int
	contiguous bool
}

// HoldsSlot сообщает, управляет ли группа слотом с данным индексом
func (g *SlotGroup) HoldsSlot(index int) bool {
	_, ok := g.slots[index]
	return ok
}

// Slot возвращает слот по индексу или nil
func (g *SlotGroup) Slot(index int) *Slot {
	return g.slots[index]
}

// Stack возвращает стек слота по индексу. Для отсутствующего
// индекса — пустой стек.
func (g *SlotGroup) Stack(index int) items.ItemStack {
	if slot, ok := g.slots[index]; ok {
		return slot.Stack()
	}
	return items.ItemStack{}
}

// HasAnyItemStacks сообщает, есть ли предметы хотя бы в одном слоте
func (g *SlotGroup) HasAnyItemStacks() bool {
	for _, slot := range g.slots {
		if slot.HasItem() {
			return true
		}
	}
	return false
}

// IsContiguous сообщает, образуют ли индексы слотов сплошной диапазон
func (g *SlotGroup) IsContiguous() bool { return g.contiguous }

// MinIndex возвращает минимальный индекс слота группы
func (g *SlotGroup) MinIndex() int { return g.minIndex }

// MaxIndex возвращает максимальный индекс слота группы
func (g *SlotGroup) MaxIndex() int { return g.maxIndex }

// MinX возвращает минимальную X-координату слотов
func (g *SlotGroup) MinX() int { return g.minX }

// MaxX возвращает максимальную X-координату слотов
func (g *SlotGroup) MaxX() int { return g.maxX }

// MinY возвращает минимальную Y-координату слотов
func (g *SlotGroup) MinY() int { return g.minY }

// MaxY возвращает максимальную Y-координату слотов
func (g *SlotGroup) MaxY() int { return g.maxY }

// Width возвращает разницу крайних X-координат
func (g *SlotGroup) Width() int { return g.maxX - g.minX }

// Height возвращает разницу крайних Y-координат
func (g *SlotGroup) Height() int { return g.maxY - g.minY }

// Count возвращает число слотов в группе
func (g *SlotGroup) Count() int { return len(g.slots) }

// ForEach вызывает action для каждого слота группы.
// Порядок не определён.
func (g *SlotGroup) ForEach(action func(slot *Slot)) {
	for _, slot := range g.slots {
		action(slot)
	}
}

// ForEachStack вызывает action для каждого непустого стека группы.
func (g *SlotGroup) ForEachStack(action func(stack items.ItemStack)) {
	for _, slot := range g.slots {
		if slot.HasItem() {
			action(slot.Stack())
		}
	}
}

// GroupBuilder накапливает слоты для SlotGroup.
type GroupBuilder struct {
	slots map[int]*Slot
	err   error
}

// NewGroupBuilder создаёт пустой builder группы слотов.
func NewGroupBuilder() *GroupBuilder {
	return &GroupBuilder{slots: make(map[int]*Slot)}
}

// Add добавляет слоты в будущую группу. Дубликат индекса или nil —
// ошибка, которую вернёт Build.
func (b *GroupBuilder) Add(slots ...*Slot) *GroupBuilder {
	for _, slot := range slots {
		if b.err != nil {
			return b
		}
		if slot == nil {
			b.err = fmt.Errorf("ui: nil-слот в группе")
			return b
		}
		if _, exists := b.slots[slot.Index]; exists {
			b.err = fmt.Errorf("ui: слот с индексом %d уже добавлен", slot.Index)
			return b
		}
		b.slots[slot.Index] = slot
	}
	return b
}

// AddGrid добавляет сетку слотов cols x rows с шагом SlotSpacing,
// привязанную к слотам хранилища начиная с backingStart.
func (b *GroupBuilder) AddGrid(handler inventory.ItemHandler, backingStart, indexStart, originX, originY, cols, rows int) *GroupBuilder {
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			n := row*cols + col
			b.Add(NewSlot(handler, backingStart+n, indexStart+n,
				originX+col*SlotSpacing, originY+row*SlotSpacing))
		}
	}
	return b
}

// Build собирает группу. Пустая группа — ошибка.
func (b *GroupBuilder) Build() (*SlotGroup, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.slots) == 0 {
		return nil, fmt.Errorf("ui: пустая группа слотов")
	}

	g := &SlotGroup{
		slots:    b.slots,
		minX:     math.MaxInt,
		minY:     math.MaxInt,
		maxX:     math.MinInt,
		maxY:     math.MinInt,
		minIndex: math.MaxInt,
		maxIndex: math.MinInt,
	}
	for index, slot := range b.slots {
		g.minX = min(g.minX, slot.X)
		g.minY = min(g.minY, slot.Y)
		g.maxX = max(g.maxX, slot.X)
		g.maxY = max(g.maxY, slot.Y)
		g.minIndex = min(g.minIndex, index)
		g.maxIndex = max(g.maxIndex, index)
	}

	g.contiguous = true
	for index := g.minIndex; index <= g.maxIndex; index++ {
		if _, ok := g.slots[index]; !ok {
			g.contiguous = false
			break
		}
	}
	return g, nil
}

// PlayerInventoryGroup строит стандартную сетку 9x3 инвентаря игрока.
func PlayerInventoryGroup(handler inventory.ItemHandler, indexStart, originX, originY int) (*SlotGroup, error) {
	return NewGroupBuilder().
		AddGrid(handler, HotbarSlots, indexStart, originX, originY,
			PlayerInventoryColumns, PlayerInventoryRows).
		Build()
}

// HotbarGroup строит стандартный ряд 9x1 хотбара. Слоты хранилища
// 0..8 по соглашению принадлежат хотбару.
func HotbarGroup(handler inventory.ItemHandler, indexStart, originX, originY int) (*SlotGroup, error) {
	return NewGroupBuilder().
		AddGrid(handler, 0, indexStart, originX, originY, HotbarSlots, 1).
		Build()
}
