// Package inventory реализует слотовые хранилища предметов:
// базовый обработчик с фиксированным числом слотов, фильтруемый
// вариант и заглушку, не принимающую ничего.
package inventory

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/annel0/voxel-kit/internal/items"
	"github.com/annel0/voxel-kit/internal/util"
)

// Ключ, под которым содержимое инвентаря пишется в сериализованную форму
const tagInventory = "ItemInventory"

// ItemHandler — общий интерфейс слотового хранилища предметов.
type ItemHandler interface {
	// Slots возвращает число слотов.
	Slots() int
	// StackInSlot возвращает копию стека в слоте.
	StackInSlot(slot int) items.ItemStack
	// InsertItem пытается вложить стек в слот и возвращает остаток.
	// При simulate содержимое не меняется.
	InsertItem(slot int, stack items.ItemStack, simulate bool) items.ItemStack
	// ExtractItem извлекает до amount предметов из слота.
	// При simulate содержимое не меняется.
	ExtractItem(slot int, amount int, simulate bool) items.ItemStack
	// SlotLimit возвращает максимальную вместимость слота.
	SlotLimit(slot int) int
	// IsItemValid проверяет, допустим ли стек в слоте.
	IsItemValid(slot int, stack items.ItemStack) bool
}

// ChangeListener уведомляется об изменении содержимого слота.
// Держатель инвентаря (тайл, контейнер) помечает себя изменённым.
type ChangeListener func(slot int)

// SlotPredicate решает, допустим ли стек в конкретном слоте.
type SlotPredicate func(slot int, stack items.ItemStack) bool

// Handler — слотовое хранилище фиксированного размера.
// Не потокобезопасен: доступ синхронизирует владелец.
type Handler struct {
	stacks    []items.ItemStack
	filter    SlotPredicate  // nil — принимать всё
	onChanged ChangeListener // nil — без уведомлений
}

// NewHandler создаёт хранилище с указанным числом слотов.
func NewHandler(size int, onChanged ChangeListener) (*Handler, error) {
	if err := util.CheckPositive(size, "размер инвентаря"); err != nil {
		return nil, err
	}
	return &Handler{
		stacks:    make([]items.ItemStack, size),
		onChanged: onChanged,
	}, nil
}

// NewFiltered создаёт хранилище, принимающее стеки только по предикату.
func NewFiltered(size int, filter SlotPredicate, onChanged ChangeListener) (*Handler, error) {
	if filter == nil {
		return nil, fmt.Errorf("inventory: предикат слота не задан")
	}
	h, err := NewHandler(size, onChanged)
	if err != nil {
		return nil, err
	}
	h.filter = filter
	return h, nil
}

// Slots возвращает число слотов
func (h *Handler) Slots() int {
	return len(h.stacks)
}

// StackInSlot возвращает копию стека в слоте
func (h *Handler) StackInSlot(slot int) items.ItemStack {
	if slot < 0 || slot >= len(h.stacks) {
		return items.ItemStack{}
	}
	return h.stacks[slot].Copy()
}

// SlotLimit возвращает вместимость слота (максимальный размер стека)
func (h *Handler) SlotLimit(slot int) int {
	return items.DefaultMaxStackSize
}

// IsItemValid проверяет стек фильтром, если он задан
func (h *Handler) IsItemValid(slot int, stack items.ItemStack) bool {
	if h.filter == nil {
		return true
	}
	return h.filter(slot, stack)
}

// InsertItem пытается вложить стек в указанный слот. Возвращает
// остаток; пустой остаток означает полное вложение.
func (h *Handler) InsertItem(slot int, stack items.ItemStack, simulate bool) items.ItemStack {
	if slot < 0 || slot >= len(h.stacks) || stack.IsEmpty() || !h.IsItemValid(slot, stack) {
		return stack
	}

	existing := &h.stacks[slot]
	limit := h.SlotLimit(slot)
	if max := items.MaxStackSizeFor(stack.ID); max < limit {
		limit = max
	}

	// Пустой слот: принимаем до лимита
	if existing.IsEmpty() {
		accepted := stack.Count
		if accepted > limit {
			accepted = limit
		}
		if !simulate {
			h.stacks[slot] = stack.WithCount(accepted)
			h.notifyChanged(slot)
		}
		return remainderOf(stack, accepted)
	}

	// Занятый слот: только слияние совместимых стеков
	if !existing.CanMergeWith(stack) {
		return stack
	}
	space := limit - existing.Count
	if space <= 0 {
		return stack
	}
	accepted := stack.Count
	if accepted > space {
		accepted = space
	}
	if !simulate {
		existing.Count += accepted
		h.notifyChanged(slot)
	}
	return remainderOf(stack, accepted)
}

// ExtractItem извлекает до amount предметов из слота.
func (h *Handler) ExtractItem(slot int, amount int, simulate bool) items.ItemStack {
	if slot < 0 || slot >= len(h.stacks) || amount <= 0 {
		return items.ItemStack{}
	}

	existing := &h.stacks[slot]
	if existing.IsEmpty() {
		return items.ItemStack{}
	}

	extracted := amount
	if extracted > existing.Count {
		extracted = existing.Count
	}

	result := existing.WithCount(extracted)
	if !simulate {
		existing.Count -= extracted
		if existing.Count <= 0 {
			h.stacks[slot] = items.ItemStack{}
		}
		h.notifyChanged(slot)
	}
	return result
}

// TryInsert вкладывает стек в первое подходящее место, обходя слоты
// по порядку. Возвращает остаток; пустой остаток — вложено целиком.
func (h *Handler) TryInsert(stack items.ItemStack) items.ItemStack {
	remainder := stack
	for slot := 0; slot < len(h.stacks) && !remainder.IsEmpty(); slot++ {
		remainder = h.InsertItem(slot, remainder, false)
	}
	return remainder
}

// SortUsing стабильно сортирует слоты по заданному порядку.
func (h *Handler) SortUsing(less func(a, b items.ItemStack) bool) {
	sort.SliceStable(h.stacks, func(i, j int) bool {
		return less(h.stacks[i], h.stacks[j])
	})
	h.notifyChanged(-1)
}

// IsEmpty проверяет, что все слоты пусты
func (h *Handler) IsEmpty() bool {
	for i := range h.stacks {
		if !h.stacks[i].IsEmpty() {
			return false
		}
	}
	return true
}

// Items возвращает копию содержимого всех слотов
func (h *Handler) Items() []items.ItemStack {
	out := make([]items.ItemStack, len(h.stacks))
	for i := range h.stacks {
		out[i] = h.stacks[i].Copy()
	}
	return out
}

// WriteTo сериализует содержимое инвентаря в JSON под ключом
// "ItemInventory".
func (h *Handler) WriteTo() ([]byte, error) {
	return json.Marshal(map[string][]items.ItemStack{
		tagInventory: h.stacks,
	})
}

// ReadFrom восстанавливает содержимое из JSON, перезаписывая текущее.
// Отсутствие ключа "ItemInventory" не является ошибкой.
func (h *Handler) ReadFrom(data []byte) error {
	var parsed map[string][]items.ItemStack
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("inventory: чтение содержимого: %w", err)
	}

	stored, ok := parsed[tagInventory]
	if !ok {
		return nil
	}

	stacks := make([]items.ItemStack, len(h.stacks))
	copy(stacks, stored)
	h.stacks = stacks
	h.notifyChanged(-1)
	return nil
}

func (h *Handler) notifyChanged(slot int) {
	if h.onChanged != nil {
		h.onChanged(slot)
	}
}

// remainderOf возвращает остаток стека после принятия accepted предметов
func remainderOf(stack items.ItemStack, accepted int) items.ItemStack {
	if accepted >= stack.Count {
		return items.ItemStack{}
	}
	return stack.WithCount(stack.Count - accepted)
}
