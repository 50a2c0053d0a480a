// Package ui реализует геометрию слотов инвентарных экранов:
// отдельные слоты, фильтруемые слоты и группы слотов с общей
// ограничивающей рамкой.
package ui

import (
	"fmt"

	"github.com/annel0/voxel-kit/internal/inventory"
	"github.com/annel0/voxel-kit/internal/items"
)

// SlotSpacing — шаг сетки слотов в пикселях
const SlotSpacing = 18

// Slot связывает позицию на экране со слотом хранилища.
type Slot struct {
	Index int // Индекс слота в контейнере экрана
	X     int // Пиксельная координата X
	Y     int // Пиксельная координата Y

	handler inventory.ItemHandler
	backing int // Индекс слота в хранилище
	check   func(stack items.ItemStack) bool
}

// NewSlot создаёт слот без фильтра.
func NewSlot(handler inventory.ItemHandler, backing, index, x, y int) *Slot {
	return &Slot{
		Index:   index,
		X:       x,
		Y:       y,
		handler: handler,
		backing: backing,
	}
}

// NewFilteredSlot создаёт слот, принимающий стеки только по предикату.
func NewFilteredSlot(handler inventory.ItemHandler, backing, index, x, y int, check func(stack items.ItemStack) bool) (*Slot, error) {
	if check == nil {
		return nil, fmt.Errorf("ui: предикат слота не задан")
	}
	s := NewSlot(handler, backing, index, x, y)
	s.check = check
	return s, nil
}

// Stack возвращает копию стека в слоте
func (s *Slot) Stack() items.ItemStack {
	return s.handler.StackInSlot(s.backing)
}

// HasItem сообщает, есть ли в слоте предмет
func (s *Slot) HasItem() bool {
	return !s.Stack().IsEmpty()
}

// IsItemValid проверяет стек фильтром слота и хранилищем
func (s *Slot) IsItemValid(stack items.ItemStack) bool {
	if s.check != nil && !s.check(stack) {
		return false
	}
	return s.handler.IsItemValid(s.backing, stack)
}

// TryPut пытается вложить стек в слот. Возвращает true, если стек
// принят целиком. Предпочтительнее прямой работы с хранилищем:
// фильтр слота проверяется до вложения.
func (s *Slot) TryPut(stack items.ItemStack) bool {
	if !s.IsItemValid(stack) {
		return false
	}
	remainder := s.handler.InsertItem(s.backing, stack, false)
	return remainder.IsEmpty()
}

// Take извлекает до amount предметов из слота.
func (s *Slot) Take(amount int) items.ItemStack {
	return s.handler.ExtractItem(s.backing, amount, false)
}
