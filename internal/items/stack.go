// Package items реализует стеки предметов: реестр определений,
// разбор текстовой формы, топливо и спавн выпавших предметов в мире.
package items

import (
	"github.com/annel0/voxel-kit/internal/util"
)

// ItemStack — стопка однотипных предметов.
type ItemStack struct {
	ID      util.ResourceName      `json:"id"`
	Count   int                    `json:"count"`
	Payload map[string]interface{} `json:"payload,omitempty"` // Произвольные данные предмета
}

// IsEmpty проверяет, что стек пуст
func (s ItemStack) IsEmpty() bool {
	return s.Count <= 0 || s.ID.IsZero()
}

// StackValid проверяет, что ссылка на стек задана и стек не пуст
func StackValid(stack *ItemStack) bool {
	return stack != nil && !stack.IsEmpty()
}

// Copy возвращает независимую копию стека (включая Payload)
func (s ItemStack) Copy() ItemStack {
	out := s
	if s.Payload != nil {
		out.Payload = make(map[string]interface{}, len(s.Payload))
		for k, v := range s.Payload {
			out.Payload[k] = v
		}
	}
	return out
}

// WithCount возвращает копию стека с другим количеством
func (s ItemStack) WithCount(count int) ItemStack {
	out := s.Copy()
	out.Count = count
	return out
}

// CanMergeWith проверяет, можно ли объединить стеки: одинаковый
// предмет и отсутствие полезной нагрузки у обоих. Сравнение
// произвольных Payload не поддерживается.
func (s ItemStack) CanMergeWith(other ItemStack) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return false
	}
	return s.ID == other.ID && s.Payload == nil && other.Payload == nil
}
