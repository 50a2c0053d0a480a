package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-kit/internal/items"
	"github.com/annel0/voxel-kit/internal/util"
)

func stoneStack(count int) items.ItemStack {
	return items.ItemStack{ID: util.NewResource("stone"), Count: count}
}

func dirtStack(count int) items.ItemStack {
	return items.ItemStack{ID: util.NewResource("dirt"), Count: count}
}

func TestNewHandlerValidation(t *testing.T) {
	_, err := NewHandler(0, nil)
	assert.Error(t, err, "Нулевой размер должен быть отклонён")

	_, err = NewHandler(-3, nil)
	assert.Error(t, err, "Отрицательный размер должен быть отклонён")

	_, err = NewFiltered(5, nil, nil)
	assert.Error(t, err, "nil-фильтр должен быть отклонён")
}

func TestInsertAndExtract(t *testing.T) {
	h, err := NewHandler(3, nil)
	require.NoError(t, err)
	assert.True(t, h.IsEmpty())

	remainder := h.InsertItem(0, stoneStack(10), false)
	assert.True(t, remainder.IsEmpty(), "Вложение в пустой слот не должно давать остатка")
	assert.Equal(t, 10, h.StackInSlot(0).Count)
	assert.False(t, h.IsEmpty())

	// Слияние совместимых стеков
	remainder = h.InsertItem(0, stoneStack(5), false)
	assert.True(t, remainder.IsEmpty())
	assert.Equal(t, 15, h.StackInSlot(0).Count)

	// Несовместимый предмет в занятый слот возвращается целиком
	remainder = h.InsertItem(0, dirtStack(4), false)
	assert.Equal(t, 4, remainder.Count)

	extracted := h.ExtractItem(0, 6, false)
	assert.Equal(t, 6, extracted.Count)
	assert.Equal(t, 9, h.StackInSlot(0).Count)

	// Извлечение больше остатка отдаёт весь стек и очищает слот
	extracted = h.ExtractItem(0, 100, false)
	assert.Equal(t, 9, extracted.Count)
	assert.True(t, h.StackInSlot(0).IsEmpty())
}

func TestInsertOverflow(t *testing.T) {
	h, err := NewHandler(1, nil)
	require.NoError(t, err)

	// Больше лимита слота: принимается до лимита, остальное — остаток
	remainder := h.InsertItem(0, stoneStack(items.DefaultMaxStackSize+10), false)
	assert.Equal(t, 10, remainder.Count)
	assert.Equal(t, items.DefaultMaxStackSize, h.StackInSlot(0).Count)

	// Слот полон: дальнейшее вложение возвращается целиком
	remainder = h.InsertItem(0, stoneStack(1), false)
	assert.Equal(t, 1, remainder.Count)
}

func TestSimulateDoesNotMutate(t *testing.T) {
	h, err := NewHandler(1, nil)
	require.NoError(t, err)

	remainder := h.InsertItem(0, stoneStack(5), true)
	assert.True(t, remainder.IsEmpty())
	assert.True(t, h.IsEmpty(), "Симуляция вложения не должна менять содержимое")

	h.InsertItem(0, stoneStack(5), false)
	h.ExtractItem(0, 3, true)
	assert.Equal(t, 5, h.StackInSlot(0).Count, "Симуляция извлечения не должна менять содержимое")
}

func TestTryInsertSpansSlots(t *testing.T) {
	h, err := NewHandler(2, nil)
	require.NoError(t, err)

	// Первый слот почти полон: переполнение уходит во второй
	h.InsertItem(0, stoneStack(items.DefaultMaxStackSize-2), false)

	remainder := h.TryInsert(stoneStack(10))
	assert.True(t, remainder.IsEmpty())
	assert.Equal(t, items.DefaultMaxStackSize, h.StackInSlot(0).Count)
	assert.Equal(t, 8, h.StackInSlot(1).Count)
}

func TestFilteredHandler(t *testing.T) {
	// Слот 0 принимает только камень, слот 1 — всё
	h, err := NewFiltered(2, func(slot int, stack items.ItemStack) bool {
		if slot == 0 {
			return stack.ID == util.NewResource("stone")
		}
		return true
	}, nil)
	require.NoError(t, err)

	remainder := h.InsertItem(0, dirtStack(3), false)
	assert.Equal(t, 3, remainder.Count, "Фильтр должен отклонить чужой предмет")

	// TryInsert пропускает отфильтрованный слот
	remainder = h.TryInsert(dirtStack(3))
	assert.True(t, remainder.IsEmpty())
	assert.True(t, h.StackInSlot(0).IsEmpty())
	assert.Equal(t, 3, h.StackInSlot(1).Count)
}

func TestChangeListener(t *testing.T) {
	var notified []int
	h, err := NewHandler(2, func(slot int) {
		notified = append(notified, slot)
	})
	require.NoError(t, err)

	h.InsertItem(1, stoneStack(1), false)
	h.ExtractItem(1, 1, false)
	// Симуляция уведомлений не порождает
	h.InsertItem(0, stoneStack(1), true)

	assert.Equal(t, []int{1, 1}, notified)
}

func TestSortUsing(t *testing.T) {
	h, err := NewHandler(3, nil)
	require.NoError(t, err)

	h.InsertItem(0, stoneStack(1), false)
	h.InsertItem(2, stoneStack(5), false)

	// Сортировка по убыванию количества: пустые слоты в конец
	h.SortUsing(func(a, b items.ItemStack) bool {
		return a.Count > b.Count
	})

	assert.Equal(t, 5, h.StackInSlot(0).Count)
	assert.Equal(t, 1, h.StackInSlot(1).Count)
	assert.True(t, h.StackInSlot(2).IsEmpty())
}

func TestSerializationRoundtrip(t *testing.T) {
	h, err := NewHandler(3, nil)
	require.NoError(t, err)
	h.InsertItem(0, stoneStack(7), false)
	h.InsertItem(2, dirtStack(2), false)

	data, err := h.WriteTo()
	require.NoError(t, err)

	restored, err := NewHandler(3, nil)
	require.NoError(t, err)
	require.NoError(t, restored.ReadFrom(data))

	assert.Equal(t, h.Items(), restored.Items())

	// Отсутствие ключа инвентаря — не ошибка, содержимое не меняется
	require.NoError(t, restored.ReadFrom([]byte(`{}`)))
	assert.Equal(t, 7, restored.StackInSlot(0).Count)
}

func TestDummyHandler(t *testing.T) {
	var h ItemHandler = DummyHandler{}

	assert.Equal(t, 0, h.Slots())
	assert.False(t, h.IsItemValid(0, stoneStack(1)))

	remainder := h.InsertItem(0, stoneStack(5), false)
	assert.Equal(t, 5, remainder.Count, "Заглушка возвращает вложение целиком")
	assert.True(t, h.ExtractItem(0, 1, false).IsEmpty())
}
