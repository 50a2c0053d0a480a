package items

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/annel0/voxel-kit/internal/util"
)

// DefaultMaxStackSize — размер стека для незарегистрированных предметов
const DefaultMaxStackSize = 64

// ItemDefinition описывает зарегистрированный тип предмета.
type ItemDefinition struct {
	ID           util.ResourceName
	MaxStackSize int
	BurnTicks    int // 0 — предмет не является топливом
}

var (
	registryMu sync.RWMutex
	registry   = make(map[util.ResourceName]ItemDefinition)
)

// Register регистрирует определение предмета. Повторная регистрация
// того же ID — ошибка.
func Register(def ItemDefinition) error {
	if def.ID.IsZero() {
		return fmt.Errorf("items: определение без ID")
	}
	if def.MaxStackSize <= 0 {
		def.MaxStackSize = DefaultMaxStackSize
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.ID]; exists {
		return fmt.Errorf("items: предмет %s уже зарегистрирован", def.ID)
	}
	registry[def.ID] = def
	return nil
}

// GetDefinition возвращает определение предмета по ID.
func GetDefinition(id util.ResourceName) (ItemDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	def, ok := registry[id]
	return def, ok
}

// MaxStackSizeFor возвращает максимальный размер стека для предмета.
// Для незарегистрированных предметов — DefaultMaxStackSize.
func MaxStackSizeFor(id util.ResourceName) int {
	if def, ok := GetDefinition(id); ok {
		return def.MaxStackSize
	}
	return DefaultMaxStackSize
}

// NewStack создаёт стек по строковому ID предмета.
func NewStack(id string, count int) (ItemStack, error) {
	name, err := util.ParseResource(id)
	if err != nil {
		return ItemStack{}, err
	}
	if count <= 0 {
		return ItemStack{}, fmt.Errorf("items: недопустимое количество %d", count)
	}
	return ItemStack{ID: name, Count: count}, nil
}

// ParseStack разбирает текстовую форму стека:
//
//	"ns:name"            — один предмет
//	"ns:name 5"          — пять предметов
//	"ns:name 5 {json}"   — пять предметов с полезной нагрузкой
func ParseStack(input string) (ItemStack, error) {
	input = strings.TrimSpace(input)

	var payloadRaw string
	if idx := strings.Index(input, "{"); idx >= 0 {
		payloadRaw = input[idx:]
		input = strings.TrimSpace(input[:idx])
	}

	parts := util.SplitByWhitespace(input)
	if len(parts) == 0 || len(parts) > 2 {
		return ItemStack{}, fmt.Errorf("items: неразборчивая форма стека %q", input)
	}

	count := 1
	if len(parts) == 2 {
		parsed, err := strconv.Atoi(parts[1])
		if err != nil {
			return ItemStack{}, fmt.Errorf("items: количество %q: %w", parts[1], err)
		}
		count = parsed
	}

	stack, err := NewStack(parts[0], count)
	if err != nil {
		return ItemStack{}, err
	}

	if payloadRaw != "" {
		var payload map[string]interface{}
		if err := json.Unmarshal([]byte(payloadRaw), &payload); err != nil {
			return ItemStack{}, fmt.Errorf("items: полезная нагрузка стека: %w", err)
		}
		stack.Payload = payload
	}
	return stack, nil
}
