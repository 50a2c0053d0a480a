package items

import (
	"math"
	"math/rand"
	"testing"

	"github.com/annel0/voxel-kit/internal/util"
	"github.com/annel0/voxel-kit/internal/vec"
)

// testSink собирает созданные сущности.
type testSink struct {
	entities []*ItemEntity
}

func (s *testSink) AddEntity(e *ItemEntity) {
	s.entities = append(s.entities, e)
}

func TestStackValid(t *testing.T) {
	valid := ItemStack{ID: util.NewResource("stone"), Count: 3}
	empty := ItemStack{ID: util.NewResource("stone"), Count: 0}
	noID := ItemStack{Count: 5}

	if !StackValid(&valid) {
		t.Error("Корректный стек признан невалидным")
	}
	if StackValid(&empty) {
		t.Error("Пустой стек признан валидным")
	}
	if StackValid(&noID) {
		t.Error("Стек без ID признан валидным")
	}
	if StackValid(nil) {
		t.Error("nil признан валидным стеком")
	}
}

func TestStackCopy(t *testing.T) {
	original := ItemStack{
		ID:      util.NewResource("sword"),
		Count:   1,
		Payload: map[string]interface{}{"durability": 100},
	}

	clone := original.Copy()
	clone.Payload["durability"] = 1

	if original.Payload["durability"] != 100 {
		t.Error("Копия разделяет Payload с оригиналом")
	}
}

func TestParseStack(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		count   int
		wantErr bool
	}{
		{"только имя", "voxelkit:stone", 1, false},
		{"имя и количество", "voxelkit:stone 5", 5, false},
		{"без пространства имён", "stone 2", 2, false},
		{"с полезной нагрузкой", `voxelkit:sword 1 {"durability": 50}`, 1, false},
		{"пустая строка", "", 0, true},
		{"мусор вместо количества", "stone abc", 0, true},
		{"лишние поля", "stone 1 2", 0, true},
		{"недопустимые символы", "Stone!", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stack, err := ParseStack(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Ожидалась ошибка для %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Неожиданная ошибка для %q: %v", tc.input, err)
			}
			if stack.Count != tc.count {
				t.Errorf("Количество %d, ожидалось %d", stack.Count, tc.count)
			}
		})
	}

	stack, err := ParseStack(`voxelkit:sword 1 {"durability": 50}`)
	if err != nil {
		t.Fatalf("Ошибка разбора стека с нагрузкой: %v", err)
	}
	if stack.Payload["durability"] != float64(50) {
		t.Errorf("Полезная нагрузка потеряна: %+v", stack.Payload)
	}
}

func TestRegistryAndFuel(t *testing.T) {
	coal := util.NewResource("test_coal")
	if err := RegisterSimpleFuel(coal, util.BurnTicksSingleItem*8); err != nil {
		t.Fatalf("Ошибка регистрации топлива: %v", err)
	}

	// Повторная регистрация — ошибка
	if err := RegisterSimpleFuel(coal, 100); err == nil {
		t.Error("Повторная регистрация должна вернуть ошибку")
	}

	if !IsFuel(coal) {
		t.Error("Зарегистрированное топливо не распознано")
	}
	if IsFuel(util.NewResource("test_rock")) {
		t.Error("Незарегистрированный предмет распознан как топливо")
	}

	stack := ItemStack{ID: coal, Count: 2}
	if got := BurnTicksFor(stack); got != util.BurnTicksSingleItem*8 {
		t.Errorf("BurnTicksFor = %d, ожидалось %d", got, util.BurnTicksSingleItem*8)
	}
	// 2 угля по 8 переплавок каждый
	if got := SmeltingCapacity(stack); got != 16 {
		t.Errorf("SmeltingCapacity = %d, ожидалось 16", got)
	}
}

func TestSpawnItem(t *testing.T) {
	sink := &testSink{}
	stack := ItemStack{ID: util.NewResource("stone"), Count: 4}

	entity := SpawnItem(sink, &stack, 1.5, 2.5, 3.5)
	if entity == nil {
		t.Fatal("Спавн корректного стека вернул nil")
	}
	if entity.PickupDelay != DefaultPickupDelay {
		t.Errorf("Задержка подбора %d, ожидалась %d", entity.PickupDelay, DefaultPickupDelay)
	}
	if entity.EntityID == "" {
		t.Error("Сущность без идентификатора")
	}
	if len(sink.entities) != 1 {
		t.Fatalf("В мир добавлено %d сущностей, ожидалась 1", len(sink.entities))
	}

	// Копия стека: изменение оригинала не влияет на сущность
	stack.Count = 99
	if entity.Stack.Count != 4 {
		t.Error("Сущность разделяет стек с вызывающим кодом")
	}
}

func TestSpawnItemInvalidStack(t *testing.T) {
	sink := &testSink{}

	if SpawnItem(sink, nil, 0, 0, 0) != nil {
		t.Error("Спавн nil-стека должен вернуть nil")
	}
	empty := ItemStack{}
	if SpawnItem(sink, &empty, 0, 0, 0) != nil {
		t.Error("Спавн пустого стека должен вернуть nil")
	}
	if len(sink.entities) != 0 {
		t.Error("Невалидные стеки не должны порождать сущностей")
	}
}

func TestSpawnItemNearBlockSpread(t *testing.T) {
	sink := &testSink{}
	rng := rand.New(rand.NewSource(1))
	pos := vec.Vec3{X: 10, Y: 20, Z: 30}
	spread := 0.25

	for i := 0; i < 50; i++ {
		stack := ItemStack{ID: util.NewResource("stone"), Count: 1}
		entity := SpawnItemNearBlock(sink, &stack, pos, rng, spread)
		if entity == nil {
			t.Fatal("Спавн вернул nil")
		}

		center := pos.Center()
		if math.Abs(entity.Pos.X-center.X) > spread ||
			math.Abs(entity.Pos.Y-center.Y) > spread ||
			math.Abs(entity.Pos.Z-center.Z) > spread {
			t.Fatalf("Смещение превышает spread: %+v относительно %+v", entity.Pos, center)
		}
	}
}
