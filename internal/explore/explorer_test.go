package explore

import (
	"testing"

	"github.com/annel0/voxel-kit/internal/vec"
)

// planeMatcher создаёт заливку горизонтальной плоскости y==0,
// ограниченной |x|,|z| <= bound.
func planeMatcher(t *testing.T, bound int) *MatchingExplorer {
	t.Helper()
	me, err := NewMatching(
		func(c vec.Vec3) []vec.Vec3 { return vec.HorizontalNeighbors(c) },
		func(c vec.Vec3) bool {
			return c.Y == 0 && abs(c.X) <= bound && abs(c.Z) <= bound
		},
	)
	if err != nil {
		t.Fatalf("Ошибка создания заливки: %v", err)
	}
	return me
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestNewMatchingValidation(t *testing.T) {
	neighbors := func(c vec.Vec3) []vec.Vec3 { return nil }
	predicate := func(c vec.Vec3) bool { return false }

	if _, err := NewMatching(nil, predicate); err == nil {
		t.Error("Ожидалась ошибка при nil-функции соседей")
	}
	if _, err := NewMatching(neighbors, nil); err == nil {
		t.Error("Ожидалась ошибка при nil-предикате")
	}
	if _, err := NewMatching(neighbors, predicate); err != nil {
		t.Errorf("Корректные аргументы отклонены: %v", err)
	}
	if _, err := NewExplorer(nil); err == nil {
		t.Error("Ожидалась ошибка при nil-функции обработки")
	}
}

func TestDedupEnqueueEvaluatesOnce(t *testing.T) {
	evaluations := make(map[vec.Vec3]int)

	var e *Explorer
	e, err := NewExplorer(func(c vec.Vec3) {
		evaluations[c]++
		// Соседи по плоскости в пределах |x|,|z| <= 2
		for _, n := range vec.HorizontalNeighbors(c) {
			if abs(n.X) <= 2 && abs(n.Z) <= 2 {
				e.EnqueueIfUnexplored(n)
			}
		}
	})
	if err != nil {
		t.Fatalf("Ошибка создания обходчика: %v", err)
	}

	e.RestartWith(vec.Vec3{}).ExploreAll()

	total := 0
	for c, n := range evaluations {
		total++
		if n != 1 {
			t.Errorf("Ячейка %v обработана %d раз, ожидался 1", c, n)
		}
	}
	if total != e.CountExplored() {
		t.Errorf("Обработано %d ячеек, посещено %d — должны совпадать", total, e.CountExplored())
	}
}

func TestRawEnqueueDoubleEvaluates(t *testing.T) {
	// Небезопасный Enqueue допускает повторную постановку: ячейка
	// обрабатывается дважды. Известная особенность, а не контракт.
	count := 0
	e, _ := NewExplorer(func(c vec.Vec3) { count++ })

	cell := vec.Vec3{X: 1, Y: 2, Z: 3}
	e.Enqueue(cell)
	e.Enqueue(cell)
	e.ExploreAll()

	if count != 2 {
		t.Errorf("Двойная постановка дала %d обработок, ожидалось 2", count)
	}
	if e.CountExplored() != 1 {
		t.Errorf("CountExplored = %d, ожидался 1 (множество)", e.CountExplored())
	}
}

func TestFloodFillConnectedComponent(t *testing.T) {
	// Две 6-связные области, разделённые зазором: заливка от затравки
	// находит только свою компоненту
	region := map[vec.Vec3]bool{
		{X: 0, Y: 0, Z: 0}: true,
		{X: 1, Y: 0, Z: 0}: true,
		{X: 1, Y: 1, Z: 0}: true,
		{X: 1, Y: 1, Z: 1}: true,
		// Отдельная компонента (не достижима ортогонально)
		{X: 5, Y: 5, Z: 5}: true,
		{X: 5, Y: 6, Z: 5}: true,
	}

	me, err := NewMatching(
		func(c vec.Vec3) []vec.Vec3 { return vec.OrthogonalNeighbors(c) },
		func(c vec.Vec3) bool { return region[c] },
	)
	if err != nil {
		t.Fatalf("Ошибка создания заливки: %v", err)
	}

	me.RestartWith(vec.Vec3{}).ExploreAll()

	if me.CountMatching() != 4 {
		t.Errorf("Найдено %d ячеек, ожидалось 4 (компонента затравки)", me.CountMatching())
	}
	if me.HasMatched(vec.Vec3{X: 5, Y: 5, Z: 5}) {
		t.Error("Заливка пересекла зазор между компонентами")
	}
	if !me.HasMatched(vec.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Error("Достижимая ячейка компоненты не найдена")
	}
}

func TestExploreAllIdempotent(t *testing.T) {
	me := planeMatcher(t, 1)
	me.RestartWith(vec.Vec3{}).ExploreAll()

	if !me.IsFinishedExploring() {
		t.Fatal("После ExploreAll очередь должна быть пуста")
	}

	visited := me.CountExplored()
	matched := me.CountMatching()

	me.ExploreAll()

	if me.CountExplored() != visited || me.CountMatching() != matched {
		t.Error("Повторный ExploreAll изменил состояние")
	}
}

func TestClearResetsState(t *testing.T) {
	me := planeMatcher(t, 2)
	me.RestartWith(vec.Vec3{}).Explore(3)

	me.Clear()

	if me.CountExplored() != 0 {
		t.Errorf("После Clear посещено %d ячеек, ожидалось 0", me.CountExplored())
	}
	if me.CountMatching() != 0 || me.HasAnyMatching() {
		t.Error("После Clear множество совпадений должно быть пустым")
	}
	if !me.IsFinishedExploring() {
		t.Error("После Clear очередь должна быть пуста")
	}
}

func TestBudgetedExploration(t *testing.T) {
	// explore(k) выполняет ровно min(k, остаток) шагов
	count := 0
	var e *Explorer
	e, _ = NewExplorer(func(c vec.Vec3) {
		count++
		for _, n := range vec.HorizontalNeighbors(c) {
			if abs(n.X) <= 1 && abs(n.Z) <= 1 {
				e.EnqueueIfUnexplored(n)
			}
		}
	})

	e.RestartWith(vec.Vec3{})
	e.Explore(3)
	if count != 3 {
		t.Errorf("Explore(3) выполнил %d шагов, ожидалось 3", count)
	}

	// Остаток меньше бюджета: выполняются только оставшиеся шаги
	e.Explore(1000)
	if count != 9 {
		t.Errorf("Всего выполнено %d шагов, ожидалось 9 (плоскость 3x3)", count)
	}
	if !e.IsFinishedExploring() {
		t.Error("Очередь должна опустеть")
	}
}

func TestSingleStepOrderMatchesExploreAll(t *testing.T) {
	// Цикл ExploreSingle даёт ту же последовательность обработки,
	// что и один ExploreAll
	run := func(single bool) []vec.Vec3 {
		var order []vec.Vec3
		var e *Explorer
		e, _ = NewExplorer(func(c vec.Vec3) {
			order = append(order, c)
			for _, n := range vec.HorizontalNeighbors(c) {
				if abs(n.X) <= 2 && abs(n.Z) <= 2 {
					e.EnqueueIfUnexplored(n)
				}
			}
		})
		e.RestartWith(vec.Vec3{})
		if single {
			for !e.IsFinishedExploring() {
				e.ExploreSingle()
			}
		} else {
			e.ExploreAll()
		}
		return order
	}

	all := run(false)
	stepwise := run(true)

	if len(all) != len(stepwise) {
		t.Fatalf("Разная длина последовательностей: %d != %d", len(all), len(stepwise))
	}
	for i := range all {
		if all[i] != stepwise[i] {
			t.Fatalf("Порядок расходится на шаге %d: %v != %v", i, all[i], stepwise[i])
		}
	}
}

func TestBoundedPlaneScenario(t *testing.T) {
	// Затравка (0,0,0), 4 горизонтальных соседа, предикат y==0 и
	// |x|,|z| <= 5: ровно сетка 11x11 из 121 ячейки
	me := planeMatcher(t, 5)
	me.RestartWith(vec.Vec3{}).ExploreAll()

	if me.CountMatching() != 121 {
		t.Errorf("Найдено %d ячеек, ожидалась 121", me.CountMatching())
	}
	for _, corner := range []vec.Vec3{
		{X: 5, Y: 0, Z: 5}, {X: -5, Y: 0, Z: -5},
		{X: 5, Y: 0, Z: -5}, {X: -5, Y: 0, Z: 5},
	} {
		if !me.HasMatched(corner) {
			t.Errorf("Угловая ячейка %v не найдена", corner)
		}
	}
}

func TestAlwaysFalsePredicate(t *testing.T) {
	me, err := NewMatching(
		func(c vec.Vec3) []vec.Vec3 { return vec.OrthogonalNeighbors(c) },
		func(c vec.Vec3) bool { return false },
	)
	if err != nil {
		t.Fatalf("Ошибка создания заливки: %v", err)
	}

	seed := vec.Vec3{X: 7, Y: 8, Z: 9}
	me.RestartWith(seed).ExploreSingle()

	if me.HasAnyMatching() {
		t.Error("При всегда ложном предикате совпадений быть не должно")
	}
	if me.CountExplored() != 1 || !me.HasExplored(seed) {
		t.Error("Посещённой должна быть только затравка")
	}
	if !me.IsFinishedExploring() {
		t.Error("Очередь должна опустеть после одного шага")
	}
}

func TestExploredReturnsCopy(t *testing.T) {
	me := planeMatcher(t, 1)
	me.RestartWith(vec.Vec3{}).ExploreAll()

	cells := me.Explored()
	if len(cells) != me.CountExplored() {
		t.Errorf("Explored вернул %d ячеек, посещено %d", len(cells), me.CountExplored())
	}

	seen := 0
	me.ForEachExplored(func(c vec.Vec3) { seen++ })
	if seen != me.CountExplored() {
		t.Errorf("ForEachExplored обошёл %d ячеек, посещено %d", seen, me.CountExplored())
	}
}
