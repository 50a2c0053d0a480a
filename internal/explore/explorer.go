// Package explore реализует инкрементальный обход связных областей
// вокселей в ширину (BFS). Обход возобновляемый: вызывающий код может
// выполнять его порциями по N шагов между тиками симуляции.
package explore

import (
	"fmt"

	"github.com/annel0/voxel-kit/internal/vec"
)

// EvaluateFunc вызывается для каждой ячейки, извлечённой из очереди.
// Реализация не должна затрагивать ничего, кроме переданной ячейки,
// и планирует дальнейший обход через EnqueueIfUnexplored.
type EvaluateFunc func(cell vec.Vec3)

// Explorer — базовый драйвер обхода: FIFO-очередь фронтира плюс
// множество посещённых ячеек. Логика обработки ячейки задаётся
// замыканием при создании.
//
// Не потокобезопасен: обход однопоточный и синхронный по построению.
type Explorer struct {
	frontier []vec.Vec3
	pending  map[vec.Vec3]int // кратность ячеек в очереди
	explored map[vec.Vec3]struct{}
	evaluate EvaluateFunc
}

// NewExplorer создаёт обходчик с заданной функцией обработки ячеек.
func NewExplorer(evaluate EvaluateFunc) (*Explorer, error) {
	if evaluate == nil {
		return nil, fmt.Errorf("explore: функция обработки не задана")
	}
	return &Explorer{
		pending:  make(map[vec.Vec3]int),
		explored: make(map[vec.Vec3]struct{}),
		evaluate: evaluate,
	}, nil
}

// Enqueue добавляет ячейку в очередь безусловно. Возвращает true
// (очередь не ограничена).
//
// Внимание: повторная постановка уже посещённой ячейки приведёт к её
// повторной обработке. Безопасный путь — EnqueueIfUnexplored.
func (e *Explorer) Enqueue(cell vec.Vec3) bool {
	e.frontier = append(e.frontier, cell)
	e.pending[cell]++
	return true
}

// EnqueueIfUnexplored добавляет ячейку в очередь, только если она ещё
// не была посещена и не ожидает в очереди. Возвращает true, если
// ячейка добавлена. При использовании только этого метода каждая
// ячейка обрабатывается ровно один раз.
func (e *Explorer) EnqueueIfUnexplored(cell vec.Vec3) bool {
	if _, ok := e.explored[cell]; ok {
		return false
	}
	if e.pending[cell] > 0 {
		return false
	}
	return e.Enqueue(cell)
}

// RestartWith сбрасывает всё состояние и ставит в очередь стартовую
// ячейку. Возвращает обходчик для цепочки вызовов.
func (e *Explorer) RestartWith(cell vec.Vec3) *Explorer {
	e.Clear()
	e.Enqueue(cell)
	return e
}

// Explore выполняет до maxSteps шагов обхода либо до опустошения
// очереди. Шаг: извлечь голову очереди, обработать, пометить
// посещённой. Возвращает обходчик для цепочки вызовов.
func (e *Explorer) Explore(maxSteps int) *Explorer {
	for i := 0; i < maxSteps && len(e.frontier) > 0; i++ {
		cell := e.frontier[0]
		e.frontier = e.frontier[1:]
		if e.pending[cell] <= 1 {
			delete(e.pending, cell)
		} else {
			e.pending[cell]--
		}

		e.evaluate(cell)
		e.explored[cell] = struct{}{}
	}
	return e
}

// ExploreSingle выполняет ровно один шаг обхода.
func (e *Explorer) ExploreSingle() *Explorer {
	return e.Explore(1)
}

// ExploreAll выполняет обход до полного опустошения очереди.
// Вызывающий код отвечает за конечность графа: обработка ячейки может
// ставить в очередь больше ячеек, чем потребляет.
func (e *Explorer) ExploreAll() *Explorer {
	for len(e.frontier) > 0 {
		e.Explore(len(e.frontier))
	}
	return e
}

// IsFinishedExploring сообщает, опустела ли очередь.
func (e *Explorer) IsFinishedExploring() bool {
	return len(e.frontier) == 0
}

// HasExplored сообщает, была ли ячейка посещена.
func (e *Explorer) HasExplored(cell vec.Vec3) bool {
	_, ok := e.explored[cell]
	return ok
}

// CountExplored возвращает число посещённых ячеек.
func (e *Explorer) CountExplored() int {
	return len(e.explored)
}

// Explored возвращает копию множества посещённых ячеек.
// Порядок не определён.
func (e *Explorer) Explored() []vec.Vec3 {
	out := make([]vec.Vec3, 0, len(e.explored))
	for cell := range e.explored {
		out = append(out, cell)
	}
	return out
}

// ForEachExplored вызывает fn для каждой посещённой ячейки.
// Порядок не определён.
func (e *Explorer) ForEachExplored(fn func(cell vec.Vec3)) {
	for cell := range e.explored {
		fn(cell)
	}
}

// PendingCount возвращает текущий размер очереди.
func (e *Explorer) PendingCount() int {
	return len(e.frontier)
}

// Clear опустошает очередь и множество посещённых ячеек.
func (e *Explorer) Clear() {
	e.frontier = e.frontier[:0]
	e.pending = make(map[vec.Vec3]int)
	e.explored = make(map[vec.Vec3]struct{})
}
