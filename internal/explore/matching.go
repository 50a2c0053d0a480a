package explore

import (
	"fmt"

	"github.com/annel0/voxel-kit/internal/vec"
)

// NeighborFunc порождает соседей ячейки. Дубликаты допустимы:
// дедупликация выполняется при постановке в очередь.
type NeighborFunc func(cell vec.Vec3) []vec.Vec3

// PredicateFunc решает, принадлежит ли ячейка искомой области.
type PredicateFunc func(cell vec.Vec3) bool

// MatchingExplorer — заливка (flood fill): начиная с затравки, растит
// максимальную связную область ячеек, удовлетворяющих предикату и
// достижимых через функцию соседей. Расширение идёт только через
// принятые ячейки; порядок обнаружения детерминирован (BFS, FIFO).
type MatchingExplorer struct {
	*Explorer
	neighbors NeighborFunc
	predicate PredicateFunc
	matches   map[vec.Vec3]struct{}
}

// NewMatching создаёт заливку с обязательными функцией соседей и
// предикатом. Обе обязательны: неявные no-op значения по умолчанию
// прятали бы ошибку конфигурации до рантайма.
func NewMatching(neighbors NeighborFunc, predicate PredicateFunc) (*MatchingExplorer, error) {
	if neighbors == nil {
		return nil, fmt.Errorf("explore: функция соседей не задана")
	}
	if predicate == nil {
		return nil, fmt.Errorf("explore: предикат не задан")
	}

	me := &MatchingExplorer{
		neighbors: neighbors,
		predicate: predicate,
		matches:   make(map[vec.Vec3]struct{}),
	}

	base, err := NewExplorer(me.evaluateCell)
	if err != nil {
		return nil, err
	}
	me.Explorer = base
	return me, nil
}

// evaluateCell — шаг заливки: отклонённая предикатом ячейка только
// помечается посещённой; уже совпавшая пропускается (возможно лишь при
// постановке через небезопасный Enqueue); новая — добавляется в
// совпадения, и её соседи ставятся в очередь.
func (me *MatchingExplorer) evaluateCell(cell vec.Vec3) {
	if !me.predicate(cell) {
		return
	}
	if _, ok := me.matches[cell]; ok {
		return
	}
	me.matches[cell] = struct{}{}

	for _, n := range me.neighbors(cell) {
		me.EnqueueIfUnexplored(n)
	}
}

// RestartWith сбрасывает всё состояние (включая совпадения) и ставит
// в очередь стартовую ячейку.
func (me *MatchingExplorer) RestartWith(cell vec.Vec3) *MatchingExplorer {
	me.Clear()
	me.Enqueue(cell)
	return me
}

// Explore выполняет до maxSteps шагов заливки.
func (me *MatchingExplorer) Explore(maxSteps int) *MatchingExplorer {
	me.Explorer.Explore(maxSteps)
	return me
}

// ExploreAll выполняет заливку до полного опустошения очереди.
func (me *MatchingExplorer) ExploreAll() *MatchingExplorer {
	me.Explorer.ExploreAll()
	return me
}

// HasMatched сообщает, входит ли ячейка в совпавшую область.
func (me *MatchingExplorer) HasMatched(cell vec.Vec3) bool {
	_, ok := me.matches[cell]
	return ok
}

// HasAnyMatching сообщает, найдена ли хотя бы одна совпавшая ячейка.
func (me *MatchingExplorer) HasAnyMatching() bool {
	return len(me.matches) > 0
}

// CountMatching возвращает размер совпавшей области.
func (me *MatchingExplorer) CountMatching() int {
	return len(me.matches)
}

// Matching возвращает копию множества совпавших ячеек.
// Порядок не определён.
func (me *MatchingExplorer) Matching() []vec.Vec3 {
	out := make([]vec.Vec3, 0, len(me.matches))
	for cell := range me.matches {
		out = append(out, cell)
	}
	return out
}

// ForEachMatching вызывает fn для каждой совпавшей ячейки.
// Порядок не определён.
func (me *MatchingExplorer) ForEachMatching(fn func(cell vec.Vec3)) {
	for cell := range me.matches {
		fn(cell)
	}
}

// Clear опустошает очередь, множество посещённых и совпавших ячеек.
func (me *MatchingExplorer) Clear() {
	me.Explorer.Clear()
	me.matches = make(map[vec.Vec3]struct{})
}
