package explore

import (
	"github.com/annel0/voxel-kit/internal/vec"
	"github.com/annel0/voxel-kit/internal/world"
	"github.com/annel0/voxel-kit/internal/world/block"
)

// ContiguousMatching создаёт заливку связной области блоков мира:
// соседство — 6 ортогональных направлений, принадлежность области
// решает предикат по ID блока. Незагруженные чанки читаются как
// воздух и чтением не загружаются.
func ContiguousMatching(w *world.World, accept func(id block.BlockID) bool) (*MatchingExplorer, error) {
	return NewMatching(
		func(cell vec.Vec3) []vec.Vec3 {
			return vec.OrthogonalNeighbors(cell)
		},
		func(cell vec.Vec3) bool {
			return accept(w.GetBlock(cell))
		},
	)
}

// HorizontalContiguousMatching — то же, но соседство ограничено
// горизонтальной плоскостью (N/E/S/W). Удобно для областей жидкости
// на одном уровне или полей посевов.
func HorizontalContiguousMatching(w *world.World, accept func(id block.BlockID) bool) (*MatchingExplorer, error) {
	return NewMatching(
		func(cell vec.Vec3) []vec.Vec3 {
			return vec.HorizontalNeighbors(cell)
		},
		func(cell vec.Vec3) bool {
			return accept(w.GetBlock(cell))
		},
	)
}
