package world

import (
	"github.com/annel0/voxel-kit/internal/util"
	"github.com/annel0/voxel-kit/internal/vec"
	"github.com/annel0/voxel-kit/internal/world/block"
)

// Константы генерации ландшафта
const (
	SeaLevel      = 62  // Уровень моря
	BaseHeight    = 48  // Минимальная высота поверхности
	HeightRange   = 32  // Разброс высот поверхности
	StoneDepth    = 4   // Толщина каменной подложки под поверхностью
)

// WorldGenerator генерирует ландшафт мира на основе шума Перлина
type WorldGenerator struct {
	Seed       int64   // Сид для генерации шума
	NoiseScale float64 // Масштаб основного шума (высота)
}

// NewWorldGenerator создаёт новый генератор мира
func NewWorldGenerator(seed int64) *WorldGenerator {
	// Инициализируем генератор шума
	util.InitPerlinNoise(seed)

	return &WorldGenerator{
		Seed:       seed,
		NoiseScale: 0.05, // Настройка сглаженности ландшафта
	}
}

// GenerateChunk генерирует чанк по его координатам
func (wg *WorldGenerator) GenerateChunk(coords vec.Vec2) *Chunk {
	chunk := NewChunk(coords)

	globalStartX := coords.X << 4 // chunkX * 16
	globalStartZ := coords.Y << 4 // chunkZ * 16

	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			globalX := globalStartX + x
			globalZ := globalStartZ + z

			// Координаты для шума (масштабированные)
			noiseX := float64(globalX) * wg.NoiseScale
			noiseZ := float64(globalZ) * wg.NoiseScale

			// Высота поверхности на основе шума Перлина
			noise := util.PerlinNoise2D(noiseX, noiseZ, wg.Seed)
			surface := BaseHeight + int(noise*HeightRange)

			wg.fillColumn(chunk, x, z, surface)
		}
	}

	// Сгенерированный чанк не считается изменённым
	chunk.ClearChanges()
	return chunk
}

// fillColumn заполняет вертикальную колонку чанка до высоты surface
func (wg *WorldGenerator) fillColumn(chunk *Chunk, x, z, surface int) {
	// Каменная подложка
	for y := surface - StoneDepth; y < surface; y++ {
		if y >= 0 {
			chunk.SetBlock(vec.Vec3{X: x, Y: y, Z: z}, block.StoneBlockID)
		}
	}

	if surface >= SeaLevel {
		// Поверхность над водой покрыта травой
		chunk.SetBlock(vec.Vec3{X: x, Y: surface, Z: z}, block.GrassBlockID)
	} else {
		// Ниже уровня моря — вода до SeaLevel
		for y := surface; y <= SeaLevel; y++ {
			chunk.SetBlock(vec.Vec3{X: x, Y: y, Z: z}, block.WaterBlockID)
		}
	}
}
