package vec

// OrthogonalNeighbors возвращает шесть ортогональных соседей координаты.
// Порядок обхода: U, D, N, S, E, W.
func OrthogonalNeighbors(pos Vec3) []Vec3 {
	return []Vec3{
		pos.Up(),
		pos.Down(),
		pos.North(),
		pos.South(),
		pos.East(),
		pos.West(),
	}
}

// HorizontalNeighbors возвращает четыре горизонтальных соседа координаты.
// Порядок обхода: N, E, S, W.
func HorizontalNeighbors(pos Vec3) []Vec3 {
	return []Vec3{
		pos.North(),
		pos.East(),
		pos.South(),
		pos.West(),
	}
}

// AllOrthogonalTo возвращает все координаты на расстоянии до distance блоков
// от origin в каждом из указанных направлений. Если направление указано дважды,
// его координаты войдут в результат дважды.
func AllOrthogonalTo(origin Vec3, distance int, directions ...Direction) []Vec3 {
	result := make([]Vec3, 0, distance*len(directions))
	for _, dir := range directions {
		for count := 1; count <= distance; count++ {
			result = append(result, origin.Offset(dir, count))
		}
	}
	return result
}

// CubicRadius возвращает все координаты в кубе со стороной 2*radius+1 вокруг origin.
// Порядок обхода детерминирован: по Y, затем Z, затем X.
func CubicRadius(origin Vec3, radius int) []Vec3 {
	if radius < 0 {
		return nil
	}
	side := 2*radius + 1
	result := make([]Vec3, 0, side*side*side)
	for y := origin.Y - radius; y <= origin.Y+radius; y++ {
		for z := origin.Z - radius; z <= origin.Z+radius; z++ {
			for x := origin.X - radius; x <= origin.X+radius; x++ {
				result = append(result, Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	return result
}

// HorizontalRadius возвращает все координаты горизонтального квадрата
// со стороной 2*radius+1 вокруг origin, на той же высоте Y.
func HorizontalRadius(origin Vec3, radius int) []Vec3 {
	if radius < 0 {
		return nil
	}
	side := 2*radius + 1
	result := make([]Vec3, 0, side*side)
	for z := origin.Z - radius; z <= origin.Z+radius; z++ {
		for x := origin.X - radius; x <= origin.X+radius; x++ {
			result = append(result, Vec3{X: x, Y: origin.Y, Z: z})
		}
	}
	return result
}
