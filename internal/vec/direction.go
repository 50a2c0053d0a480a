package vec

// Direction представляет одно из шести ортогональных направлений
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirNorth
	DirSouth
	DirEast
	DirWest
)

// Axis представляет ось координат
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// directionVecs содержит единичные смещения направлений.
// Порядок совпадает с константами Direction.
var directionVecs = [6]Vec3{
	{0, 1, 0},  // Up
	{0, -1, 0}, // Down
	{0, 0, -1}, // North
	{0, 0, 1},  // South
	{1, 0, 0},  // East
	{-1, 0, 0}, // West
}

// Vec возвращает единичный вектор направления
func (d Direction) Vec() Vec3 {
	if d < DirUp || d > DirWest {
		return Vec3{}
	}
	return directionVecs[d]
}

// Opposite возвращает противоположное направление
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirNorth:
		return DirSouth
	case DirSouth:
		return DirNorth
	case DirEast:
		return DirWest
	case DirWest:
		return DirEast
	}
	return d
}

// String возвращает строковое представление направления
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirEast:
		return "east"
	case DirWest:
		return "west"
	}
	return "unknown"
}

// HorizontalDirections перечисляет горизонтальные направления в порядке обхода N, E, S, W
var HorizontalDirections = [4]Direction{DirNorth, DirEast, DirSouth, DirWest}

// AllDirections перечисляет все направления в порядке обхода U, D, N, S, E, W
var AllDirections = [6]Direction{DirUp, DirDown, DirNorth, DirSouth, DirEast, DirWest}
