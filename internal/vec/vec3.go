package vec

// Vec3 представляет трехмерную целочисленную координату блока.
// Сравнивается по значению, пригодна как ключ карты.
type Vec3 struct {
	X int
	Y int
	Z int
}

// Vec3Float представляет трехмерный вектор с плавающими координатами
type Vec3Float struct {
	X float64
	Y float64
	Z float64
}

// ToVec2 преобразует Vec3 в Vec2 (горизонтальная плоскость), игнорируя координату Y
func (v Vec3) ToVec2() Vec2 {
	return Vec2{
		X: v.X,
		Y: v.Z,
	}
}

// Center возвращает координаты центра блока (смещение на 0.5 по каждой оси)
func (v Vec3) Center() Vec3Float {
	return Vec3Float{
		X: float64(v.X) + 0.5,
		Y: float64(v.Y) + 0.5,
		Z: float64(v.Z) + 0.5,
	}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Offset возвращает координату, смещённую на count блоков в направлении dir
func (v Vec3) Offset(dir Direction, count int) Vec3 {
	d := dir.Vec()
	return Vec3{
		X: v.X + d.X*count,
		Y: v.Y + d.Y*count,
		Z: v.Z + d.Z*count,
	}
}

// Up возвращает координату блока сверху
func (v Vec3) Up() Vec3 { return Vec3{v.X, v.Y + 1, v.Z} }

// Down возвращает координату блока снизу
func (v Vec3) Down() Vec3 { return Vec3{v.X, v.Y - 1, v.Z} }

// North возвращает координату блока севернее (Z-1)
func (v Vec3) North() Vec3 { return Vec3{v.X, v.Y, v.Z - 1} }

// South возвращает координату блока южнее (Z+1)
func (v Vec3) South() Vec3 { return Vec3{v.X, v.Y, v.Z + 1} }

// East возвращает координату блока восточнее (X+1)
func (v Vec3) East() Vec3 { return Vec3{v.X + 1, v.Y, v.Z} }

// West возвращает координату блока западнее (X-1)
func (v Vec3) West() Vec3 { return Vec3{v.X - 1, v.Y, v.Z} }

// Component возвращает компоненту вектора по указанной оси
func (v Vec3) Component(axis Axis) int {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	return 0
}

// DistanceSq возвращает квадрат расстояния до другого вектора
func (v Vec3) DistanceSq(other Vec3) int {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}
