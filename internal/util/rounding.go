package util

import "math"

// RoundingMethod определяет способ округления дробного значения до целого
type RoundingMethod int

const (
	RoundFloor RoundingMethod = iota
	RoundCeiling
	RoundUp   // Половина округляется вверх
	RoundDown // Вверх только при значении строго больше 0.5
)

// Round округляет значение выбранным способом
func (m RoundingMethod) Round(value float64) int {
	switch m {
	case RoundFloor:
		return int(math.Floor(value))
	case RoundCeiling:
		return int(math.Ceil(value))
	case RoundUp:
		return int(math.Round(value))
	case RoundDown:
		frac := value - math.Floor(value)
		if frac > 0.5 {
			return int(math.Floor(value)) + 1
		}
		return int(math.Floor(value))
	}
	return int(value)
}

// String возвращает имя способа округления
func (m RoundingMethod) String() string {
	switch m {
	case RoundFloor:
		return "floor"
	case RoundCeiling:
		return "ceiling"
	case RoundUp:
		return "round_up"
	case RoundDown:
		return "round_down"
	}
	return "unknown"
}

// RoundingByName выполняет обратный поиск способа округления по имени.
// Второй результат false, если имя неизвестно.
func RoundingByName(name string) (RoundingMethod, bool) {
	switch name {
	case "floor":
		return RoundFloor, true
	case "ceiling":
		return RoundCeiling, true
	case "round_up":
		return RoundUp, true
	case "round_down":
		return RoundDown, true
	}
	return RoundFloor, false
}
