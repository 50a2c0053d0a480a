package util

import "math"

// Константы игрового времени
const (
	// TicksPerSecond — целевое количество игровых тиков в секунду реального времени
	TicksPerSecond = 20

	// BurnTicksSingleItem — время горения, необходимое для переплавки одного предмета в обычной печи
	BurnTicksSingleItem = 200
)

// BurnTimeFor возвращает время горения в тиках для переплавки указанного количества предметов
func BurnTimeFor(quantityItems int) int {
	return BurnTicksSingleItem * quantityItems
}

// SecondsToTicks переводит секунды реального времени в игровые тики
func SecondsToTicks(seconds float64) int {
	return int(math.Floor(TicksPerSecond * seconds))
}

// MinutesToTicks переводит минуты реального времени в игровые тики
func MinutesToTicks(minutes float64) int {
	return int(math.Floor(TicksPerSecond * 60 * minutes))
}
