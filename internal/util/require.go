package util

import "fmt"

// Check проверяет значение предикатом. Если предикат вернул false,
// возвращается ошибка с сообщением message, иначе само значение.
// Используется для ранней валидации аргументов.
func Check[T any](value T, check func(T) bool, message string) (T, error) {
	if !check(value) {
		return value, fmt.Errorf("проверка не пройдена для значения %v: %s", value, message)
	}
	return value, nil
}

// CheckPositive возвращает ошибку, если value <= 0
func CheckPositive(value int, name string) error {
	if value <= 0 {
		return fmt.Errorf("параметр %s должен быть положительным, получено %d", name, value)
	}
	return nil
}

// CheckNonNegative возвращает ошибку, если value < 0
func CheckNonNegative(value int, name string) error {
	if value < 0 {
		return fmt.Errorf("параметр %s не может быть отрицательным, получено %d", name, value)
	}
	return nil
}

// CheckInRange возвращает ошибку, если value вне [min, max]
func CheckInRange(value, min, max int, name string) error {
	if value < min || value > max {
		return fmt.Errorf("параметр %s вне диапазона [%d, %d]: %d", name, min, max, value)
	}
	return nil
}

// CheckNotNil возвращает ошибку, если указатель или функция nil
func CheckNotNil(value interface{}, name string) error {
	if value == nil {
		return fmt.Errorf("параметр %s не может быть nil", name)
	}
	return nil
}
