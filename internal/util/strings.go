package util

import (
	"fmt"
	"strings"
)

// Константы разделителей ресурсных имён
const (
	DelimiterPath     = "/"
	DelimiterName     = "_"
	DelimiterResource = ":"

	DomainDefault = "voxelkit"
)

// ResourceName представляет имя ресурса вида "namespace:path"
type ResourceName struct {
	Namespace string
	Path      string
}

// String возвращает каноническую форму "namespace:path"
func (r ResourceName) String() string {
	return r.Namespace + DelimiterResource + r.Path
}

// IsZero проверяет, что имя не заполнено
func (r ResourceName) IsZero() bool {
	return r.Namespace == "" && r.Path == ""
}

// NewResource создает ResourceName в пространстве имён по умолчанию
func NewResource(path string) ResourceName {
	return ResourceName{Namespace: DomainDefault, Path: path}
}

// ParseResource разбирает строку вида "namespace:path" или "path"
// (пространство имён по умолчанию). Пустая строка или недопустимые
// символы дают ошибку.
func ParseResource(input string) (ResourceName, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return ResourceName{}, fmt.Errorf("пустое имя ресурса")
	}

	namespace := DomainDefault
	path := input
	if idx := strings.Index(input, DelimiterResource); idx >= 0 {
		namespace = input[:idx]
		path = input[idx+1:]
		if strings.Contains(path, DelimiterResource) {
			return ResourceName{}, fmt.Errorf("имя ресурса %q содержит более одного разделителя %q", input, DelimiterResource)
		}
	}

	if !validResourcePart(namespace, false) {
		return ResourceName{}, fmt.Errorf("недопустимое пространство имён %q", namespace)
	}
	if !validResourcePart(path, true) {
		return ResourceName{}, fmt.Errorf("недопустимый путь ресурса %q", path)
	}

	return ResourceName{Namespace: namespace, Path: path}, nil
}

// validResourcePart проверяет символы части ресурсного имени.
// Для пути дополнительно разрешён "/".
func validResourcePart(part string, allowSlash bool) bool {
	if part == "" {
		return false
	}
	for _, r := range part {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		case r == '/' && allowSlash:
		default:
			return false
		}
	}
	return true
}

// JoinPath соединяет элементы через "/"
func JoinPath(elements ...string) string {
	return strings.Join(elements, DelimiterPath)
}

// JoinName соединяет элементы через "_"
func JoinName(elements ...string) string {
	return strings.Join(elements, DelimiterName)
}

// FilePath соединяет элементы через "/" и добавляет расширение
func FilePath(suffix string, elements ...string) string {
	return strings.Join(elements, DelimiterPath) + "." + suffix
}

// IsNullOrEmpty проверяет, что строка пуста
func IsNullOrEmpty(input string) bool {
	return len(input) == 0
}

// SplitByWhitespace разбивает строку по пробельным символам.
// Для пустой строки возвращается пустой срез.
func SplitByWhitespace(input string) []string {
	return strings.Fields(input)
}
