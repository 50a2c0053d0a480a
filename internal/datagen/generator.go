// Package datagen генерирует JSON-ассеты (состояния блоков, модели
// предметов, таблицы дропа, рецепты) в стандартную раскладку каталога
// data/<namespace>/<directory>/<path>.json.
package datagen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/annel0/voxel-kit/internal/logging"
	"github.com/annel0/voxel-kit/internal/util"
)

const (
	rootDirectory = "data"
	outputSuffix  = "json"
)

// Generator пишет сериализованные экземпляры в файлы, отслеживая
// дубликаты идентификаторов в пределах своего каталога.
type Generator struct {
	outputDir string
	directory string
	indent    string
	known     map[util.ResourceName]struct{}
}

// NewGenerator создаёт генератор для каталога directory
// (например "blockstates", "loot_tables") внутри outputDir.
func NewGenerator(outputDir, directory, indent string) *Generator {
	return &Generator{
		outputDir: outputDir,
		directory: directory,
		indent:    indent,
		known:     make(map[util.ResourceName]struct{}),
	}
}

// OutputPath возвращает путь файла для данного имени ресурса
func (g *Generator) OutputPath(name util.ResourceName) string {
	return filepath.Join(g.outputDir, rootDirectory, name.Namespace, g.directory,
		filepath.FromSlash(name.Path)+"."+outputSuffix)
}

// Emit сериализует payload и пишет его в файл имени name.
// Повторное имя в одном генераторе — ошибка.
func (g *Generator) Emit(name util.ResourceName, payload interface{}) error {
	if name.IsZero() {
		return fmt.Errorf("datagen: пустое имя ресурса")
	}
	if _, exists := g.known[name]; exists {
		return fmt.Errorf("datagen: дубликат идентификатора %s в каталоге %q", name, g.directory)
	}

	data, err := g.marshal(payload)
	if err != nil {
		return fmt.Errorf("datagen: сериализация %s: %w", name, err)
	}

	path := g.OutputPath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("datagen: каталог для %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("datagen: запись %s: %w", name, err)
	}

	g.known[name] = struct{}{}
	logging.Debug("datagen: %s -> %s", name, path)
	return nil
}

// Count возвращает число записанных файлов
func (g *Generator) Count() int {
	return len(g.known)
}

func (g *Generator) marshal(payload interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if g.indent != "" {
		enc.SetIndent("", g.indent)
	}
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
