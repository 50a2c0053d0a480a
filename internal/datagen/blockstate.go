package datagen

import (
	"fmt"

	"github.com/annel0/voxel-kit/internal/util"
)

const blockModelFolder = "block"

// ConfiguredModel — ссылка на модель блока в файле состояния.
type ConfiguredModel struct {
	Model string `json:"model"`
}

// BlockStateFile описывает файл состояния блока: варианты моделей
// по строке свойств.
type BlockStateFile struct {
	Variants map[string][]ConfiguredModel `json:"variants"`
}

// VariantModels строит quantity вариантов модели с суффиксами _1.._n.
func VariantModels(name util.ResourceName, quantity int) []ConfiguredModel {
	variants := make([]ConfiguredModel, quantity)
	for index := 1; index <= quantity; index++ {
		variantPath := util.JoinPath(blockModelFolder, fmt.Sprintf("%s_%d", name.Path, index))
		variants[index-1] = ConfiguredModel{
			Model: util.ResourceName{Namespace: name.Namespace, Path: variantPath}.String(),
		}
	}
	return variants
}

// SimpleBlockState строит состояние без свойств: все варианты под
// пустой строкой, выбираются случайно.
func SimpleBlockState(name util.ResourceName, quantity int) BlockStateFile {
	return BlockStateFile{
		Variants: map[string][]ConfiguredModel{
			"": VariantModels(name, quantity),
		},
	}
}

// BlockStateGenerator пишет файлы состояний блоков.
type BlockStateGenerator struct {
	*Generator
}

// NewBlockStateGenerator создаёт генератор каталога "blockstates".
func NewBlockStateGenerator(outputDir, indent string) *BlockStateGenerator {
	return &BlockStateGenerator{NewGenerator(outputDir, "blockstates", indent)}
}

// EmitBlock пишет состояние блока с указанным числом вариантов модели.
func (g *BlockStateGenerator) EmitBlock(name util.ResourceName, variants int) error {
	if err := util.CheckPositive(variants, "число вариантов"); err != nil {
		return err
	}
	return g.Emit(name, SimpleBlockState(name, variants))
}
