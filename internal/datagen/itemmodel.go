package datagen

import (
	"github.com/annel0/voxel-kit/internal/util"
)

const (
	itemModelFolder = "item"
	textureDefault  = "layer0"
	parentGenerated = "item/generated"
)

// ItemModelFile описывает модель предмета.
type ItemModelFile struct {
	Parent   string            `json:"parent"`
	Textures map[string]string `json:"textures,omitempty"`
}

// GeneratedItemModel строит плоскую модель предмета с единственной
// текстурой layer0.
func GeneratedItemModel(name util.ResourceName) ItemModelFile {
	texture := util.ResourceName{
		Namespace: name.Namespace,
		Path:      util.JoinPath(itemModelFolder, name.Path),
	}
	return ItemModelFile{
		Parent:   parentGenerated,
		Textures: map[string]string{textureDefault: texture.String()},
	}
}

// BlockParentedModel строит модель предмета-блока, наследующую
// модель одноимённого блока.
func BlockParentedModel(name util.ResourceName) ItemModelFile {
	parent := util.ResourceName{
		Namespace: name.Namespace,
		Path:      util.JoinPath(blockModelFolder, name.Path),
	}
	return ItemModelFile{Parent: parent.String()}
}

// ItemModelGenerator пишет модели предметов.
type ItemModelGenerator struct {
	*Generator
}

// NewItemModelGenerator создаёт генератор каталога "models/item".
func NewItemModelGenerator(outputDir, indent string) *ItemModelGenerator {
	return &ItemModelGenerator{NewGenerator(outputDir, "models/item", indent)}
}

// EmitItem пишет плоскую модель обычного предмета.
func (g *ItemModelGenerator) EmitItem(name util.ResourceName) error {
	return g.Emit(name, GeneratedItemModel(name))
}

// EmitBlockItem пишет модель предмета, наследующую модель блока.
func (g *ItemModelGenerator) EmitBlockItem(name util.ResourceName) error {
	return g.Emit(name, BlockParentedModel(name))
}
