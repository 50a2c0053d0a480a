package datagen

import (
	"github.com/annel0/voxel-kit/internal/util"
)

// LootEntry — одна позиция пула дропа.
type LootEntry struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// LootPool — пул дропа с числом бросков.
type LootPool struct {
	Rolls   int         `json:"rolls"`
	Entries []LootEntry `json:"entries"`
}

// LootTableFile — таблица дропа блока или сущности.
type LootTableFile struct {
	Type  string     `json:"type"`
	Pools []LootPool `json:"pools"`
}

// SingleItemLoot строит простейшую таблицу: блок всегда роняет один
// указанный предмет.
func SingleItemLoot(item util.ResourceName) LootTableFile {
	return LootTableFile{
		Type: "block",
		Pools: []LootPool{{
			Rolls:   1,
			Entries: []LootEntry{{Type: "item", Name: item.String()}},
		}},
	}
}

// LootGenerator пишет таблицы дропа.
type LootGenerator struct {
	*Generator
}

// NewLootGenerator создаёт генератор каталога "loot_tables/blocks".
func NewLootGenerator(outputDir, indent string) *LootGenerator {
	return &LootGenerator{NewGenerator(outputDir, "loot_tables/blocks", indent)}
}

// EmitBlockDrop пишет таблицу "блок роняет сам себя или другой предмет".
func (g *LootGenerator) EmitBlockDrop(block, item util.ResourceName) error {
	return g.Emit(block, SingleItemLoot(item))
}
