package datagen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/annel0/voxel-kit/internal/util"
)

func TestEmitWritesFile(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, "blockstates", "  ")

	name := util.NewResource("flax")
	if err := g.Emit(name, map[string]string{"kind": "test"}); err != nil {
		t.Fatalf("Ошибка генерации: %v", err)
	}

	want := filepath.Join(dir, "data", "voxelkit", "blockstates", "flax.json")
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("Файл не записан по ожидаемому пути: %v", err)
	}

	var parsed map[string]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Записан некорректный JSON: %v", err)
	}
	if parsed["kind"] != "test" {
		t.Errorf("Содержимое потеряно: %+v", parsed)
	}
	if g.Count() != 1 {
		t.Errorf("Count = %d, ожидался 1", g.Count())
	}
}

func TestEmitDuplicateID(t *testing.T) {
	g := NewGenerator(t.TempDir(), "recipes", "")
	name := util.NewResource("rope")

	if err := g.Emit(name, struct{}{}); err != nil {
		t.Fatalf("Первая генерация не должна падать: %v", err)
	}
	if err := g.Emit(name, struct{}{}); err == nil {
		t.Error("Дубликат идентификатора должен дать ошибку")
	}

	if err := g.Emit(util.ResourceName{}, struct{}{}); err == nil {
		t.Error("Пустое имя должно дать ошибку")
	}
}

func TestEmitNestedPath(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, "loot_tables", "")

	name, err := util.ParseResource("voxelkit:blocks/flax_crop")
	if err != nil {
		t.Fatalf("Ошибка разбора имени: %v", err)
	}
	if err := g.Emit(name, struct{}{}); err != nil {
		t.Fatalf("Ошибка генерации вложенного пути: %v", err)
	}

	want := filepath.Join(dir, "data", "voxelkit", "loot_tables", "blocks", "flax_crop.json")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("Файл вложенного пути не найден: %v", err)
	}
}

func TestBlockStateVariants(t *testing.T) {
	name := util.NewResource("fabric")
	state := SimpleBlockState(name, 3)

	models := state.Variants[""]
	if len(models) != 3 {
		t.Fatalf("Вариантов %d, ожидалось 3", len(models))
	}
	if models[0].Model != "voxelkit:block/fabric_1" {
		t.Errorf("Первый вариант %q, ожидался voxelkit:block/fabric_1", models[0].Model)
	}
	if models[2].Model != "voxelkit:block/fabric_3" {
		t.Errorf("Третий вариант %q, ожидался voxelkit:block/fabric_3", models[2].Model)
	}

	g := NewBlockStateGenerator(t.TempDir(), "")
	if err := g.EmitBlock(name, 0); err == nil {
		t.Error("Нулевое число вариантов должно дать ошибку")
	}
}

func TestItemModels(t *testing.T) {
	name := util.NewResource("rope")

	flat := GeneratedItemModel(name)
	if flat.Parent != "item/generated" || flat.Textures["layer0"] != "voxelkit:item/rope" {
		t.Errorf("Неверная плоская модель: %+v", flat)
	}

	parented := BlockParentedModel(name)
	if parented.Parent != "voxelkit:block/rope" {
		t.Errorf("Неверная модель предмета-блока: %+v", parented)
	}
}

func TestLootAndRecipe(t *testing.T) {
	dir := t.TempDir()

	loot := NewLootGenerator(dir, "")
	block := util.NewResource("flax_crop")
	drop := util.NewResource("flax_seeds")
	if err := loot.EmitBlockDrop(block, drop); err != nil {
		t.Fatalf("Ошибка генерации дропа: %v", err)
	}

	table := SingleItemLoot(drop)
	if table.Pools[0].Entries[0].Name != "voxelkit:flax_seeds" {
		t.Errorf("Неверная таблица дропа: %+v", table)
	}

	recipes := NewRecipeGenerator(dir, "")
	rope := util.NewResource("rope")
	fiber := util.NewResource("flax_fiber")

	err := recipes.EmitShapeless(rope, 1, []util.ResourceName{fiber, fiber})
	if err != nil {
		t.Fatalf("Ошибка генерации рецепта: %v", err)
	}
	if err := recipes.EmitShapeless(rope, 1, nil); err == nil {
		t.Error("Рецепт без ингредиентов должен дать ошибку")
	}

	if got := HasItemCriterion(fiber); got != "has_flax_fiber" {
		t.Errorf("Критерий %q, ожидался has_flax_fiber", got)
	}
}
