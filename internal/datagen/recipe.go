package datagen

import (
	"fmt"

	"github.com/annel0/voxel-kit/internal/util"
)

// Префикс имени критерия получения рецепта
const criterionPrefix = "has_"

// Ingredient — ингредиент рецепта.
type Ingredient struct {
	Item string `json:"item"`
}

// RecipeResult — результат рецепта.
type RecipeResult struct {
	Item  string `json:"item"`
	Count int    `json:"count,omitempty"`
}

// RecipeFile описывает рецепт крафта (формованный или бесформенный).
type RecipeFile struct {
	Type        string                `json:"type"`
	Pattern     []string              `json:"pattern,omitempty"`
	Key         map[string]Ingredient `json:"key,omitempty"`
	Ingredients []Ingredient          `json:"ingredients,omitempty"`
	Result      RecipeResult          `json:"result"`
	Criteria    map[string]string     `json:"criteria,omitempty"`
}

// HasItemCriterion возвращает имя критерия обладания предметом
// вида "has_<path>".
func HasItemCriterion(item util.ResourceName) string {
	return criterionPrefix + item.Path
}

// RecipeGenerator пишет рецепты крафта.
type RecipeGenerator struct {
	*Generator
}

// NewRecipeGenerator создаёт генератор каталога "recipes".
func NewRecipeGenerator(outputDir, indent string) *RecipeGenerator {
	return &RecipeGenerator{NewGenerator(outputDir, "recipes", indent)}
}

// EmitShaped пишет формованный рецепт с шаблоном и ключом символов.
func (g *RecipeGenerator) EmitShaped(result util.ResourceName, count int, pattern []string, key map[string]util.ResourceName) error {
	if err := util.CheckPositive(count, "количество результата"); err != nil {
		return err
	}
	if len(pattern) == 0 {
		return fmt.Errorf("datagen: рецепт %s без шаблона", result)
	}

	ingredients := make(map[string]Ingredient, len(key))
	criteria := make(map[string]string, len(key))
	for symbol, item := range key {
		ingredients[symbol] = Ingredient{Item: item.String()}
		criteria[HasItemCriterion(item)] = item.String()
	}

	return g.Emit(result, RecipeFile{
		Type:     "crafting_shaped",
		Pattern:  pattern,
		Key:      ingredients,
		Result:   RecipeResult{Item: result.String(), Count: count},
		Criteria: criteria,
	})
}

// EmitShapeless пишет бесформенный рецепт из перечня ингредиентов.
func (g *RecipeGenerator) EmitShapeless(result util.ResourceName, count int, ingredients []util.ResourceName) error {
	if err := util.CheckPositive(count, "количество результата"); err != nil {
		return err
	}
	if len(ingredients) == 0 {
		return fmt.Errorf("datagen: рецепт %s без ингредиентов", result)
	}

	list := make([]Ingredient, len(ingredients))
	criteria := make(map[string]string, len(ingredients))
	for i, item := range ingredients {
		list[i] = Ingredient{Item: item.String()}
		criteria[HasItemCriterion(item)] = item.String()
	}

	return g.Emit(result, RecipeFile{
		Type:        "crafting_shapeless",
		Ingredients: list,
		Result:      RecipeResult{Item: result.String(), Count: count},
		Criteria:    criteria,
	})
}
