package main

import (
	"flag"
	"log"

	"github.com/annel0/voxel-kit/internal/config"
	"github.com/annel0/voxel-kit/internal/datagen"
	"github.com/annel0/voxel-kit/internal/logging"
	"github.com/annel0/voxel-kit/internal/util"
)

func main() {
	var (
		configPath = flag.String("config", "", "Путь к YAML конфигурации (или ENV VOXELKIT_CONFIG)")
		outputDir  = flag.String("out", "", "Каталог вывода (переопределяет конфигурацию)")
	)
	flag.Parse()

	if err := logging.Init(); err != nil {
		log.Fatalf("Ошибка инициализации логирования: %v", err)
	}
	defer logging.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	var dataGenCfg config.DataGenConfig
	if cfg != nil {
		dataGenCfg = cfg.DataGen
	}

	out := *outputDir
	if out == "" {
		out = dataGenCfg.GetOutputDir()
	}
	indent := ""
	if dataGenCfg.Indent {
		indent = "  "
	}

	log.Printf("=== Генерация JSON-ресурсов в %s ===", out)

	if err := generateAll(out, indent); err != nil {
		log.Fatalf("Ошибка генерации: %v", err)
	}
}

func generateAll(out, indent string) error {
	blocks := []struct {
		name     util.ResourceName
		variants int
		drop     util.ResourceName
	}{
		{util.NewResource("stone"), 1, util.NewResource("cobblestone")},
		{util.NewResource("grass"), 3, util.NewResource("dirt")},
		{util.NewResource("dirt"), 1, util.NewResource("dirt")},
		{util.NewResource("sand"), 2, util.NewResource("sand")},
		{util.NewResource("flower"), 4, util.NewResource("flower")},
	}

	states := datagen.NewBlockStateGenerator(out, indent)
	models := datagen.NewItemModelGenerator(out, indent)
	loot := datagen.NewLootGenerator(out, indent)

	for _, b := range blocks {
		if err := states.EmitBlock(b.name, b.variants); err != nil {
			return err
		}
		if err := models.EmitBlockItem(b.name); err != nil {
			return err
		}
		if err := loot.EmitBlockDrop(b.name, b.drop); err != nil {
			return err
		}
	}

	// Плоские модели предметов без блока
	for _, item := range []string{"cobblestone", "stick", "coal"} {
		if err := models.EmitItem(util.NewResource(item)); err != nil {
			return err
		}
	}

	recipes := datagen.NewRecipeGenerator(out, indent)
	err := recipes.EmitShaped(util.NewResource("bricks"), 4,
		[]string{"ss", "ss"},
		map[string]util.ResourceName{"s": util.NewResource("stone")})
	if err != nil {
		return err
	}
	err = recipes.EmitShapeless(util.NewResource("dirt_pile"), 1,
		[]util.ResourceName{util.NewResource("dirt"), util.NewResource("dirt")})
	if err != nil {
		return err
	}

	log.Printf("Состояний блоков: %d", states.Count())
	log.Printf("Моделей предметов: %d", models.Count())
	log.Printf("Таблиц дропа: %d", loot.Count())
	log.Printf("Рецептов: %d", recipes.Count())
	return nil
}
