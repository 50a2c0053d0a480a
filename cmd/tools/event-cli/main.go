package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/annel0/voxel-kit/internal/config"
	"github.com/annel0/voxel-kit/internal/eventbus"
	"github.com/annel0/voxel-kit/internal/logging"
)

const timeFormat = "2006-01-02T15:04:05Z"

func main() {
	var (
		configPath = flag.String("config", "", "Путь к YAML конфигурации")
		natsURL    = flag.String("nats", "", "Адрес NATS (переопределяет конфигурацию)")
		command    = flag.String("cmd", "tail", "Команда: tail, publish, stats")
		eventTypes = flag.String("types", "", "Фильтр типов событий (через запятую)")
		sources    = flag.String("sources", "", "Фильтр источников (через запятую)")
		eventType  = flag.String("type", "BlockChangeEvent", "Тип публикуемого события (для publish)")
		payload    = flag.String("payload", "{}", "JSON полезная нагрузка (для publish)")
		priority   = flag.Int("priority", 3, "Приоритет публикуемого события (0-9)")
		duration   = flag.String("for", "", "Сколько слушать (например 30s); пусто — до Ctrl+C")
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
	var busCfg config.EventBusConfig
	if cfg != nil {
		busCfg = cfg.EventBus
	}

	url := *natsURL
	if url == "" {
		url = busCfg.URL
	}
	if url == "" {
		url = "nats://127.0.0.1:4222"
	}
	retention := 24 * time.Hour
	if busCfg.Retention > 0 {
		retention = time.Duration(busCfg.Retention) * time.Hour
	}

	bus, err := eventbus.NewJetStreamBus(url, busCfg.Stream, retention)
	if err != nil {
		log.Fatalf("Ошибка подключения к NATS: %v", err)
	}
	defer bus.Close()

	switch *command {
	case "tail":
		err = tailEvents(bus, eventbus.Filter{
			Types:   parseStringList(*eventTypes),
			Sources: parseStringList(*sources),
		}, *duration)

	case "publish":
		err = publishEvent(bus, *eventType, *payload, *priority)

	case "stats":
		err = showStats(bus)

	default:
		fmt.Printf("Неизвестная команда: %s\n", *command)
		fmt.Println("Доступные команды: tail, publish, stats")
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("Ошибка выполнения команды %s: %v", *command, err)
	}
}

// tailEvents выводит события шины в реальном времени
func tailEvents(bus eventbus.EventBus, f eventbus.Filter, duration string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if duration != "" {
		d, err := time.ParseDuration(duration)
		if err != nil {
			return fmt.Errorf("некорректная длительность %q: %w", duration, err)
		}
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	count := 0
	sub, err := bus.Subscribe(ctx, f, func(_ context.Context, ev *eventbus.Envelope) {
		printEvent(ev)
		count++
	})
	if err != nil {
		return fmt.Errorf("подписка: %w", err)
	}
	defer sub.Unsubscribe()

	fmt.Printf("Слушаем события (типы: %v, источники: %v), Ctrl+C для выхода\n",
		f.Types, f.Sources)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}

	fmt.Printf("\nВсего событий: %d\n", count)
	return nil
}

// publishEvent публикует одиночное тестовое событие
func publishEvent(bus eventbus.EventBus, eventType, payload string, priority int) error {
	ev := &eventbus.Envelope{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    "event-cli",
		EventType: eventType,
		Version:   1,
		Priority:  priority,
		Payload:   []byte(payload),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := bus.Publish(ctx, ev); err != nil {
		return fmt.Errorf("публикация: %w", err)
	}
	fmt.Printf("Опубликовано событие %s типа %s\n", ev.ID, ev.EventType)
	return nil
}

// showStats выводит счётчики шины
func showStats(bus eventbus.EventBus) error {
	stats := bus.Metrics()
	fmt.Println("Статистика шины событий:")
	fmt.Printf("  Опубликовано: %d\n", stats.Published)
	fmt.Printf("  Потреблено:   %d\n", stats.Consumed)
	fmt.Printf("  Отброшено:    %d\n", stats.Dropped)
	fmt.Printf("  В очереди:    %d\n", stats.InFlight)
	return nil
}

// printEvent выводит событие в читаемом формате
func printEvent(ev *eventbus.Envelope) {
	fmt.Printf("[%s] %s [%s] prio=%d %s\n",
		ev.Timestamp.Format(timeFormat),
		ev.Source,
		ev.EventType,
		ev.Priority,
		ev.ID)
	if len(ev.Payload) > 0 {
		fmt.Printf("  %s\n", string(ev.Payload))
	}
}

// parseStringList парсит строку с разделителями-запятыми
func parseStringList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
