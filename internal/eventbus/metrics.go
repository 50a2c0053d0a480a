package eventbus

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/voxel-kit/internal/logging"
)

// MetricsExporter периодически снимает Stats с шины и публикует их в Prometheus.
type MetricsExporter struct {
	bus    EventBus
	cancel context.CancelFunc
	srv    *http.Server

	published prometheus.Counter
	consumed  prometheus.Counter
	dropped   prometheus.Counter
	inflight  prometheus.Gauge

	last Stats
}

// NewMetricsExporter регистрирует метрики шины в указанном Registerer.
// Если reg == nil, используется prometheus.DefaultRegisterer.
func NewMetricsExporter(bus EventBus, reg prometheus.Registerer) *MetricsExporter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	me := &MetricsExporter{
		bus: bus,
		published: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voxelkit_eventbus_published_total",
			Help: "Всего опубликованных событий",
		}),
		consumed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voxelkit_eventbus_consumed_total",
			Help: "Всего доставленных событий",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voxelkit_eventbus_dropped_total",
			Help: "Всего отброшенных событий (переполнение буфера)",
		}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "voxelkit_eventbus_inflight",
			Help: "Событий в буфере шины",
		}),
	}

	reg.MustRegister(me.published, me.consumed, me.dropped, me.inflight)
	return me
}

// Start запускает фоновый сбор метрик раз в секунду.
func (me *MetricsExporter) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	me.cancel = cancel

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				me.collect()
			}
		}
	}()
}

// collect переносит дельты счётчиков шины в prometheus-счётчики.
func (me *MetricsExporter) collect() {
	s := me.bus.Metrics()

	me.published.Add(float64(s.Published - me.last.Published))
	me.consumed.Add(float64(s.Consumed - me.last.Consumed))
	me.dropped.Add(float64(s.Dropped - me.last.Dropped))
	me.inflight.Set(float64(s.InFlight))

	me.last = s
}

// StartHTTP поднимает /metrics на указанном порту.
func (me *MetricsExporter) StartHTTP(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	me.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		logging.Info("Метрики EventBus доступны на :%d/metrics", port)
		if err := me.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP-сервер метрик: %v", err)
		}
	}()
}

// Stop останавливает сбор метрик и HTTP-сервер.
func (me *MetricsExporter) Stop() {
	if me.cancel != nil {
		me.cancel()
	}
	if me.srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = me.srv.Shutdown(ctx)
	}
}
