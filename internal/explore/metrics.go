package explore

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics публикует состояние заливки в Prometheus: размеры множеств
// читаются лениво при каждом scrape, счётчиков внутри обходчика нет.
type Metrics struct {
	reg      prometheus.Registerer
	explored prometheus.GaugeFunc
	matched  prometheus.GaugeFunc
	pending  prometheus.GaugeFunc
}

// NewMetrics регистрирует гейджи для обходчика под меткой name.
// Если reg == nil, используется prometheus.DefaultRegisterer.
func NewMetrics(me *MatchingExplorer, name string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	labels := prometheus.Labels{"scan": name}

	m := &Metrics{
		reg: reg,
		explored: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "voxelkit_explore_visited",
			Help:        "Посещённых ячеек в текущем обходе",
			ConstLabels: labels,
		}, func() float64 { return float64(me.CountExplored()) }),
		matched: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "voxelkit_explore_matched",
			Help:        "Ячеек в совпавшей области",
			ConstLabels: labels,
		}, func() float64 { return float64(me.CountMatching()) }),
		pending: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "voxelkit_explore_pending",
			Help:        "Ячеек в очереди фронтира",
			ConstLabels: labels,
		}, func() float64 { return float64(me.PendingCount()) }),
	}

	reg.MustRegister(m.explored, m.matched, m.pending)
	return m
}

// Unregister снимает гейджи с регистрации (обход завершён).
func (m *Metrics) Unregister() {
	m.reg.Unregister(m.explored)
	m.reg.Unregister(m.matched)
	m.reg.Unregister(m.pending)
}
