// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-path-defense/internal/event"
)

// Recorder переводит события симуляции в Prometheus-метрики.
// Подписывается на диспетчер как обычный Listener и вызывается из того же
// потока, что и Tick. Реестр свой, чтобы несколько симуляций (и тесты)
// не конфликтовали в глобальном.
type Recorder struct {
	registry *prometheus.Registry

	towersFired    *prometheus.CounterVec
	towersPlaced   *prometheus.CounterVec
	enemiesKilled  prometheus.Counter
	enemiesEscaped prometheus.Counter
	projectiles    *prometheus.CounterVec
	moneyEarned    *prometheus.CounterVec
	money          prometheus.Gauge
	lives          prometheus.Gauge
	wave           prometheus.Gauge
}

// NewRecorder создаёт метрики с постоянной меткой session.
func NewRecorder(sessionID string) *Recorder {
	labels := prometheus.Labels{"session": sessionID}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		towersFired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "td",
			Name:        "towers_fired_total",
			Help:        "Выстрелы башен по типам.",
			ConstLabels: labels,
		}, []string{"kind"}),
		towersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "td",
			Name:        "towers_placed_total",
			Help:        "Построенные башни по типам.",
			ConstLabels: labels,
		}, []string{"kind"}),
		enemiesKilled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "td",
			Name:        "enemies_killed_total",
			Help:        "Враги, убитые башнями.",
			ConstLabels: labels,
		}),
		enemiesEscaped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "td",
			Name:        "enemies_escaped_total",
			Help:        "Враги, дошедшие до конца пути.",
			ConstLabels: labels,
		}),
		projectiles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "td",
			Name:        "projectiles_resolved_total",
			Help:        "Снаряды по исходу: hit или miss.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		moneyEarned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "td",
			Name:        "money_earned_total",
			Help:        "Заработанные деньги по источнику.",
			ConstLabels: labels,
		}, []string{"source"}),
		money: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "td",
			Name:        "money",
			Help:        "Текущий баланс.",
			ConstLabels: labels,
		}),
		lives: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "td",
			Name:        "lives",
			Help:        "Оставшиеся жизни.",
			ConstLabels: labels,
		}),
		wave: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "td",
			Name:        "wave",
			Help:        "Номер текущей или последней волны.",
			ConstLabels: labels,
		}),
	}

	r.registry.MustRegister(
		r.towersFired, r.towersPlaced, r.enemiesKilled, r.enemiesEscaped,
		r.projectiles, r.moneyEarned, r.money, r.lives, r.wave,
	)
	return r
}

// SetEconomy выставляет начальные значения датчиков до первого события.
func (r *Recorder) SetEconomy(money, lives int) {
	r.money.Set(float64(money))
	r.lives.Set(float64(lives))
}

// OnEvent реализует event.Listener.
func (r *Recorder) OnEvent(e event.Event) {
	switch e.Type {
	case event.TowerFired:
		if data, ok := e.Data.(event.FireData); ok {
			r.towersFired.WithLabelValues(string(data.Kind)).Inc()
		}
	case event.TowerPlaced:
		if data, ok := e.Data.(event.TowerData); ok {
			r.towersPlaced.WithLabelValues(string(data.Kind)).Inc()
		}
	case event.EnemyKilled:
		r.enemiesKilled.Inc()
	case event.EnemyEscaped:
		r.enemiesEscaped.Inc()
	case event.ProjectileHit:
		r.projectiles.WithLabelValues("hit").Inc()
	case event.ProjectileMissed:
		r.projectiles.WithLabelValues("miss").Inc()
	case event.MoneyChanged:
		data, ok := e.Data.(event.MoneyData)
		if !ok {
			return
		}
		r.money.Set(float64(data.Balance))
		if data.Delta > 0 {
			r.moneyEarned.WithLabelValues(string(data.Reason)).Add(float64(data.Delta))
		}
	case event.LifeLost:
		if data, ok := e.Data.(event.LivesData); ok {
			r.lives.Set(float64(data.Lives))
		}
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok {
			r.wave.Set(float64(data.Number))
		}
	}
}

// Registry нужен для тестов и для подключения к внешнему реестру.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler отдаёт метрики в формате Prometheus, например на /metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
