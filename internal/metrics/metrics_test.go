package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
)

func TestRecorderCountsEvents(t *testing.T) {
	r := NewRecorder("test-session")
	r.SetEconomy(500, 20)

	r.OnEvent(event.Event{Type: event.TowerPlaced, Data: event.TowerData{Kind: defs.TowerBasic}})
	r.OnEvent(event.Event{Type: event.TowerFired, Data: event.FireData{Kind: defs.TowerBasic}})
	r.OnEvent(event.Event{Type: event.TowerFired, Data: event.FireData{Kind: defs.TowerBasic}})
	r.OnEvent(event.Event{Type: event.TowerFired, Data: event.FireData{Kind: defs.TowerSniper}})
	r.OnEvent(event.Event{Type: event.ProjectileHit, Data: event.HitData{}})
	r.OnEvent(event.Event{Type: event.ProjectileMissed, Data: event.HitData{}})
	r.OnEvent(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{}})
	r.OnEvent(event.Event{Type: event.EnemyEscaped, Data: event.EnemyData{}})
	r.OnEvent(event.Event{Type: event.LifeLost, Data: event.LivesData{Lives: 19}})
	r.OnEvent(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: 3}})
	r.OnEvent(event.Event{Type: event.MoneyChanged, Data: event.MoneyData{Delta: -100, Balance: 400, Reason: event.TowerPlaced}})
	r.OnEvent(event.Event{Type: event.MoneyChanged, Data: event.MoneyData{Delta: 5, Balance: 405, Reason: event.EnemyKilled}})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.towersFired.WithLabelValues("basic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.towersFired.WithLabelValues("sniper")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.towersPlaced.WithLabelValues("basic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.projectiles.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.projectiles.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.enemiesKilled))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.enemiesEscaped))
	assert.Equal(t, 19.0, testutil.ToFloat64(r.lives))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.wave))
	assert.Equal(t, 405.0, testutil.ToFloat64(r.money))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.moneyEarned.WithLabelValues("EnemyKilled")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.moneyEarned)) // траты не считаются заработком
}

func TestHandlerServesMetrics(t *testing.T) {
	r := NewRecorder("abc")
	r.SetEconomy(500, 20)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `td_money{session="abc"} 500`)
	assert.Contains(t, rec.Body.String(), `td_lives{session="abc"} 20`)
}
