package reserva

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/infra/cache"
	"github.com/ifteca/reserva-salas/internal/infra/remote"
	"github.com/ifteca/reserva-salas/internal/models"
	"github.com/ifteca/reserva-salas/internal/notify"
)

// fakeNotifier registra as notificações em memória.
type fakeNotifier struct {
	mu            sync.Mutex
	confirmacoes  []string
	cancelamentos []string
}

func (f *fakeNotifier) NotificarConfirmacao(_ context.Context, r domain.Reserva, dest string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmacoes = append(f.confirmacoes, r.ID+"->"+dest)
	return nil
}

func (f *fakeNotifier) NotificarCancelamento(_ context.Context, r domain.Reserva, dest string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelamentos = append(f.cancelamentos, r.ID+"->"+dest)
	return nil
}

type fixture struct {
	mr         *miniredis.Miniredis
	store      *remote.RedisStore
	cache      *cache.ReservaGormRepository
	notifier   *fakeNotifier
	dispatcher *notify.Dispatcher
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	path := filepath.Join(t.TempDir(), "cache.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.ReservaEntity{}))

	notifier := &fakeNotifier{}

	return &fixture{
		mr:         mr,
		store:      remote.NewRedisStore(rdb),
		cache:      cache.NewReservaGormRepository(db),
		notifier:   notifier,
		dispatcher: notify.NewDispatcher(notifier),
	}
}

func (f *fixture) novaSala(t *testing.T, id string, vagas, duracao int, turnos ...string) domain.Sala {
	t.Helper()

	if len(turnos) == 0 {
		turnos = []string{"Manhã", "Tarde", "Noite"}
	}
	sala := domain.Sala{
		ID:                   id,
		Nome:                 "Sala " + id,
		VagasMaximas:         vagas,
		DuracaoPadraoMinutos: duracao,
		TurnosDisponiveis:    turnos,
	}
	require.NoError(t, f.store.PutSala(context.Background(), sala))
	return sala
}
