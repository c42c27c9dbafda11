package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/models"
)

func setupTestRepo(t *testing.T) *ReservaGormRepository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cache.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.ReservaEntity{}))

	return NewReservaGormRepository(db)
}

func reservaLocal(usuario, salaID, data, inicio, fim string) domain.Reserva {
	return domain.Reserva{
		ID:            uuid.NewString(),
		IDSala:        salaID,
		NomeSala:      "Sala " + salaID,
		Data:          data,
		HorarioInicio: inicio,
		HorarioFim:    fim,
		IDUsuario:     usuario,
	}
}

func TestSalvarEListar(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	r := reservaLocal("u1", "lab-1", "2026-08-31", "09:00", "10:00")
	require.NoError(t, repo.Salvar(ctx, r))

	t.Run("por usuário", func(t *testing.T) {
		got, err := repo.ListarPorUsuario(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, r, got[0])
	})

	t.Run("por sala e data", func(t *testing.T) {
		got, err := repo.ListarPorSalaEData(ctx, "lab-1", "2026-08-31")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("por data", func(t *testing.T) {
		got, err := repo.ListarPorData(ctx, "2026-08-31")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("salvar de novo substitui, não duplica", func(t *testing.T) {
		alterada := r
		alterada.NomeSala = "Sala renomeada"
		require.NoError(t, repo.Salvar(ctx, alterada))

		got, err := repo.ListarPorUsuario(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Sala renomeada", got[0].NomeSala)
	})
}

func TestListarOrdenacao(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	// inseridas fora de ordem
	r1 := reservaLocal("u1", "lab-1", "2026-09-01", "08:00", "09:00")
	r2 := reservaLocal("u1", "lab-1", "2026-08-31", "10:00", "11:00")
	r3 := reservaLocal("u1", "lab-2", "2026-08-31", "08:00", "09:00")
	require.NoError(t, repo.SalvarLista(ctx, []domain.Reserva{r1, r2, r3}))

	got, err := repo.ListarPorUsuario(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, r3.ID, got[0].ID)
	assert.Equal(t, r2.ID, got[1].ID)
	assert.Equal(t, r1.ID, got[2].ID)
}

func TestDeletar(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	r := reservaLocal("u1", "lab-1", "2026-08-31", "09:00", "10:00")
	require.NoError(t, repo.Salvar(ctx, r))
	require.NoError(t, repo.Deletar(ctx, r.ID))

	got, err := repo.ListarPorUsuario(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSubstituirDoUsuario(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	antiga := reservaLocal("u1", "lab-1", "2026-08-31", "09:00", "10:00")
	deOutro := reservaLocal("u2", "lab-1", "2026-08-31", "10:00", "11:00")
	require.NoError(t, repo.SalvarLista(ctx, []domain.Reserva{antiga, deOutro}))

	novas := []domain.Reserva{
		reservaLocal("u1", "lab-2", "2026-09-01", "13:00", "14:00"),
		reservaLocal("u1", "lab-2", "2026-09-01", "14:00", "15:00"),
	}
	require.NoError(t, repo.SubstituirDoUsuario(ctx, "u1", novas))

	t.Run("espelho do usuário é o conjunto novo", func(t *testing.T) {
		got, err := repo.ListarPorUsuario(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, novas[0].ID, got[0].ID)
		assert.Equal(t, novas[1].ID, got[1].ID)
	})

	t.Run("linhas de outros usuários não são tocadas", func(t *testing.T) {
		got, err := repo.ListarPorUsuario(ctx, "u2")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, deOutro.ID, got[0].ID)
	})

	t.Run("conjunto vazio limpa o espelho", func(t *testing.T) {
		require.NoError(t, repo.SubstituirDoUsuario(ctx, "u1", nil))

		got, err := repo.ListarPorUsuario(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestDeletarReservasDoUsuario(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SalvarLista(ctx, []domain.Reserva{
		reservaLocal("u1", "lab-1", "2026-08-31", "09:00", "10:00"),
		reservaLocal("u1", "lab-1", "2026-08-31", "10:00", "11:00"),
		reservaLocal("u2", "lab-1", "2026-08-31", "11:00", "12:00"),
	}))

	require.NoError(t, repo.DeletarReservasDoUsuario(ctx, "u1"))

	deU1, err := repo.ListarPorUsuario(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, deU1)

	deU2, err := repo.ListarPorUsuario(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, deU2, 1)
}
