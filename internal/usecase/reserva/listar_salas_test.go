package reserva

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/httperr"
)

func TestListarSalas(t *testing.T) {
	ctx := context.Background()

	t.Run("filtra por turno e ordena por nome", func(t *testing.T) {
		f := setupFixture(t)
		f.novaSala(t, "noturna", 2, 60, "Noite")
		f.novaSala(t, "b-sala", 2, 60, "Manhã", "Tarde")
		f.novaSala(t, "a-sala", 2, 60, "Manhã")

		uc := NewListarSalas(f.store, f.cache)

		out, err := uc.Execute(ctx, domain.TurnoManha, "2026-08-31")
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "Sala a-sala", out[0].Nome)
		assert.Equal(t, "Sala b-sala", out[1].Nome)
	})

	t.Run("ocupação conta só reservas que começam dentro do turno", func(t *testing.T) {
		f := setupFixture(t)
		f.novaSala(t, "lab-1", 3, 60)

		seed := []domain.Reserva{
			{ID: "r1", IDSala: "lab-1", Data: "2026-08-31", HorarioInicio: "09:00", HorarioFim: "10:00", IDUsuario: "u1"},
			{ID: "r2", IDSala: "lab-1", Data: "2026-08-31", HorarioInicio: "11:00", HorarioFim: "12:00", IDUsuario: "u2"},
			{ID: "r3", IDSala: "lab-1", Data: "2026-08-31", HorarioInicio: "14:00", HorarioFim: "15:00", IDUsuario: "u3"},
			{ID: "r4", IDSala: "lab-1", Data: "2026-09-01", HorarioInicio: "09:00", HorarioFim: "10:00", IDUsuario: "u4"},
		}
		require.NoError(t, f.cache.SalvarLista(ctx, seed))

		uc := NewListarSalas(f.store, f.cache)

		manha, err := uc.Execute(ctx, domain.TurnoManha, "2026-08-31")
		require.NoError(t, err)
		require.Len(t, manha, 1)
		assert.Equal(t, 2, manha[0].VagasOcupadas)

		tarde, err := uc.Execute(ctx, domain.TurnoTarde, "2026-08-31")
		require.NoError(t, err)
		require.Len(t, tarde, 1)
		assert.Equal(t, 1, tarde[0].VagasOcupadas)
	})

	t.Run("turno inválido", func(t *testing.T) {
		f := setupFixture(t)

		uc := NewListarSalas(f.store, f.cache)

		_, err := uc.Execute(ctx, domain.Turno(""), "2026-08-31")
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))
	})

	t.Run("remoto fora do ar", func(t *testing.T) {
		f := setupFixture(t)
		f.mr.Close()

		uc := NewListarSalas(f.store, f.cache)

		_, err := uc.Execute(ctx, domain.TurnoManha, "2026-08-31")
		assert.True(t, httperr.IsBusiness(err, httperr.CodeRemoteUnavailable))
	})
}
