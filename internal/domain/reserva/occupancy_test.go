package reserva

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifteca/reserva-salas/internal/httperr"
)

func reservaEm(usuario, inicio, fim string) Reserva {
	return Reserva{
		ID:            usuario + "-" + inicio,
		IDSala:        "sala-1",
		Data:          "2026-08-31",
		HorarioInicio: inicio,
		HorarioFim:    fim,
		IDUsuario:     usuario,
	}
}

func TestOccupiedAndAvailable(t *testing.T) {
	slots := GenerateSlots(TurnoManha, 60)

	t.Run("reserva em um slot libera os outros três", func(t *testing.T) {
		reservas := []Reserva{reservaEm("u1", "09:00", "10:00")}

		livres := Available(slots, reservas)

		got := make([]string, 0, len(livres))
		for _, s := range livres {
			got = append(got, s.String())
		}
		assert.Equal(t, []string{
			"08:00 - 09:00",
			"10:00 - 11:00",
			"11:00 - 12:00",
		}, got)
	})

	t.Run("reserva de duração fora do padrão bloqueia slots atravessados", func(t *testing.T) {
		// 09:30-10:30 intersecta os slots 09:00-10:00 e 10:00-11:00
		reservas := []Reserva{reservaEm("u1", "09:30", "10:30")}

		ocupados := Occupied(slots, reservas)
		require.Len(t, ocupados, 2)
		assert.Equal(t, "09:00 - 10:00", ocupados[0].String())
		assert.Equal(t, "10:00 - 11:00", ocupados[1].String())
	})

	t.Run("limites semiabertos não se tocam", func(t *testing.T) {
		// termina exatamente onde o slot começa
		reservas := []Reserva{reservaEm("u1", "08:00", "09:00")}

		ocupados := Occupied(slots, reservas)
		require.Len(t, ocupados, 1)
		assert.Equal(t, "08:00 - 09:00", ocupados[0].String())
	})

	t.Run("partição: occupied e available são disjuntos e cobrem a grade", func(t *testing.T) {
		reservas := []Reserva{
			reservaEm("u1", "08:00", "09:00"),
			reservaEm("u2", "10:15", "10:45"),
		}

		ocupados := Occupied(slots, reservas)
		livres := Available(slots, reservas)

		assert.Equal(t, len(slots), len(ocupados)+len(livres))
		for _, o := range ocupados {
			assert.False(t, ContainsSlot(livres, o))
		}
	})

	t.Run("invariante sob reordenação da lista de reservas", func(t *testing.T) {
		reservas := []Reserva{
			reservaEm("u1", "08:00", "09:00"),
			reservaEm("u2", "09:00", "10:00"),
			reservaEm("u3", "11:00", "12:00"),
		}

		esperado := Available(slots, reservas)

		for i := 0; i < 10; i++ {
			embaralhadas := make([]Reserva, len(reservas))
			copy(embaralhadas, reservas)
			rand.Shuffle(len(embaralhadas), func(a, b int) {
				embaralhadas[a], embaralhadas[b] = embaralhadas[b], embaralhadas[a]
			})

			assert.Equal(t, esperado, Available(slots, embaralhadas))
		}
	})
}

func TestCanReserve(t *testing.T) {
	nova := reservaEm("u-novo", "09:00", "10:00")

	t.Run("slot livre com vaga", func(t *testing.T) {
		assert.NoError(t, CanReserve(nil, nova, 1))
	})

	t.Run("lotação atingida", func(t *testing.T) {
		existentes := []Reserva{reservaEm("u1", "09:00", "10:00")}

		err := CanReserve(existentes, nova, 1)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))
	})

	t.Run("capacidade N admite N ocupantes", func(t *testing.T) {
		existentes := []Reserva{reservaEm("u1", "09:00", "10:00")}

		assert.NoError(t, CanReserve(existentes, nova, 2))

		existentes = append(existentes, reservaEm("u2", "09:00", "10:00"))
		err := CanReserve(existentes, nova, 2)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))
	})

	t.Run("usuário com reserva sobreposta não reserva de novo", func(t *testing.T) {
		existentes := []Reserva{reservaEm("u-novo", "09:30", "10:30")}

		err := CanReserve(existentes, nova, 10)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))
	})

	t.Run("reserva em horário disjunto não interfere", func(t *testing.T) {
		existentes := []Reserva{reservaEm("u1", "10:00", "11:00")}

		assert.NoError(t, CanReserve(existentes, nova, 1))
	})

	t.Run("capacidade zero nunca reserva", func(t *testing.T) {
		err := CanReserve(nil, nova, 0)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))
	})
}
