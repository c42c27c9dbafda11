package reserva

import "github.com/ifteca/reserva-salas/internal/httperr"

// ===============================
// Ocupação
// ===============================

// Overlaps aplica a semântica semiaberta de interseção:
// slot.Inicio < reserva.Fim && slot.Fim > reserva.Inicio.
// Horários "HH:MM" com zero à esquerda comparam corretamente como
// strings, mas os valores são convertidos para minutos para não
// depender disso.
func Overlaps(s Slot, r Reserva) bool {
	sIni, err1 := parseHM(s.Inicio)
	sFim, err2 := parseHM(s.Fim)
	rIni, err3 := parseHM(r.HorarioInicio)
	rFim, err4 := parseHM(r.HorarioFim)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	return sIni < rFim && sFim > rIni
}

// Occupied marca como ocupado todo slot gerado que intersecta
// qualquer reserva existente, não apenas correspondência exata, para
// que reservas de duração fora do padrão também bloqueiem os slots
// que atravessam.
func Occupied(slots []Slot, reservas []Reserva) []Slot {
	var out []Slot
	for _, s := range slots {
		if CountOverlapping(reservas, s) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Available preserva a ordem de geração: available = slots - occupied.
func Available(slots []Slot, reservas []Reserva) []Slot {
	var out []Slot
	for _, s := range slots {
		if CountOverlapping(reservas, s) == 0 {
			out = append(out, s)
		}
	}
	return out
}

// CountOverlapping conta quantas reservas intersectam o slot.
func CountOverlapping(reservas []Reserva, s Slot) int {
	n := 0
	for _, r := range reservas {
		if Overlaps(s, r) {
			n++
		}
	}
	return n
}

// CanReserve é a guarda de conflito executada dentro da transação
// otimista do armazenamento remoto, sobre o estado corrente do
// subárvore sala+data. Rejeita quando o usuário já possui reserva que
// intersecta o slot, ou quando a lotação do slot foi atingida.
func CanReserve(existentes []Reserva, nova Reserva, vagasMaximas int) error {
	slot := nova.Slot()

	ocupadas := 0
	for _, r := range existentes {
		if !Overlaps(slot, r) {
			continue
		}
		if r.IDUsuario == nova.IDUsuario {
			return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
		ocupadas++
	}

	if ocupadas >= vagasMaximas {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	return nil
}
