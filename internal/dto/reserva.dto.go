package dto

import domain "github.com/ifteca/reserva-salas/internal/domain/reserva"

type ReservaDTO struct {
	ID            string `json:"id"`
	SalaID        string `json:"sala_id"`
	NomeSala      string `json:"nome_sala"`
	Data          string `json:"data"`
	HorarioInicio string `json:"horario_inicio"`
	HorarioFim    string `json:"horario_fim"`
}

func FromReserva(r domain.Reserva) ReservaDTO {
	return ReservaDTO{
		ID:            r.ID,
		SalaID:        r.IDSala,
		NomeSala:      r.NomeSala,
		Data:          r.Data,
		HorarioInicio: r.HorarioInicio,
		HorarioFim:    r.HorarioFim,
	}
}
