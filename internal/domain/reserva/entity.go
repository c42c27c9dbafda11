package reserva

import (
	"fmt"
	"strings"
	"time"
)

// ===============================
// Entidades
// ===============================

// Sala é um recurso reservável. Salas são criadas em outro sistema e
// aqui são somente leitura.
type Sala struct {
	ID                   string   `json:"id"`
	Nome                 string   `json:"nome"`
	VagasMaximas         int      `json:"vagasMaximas"`
	VagasOcupadas        int      `json:"vagasOcupadas"`
	DuracaoPadraoMinutos int      `json:"duracaoPadraoMinutos"`
	TurnosDisponiveis    []string `json:"turnosDisponiveis"`
}

// TemTurno informa se a sala aceita reservas no turno.
func (s Sala) TemTurno(t Turno) bool {
	for _, nome := range s.TurnosDisponiveis {
		if nome == string(t) {
			return true
		}
	}
	return false
}

// Reserva vincula um usuário a uma sala em um slot de uma data.
// Reservas nunca são alteradas: cancelar e recriar é o único caminho
// de atualização.
type Reserva struct {
	ID            string `json:"id"`
	IDSala        string `json:"idSala"`
	NomeSala      string `json:"nomeSala"`
	Data          string `json:"data"`
	HorarioInicio string `json:"horarioInicio"`
	HorarioFim    string `json:"horarioFim"`
	IDUsuario     string `json:"idUsuario"`
}

func (r Reserva) Slot() Slot {
	return Slot{Inicio: r.HorarioInicio, Fim: r.HorarioFim}
}

// ===============================
// Datas
// ===============================

// DateLayout é a representação canônica de data em todo o sistema,
// inclusive nas chaves do armazenamento remoto.
const DateLayout = "2006-01-02"

// displayDateLayout é aceito na borda da API e normalizado uma única vez.
const displayDateLayout = "02/01/2006"

// ParseData normaliza uma data para o formato canônico. Aceita
// "2006-01-02" e o formato de exibição "02/01/2006".
func ParseData(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t.Format(DateLayout), nil
	}
	if t, err := time.Parse(displayDateLayout, raw); err == nil {
		return t.Format(DateLayout), nil
	}

	return "", fmt.Errorf("data inválida: %q", raw)
}
