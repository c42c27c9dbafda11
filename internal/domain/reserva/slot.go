package reserva

import (
	"fmt"
	"strings"
)

// ===============================
// Slots
// ===============================

// Slot é uma janela de tempo semiaberta [Inicio, Fim) dentro de um
// turno, identificada pelo par de horários no formato "15:04".
type Slot struct {
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
}

func (s Slot) String() string {
	return s.Inicio + " - " + s.Fim
}

// ParseSlot aceita o formato de exibição "HH:MM - HH:MM".
func ParseSlot(raw string) (Slot, error) {
	parts := strings.Split(raw, " - ")
	if len(parts) != 2 {
		return Slot{}, fmt.Errorf("slot inválido: %q", raw)
	}

	inicio, err := parseHM(parts[0])
	if err != nil {
		return Slot{}, fmt.Errorf("slot inválido: %q", raw)
	}
	fim, err := parseHM(parts[1])
	if err != nil || fim <= inicio {
		return Slot{}, fmt.Errorf("slot inválido: %q", raw)
	}

	return Slot{Inicio: formatHM(inicio), Fim: formatHM(fim)}, nil
}

// GenerateSlots gera a sequência ordenada de slots reserváveis de um
// turno, ladrilhando a janela do turno da esquerda para a direita em
// incrementos fixos. O último ladrilho parcial, que ultrapassaria o
// fim do turno, é descartado.
func GenerateSlots(turno Turno, duracaoMinutos int) []Slot {
	if duracaoMinutos <= 0 {
		return nil
	}

	inicio, fim := turno.Janela()

	var slots []Slot
	for cur := inicio; cur+duracaoMinutos <= fim; cur += duracaoMinutos {
		slots = append(slots, Slot{
			Inicio: formatHM(cur),
			Fim:    formatHM(cur + duracaoMinutos),
		})
	}

	return slots
}

// ContainsSlot verifica se o slot pertence à grade gerada.
func ContainsSlot(slots []Slot, s Slot) bool {
	for _, it := range slots {
		if it == s {
			return true
		}
	}
	return false
}

// ---------------------------------
// horário "HH:MM" <-> minutos
// ---------------------------------

func parseHM(hm string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(hm), "%d:%d", &h, &m); err != nil {
		return 0, err
	}
	if h < 0 || h > 24 || m < 0 || m > 59 {
		return 0, fmt.Errorf("horário fora do intervalo: %q", hm)
	}
	return h*60 + m, nil
}

func formatHM(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
