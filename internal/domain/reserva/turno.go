package reserva

// ===============================
// Turnos
// ===============================

type Turno string

const (
	TurnoManha Turno = "Manhã"
	TurnoTarde Turno = "Tarde"
	TurnoNoite Turno = "Noite"

	// TurnoIntegral é o fallback quando nenhum turno conhecido é informado.
	TurnoIntegral Turno = "Integral"
)

// Janela devolve o intervalo fixo do turno em minutos desde 00:00,
// semiaberto [inicio, fim). Os limites são constantes do sistema,
// nunca configuráveis por sala.
func (t Turno) Janela() (inicioMin, fimMin int) {
	switch t {
	case TurnoManha:
		return 8 * 60, 12 * 60
	case TurnoTarde:
		return 13 * 60, 17 * 60
	case TurnoNoite:
		return 18 * 60, 22 * 60
	default:
		return 0, 24 * 60
	}
}

func (t Turno) Valido() bool {
	switch t {
	case TurnoManha, TurnoTarde, TurnoNoite, TurnoIntegral:
		return true
	}
	return false
}

// ContemHora informa se uma hora cheia (0-23) cai dentro do turno.
// Usado para contar vagas ocupadas de uma sala a partir do horário
// de início das reservas do dia.
func (t Turno) ContemHora(hora int) bool {
	inicio, fim := t.Janela()
	min := hora * 60
	return min >= inicio && min < fim
}
