package reserva

import (
	"context"
	"log"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/httperr"
)

type ListarHorarios struct {
	remote domain.RemoteRepository
	cache  domain.CacheRepository
}

func NewListarHorarios(
	remote domain.RemoteRepository,
	cache domain.CacheRepository,
) *ListarHorarios {
	return &ListarHorarios{
		remote: remote,
		cache:  cache,
	}
}

// HorariosDisponiveis é a grade livre de um turno. Degradado indica
// que o remoto estava inacessível e a ocupação veio do espelho local,
// possivelmente defasado.
type HorariosDisponiveis struct {
	Slots     []domain.Slot
	Degradado bool
}

func (uc *ListarHorarios) Execute(
	ctx context.Context,
	salaID string,
	turno domain.Turno,
	data string,
) (*HorariosDisponiveis, error) {

	if !turno.Valido() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	dataCanonica, err := domain.ParseData(data)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	sala, err := uc.remote.GetSala(ctx, salaID)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeRoomNotFound) {
			return nil, err
		}
		return nil, httperr.ErrBusiness(httperr.CodeRemoteUnavailable)
	}

	degradado := false

	reservas, err := uc.remote.ListReservasDaSala(ctx, salaID, dataCanonica)
	if err != nil {
		// modo degradado: último estado reconciliado do espelho local
		log.Println("listar horários: remoto indisponível, usando espelho local:", err)

		reservas, err = uc.cache.ListarPorSalaEData(ctx, salaID, dataCanonica)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeRemoteUnavailable)
		}
		degradado = true
	}

	slots := domain.GenerateSlots(turno, sala.DuracaoPadraoMinutos)

	return &HorariosDisponiveis{
		Slots:     domain.Available(slots, reservas),
		Degradado: degradado,
	}, nil
}
