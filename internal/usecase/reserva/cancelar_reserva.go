package reserva

import (
	"context"
	"log"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/httperr"
	"github.com/ifteca/reserva-salas/internal/notify"
)

type CancelarReserva struct {
	remote domain.RemoteRepository
	cache  domain.CacheRepository
	notify *notify.Dispatcher
}

func NewCancelarReserva(
	remote domain.RemoteRepository,
	cache domain.CacheRepository,
	notify *notify.Dispatcher,
) *CancelarReserva {
	return &CancelarReserva{
		remote: remote,
		cache:  cache,
		notify: notify,
	}
}

// Execute remove a reserva dos dois índices remotos atomicamente e
// depois do espelho local. A posse é dada pela indexação: um id que
// não está sob a subárvore do usuário é tratado como inexistente.
func (uc *CancelarReserva) Execute(
	ctx context.Context,
	reservaID string,
	usuarioID string,
	usuarioEmail string,
) error {

	minhas, err := uc.remote.ListReservasDoUsuario(ctx, usuarioID)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeRemoteUnavailable)
	}

	var alvo *domain.Reserva
	for i := range minhas {
		if minhas[i].ID == reservaID {
			alvo = &minhas[i]
			break
		}
	}
	if alvo == nil {
		return httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}

	if err := uc.remote.DeleteReserva(ctx, *alvo); err != nil {
		if _, ok := httperr.BusinessCode(err); ok {
			return err
		}
		return httperr.ErrBusiness(httperr.CodeRemoteWriteFailed)
	}

	if err := uc.cache.Deletar(ctx, reservaID); err != nil {
		log.Println("cancelar reserva: espelho local divergente:", err)
	}

	if usuarioEmail != "" {
		uc.notify.Dispatch(notify.Event{
			Tipo:         notify.EventCancelamento,
			Reserva:      *alvo,
			Destinatario: usuarioEmail,
		})
	}

	return nil
}
