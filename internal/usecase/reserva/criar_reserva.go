package reserva

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/httperr"
	"github.com/ifteca/reserva-salas/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CriarReservaInput struct {
	SalaID  string
	Turno   domain.Turno
	Data    string
	Horario string // "HH:MM - HH:MM"

	UsuarioID    string
	UsuarioEmail string
}

// ======================================================
// USE CASE
// ======================================================

type CriarReserva struct {
	remote domain.RemoteRepository
	cache  domain.CacheRepository
	notify *notify.Dispatcher
}

func NewCriarReserva(
	remote domain.RemoteRepository,
	cache domain.CacheRepository,
	notify *notify.Dispatcher,
) *CriarReserva {
	return &CriarReserva{
		remote: remote,
		cache:  cache,
		notify: notify,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute aloca um slot para o usuário. A pré-checagem no espelho
// local é apenas consultiva, para cortar cedo pedidos já condenados;
// a única guarda autoritativa é a transação do armazenamento remoto.
// Ou a reserva aparece sob os dois índices remotos, ou a chamada
// falha sem estado parcial.
func (uc *CriarReserva) Execute(
	ctx context.Context,
	in CriarReservaInput,
) (*domain.Reserva, error) {

	// --------------------------------------------------
	// 1. Validação de entrada
	// --------------------------------------------------
	if strings.TrimSpace(in.UsuarioID) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	if !in.Turno.Valido() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	data, err := domain.ParseData(in.Data)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	slot, err := domain.ParseSlot(in.Horario)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	// --------------------------------------------------
	// 2. Sala e grade do turno
	// --------------------------------------------------
	sala, err := uc.remote.GetSala(ctx, in.SalaID)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeRoomNotFound) {
			return nil, err
		}
		return nil, httperr.ErrBusiness(httperr.CodeRemoteUnavailable)
	}

	grade := domain.GenerateSlots(in.Turno, sala.DuracaoPadraoMinutos)
	if !domain.ContainsSlot(grade, slot) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	// --------------------------------------------------
	// 3. Pré-checagem local (consultiva)
	// --------------------------------------------------
	if locais, err := uc.cache.ListarPorSalaEData(ctx, in.SalaID, data); err == nil {
		if domain.CountOverlapping(locais, slot) >= sala.VagasMaximas {
			return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
	}

	// --------------------------------------------------
	// 4. Commit remoto (autoritativo)
	// --------------------------------------------------
	nova := domain.Reserva{
		ID:            uuid.NewString(),
		IDSala:        sala.ID,
		NomeSala:      sala.Nome,
		Data:          data,
		HorarioInicio: slot.Inicio,
		HorarioFim:    slot.Fim,
		IDUsuario:     in.UsuarioID,
	}

	if err := uc.remote.CreateReserva(ctx, nova, sala.VagasMaximas); err != nil {
		if _, ok := httperr.BusinessCode(err); ok {
			return nil, err
		}
		return nil, httperr.ErrBusiness(httperr.CodeRemoteWriteFailed)
	}

	// --------------------------------------------------
	// 5. Espelho local
	// --------------------------------------------------
	// a reserva remota já valeu; divergência local é reparada pela
	// próxima sincronização completa
	if err := uc.cache.Salvar(ctx, nova); err != nil {
		log.Println("criar reserva: espelho local divergente:", err)
	}

	// --------------------------------------------------
	// 6. Notificação (melhor esforço)
	// --------------------------------------------------
	if in.UsuarioEmail != "" {
		uc.notify.Dispatch(notify.Event{
			Tipo:         notify.EventConfirmacao,
			Reserva:      nova,
			Destinatario: in.UsuarioEmail,
		})
	}

	return &nova, nil
}
