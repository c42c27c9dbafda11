package notify

import (
	"context"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
)

// Notifier é o canal lateral disparado após uma mudança de estado
// confirmada. Falhas aqui nunca desfazem a reserva: são registradas
// e descartadas.
type Notifier interface {
	NotificarConfirmacao(ctx context.Context, r domain.Reserva, destinatario string) error
	NotificarCancelamento(ctx context.Context, r domain.Reserva, destinatario string) error
}
