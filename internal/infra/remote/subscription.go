package remote

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
)

// userSubscription entrega snapshots completos da subárvore "por
// usuário". A assinatura pub/sub é aberta antes da primeira leitura,
// então mutações entre a leitura inicial e o primeiro evento não se
// perdem: entrega é pelo-menos-uma-vez por mudança.
type userSubscription struct {
	snapshots chan []domain.Reserva
	errs      chan error
	cancel    context.CancelFunc
	once      sync.Once
}

func (s *userSubscription) Snapshots() <-chan []domain.Reserva {
	return s.snapshots
}

func (s *userSubscription) Errs() <-chan error {
	return s.errs
}

// Close encerra a assinatura. Snapshots já em trânsito são
// descartados, nunca entregues após o fechamento.
func (s *userSubscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}

func (s *RedisStore) WatchReservasDoUsuario(
	ctx context.Context,
	usuarioID string,
) (domain.Subscription, error) {

	pubsub := s.rdb.Subscribe(ctx, ChannelUsuario(usuarioID))

	// confirma a inscrição antes do snapshot inicial
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("remote: subscribe %s: %w", usuarioID, err)
	}

	subCtx, cancel := context.WithCancel(ctx)

	sub := &userSubscription{
		snapshots: make(chan []domain.Reserva, 10),
		errs:      make(chan error, 10),
		cancel:    cancel,
	}

	go func() {
		defer close(sub.snapshots)
		defer close(sub.errs)
		defer pubsub.Close()

		emit := func() {
			reservas, err := s.ListReservasDoUsuario(subCtx, usuarioID)
			if err != nil {
				select {
				case sub.errs <- err:
				case <-subCtx.Done():
				}
				return
			}
			select {
			case sub.snapshots <- reservas:
			case <-subCtx.Done():
			}
		}

		// snapshot inicial, como um listener que dispara na conexão
		emit()

		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				emit()
			}
		}
	}()

	return sub, nil
}
