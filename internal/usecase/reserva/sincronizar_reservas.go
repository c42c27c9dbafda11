package reserva

import (
	"context"
	"log"
	"sort"
	"sync"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
)

type SincronizarReservas struct {
	remote domain.RemoteRepository
	cache  domain.CacheRepository
}

func NewSincronizarReservas(
	remote domain.RemoteRepository,
	cache domain.CacheRepository,
) *SincronizarReservas {
	return &SincronizarReservas{
		remote: remote,
		cache:  cache,
	}
}

// SyncHandle é a alça de uma sincronização contínua. Snapshots
// republica a lista do usuário a cada reconciliação aplicada, já
// ordenada por data e horário de início.
type SyncHandle struct {
	snapshots chan []domain.Reserva
	cancel    context.CancelFunc
	once      sync.Once
	done      chan struct{}
}

func (h *SyncHandle) Snapshots() <-chan []domain.Reserva {
	return h.snapshots
}

// Close interrompe a sincronização. Snapshots em voo no momento do
// fechamento não são mais aplicados ao espelho local.
func (h *SyncHandle) Close() {
	h.once.Do(h.cancel)
	<-h.done
}

// Execute assina a subárvore "por usuário" e, a cada snapshot
// entregue (o inicial e cada mutação), substitui o espelho local
// inteiro do usuário em uma transação. Uma única goroutine aplica os
// snapshots em ordem de entrega: nunca há duas reconciliações em voo
// para o mesmo usuário por esta alça.
func (uc *SincronizarReservas) Execute(
	ctx context.Context,
	usuarioID string,
) (*SyncHandle, error) {

	sub, err := uc.remote.WatchReservasDoUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	syncCtx, cancel := context.WithCancel(ctx)

	h := &SyncHandle{
		snapshots: make(chan []domain.Reserva, 10),
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		defer close(h.snapshots)
		defer sub.Close()

		for {
			select {
			case <-syncCtx.Done():
				return

			case err, ok := <-sub.Errs():
				if !ok {
					return
				}
				log.Println("sync reservas:", err)

			case rs, ok := <-sub.Snapshots():
				if !ok {
					return
				}

				sort.Slice(rs, func(i, j int) bool {
					if rs[i].Data != rs[j].Data {
						return rs[i].Data < rs[j].Data
					}
					return rs[i].HorarioInicio < rs[j].HorarioInicio
				})

				// cancelamento entre a entrega e a aplicação: descarta
				if syncCtx.Err() != nil {
					return
				}

				if err := uc.cache.SubstituirDoUsuario(syncCtx, usuarioID, rs); err != nil {
					log.Println("sync reservas: espelho local:", err)
					continue
				}

				select {
				case h.snapshots <- rs:
				case <-syncCtx.Done():
					return
				}
			}
		}
	}()

	return h, nil
}
