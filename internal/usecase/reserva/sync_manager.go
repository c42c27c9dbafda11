package reserva

import (
	"context"
	"log"
	"sync"
)

// SyncManager mantém no máximo uma sincronização contínua por
// usuário. O login garante a assinatura; o encerramento do servidor
// (ou um stop explícito) a cancela. As sincronizações vivem no
// contexto raiz do manager, não no da requisição que as iniciou.
type SyncManager struct {
	sync *SincronizarReservas

	baseCtx    context.Context
	baseCancel context.CancelFunc

	mu      sync.Mutex
	handles map[string]*SyncHandle
}

func NewSyncManager(sync *SincronizarReservas) *SyncManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &SyncManager{
		sync:       sync,
		baseCtx:    ctx,
		baseCancel: cancel,
		handles:    make(map[string]*SyncHandle),
	}
}

// Ensure inicia a sincronização do usuário se ainda não houver uma
// ativa. Idempotente.
func (m *SyncManager) Ensure(usuarioID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.handles[usuarioID]; ok {
		return nil
	}

	h, err := m.sync.Execute(m.baseCtx, usuarioID)
	if err != nil {
		return err
	}
	m.handles[usuarioID] = h

	// drena as republicações; consumidores leem o espelho local
	go func() {
		for range h.Snapshots() {
		}
		m.mu.Lock()
		if m.handles[usuarioID] == h {
			delete(m.handles, usuarioID)
		}
		m.mu.Unlock()
	}()

	log.Printf("sync iniciada para usuário %s", usuarioID)
	return nil
}

func (m *SyncManager) Stop(usuarioID string) {
	m.mu.Lock()
	h, ok := m.handles[usuarioID]
	delete(m.handles, usuarioID)
	m.mu.Unlock()

	if ok {
		h.Close()
	}
}

func (m *SyncManager) StopAll() {
	m.mu.Lock()
	handles := m.handles
	m.handles = make(map[string]*SyncHandle)
	m.mu.Unlock()

	for _, h := range handles {
		h.Close()
	}
	m.baseCancel()
}
