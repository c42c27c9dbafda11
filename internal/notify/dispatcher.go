package notify

import (
	"context"
	"log"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
)

type EventType string

const (
	EventConfirmacao  EventType = "confirmacao"
	EventCancelamento EventType = "cancelamento"
)

type Event struct {
	Tipo         EventType
	Reserva      domain.Reserva
	Destinatario string
}

// Dispatcher desacopla o envio de e-mail do caminho da reserva. O
// envio roda em um worker próprio; a fila cheia descarta o evento com
// registro no log, nunca bloqueia nem falha a operação que o gerou.
type Dispatcher struct {
	notifier Notifier
	queue    chan Event
	done     chan struct{}
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Event, 100),
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		var err error
		switch ev.Tipo {
		case EventConfirmacao:
			err = d.notifier.NotificarConfirmacao(context.Background(), ev.Reserva, ev.Destinatario)
		case EventCancelamento:
			err = d.notifier.NotificarCancelamento(context.Background(), ev.Reserva, ev.Destinatario)
		}
		if err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enfileirado
	default:
		log.Println("notify queue full, dropping event")
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
