package reserva

import "context"

// RemoteRepository é o contrato do armazenamento autoritativo
// hierárquico. Toda decisão de conflito vale apenas quando tomada lá:
// o cache local nunca substitui a garantia remota.
type RemoteRepository interface {
	// -------- Salas --------
	GetSala(
		ctx context.Context,
		id string,
	) (*Sala, error)

	ListSalas(
		ctx context.Context,
	) ([]Sala, error)

	// -------- Reservas (leitura) --------
	ListReservasDaSala(
		ctx context.Context,
		salaID string,
		data string,
	) ([]Reserva, error)

	ListReservasDoUsuario(
		ctx context.Context,
		usuarioID string,
	) ([]Reserva, error)

	// -------- Reservas (escrita atômica) --------

	// CreateReserva grava a reserva sob os dois índices ("por usuário"
	// e "por sala+data") em uma única escrita atômica, guardada por
	// transação otimista sobre a subárvore sala+data. Ou os dois
	// índices são gravados, ou nenhum.
	CreateReserva(
		ctx context.Context,
		r Reserva,
		vagasMaximas int,
	) error

	// DeleteReserva remove a reserva dos dois índices atomicamente.
	// A posse é verificada pela indexação: reserva ausente da
	// subárvore do usuário é tratada como não pertencente a ele.
	DeleteReserva(
		ctx context.Context,
		r Reserva,
	) error

	// -------- Assinatura --------
	WatchReservasDoUsuario(
		ctx context.Context,
		usuarioID string,
	) (Subscription, error)
}

// Subscription entrega snapshots completos da subárvore "por usuário":
// um snapshot inicial na assinatura e um novo a cada mutação, na
// ordem de entrega do armazenamento remoto.
type Subscription interface {
	Snapshots() <-chan []Reserva
	Errs() <-chan error
	Close() error
}

// CacheRepository é o contrato do espelho relacional local. Escritas
// são transações atômicas individuais; leituras servem a UI com o
// último estado conhecido enquanto o remoto está em trânsito.
type CacheRepository interface {
	Salvar(ctx context.Context, r Reserva) error
	SalvarLista(ctx context.Context, rs []Reserva) error
	Deletar(ctx context.Context, reservaID string) error
	DeletarReservasDoUsuario(ctx context.Context, usuarioID string) error

	// SubstituirDoUsuario apaga todas as linhas do usuário e insere o
	// conjunto recebido, em uma única transação local.
	SubstituirDoUsuario(ctx context.Context, usuarioID string, rs []Reserva) error

	ListarPorUsuario(ctx context.Context, usuarioID string) ([]Reserva, error)
	ListarPorSalaEData(ctx context.Context, salaID, data string) ([]Reserva, error)
	ListarPorData(ctx context.Context, data string) ([]Reserva, error)
}
