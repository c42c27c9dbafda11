package reserva

import (
	"context"
	"log"
	"sort"
	"strconv"
	"strings"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/httperr"
)

type ListarSalas struct {
	remote domain.RemoteRepository
	cache  domain.CacheRepository
}

func NewListarSalas(
	remote domain.RemoteRepository,
	cache domain.CacheRepository,
) *ListarSalas {
	return &ListarSalas{
		remote: remote,
		cache:  cache,
	}
}

// Execute lista as salas reserváveis no turno, com a ocupação corrente
// do dia calculada a partir do espelho local, para a UI poder mostrar
// vagas sem esperar o remoto a cada sala.
func (uc *ListarSalas) Execute(
	ctx context.Context,
	turno domain.Turno,
	data string,
) ([]domain.Sala, error) {

	if !turno.Valido() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	salas, err := uc.remote.ListSalas(ctx)
	if err != nil {
		if _, ok := httperr.BusinessCode(err); ok {
			return nil, err
		}
		return nil, httperr.ErrBusiness(httperr.CodeRemoteUnavailable)
	}

	reservasDoDia, err := uc.cache.ListarPorData(ctx, data)
	if err != nil {
		// ocupação é informativa; sem espelho mostramos zero
		log.Println("listar salas: cache read:", err)
		reservasDoDia = nil
	}

	out := make([]domain.Sala, 0, len(salas))
	for _, sala := range salas {
		if !sala.TemTurno(turno) {
			continue
		}

		ocupadas := 0
		for _, r := range reservasDoDia {
			if r.IDSala != sala.ID {
				continue
			}
			if turno.ContemHora(horaDe(r.HorarioInicio)) {
				ocupadas++
			}
		}
		sala.VagasOcupadas = ocupadas

		out = append(out, sala)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Nome < out[j].Nome
	})

	return out, nil
}

func horaDe(horario string) int {
	h, err := strconv.Atoi(strings.SplitN(horario, ":", 2)[0])
	if err != nil {
		return -1
	}
	return h
}
