package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/httperr"
)

// maxCasRetries limita as repetições da transação otimista quando a
// subárvore observada muda entre a leitura e o commit.
const maxCasRetries = 5

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// --------------------------------------------------
// Salas
// --------------------------------------------------

func (s *RedisStore) GetSala(
	ctx context.Context,
	id string,
) (*domain.Sala, error) {

	raw, err := s.rdb.Get(ctx, KeySala(id)).Result()
	if err == redis.Nil {
		return nil, httperr.ErrBusiness(httperr.CodeRoomNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("remote: get sala %s: %w", id, err)
	}

	var sala domain.Sala
	if err := json.Unmarshal([]byte(raw), &sala); err != nil {
		return nil, fmt.Errorf("remote: decode sala %s: %w", id, err)
	}
	sala.ID = id

	return &sala, nil
}

func (s *RedisStore) ListSalas(
	ctx context.Context,
) ([]domain.Sala, error) {

	ids, err := s.rdb.SMembers(ctx, KeySalasIndex()).Result()
	if err != nil {
		return nil, fmt.Errorf("remote: list salas: %w", err)
	}

	salas := make([]domain.Sala, 0, len(ids))
	for _, id := range ids {
		sala, err := s.GetSala(ctx, id)
		if err != nil {
			// sala removida entre o SMEMBERS e o GET
			if httperr.IsBusiness(err, httperr.CodeRoomNotFound) {
				continue
			}
			return nil, err
		}
		salas = append(salas, *sala)
	}

	return salas, nil
}

// PutSala grava o documento da sala e a registra no índice. Salas são
// autoradas fora do coordenador; isto existe para provisionamento e
// testes.
func (s *RedisStore) PutSala(ctx context.Context, sala domain.Sala) error {
	payload, err := json.Marshal(sala)
	if err != nil {
		return fmt.Errorf("remote: encode sala %s: %w", sala.ID, err)
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, KeySala(sala.ID), payload, 0)
		pipe.SAdd(ctx, KeySalasIndex(), sala.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("remote: put sala %s: %w", sala.ID, err)
	}
	return nil
}

// --------------------------------------------------
// Reservas (leitura)
// --------------------------------------------------

func (s *RedisStore) ListReservasDaSala(
	ctx context.Context,
	salaID string,
	data string,
) ([]domain.Reserva, error) {
	return s.readReservaHash(ctx, KeyReservasSala(salaID, data))
}

func (s *RedisStore) ListReservasDoUsuario(
	ctx context.Context,
	usuarioID string,
) ([]domain.Reserva, error) {
	return s.readReservaHash(ctx, KeyReservasUsuario(usuarioID))
}

func (s *RedisStore) readReservaHash(
	ctx context.Context,
	key string,
) ([]domain.Reserva, error) {

	fields, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("remote: read %s: %w", key, err)
	}

	return decodeReservaHash(fields)
}

func decodeReservaHash(fields map[string]string) ([]domain.Reserva, error) {
	reservas := make([]domain.Reserva, 0, len(fields))
	for id, raw := range fields {
		var r domain.Reserva
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("remote: decode reserva %s: %w", id, err)
		}
		reservas = append(reservas, r)
	}
	return reservas, nil
}

// --------------------------------------------------
// Reservas (escrita atômica)
// --------------------------------------------------

func (s *RedisStore) CreateReserva(
	ctx context.Context,
	r domain.Reserva,
	vagasMaximas int,
) error {

	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("remote: encode reserva %s: %w", r.ID, err)
	}

	salaKey := KeyReservasSala(r.IDSala, r.Data)
	userKey := KeyReservasUsuario(r.IDUsuario)

	txf := func(tx *redis.Tx) error {
		fields, err := tx.HGetAll(ctx, salaKey).Result()
		if err != nil {
			return fmt.Errorf("remote: read %s: %w", salaKey, err)
		}

		existentes, err := decodeReservaHash(fields)
		if err != nil {
			return err
		}

		if err := domain.CanReserve(existentes, r, vagasMaximas); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, salaKey, r.ID, payload)
			pipe.HSet(ctx, userKey, r.ID, payload)
			pipe.Publish(ctx, ChannelUsuario(r.IDUsuario), r.ID)
			return nil
		})
		return err
	}

	for i := 0; i < maxCasRetries; i++ {
		err := s.rdb.Watch(ctx, txf, salaKey)
		if err == redis.TxFailedErr {
			// outro escritor mexeu na subárvore; reavalia a guarda
			continue
		}
		if err != nil {
			if _, ok := httperr.BusinessCode(err); ok {
				return err
			}
			return fmt.Errorf("remote: create reserva %s: %w", r.ID, err)
		}
		return nil
	}

	return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
}

func (s *RedisStore) DeleteReserva(
	ctx context.Context,
	r domain.Reserva,
) error {

	userKey := KeyReservasUsuario(r.IDUsuario)

	owned, err := s.rdb.HExists(ctx, userKey, r.ID).Result()
	if err != nil {
		return fmt.Errorf("remote: check reserva %s: %w", r.ID, err)
	}
	if !owned {
		return httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, KeyReservasSala(r.IDSala, r.Data), r.ID)
		pipe.HDel(ctx, userKey, r.ID)
		pipe.Publish(ctx, ChannelUsuario(r.IDUsuario), r.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("remote: delete reserva %s: %w", r.ID, err)
	}

	return nil
}

// Compile-time check
var _ domain.RemoteRepository = (*RedisStore)(nil)
