package cache

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/models"
)

type ReservaGormRepository struct {
	db *gorm.DB
}

func NewReservaGormRepository(db *gorm.DB) *ReservaGormRepository {
	return &ReservaGormRepository{db: db}
}

// --------------------------------------------------
// Mapeamento entidade <-> domínio
// --------------------------------------------------

func toEntity(r domain.Reserva) models.ReservaEntity {
	return models.ReservaEntity{
		ID:            r.ID,
		IDSala:        r.IDSala,
		NomeSala:      r.NomeSala,
		Data:          r.Data,
		HorarioInicio: r.HorarioInicio,
		HorarioFim:    r.HorarioFim,
		IDUsuario:     r.IDUsuario,
	}
}

func toReserva(e models.ReservaEntity) domain.Reserva {
	return domain.Reserva{
		ID:            e.ID,
		IDSala:        e.IDSala,
		NomeSala:      e.NomeSala,
		Data:          e.Data,
		HorarioInicio: e.HorarioInicio,
		HorarioFim:    e.HorarioFim,
		IDUsuario:     e.IDUsuario,
	}
}

func toReservas(entities []models.ReservaEntity) []domain.Reserva {
	out := make([]domain.Reserva, 0, len(entities))
	for _, e := range entities {
		out = append(out, toReserva(e))
	}
	return out
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

var upsertOnRemoteID = clause.OnConflict{
	Columns:   []clause.Column{{Name: "id"}},
	UpdateAll: true,
}

func (r *ReservaGormRepository) Salvar(
	ctx context.Context,
	res domain.Reserva,
) error {
	ent := toEntity(res)
	return r.db.WithContext(ctx).
		Clauses(upsertOnRemoteID).
		Create(&ent).Error
}

func (r *ReservaGormRepository) SalvarLista(
	ctx context.Context,
	rs []domain.Reserva,
) error {
	if len(rs) == 0 {
		return nil
	}

	entities := make([]models.ReservaEntity, 0, len(rs))
	for _, res := range rs {
		entities = append(entities, toEntity(res))
	}

	return r.db.WithContext(ctx).
		Clauses(upsertOnRemoteID).
		Create(&entities).Error
}

func (r *ReservaGormRepository) Deletar(
	ctx context.Context,
	reservaID string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", reservaID).
		Delete(&models.ReservaEntity{}).Error
}

func (r *ReservaGormRepository) DeletarReservasDoUsuario(
	ctx context.Context,
	usuarioID string,
) error {
	return r.db.WithContext(ctx).
		Where("id_usuario = ?", usuarioID).
		Delete(&models.ReservaEntity{}).Error
}

// SubstituirDoUsuario é o passo de reconciliação da sincronização:
// apaga todas as linhas do usuário e insere o conjunto recebido em
// uma única transação, nunca intercalada com outro escritor das
// mesmas linhas.
func (r *ReservaGormRepository) SubstituirDoUsuario(
	ctx context.Context,
	usuarioID string,
	rs []domain.Reserva,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("id_usuario = ?", usuarioID).
			Delete(&models.ReservaEntity{}).Error; err != nil {
			return err
		}

		if len(rs) == 0 {
			return nil
		}

		entities := make([]models.ReservaEntity, 0, len(rs))
		for _, res := range rs {
			entities = append(entities, toEntity(res))
		}

		return tx.Create(&entities).Error
	})
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *ReservaGormRepository) ListarPorUsuario(
	ctx context.Context,
	usuarioID string,
) ([]domain.Reserva, error) {

	var entities []models.ReservaEntity
	if err := r.db.WithContext(ctx).
		Where("id_usuario = ?", usuarioID).
		Order("data ASC, horario_inicio ASC").
		Find(&entities).Error; err != nil {
		return nil, err
	}

	return toReservas(entities), nil
}

func (r *ReservaGormRepository) ListarPorSalaEData(
	ctx context.Context,
	salaID, data string,
) ([]domain.Reserva, error) {

	var entities []models.ReservaEntity
	if err := r.db.WithContext(ctx).
		Where("id_sala = ? AND data = ?", salaID, data).
		Order("horario_inicio ASC").
		Find(&entities).Error; err != nil {
		return nil, err
	}

	return toReservas(entities), nil
}

func (r *ReservaGormRepository) ListarPorData(
	ctx context.Context,
	data string,
) ([]domain.Reserva, error) {

	var entities []models.ReservaEntity
	if err := r.db.WithContext(ctx).
		Where("data = ?", data).
		Order("horario_inicio ASC").
		Find(&entities).Error; err != nil {
		return nil, err
	}

	return toReservas(entities), nil
}

// Compile-time check
var _ domain.CacheRepository = (*ReservaGormRepository)(nil)
