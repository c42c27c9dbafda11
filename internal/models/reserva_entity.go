package models

// ReservaEntity é a linha do espelho local de reservas. LocalID é a
// chave substituta do dispositivo e não tem significado fora dele; ID
// é o identificador remoto da reserva.
type ReservaEntity struct {
	LocalID uint `gorm:"primaryKey" json:"local_id"`

	ID       string `gorm:"size:64;uniqueIndex;not null" json:"id"`
	IDSala   string `gorm:"size:64;index:idx_reservas_sala_data" json:"id_sala"`
	NomeSala string `gorm:"size:120" json:"nome_sala"`

	Data          string `gorm:"size:10;index;index:idx_reservas_sala_data" json:"data"`
	HorarioInicio string `gorm:"size:5" json:"horario_inicio"`
	HorarioFim    string `gorm:"size:5" json:"horario_fim"`

	IDUsuario string `gorm:"size:64;index" json:"id_usuario"`
}

func (ReservaEntity) TableName() string {
	return "reservas"
}
