package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/timezone"
)

// usuarioID é a identidade do usuário nas chaves de reserva: o id
// numérico local serializado como string.
func usuarioID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// dataOuHoje lê o parâmetro "data" da query, já normalizado para o
// formato canônico; sem o parâmetro, usa a data de hoje no fuso do
// campus.
func dataOuHoje(c *gin.Context) (string, bool) {
	raw := c.Query("data")
	if raw == "" {
		return timezone.Hoje(), true
	}

	data, err := domain.ParseData(raw)
	if err != nil {
		return "", false
	}
	return data, true
}
