package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/dto"
	"github.com/ifteca/reserva-salas/internal/httperr"
	"github.com/ifteca/reserva-salas/internal/httpresp"
	"github.com/ifteca/reserva-salas/internal/middleware"
	ucReserva "github.com/ifteca/reserva-salas/internal/usecase/reserva"
)

// ======================================================
// HANDLER
// ======================================================

type ReservasHandler struct {
	criar    *ucReserva.CriarReserva
	cancelar *ucReserva.CancelarReserva
	cache    domain.CacheRepository
}

func NewReservasHandler(
	criar *ucReserva.CriarReserva,
	cancelar *ucReserva.CancelarReserva,
	cache domain.CacheRepository,
) *ReservasHandler {
	return &ReservasHandler{
		criar:    criar,
		cancelar: cancelar,
		cache:    cache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservaRequest struct {
	SalaID  string `json:"sala_id" binding:"required"`
	Turno   string `json:"turno" binding:"required"`
	Data    string `json:"data" binding:"required"`
	Horario string `json:"horario" binding:"required"` // "HH:MM - HH:MM"
}

// ======================================================
// CREATE
// ======================================================

// POST /api/me/reservas
func (h *ReservasHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	email := c.MustGet(middleware.ContextUserEmail).(string)

	var req CreateReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	nova, err := h.criar.Execute(c.Request.Context(), ucReserva.CriarReservaInput{
		SalaID:       req.SalaID,
		Turno:        domain.Turno(req.Turno),
		Data:         req.Data,
		Horario:      req.Horario,
		UsuarioID:    usuarioID(userID),
		UsuarioEmail: email,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromReserva(*nova))
}

// ======================================================
// CANCEL
// ======================================================

// DELETE /api/me/reservas/:id
func (h *ReservasHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	email := c.MustGet(middleware.ContextUserEmail).(string)

	reservaID := c.Param("id")

	err := h.cancelar.Execute(c.Request.Context(), reservaID, usuarioID(userID), email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LIST (espelho local)
// ======================================================

// GET /api/me/reservas
//
// Lê o espelho local para a UI renderizar o último estado conhecido
// mesmo com o listener remoto em trânsito.
func (h *ReservasHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	reservas, err := h.cache.ListarPorUsuario(c.Request.Context(), usuarioID(userID))
	if err != nil {
		httperr.Internal(c, httperr.CodeLocalCacheError, "Erro ao ler reservas.")
		return
	}

	out := make([]dto.ReservaDTO, 0, len(reservas))
	for _, r := range reservas {
		out = append(out, dto.FromReserva(r))
	}

	httpresp.List(c, out)
}
