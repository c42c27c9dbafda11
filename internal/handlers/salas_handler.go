package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/httperr"
	"github.com/ifteca/reserva-salas/internal/httpresp"
	ucReserva "github.com/ifteca/reserva-salas/internal/usecase/reserva"
)

// ======================================================
// HANDLER
// ======================================================

type SalasHandler struct {
	listarSalas    *ucReserva.ListarSalas
	listarHorarios *ucReserva.ListarHorarios
}

func NewSalasHandler(
	listarSalas *ucReserva.ListarSalas,
	listarHorarios *ucReserva.ListarHorarios,
) *SalasHandler {
	return &SalasHandler{
		listarSalas:    listarSalas,
		listarHorarios: listarHorarios,
	}
}

// ======================================================
// LIST
// ======================================================

// GET /api/salas?turno=Manhã
func (h *SalasHandler) List(c *gin.Context) {
	turno := domain.Turno(c.Query("turno"))

	data, ok := dataOuHoje(c)
	if !ok {
		httperr.WriteBusiness(c, httperr.CodeInvalidInput)
		return
	}

	salas, err := h.listarSalas.Execute(c.Request.Context(), turno, data)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, salas)
}

// ======================================================
// HORARIOS
// ======================================================

type HorariosResponse struct {
	Horarios  []string `json:"horarios"`
	Degradado bool     `json:"degradado"`
}

// GET /api/salas/:id/horarios?turno=Manhã&data=2026-08-31
func (h *SalasHandler) Horarios(c *gin.Context) {
	salaID := c.Param("id")
	turno := domain.Turno(c.Query("turno"))

	data, ok := dataOuHoje(c)
	if !ok {
		httperr.WriteBusiness(c, httperr.CodeInvalidInput)
		return
	}

	disponiveis, err := h.listarHorarios.Execute(c.Request.Context(), salaID, turno, data)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]string, 0, len(disponiveis.Slots))
	for _, s := range disponiveis.Slots {
		out = append(out, s.String())
	}

	httpresp.OK(c, HorariosResponse{
		Horarios:  out,
		Degradado: disponiveis.Degradado,
	})
}

// --------------------------------------------------
// erro comum aos handlers de reserva
// --------------------------------------------------

func writeError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		httperr.WriteBusiness(c, code)
		return
	}
	httperr.Internal(c, "internal_error", "Erro interno.")
}
