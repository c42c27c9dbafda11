package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func ServiceUnavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// WriteBusiness mapeia um código de negócio para o status HTTP e a
// mensagem voltada ao usuário. A mensagem explica sempre uma destas
// situações: alguém reservou primeiro, você está offline, ou os dados
// eram inválidos.
func WriteBusiness(c *gin.Context, code string) {
	switch code {
	case CodeInvalidInput:
		BadRequest(c, code, "Dados inválidos.")
	case CodeRoomNotFound:
		NotFound(c, code, "Sala não encontrada.")
	case CodeSlotUnavailable:
		Conflict(c, code, "Alguém reservou este horário primeiro. Atualize os horários e tente de novo.")
	case CodeReservationNotFound:
		NotFound(c, code, "Reserva não encontrada.")
	case CodeRemoteUnavailable:
		ServiceUnavailable(c, code, "Você parece estar offline. Tente novamente em instantes.")
	case CodeRemoteWriteFailed:
		ServiceUnavailable(c, code, "Não foi possível confirmar a operação. Tente novamente.")
	default:
		Internal(c, code, "Erro interno.")
	}
}
