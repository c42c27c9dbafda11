package httperr

import "errors"

// Códigos de negócio do fluxo de reservas. Falhas de transporte nunca
// chegam ao chamador com o texto cru: são convertidas para um destes
// códigos antes de sair.
const (
	CodeInvalidInput        = "invalid_input"
	CodeRoomNotFound        = "room_not_found"
	CodeSlotUnavailable     = "slot_unavailable"
	CodeRemoteUnavailable   = "remote_unavailable"
	CodeRemoteWriteFailed   = "remote_write_failed"
	CodeReservationNotFound = "reservation_not_found"
	CodeLocalCacheError     = "local_cache_error"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código de negócio, se houver.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
