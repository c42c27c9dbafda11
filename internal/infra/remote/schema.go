package remote

// Esquema de chaves do armazenamento remoto. O layout lógico é
// hierárquico:
//
//	salas:index                     -> SET de ids de sala
//	sala:{salaID}                   -> JSON da sala
//	reservas:user:{usuarioID}       -> HASH reservaID -> JSON da reserva
//	reservas:sala:{salaID}:{data}   -> HASH reservaID -> JSON da reserva
//	reservas:user:{usuarioID}:events -> canal pub/sub de mutações
//
// Toda reserva vive sob exatamente uma chave "por usuário" e uma
// "por sala+data": as duas presentes, ou as duas ausentes.

func KeySalasIndex() string {
	return "salas:index"
}

func KeySala(salaID string) string {
	return "sala:" + salaID
}

func KeyReservasUsuario(usuarioID string) string {
	return "reservas:user:" + usuarioID
}

func KeyReservasSala(salaID, data string) string {
	return "reservas:sala:" + salaID + ":" + data
}

func ChannelUsuario(usuarioID string) string {
	return KeyReservasUsuario(usuarioID) + ":events"
}
