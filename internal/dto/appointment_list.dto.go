package dto

import "time"

// Linha de agendamento como a listagem do painel consome: os campos
// do agendamento mais nome/telefone do cliente via join.
type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	ClientID    uint      `json:"client_id"`
	Service     string    `json:"service"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	CreatedAt   time.Time `json:"created_at"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
}
