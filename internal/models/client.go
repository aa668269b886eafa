package models

import "time"

// Cliente do salão, sem login. O telefone funciona como chave
// natural de deduplicação no agendamento, mas não é único no banco.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
}
