package models

import "time"

// Mensagem enviada pelo formulário de contato. Nunca é atualizada.
type Contact struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100" json:"name"`
	Email   string `gorm:"size:100" json:"email"`
	Message string `gorm:"type:text" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
