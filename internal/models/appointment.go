package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Service string `gorm:"size:100;not null" json:"service"`

	// Data e hora como o formulário envia: "2006-01-02" e "15:04".
	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	CreatedAt time.Time `json:"created_at"`
}
