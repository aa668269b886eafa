package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yaalstudio/salon-agenda/internal/models"
)

// BookingRepository cobre os passos do upsert de agendamento. O use
// case roda todos dentro de InTransaction para não deixar estado
// parcial.
type BookingRepository interface {
	FindClientByPhone(ctx context.Context, phone string) (*models.Client, error)
	RenameClient(ctx context.Context, id uint, name string) error
	CreateClient(ctx context.Context, client *models.Client) error
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	InTransaction(ctx context.Context, fn func(BookingRepository) error) error
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindClientByPhone compara o telefone por igualdade exata, sem
// normalização: "+55 11 90000-0000" e "11900000000" são clientes
// distintos.
func (r *GormBookingRepository) FindClientByPhone(ctx context.Context, phone string) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *GormBookingRepository) RenameClient(ctx context.Context, id uint, name string) error {
	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *GormBookingRepository) CreateClient(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *GormBookingRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *GormBookingRepository) InTransaction(ctx context.Context, fn func(BookingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormBookingRepository{db: tx})
	})
}

// Compile-time check
var _ BookingRepository = (*GormBookingRepository)(nil)
