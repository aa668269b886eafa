package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yaalstudio/salon-agenda/internal/dto"
	"github.com/yaalstudio/salon-agenda/internal/models"
)

type AppointmentRepository interface {
	List(ctx context.Context) ([]dto.AppointmentListDTO, error)
	GetByID(ctx context.Context, id uint) (*dto.AppointmentListDTO, error)
	Update(ctx context.Context, id uint, service, date, hour string) (*models.Appointment, error)
	Delete(ctx context.Context, id uint) (DeleteResult, error)
}

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(
			"appointments.id, appointments.client_id, appointments.service, " +
				"appointments.date, appointments.time, appointments.created_at, " +
				"clients.name AS client_name, clients.phone AS client_phone",
		).
		Joins("JOIN clients ON clients.id = appointments.client_id")
}

func (r *GormAppointmentRepository) List(ctx context.Context) ([]dto.AppointmentListDTO, error) {
	rows := make([]dto.AppointmentListDTO, 0)
	if err := r.joined(ctx).
		Order("appointments.date DESC, appointments.time DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, id uint) (*dto.AppointmentListDTO, error) {
	var row dto.AppointmentListDTO
	if err := r.joined(ctx).
		Where("appointments.id = ?", id).
		Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update troca service/date/time; o vínculo com o cliente é imutável.
func (r *GormAppointmentRepository) Update(ctx context.Context, id uint, service, date, hour string) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	ap.Service = service
	ap.Date = date
	ap.Time = hour

	if err := r.db.WithContext(ctx).Save(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *GormAppointmentRepository) Delete(ctx context.Context, id uint) (DeleteResult, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if tx.Error != nil {
		return NotFound, tx.Error
	}
	if tx.RowsAffected == 0 {
		return NotFound, nil
	}
	return Deleted, nil
}

// Compile-time check
var _ AppointmentRepository = (*GormAppointmentRepository)(nil)
