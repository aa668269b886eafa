package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yaalstudio/salon-agenda/internal/models"
)

type ClientRepository interface {
	List(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, id uint, name, phone string) (*models.Client, error)
	Delete(ctx context.Context, id uint) (DeleteResult, error)
}

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) List(ctx context.Context) ([]models.Client, error) {
	clients := make([]models.Client, 0)
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *GormClientRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *GormClientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// Update substitui name/phone por inteiro. Payload parcial é
// rejeitado antes, no handler.
func (r *GormClientRepository) Update(ctx context.Context, id uint, name, phone string) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}

	client.Name = name
	client.Phone = phone

	if err := r.db.WithContext(ctx).Save(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *GormClientRepository) Delete(ctx context.Context, id uint) (DeleteResult, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if tx.Error != nil {
		return NotFound, tx.Error
	}
	if tx.RowsAffected == 0 {
		return NotFound, nil
	}
	return Deleted, nil
}

// Compile-time check
var _ ClientRepository = (*GormClientRepository)(nil)
