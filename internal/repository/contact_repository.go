package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yaalstudio/salon-agenda/internal/models"
)

type ContactRepository interface {
	List(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id uint) (DeleteResult, error)
}

type GormContactRepository struct {
	db *gorm.DB
}

func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

func (r *GormContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *GormContactRepository) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *GormContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *GormContactRepository) Delete(ctx context.Context, id uint) (DeleteResult, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Contact{}, id)
	if tx.Error != nil {
		return NotFound, tx.Error
	}
	if tx.RowsAffected == 0 {
		return NotFound, nil
	}
	return Deleted, nil
}

// Compile-time check
var _ ContactRepository = (*GormContactRepository)(nil)
