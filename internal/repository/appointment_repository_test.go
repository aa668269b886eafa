package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/yaalstudio/salon-agenda/internal/models"
)

func seedAppointment(t *testing.T, db *gorm.DB, clientName, phone, service, date, hour string) models.Appointment {
	t.Helper()

	client := models.Client{Name: clientName, Phone: phone}
	if err := db.Where("phone = ?", phone).FirstOrCreate(&client).Error; err != nil {
		t.Fatalf("seed client failed: %v", err)
	}

	ap := models.Appointment{ClientID: client.ID, Service: service, Date: date, Time: hour}
	if err := db.Create(&ap).Error; err != nil {
		t.Fatalf("seed appointment failed: %v", err)
	}
	return ap
}

func TestAppointmentListJoinsClient(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAppointmentRepository(db)

	seedAppointment(t, db, "Ana", "111", "Corte", "2024-01-10", "10:00")
	seedAppointment(t, db, "Bia", "222", "Escova", "2024-01-09", "09:00")

	rows, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	for _, row := range rows {
		if row.ClientName == "" || row.ClientPhone == "" {
			t.Fatalf("expected joined client fields, got %+v", row)
		}
	}

	// date desc, time desc
	if rows[0].Date != "2024-01-10" {
		t.Fatalf("expected newest date first, got %q", rows[0].Date)
	}
}

func TestAppointmentListTimeTieBreak(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAppointmentRepository(db)

	seedAppointment(t, db, "Ana", "111", "Corte", "2024-01-10", "09:00")
	seedAppointment(t, db, "Ana", "111", "Escova", "2024-01-10", "15:00")

	rows, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if rows[0].Time != "15:00" {
		t.Fatalf("expected later time first, got %q", rows[0].Time)
	}
}

func TestAppointmentGetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAppointmentRepository(db)

	ap := seedAppointment(t, db, "Ana", "111", "Corte", "2024-01-10", "10:00")

	row, err := repo.GetByID(context.Background(), ap.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if row.ClientName != "Ana" || row.ClientPhone != "111" {
		t.Fatalf("joined fields wrong: %+v", row)
	}
	if row.Service != "Corte" || row.Date != "2024-01-10" || row.Time != "10:00" {
		t.Fatalf("row mismatch: %+v", row)
	}

	if _, err := repo.GetByID(context.Background(), 999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAppointmentUpdateKeepsClientLink(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAppointmentRepository(db)

	ap := seedAppointment(t, db, "Ana", "111", "Corte", "2024-01-10", "10:00")

	updated, err := repo.Update(context.Background(), ap.ID, "Escova", "2024-02-01", "14:00")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Service != "Escova" || updated.Date != "2024-02-01" || updated.Time != "14:00" {
		t.Fatalf("update mismatch: %+v", updated)
	}
	if updated.ClientID != ap.ClientID {
		t.Fatal("client link must be immutable on update")
	}
}

func TestAppointmentDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAppointmentRepository(db)

	ap := seedAppointment(t, db, "Ana", "111", "Corte", "2024-01-10", "10:00")

	res, err := repo.Delete(context.Background(), ap.ID)
	if err != nil || res != Deleted {
		t.Fatalf("expected Deleted, got %v / %v", res, err)
	}

	res, err = repo.Delete(context.Background(), ap.ID)
	if err != nil || res != NotFound {
		t.Fatalf("expected NotFound, got %v / %v", res, err)
	}

	// O cliente permanece: só o delete do cliente cascateia.
	var clients int64
	if err := db.Model(&models.Client{}).Count(&clients).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if clients != 1 {
		t.Fatalf("expected client to survive appointment delete, got %d", clients)
	}
}
