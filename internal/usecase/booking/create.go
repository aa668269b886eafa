package booking

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/yaalstudio/salon-agenda/internal/audit"
	"github.com/yaalstudio/salon-agenda/internal/httperr"
	"github.com/yaalstudio/salon-agenda/internal/models"
	"github.com/yaalstudio/salon-agenda/internal/repository"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Name    string
	Phone   string
	Service string
	Date    string
	Time    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  repository.BookingRepository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo repository.BookingRepository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute reconcilia a submissão pública contra a base de clientes.
// Acha o cliente pelo telefone (chave estável), atualiza o nome se a
// submissão trouxer outro, ou cria o cliente novo. Só então cria o
// agendamento. Tudo numa transação: validação falhou, nada grava.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	service := strings.TrimSpace(in.Service)
	date := strings.TrimSpace(in.Date)
	hour := strings.TrimSpace(in.Time)

	if name == "" || phone == "" || service == "" || date == "" || hour == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	var created *models.Appointment

	err := uc.repo.InTransaction(ctx, func(r repository.BookingRepository) error {

		client, err := r.FindClientByPhone(ctx, phone)
		switch {
		case err == nil:
			// A submissão mais recente manda no nome de exibição.
			if client.Name != name {
				if err := r.RenameClient(ctx, client.ID, name); err != nil {
					return err
				}
			}

		case errors.Is(err, gorm.ErrRecordNotFound):
			client = &models.Client{Name: name, Phone: phone}
			if err := r.CreateClient(ctx, client); err != nil {
				return err
			}

		default:
			return err
		}

		ap := &models.Appointment{
			ClientID: client.ID,
			Service:  service,
			Date:     date,
			Time:     hour,
		}

		if err := r.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &created.ID,
		Metadata: map[string]string{"phone": phone},
	})

	return created, nil
}
