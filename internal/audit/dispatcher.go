package audit

import (
	"go.uber.org/zap"

	"github.com/yaalstudio/salon-agenda/internal/logging"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logging.Log.Warn("audit error", zap.Error(err))
		}
	}
	close(d.done)
}

// Dispatch nunca bloqueia o request: fila cheia descarta o evento.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		logging.Log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action))
	}
}

// Close drena o que ainda está na fila e espera o worker terminar.
// Só pode ser chamado depois que o servidor parou de despachar.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
