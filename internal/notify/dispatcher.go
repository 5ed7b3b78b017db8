package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/smallbiznis/threadline/internal/providers/email"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	queueSize   = 256
	maxAttempts = 3
	baseBackoff = 500 * time.Millisecond
)

// Notification is one outbound email. Delivery is at-least-once: a message
// that fails is retried with backoff before being dropped and logged.
type Notification struct {
	ID      string
	To      string
	Subject string
	Body    string
}

// Dispatcher hands notifications to a background worker. Enqueue never
// blocks the caller; a full queue drops the message with a warning.
type Dispatcher interface {
	Enqueue(n Notification) bool
}

type Params struct {
	fx.In

	LC    fx.Lifecycle
	Log   *zap.Logger
	Email email.Provider
}

type dispatcher struct {
	log   *zap.Logger
	email email.Provider

	queue chan Notification
	done  chan struct{}
	once  sync.Once
}

func New(p Params) Dispatcher {
	d := &dispatcher{
		log:   p.Log.Named("notify.dispatcher"),
		email: p.Email,
		queue: make(chan Notification, queueSize),
		done:  make(chan struct{}),
	}

	p.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go d.run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.once.Do(func() { close(d.queue) })
			select {
			case <-d.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
	return d
}

func (d *dispatcher) Enqueue(n Notification) bool {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	select {
	case d.queue <- n:
		return true
	default:
		d.log.Warn("notification queue full, dropping message",
			zap.String("notification_id", n.ID),
			zap.String("to", n.To),
		)
		return false
	}
}

func (d *dispatcher) run() {
	defer close(d.done)
	for n := range d.queue {
		d.deliver(n)
	}
}

func (d *dispatcher) deliver(n Notification) {
	msg := email.Message{To: n.To, Subject: n.Subject, Body: n.Body}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = d.email.Send(context.Background(), msg)
		if err == nil {
			d.log.Debug("notification delivered",
				zap.String("notification_id", n.ID),
				zap.Int("attempt", attempt),
			)
			return
		}
		if attempt < maxAttempts {
			time.Sleep(time.Duration(attempt) * baseBackoff)
		}
	}

	d.log.Error("notification delivery failed",
		zap.String("notification_id", n.ID),
		zap.String("to", n.To),
		zap.Error(err),
	)
}
