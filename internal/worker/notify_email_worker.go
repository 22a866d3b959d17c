package worker

// notify_email_worker.go
// Processes notification e-mail jobs from QueueNotifyEmail. Delivery is
// best-effort: the notification row in Postgres is the durable record, an
// undelivered e-mail only lands in the DLQ for inspection.

import (
	"context"
	"encoding/json"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/infra"

	"github.com/rs/zerolog/log"
)

// NotifyEmailWorker sends notification e-mails through the circuit-breaker
// guarded SMTP mailer.
type NotifyEmailWorker struct {
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
}

func NewNotifyEmailWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker) *NotifyEmailWorker {
	return &NotifyEmailWorker{mailer: mailer, cb: cb}
}

// Process sends one notification e-mail. The returned error signals the pool
// to DLQ the job.
func (w *NotifyEmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload NotifyEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notify_email_worker: invalid payload")
		return err
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("notify_email_worker: empty to_email — skipping")
		return nil
	}

	err := w.cb.Execute(func() error {
		return w.mailer.SendNotification(payload.ToEmail, payload.Subject, payload.Body)
	})
	if err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("notify_email_worker: send failed")
		return err
	}
	log.Info().Str("to", payload.ToEmail).Msg("notify_email_worker: notification sent")
	return nil
}
