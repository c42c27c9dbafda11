package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/ifteca/reserva-salas/internal/config"
	domain "github.com/ifteca/reserva-salas/internal/domain/reserva"
	"github.com/ifteca/reserva-salas/internal/validators"
)

// MailNotifier envia os e-mails de confirmação e cancelamento por
// SMTP.
type MailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailNotifier(cfg *config.Config) *MailNotifier {
	return &MailNotifier{
		dialer: gomail.NewDialer(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPassword),
		from:   cfg.MailFrom,
	}
}

func (n *MailNotifier) NotificarConfirmacao(
	ctx context.Context,
	r domain.Reserva,
	destinatario string,
) error {
	subject := fmt.Sprintf("Confirmação de Reserva - %s", r.NomeSala)
	body := fmt.Sprintf(
		"Sua reserva foi confirmada.\n\nSala: %s\nData: %s\nHorário: %s - %s\n",
		r.NomeSala, r.Data, r.HorarioInicio, r.HorarioFim,
	)
	return n.send(destinatario, subject, body)
}

func (n *MailNotifier) NotificarCancelamento(
	ctx context.Context,
	r domain.Reserva,
	destinatario string,
) error {
	subject := fmt.Sprintf("Cancelamento de Reserva - %s", r.NomeSala)
	body := fmt.Sprintf(
		"Sua reserva foi cancelada.\n\nSala: %s\nData: %s\nHorário: %s - %s\n",
		r.NomeSala, r.Data, r.HorarioInicio, r.HorarioFim,
	)
	return n.send(destinatario, subject, body)
}

func (n *MailNotifier) send(to, subject, body string) error {
	if !validators.IsEmailDomainValid(to) {
		return fmt.Errorf("notify: destinatário inválido: %q", to)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("notify: send to %s: %w", to, err)
	}
	return nil
}

// Compile-time check
var _ Notifier = (*MailNotifier)(nil)
