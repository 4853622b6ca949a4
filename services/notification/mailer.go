package notification

import (
	"context"
	"fmt"
	"time"

	"bookwise/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// MailDialer is the subset of *gomail.Dialer used here.
type MailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPConfig holds outbound mail settings.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

var breakerState = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "smtp_circuit_breaker_state",
		Help: "Current state of the SMTP circuit breaker (0=closed, 1=half-open, 2=open)",
	},
	[]string{"name"},
)

func init() {
	prometheus.MustRegister(breakerState)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// MailSender delivers mail over SMTP. Consecutive failures open a circuit
// breaker so a dead relay fails fast instead of stalling every request.
type MailSender struct {
	dialer  MailDialer
	from    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  *zap.Logger
}

// NewMailSender builds a sender for cfg. A nil dialer uses gomail's.
func NewMailSender(cfg SMTPConfig, dialer MailDialer, logger *zap.Logger) *MailSender {
	if dialer == nil {
		dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	settings := gobreaker.Settings{
		Name:        "smtp",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("MailSender: circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			breakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}

	return &MailSender{
		dialer:  dialer,
		from:    from,
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
		logger:  logger,
	}
}

// Send mails a one-time code.
func (s *MailSender) Send(ctx context.Context, name, email, code string) error {
	subject, body := otpMessage(name, code)
	return s.deliver(ctx, email, subject, body)
}

// SendReminder mails a booking reminder.
func (s *MailSender) SendReminder(ctx context.Context, name, email string, payload models.ReminderPayload) error {
	subject, body := reminderMessage(name, payload)
	return s.deliver(ctx, email, subject, body)
}

func (s *MailSender) deliver(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.dialer.DialAndSend(m)
	})
	if err != nil {
		s.logger.Error("MailSender: failed to send mail", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}
