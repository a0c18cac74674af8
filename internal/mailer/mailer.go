package mailer

import (
	"context"
	"time"

	"memberdesk/internal/domain"

	"github.com/sirupsen/logrus"
	mail "github.com/wneessen/go-mail"
)

const fromName = "Speedcubing Finland"

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	SSL      bool
	Timeout  time.Duration
}

// Sender delivers membership notification mails over SMTP. Every send runs on
// its own goroutine with an independent timeout; a failed send is logged and
// dropped, it never reaches the request that triggered it.
//
// When SMTP is not configured the sender stays usable and skips every send
// with a warning, so local setups work without a mail account.
type Sender struct {
	client  *mail.Client
	from    string
	timeout time.Duration
	log     *logrus.Logger
}

func New(cfg Config, log *logrus.Logger) (*Sender, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	if cfg.Host == "" || cfg.Username == "" {
		log.Warn("smtp not configured, notification mails will be skipped")
		return &Sender{timeout: timeout, log: log}, nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(timeout),
	}
	if cfg.SSL {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &Sender{client: client, from: from, timeout: timeout, log: log}, nil
}

// NotifyPending confirms to the applicant that their application was received
// and is waiting for board review.
func (s *Sender) NotifyPending(sub *domain.Submission) {
	s.dispatch(sub.Email, pendingSubject, pendingText(sub), pendingHTML(sub))
}

// NotifyApproved welcomes an approved applicant as a member.
func (s *Sender) NotifyApproved(m *domain.Member) {
	s.dispatch(m.Email, approvedSubject, approvedText(m.FirstName), approvedHTML(m.FirstName))
}

func (s *Sender) dispatch(to, subject, text, html string) {
	if s.client == nil {
		s.log.WithField("to", to).Warn("smtp not configured, skipping notification mail")
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		msg := mail.NewMsg()
		if err := msg.FromFormat(fromName, s.from); err != nil {
			s.log.WithError(err).Error("invalid mail sender address")
			return
		}
		if err := msg.To(to); err != nil {
			s.log.WithError(err).WithField("to", to).Error("invalid mail recipient address")
			return
		}
		msg.Subject(subject)
		msg.SetBodyString(mail.TypeTextPlain, text)
		msg.AddAlternativeString(mail.TypeTextHTML, html)

		if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"to":      to,
				"subject": subject,
			}).Error("notification mail failed")
			return
		}

		s.log.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("notification mail sent")
	}()
}
