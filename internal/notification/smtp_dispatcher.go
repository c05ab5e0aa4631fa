package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

type SMTPConfig struct {
	Host     string
	Port     string
	From     string
	Password string
}

// SMTPDispatcher delivers notices as plain-text mail over authenticated
// SMTP (the Gmail-style setup the portal runs on).
type SMTPDispatcher struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

func NewSMTPDispatcher(cfg SMTPConfig, logger ...*zap.Logger) *SMTPDispatcher {
	l := zap.L().Named("notification.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.smtp")
	}
	return &SMTPDispatcher{cfg: cfg, logger: l}
}

func (d *SMTPDispatcher) Dispatch(ctx context.Context, n Notice) error {
	subject, body := Compose(n)

	msg := fmt.Sprintf(
		"From: RequestHub <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		d.cfg.From, n.Recipient, subject, body,
	)

	auth := smtp.PlainAuth("", d.cfg.From, d.cfg.Password, d.cfg.Host)
	addr := d.cfg.Host + ":" + d.cfg.Port

	if err := smtp.SendMail(addr, auth, d.cfg.From, []string{n.Recipient}, []byte(msg)); err != nil {
		d.logger.Error("send mail failed",
			zap.String("event", string(n.Event)),
			zap.String("recipient", n.Recipient),
			zap.Error(err),
		)
		return err
	}

	d.logger.Info("mail sent",
		zap.String("event", string(n.Event)),
		zap.String("recipient", n.Recipient),
	)
	return nil
}
