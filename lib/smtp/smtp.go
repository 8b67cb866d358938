package smtp

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Provider interface {
	SendEMail(to, subject, message string) error
}

func Connect(user, password, host string, port int) {
	Instance = &impl{
		user:     user,
		password: password,
		host:     host,
		port:     port,
	}
}

type impl struct {
	user     string
	password string
	host     string
	port     int
}

func (i impl) SendEMail(to, subject, message string) error {
	logger := log.WithField("recipient", to)
	if i.user == "" || i.host == "" {
		logger.Warn("Лист не відправлено, smtp клієнт не налаштовано")
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", i.user)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Волонтерка - "+subject)
	m.SetBody("text/plain", message)

	d := gomail.NewDialer(i.host, i.port, i.user, i.password)
	if err := d.DialAndSend(m); err != nil {
		logger.WithError(err).Error("Помилка відправки листа")
		return err
	}
	logger.Info("лист відправлено")
	return nil
}
