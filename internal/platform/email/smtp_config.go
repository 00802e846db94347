package email

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ferdiebergado/gastos/internal/pkg/message"
)

const (
	envSMTPHost = "SMTP_HOST"
	envSMTPPort = "SMTP_PORT"
	envSMTPUser = "SMTP_USER"
	envSMTPPass = "SMTP_PASS"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

func NewSMTPConfig() (*SMTPConfig, error) {
	smtpHost, err := requireEnv(envSMTPHost)
	if err != nil {
		return nil, err
	}

	smtpPortStr, err := requireEnv(envSMTPPort)
	if err != nil {
		return nil, err
	}

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		return nil, fmt.Errorf("convert smtp port %q to int: %w", smtpPortStr, err)
	}

	smtpUser, err := requireEnv(envSMTPUser)
	if err != nil {
		return nil, err
	}

	smtpPass, err := requireEnv(envSMTPPass)
	if err != nil {
		return nil, err
	}

	smtpCfg := &SMTPConfig{
		Host:     smtpHost,
		Port:     smtpPort,
		User:     smtpUser,
		Password: smtpPass,
	}

	return smtpCfg, nil
}

func requireEnv(key string) (string, error) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf(message.EnvErrFmt, key)
	}
	return val, nil
}
