package main

import (
	"io"
	"os"

	"github.com/gotify/configor"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	mailtrap "github.com/mailtrap/mailtrap-go"
)

// Settings configures the command. Every field can be set from the
// environment.
type Settings struct {
	Token       string `default:"" env:"MAILTRAP_TOKEN"`
	AccountID   int64  `default:"0" env:"MAILTRAP_ACCOUNT_ID"`
	Bulk        bool   `default:"false" env:"MAILTRAP_BULK"`
	Sandbox     bool   `default:"false" env:"MAILTRAP_SANDBOX"`
	InboxID     string `default:"" env:"MAILTRAP_INBOX_ID"`
	SendingHost string `default:"" env:"MAILTRAP_SENDING_HOST"`
	GeneralHost string `default:"" env:"MAILTRAP_GENERAL_HOST"`
	Port        int    `default:"443" env:"MAILTRAP_PORT"`
	Scheme      string `default:"https" env:"MAILTRAP_SCHEME"`
	LogLevel    string `default:"info" env:"MAILTRAP_LOG_LEVEL"`
}

// Streams are the standard streams of the command.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultStreams returns the process streams.
func DefaultStreams() Streams {
	return Streams{Stdout: os.Stdout, Stderr: os.Stderr}
}

func loadSettings(files ...string) (*Settings, error) {
	settings := new(Settings)
	if err := configor.New(&configor.Config{}).Load(settings, existing(files)...); err != nil {
		return nil, errors.Wrap(err, "load settings")
	}
	if settings.Token == "" {
		return nil, errors.New("MAILTRAP_TOKEN is required")
	}
	return settings, nil
}

func existing(files []string) []string {
	var out []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			out = append(out, f)
		}
	}
	return out
}

func newLogger(settings *Settings, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	return logger, nil
}

func newClient(settings *Settings, logger logrus.FieldLogger) (*mailtrap.Client, error) {
	opts := []mailtrap.Option{
		mailtrap.WithAccountID(settings.AccountID),
		mailtrap.WithPort(settings.Port),
		mailtrap.WithScheme(settings.Scheme),
		mailtrap.WithLogger(logger),
	}
	if settings.Bulk {
		opts = append(opts, mailtrap.WithBulk())
	}
	if settings.Sandbox {
		opts = append(opts, mailtrap.WithSandbox())
	}
	if settings.InboxID != "" {
		opts = append(opts, mailtrap.WithInboxID(settings.InboxID))
	}
	if settings.SendingHost != "" {
		opts = append(opts, mailtrap.WithSendingHost(settings.SendingHost))
	}
	if settings.GeneralHost != "" {
		opts = append(opts, mailtrap.WithGeneralHost(settings.GeneralHost))
	}
	return mailtrap.New(settings.Token, opts...)
}
