package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"

	mailtrap "github.com/mailtrap/mailtrap-go"
)

const usage = `usage: mailtrap <command> [flags]

commands:
  send       send a message (-from, -to, -subject, -text, -html, -category, -template)
  accounts   list accounts
  billing    show billing usage of the configured account
  templates  list email templates
  inboxes    list sandbox inboxes
  contact    show a contact by id or email`

func run(args []string, streams Streams, files ...string) error {
	if len(args) < 2 {
		return errors.New(usage)
	}

	settings, err := loadSettings(files...)
	if err != nil {
		return err
	}
	logger, err := newLogger(settings, streams.Stderr)
	if err != nil {
		return err
	}
	client, err := newClient(settings, logger)
	if err != nil {
		return errors.Wrap(err, "create client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var result any
	switch args[1] {
	case "send":
		result, err = send(ctx, client, args[2:], streams.Stderr)
	case "accounts":
		result, err = client.Accounts().List(ctx)
	case "billing":
		result, err = client.Billing().CurrentUsage(ctx, settings.AccountID)
	case "templates":
		result, err = client.Templates().List(ctx)
	case "inboxes":
		result, err = client.Inboxes().List(ctx)
	case "contact":
		if len(args) < 3 {
			return errors.New("usage: mailtrap contact <id-or-email>")
		}
		result, err = client.Contacts().Get(ctx, args[2])
	default:
		return errors.Errorf("unknown command: %s\n\n%s", args[1], usage)
	}
	if err != nil {
		return err
	}

	logger.WithField("command", args[1]).Debug("command finished")
	return writeJSON(streams.Stdout, result)
}

func send(ctx context.Context, client *mailtrap.Client, args []string, stderr io.Writer) (*mailtrap.SendResponse, error) {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	fs.SetOutput(stderr)
	from := fs.String("from", "", "sender address")
	fromName := fs.String("from-name", "", "sender display name")
	to := fs.String("to", "", "comma separated recipient addresses")
	subject := fs.String("subject", "", "subject")
	text := fs.String("text", "", "plain text body")
	html := fs.String("html", "", "HTML body")
	category := fs.String("category", "", "category")
	template := fs.String("template", "", "template UUID, replaces subject and body")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	sender := mailtrap.Address{Email: *from, Name: *fromName}
	recipients := parseAddresses(*to)

	var mail mailtrap.SendableMail
	if *template != "" {
		mail = &mailtrap.MailFromTemplate{From: sender, To: recipients, TemplateUUID: *template}
	} else {
		mail = &mailtrap.Mail{
			From:     sender,
			To:       recipients,
			Subject:  *subject,
			Text:     *text,
			HTML:     *html,
			Category: *category,
		}
	}
	return client.Send(ctx, mail)
}

func parseAddresses(list string) []mailtrap.Address {
	var out []mailtrap.Address
	for _, part := range strings.Split(list, ",") {
		if email := strings.TrimSpace(part); email != "" {
			out = append(out, mailtrap.Address{Email: email})
		}
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode output")
	}
	return nil
}
