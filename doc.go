// Package mailtrap provides a Go client for the Mailtrap API: email sending
// (transactional, bulk and sandbox), contacts, email templates, sandbox
// projects and inboxes, accounts, billing and permissions.
//
// Basic usage:
//
//	client, err := mailtrap.New("your-api-token", mailtrap.WithAccountID(12345))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Send(ctx, &mailtrap.Mail{
//	    From:    mailtrap.Address{Email: "sender@example.com", Name: "Example"},
//	    To:      []mailtrap.Address{{Email: "joe@example.com"}},
//	    Subject: "Hello",
//	    Text:    "Hi Joe!",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.MessageIDs)
//
// # Sending modes
//
// The sending host is chosen once, in New. By default mail goes to
// send.api.mailtrap.io. WithBulk selects the bulk stream and WithSandbox
// together with WithInboxID delivers into a sandbox inbox. Bulk and sandbox
// cannot be combined.
//
// # Optional fields
//
// Request fields that are empty are left out of the request body. Where the
// API distinguishes "not set" from false or 0 the field is an [Optional]:
//
//	params := mailtrap.UpdateContactParams{Unsubscribed: mailtrap.Opt(false)}
//
// Update parameter types require at least one field; services call their
// Validate method before any request is made.
//
// # Errors
//
// Failed responses are returned as *[APIError] and match the sentinel for
// their status with errors.Is:
//
//	if errors.Is(err, mailtrap.ErrNotFound) {
//	    // ...
//	}
//
// Field errors keep the order the server reported them in; see
// [APIError.Errors].
package mailtrap
