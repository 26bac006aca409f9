// Package api provides the HTTP transport for the Mailtrap API. It handles
// authentication, request/response serialization and error normalization.
//
// # Client Creation
//
// [New] builds a [Client] bound to one base URL (scheme://host:port) using
// functional options. The API token is sent as a bearer token on every
// request together with JSON content headers and a User-Agent.
//
// # Requests
//
// [Client.Do] performs exactly one round trip. Nothing is retried. Query
// parameters are usually built with [FlattenQuery], which repeats the key
// for slice values:
//
//	q := api.FlattenQuery(struct {
//	    ProjectIDs []string `url:"project_ids"`
//	}{ProjectIDs: []string{"1", "2"}})
//	// project_ids=1&project_ids=2
//
// # Error Handling
//
// Non-2xx responses are returned as *apierrors.APIError, transport failures
// as *apierrors.NetworkError and undecodable 2xx bodies as
// *apierrors.DecodeError.
//
// # Logging
//
// Every request is traced at Debug level through a logrus.FieldLogger. The
// default logger discards its output.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use.
package api
