package mailtrap

import "github.com/mailtrap/mailtrap-go/internal/api"

// Optional is a presence-tagged value used where a falsy value must still
// reach the wire, e.g. Unsubscribed: Opt(false). The zero Optional is unset
// and is omitted from request bodies.
type Optional[T any] = api.Optional[T]

// Opt returns a set Optional holding v.
func Opt[T any](v T) Optional[T] {
	return api.Opt(v)
}
