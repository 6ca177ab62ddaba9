package middleware

import "github.com/junction-http/junction"

// Noop passes every request along untouched. Constructors return it
// when handed configuration that disables them.
func Noop(*junction.Request, *junction.Context) (*junction.Response, error) {
	return nil, nil
}
