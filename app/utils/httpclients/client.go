package httpclients

import (
	"time"

	"resty.dev/v3"
)

// NewClient builds a resty client shared by upstream integrations. Callers
// bound individual requests with their own context deadlines; the client
// timeout is only a backstop.
func NewClient(name string) *resty.Client {
	return resty.New().
		SetHeader("User-Agent", name).
		SetTimeout(30 * time.Second)
}
