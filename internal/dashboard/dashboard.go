// Package dashboard implements the role-specific interactive screens. Each
// dashboard fetches its resources on entry, keeps them as plain refetchable
// state, and re-reads the affected resource after every successful write.
package dashboard

import (
	"errors"

	"github.com/RohitArisankala/Joblens/internal/api"
)

// Action tells the main loop what to do when a dashboard hands control back.
type Action int

const (
	ActionNone Action = iota
	ActionLogout
	ActionQuit
)

// errText prefers the backend's detail message over the transport wrapping.
func errText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return err.Error()
}

func sessionExpired(err error) bool {
	return errors.Is(err, api.ErrUnauthorized)
}
