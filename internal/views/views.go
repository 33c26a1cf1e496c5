// Package views holds the console's two page orchestrators: the login state
// machine and the students list. The structs carry the view state the browser
// page is rendered from; the web layer adapts HTTP requests onto their
// methods. State is guarded by a per-view mutex because transient-message
// timers fire off the request path.
package views

import (
	"time"

	"github.com/school-management/sm-console/pkg/client/studentapi"
)

// Navigator moves the user between the console's pages.
type Navigator interface {
	ToLogin()
	ToStudents()
}

const (
	// DefaultMessageTTL is how long transient feedback stays visible.
	DefaultMessageTTL = 3 * time.Second
	// DefaultLogoutDelay is the pause between showing the session-expired
	// message and clearing the session.
	DefaultLogoutDelay = 2 * time.Second
)

func serverMessage(err error, fallback string) string {
	return studentapi.ServerMessage(err, fallback)
}

func isAuthError(err error) bool {
	return studentapi.IsAuthError(err)
}
