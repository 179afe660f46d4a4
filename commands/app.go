package commands

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"examfit/api"
	"examfit/session"
)

// App bundles the dependencies every command needs: the backend client, the
// session store and the terminal streams.
type App struct {
	Client  *api.Client
	Session session.Store
	Log     *logrus.Logger
	In      io.Reader
	Out     io.Writer
}

// fail reports a command error the way the portal surfaces it: a single
// notification, no retry. Session expiry gets a login hint.
func (a *App) fail(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return fmt.Errorf("session expired, run `examfit auth login` and try again")
	}
	return err
}
