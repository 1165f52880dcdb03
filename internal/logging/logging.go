// Package logging builds the logrus logger used by the matmul command.
package logging

import (
	"io"

	"github.com/pavanmanishd/array/internal/config"
	"github.com/sirupsen/logrus"
)

// New returns a logger writing to out with the level and format taken
// from s.
func New(s config.Settings, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	if s.LogJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	l.SetLevel(s.LogLevel)
	return l
}
