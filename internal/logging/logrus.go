package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var _ Logger = LogrusLogger{}

type LogrusLogger struct{ L *logrus.Logger }

func (l LogrusLogger) Debug(msg string, f Fields) { l.L.WithFields(logrus.Fields(f)).Debug(msg) }
func (l LogrusLogger) Info(msg string, f Fields)  { l.L.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f Fields)  { l.L.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f Fields) { l.L.WithFields(logrus.Fields(f)).Error(msg) }

func newLogrus(level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l
}
