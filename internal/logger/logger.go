package logger

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Init adjusts its level once config is read.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

func Init(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.WithField("level", level).Warn("unknown LOG_LEVEL, using info")
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}

// FromCtx returns an entry tagged with the request id set by the requestid middleware.
func FromCtx(c *fiber.Ctx) *logrus.Entry {
	entry := logrus.NewEntry(Log)
	if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
		entry = entry.WithField("request_id", rid)
	}
	return entry
}
