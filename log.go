package hashindex

import (
	log "github.com/sirupsen/logrus"
)

// logger is the side channel diagnostics from failed persistence and
// resize operations are written to. It defaults to logrus's standard
// logger, tagged with a "component" field so callers embedding this
// package alongside their own logging can filter on it.
var logger log.FieldLogger = log.StandardLogger()

// SetLogger overrides the diagnostic side channel. Passing nil restores
// the default (logrus's standard logger).
func SetLogger(l log.FieldLogger) {
	if l == nil {
		logger = log.StandardLogger()
		return
	}
	logger = l
}

func warnf(format string, args ...interface{}) {
	logger.WithField("component", "hashindex").Warnf(format, args...)
}
