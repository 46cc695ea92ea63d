package infrastructure

import (
	"github.com/rs/zerolog"
)

// LogNotifier forwards export outcome notifications to the process log.
// The transient toast channel of a UI maps onto log events here.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notifier").Logger()}
}

func (n *LogNotifier) Notify(level, message string) {
	switch level {
	case "error":
		n.log.Error().Msg(message)
	default:
		n.log.Info().Msg(message)
	}
}
