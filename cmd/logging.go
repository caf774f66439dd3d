package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// configureLogging applies the --verbosity flag to the global logger.
func configureLogging(w io.Writer) error {
	level, err := parseVerbosity(flagVerbosity)
	if err != nil {
		return err
	}
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return nil
}

func parseVerbosity(verbosity string) (log.Level, error) {
	switch verbosity {
	case "quiet":
		return log.ErrorLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown verbosity %q (want quiet, info or debug)", verbosity)
	}
}
