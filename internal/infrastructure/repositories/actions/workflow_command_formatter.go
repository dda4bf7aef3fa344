package actions

import (
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// WorkflowCommandFormatter renders log entries as GitHub Actions workflow
// commands so they show up as annotations on the run summary.
type WorkflowCommandFormatter struct{}

// Format implements logger.Formatter.
func (f *WorkflowCommandFormatter) Format(entry *logger.Entry) ([]byte, error) {
	var command string
	switch entry.Level {
	case logger.PanicLevel, logger.FatalLevel, logger.ErrorLevel:
		command = "error"
	case logger.WarnLevel:
		command = "warning"
	case logger.InfoLevel:
		command = "notice"
	default:
		command = "debug"
	}
	return []byte(fmt.Sprintf("::%s::%s\n", command, escapeData(entry.Message))), nil
}

// escapeData escapes the characters GitHub treats specially in workflow command data.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

// NewLogger builds the process logger: workflow commands inside GitHub
// Actions, colored text with timestamps everywhere else.
func NewLogger() *logger.Logger {
	log := logger.New()
	log.SetOutput(os.Stderr)
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		log.SetFormatter(&WorkflowCommandFormatter{})
	} else {
		//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
		log.SetFormatter(&logger.TextFormatter{
			ForceColors:   true,
			FullTimestamp: true,
		})
	}
	if os.Getenv("DEBUG") == "true" {
		log.SetLevel(logger.DebugLevel)
	}
	return log
}
