package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds the command's console logger. Logs go to stderr so
// stdout stays clean for the report output.
func NewLogger(cfg LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(consoleWriter(cfg.NoColor)).Level(level).With().Timestamp().Logger()
}

func consoleWriter(noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
		FormatLevel: func(i interface{}) string {
			lvl := strings.ToUpper(fmt.Sprintf("%s", i))
			if noColor {
				return levelTag(lvl)
			}
			switch lvl {
			case "DEBUG":
				return "\033[36m[DBG]\033[0m"
			case "INFO":
				return "\033[32m[INF]\033[0m"
			case "WARN":
				return "\033[33m[WRN]\033[0m"
			case "ERROR":
				return "\033[31m[ERR]\033[0m"
			case "FATAL":
				return "\033[35m[FTL]\033[0m"
			default:
				return fmt.Sprintf("[%s]", lvl)
			}
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
		FormatFieldValue: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
	}
}

func levelTag(lvl string) string {
	switch lvl {
	case "DEBUG":
		return "[DBG]"
	case "INFO":
		return "[INF]"
	case "WARN":
		return "[WRN]"
	case "ERROR":
		return "[ERR]"
	case "FATAL":
		return "[FTL]"
	default:
		return fmt.Sprintf("[%s]", lvl)
	}
}
