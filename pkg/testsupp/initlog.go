package testsupp

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/dusted-go/logging/prettylog"
	slogformatter "github.com/samber/slog-formatter"
)

// InitLog routes the default logger to stdout at debug level, formatted the
// same way as the rmcl binary.
func InitLog(t *testing.T) {
	t.Helper()

	formatter := slogformatter.NewFormatterHandler(
		slogformatter.FormatByType(func(s []string) slog.Value {
			return slog.StringValue(strings.Join(s, ","))
		}),
	)

	slog.SetDefault(slog.New(formatter(
		prettylog.New(&slog.HandlerOptions{Level: slog.LevelDebug},
			prettylog.WithDestinationWriter(os.Stdout),
		),
	)))
}
