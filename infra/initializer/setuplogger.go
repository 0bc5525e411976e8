package initializer

import (
	"log/slog"
	"os"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

func setupLogger(cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levelStyle := func(label string, color lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(label).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
	}
	styles.Levels[log.ErrorLevel] = levelStyle("ERROR", errorTxtColor)
	styles.Levels[log.WarnLevel] = levelStyle("WARN", warnTxtColor)
	styles.Levels[log.InfoLevel] = levelStyle("INFO", infoTxtColor)
	styles.Levels[log.DebugLevel] = levelStyle("DEBUG", debugTxtColor)

	// Highlight the attributes every ledger log line carries.
	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":               errorTxtColor,
		"account_number":      infoTxtColor,
		"from_account_number": infoTxtColor,
		"to_account_number":   infoTxtColor,
		"amount":              warnTxtColor,
		"customer_id":         infoTxtColor,
		"email":               debugTxtColor,
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formattersMap := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"text":   log.TextFormatter,
		"logfmt": log.LogfmtFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
