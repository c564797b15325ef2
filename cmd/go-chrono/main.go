package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-chrono/internal/calendar"
	"github.com/tartampluch/go-chrono/internal/chrono"
	"github.com/tartampluch/go-chrono/internal/config"
	"github.com/tartampluch/go-chrono/internal/locale"
)

// main is the application entry point.
// It delegates execution to runMain so that deferred calls run before exit.
func main() {
	os.Exit(runMain())
}

// runMain executes the root command. Failures are logged, never turned into
// a non-zero exit: the examples are informational.
func runMain() int {
	cmd := newRootCommand(os.Stdout, clockwork.NewRealClock())
	if err := cmd.Execute(); err != nil {
		slog.Error(config.ErrCommandFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// newRootCommand wires the CLI. The clock is the only source of "now".
func newRootCommand(out io.Writer, clock chrono.Clock) *cobra.Command {
	var (
		debugMode bool
		tz        string
	)

	root := &cobra.Command{
		Use:           config.CmdName,
		Short:         config.CmdShortRoot,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), debugMode)
			logStartupInfo()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := chrono.Now(clock)
			report(out, now, tz, loadLocalizers())
			return writeCalendar(out, now, chrono.FromSeconds(config.DemoSpanHours*3600))
		},
	}
	root.SetOut(out)

	root.PersistentFlags().BoolVar(&debugMode, config.FlagDebug, false, config.FlagDescDebug)
	root.Flags().StringVar(&tz, config.FlagTimezone, config.DemoOffset, config.FlagDescTimezone)

	root.AddCommand(&cobra.Command{
		Use:   config.CmdVersion,
		Short: config.CmdShortVersion,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	})

	return root
}

// localizers holds the English and French renderers used by the report.
type localizers struct {
	en, fr *locale.Localizer
}

// loadLocalizers falls back to nil renderers (compact spans) when the catalog is unavailable.
func loadLocalizers() localizers {
	cat, err := locale.Load()
	if err != nil {
		slog.Error(config.ErrCatalogMissing,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyError, err,
		)
		return localizers{}
	}
	return localizers{
		en: cat.Localizer(config.DefaultLanguage),
		fr: cat.Localizer(config.DemoLangFrench),
	}
}

// report prints the worked examples. Every failure is printed in place and
// the report carries on.
func report(out io.Writer, now chrono.Instant, tz string, loc localizers) {
	failed := func(step string, err error) {
		fmt.Fprintf(out, config.LineFailed, step, kindOf(err))
		slog.Error(config.ErrExampleFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeySection, step,
			config.LogKeyError, err,
		)
	}

	if s, err := now.Format(config.PatternDateTime); err != nil {
		failed(config.StepFormat, err)
	} else {
		fmt.Fprintf(out, config.LineUTC, s)
	}

	if s, err := now.FormatWithTimezone(config.PatternDateTime, tz); err != nil {
		fmt.Fprintf(out, config.LineBadZone, tz, kindOf(err))
	} else {
		fmt.Fprintf(out, config.LineZoned, tz, s)
	}

	if s, err := now.ToTimezone(tz); err != nil {
		fmt.Fprintf(out, config.LineBadZone, tz, kindOf(err))
	} else {
		fmt.Fprintf(out, config.LineToTimezone, s)
	}

	if ts, err := now.Timestamp(); err != nil {
		failed(config.StepTimestamp, err)
	} else {
		fmt.Fprintf(out, config.LineTimestamp, ts)
	}

	duration := chrono.FromSeconds(config.DemoSpanHours * 3600)
	if s, err := now.AddDuration(duration).Format(config.PatternDateTime); err != nil {
		failed(config.StepFormat, err)
	} else {
		fmt.Fprintf(out, config.LineAfter, loc.en.Span(duration), s)
	}
	if s, err := now.SubDuration(duration).Format(config.PatternDateTime); err != nil {
		failed(config.StepFormat, err)
	} else {
		fmt.Fprintf(out, config.LineBefore, loc.en.Span(duration), s)
	}

	if m, err := duration.Mul(config.DemoMulFactor); err != nil {
		failed(config.StepArith, err)
	} else {
		fmt.Fprintf(out, config.LineMul, config.DemoMulFactor, m.AsSeconds())
	}
	if d, err := duration.Div(config.DemoDivisor); err != nil {
		failed(config.StepArith, err)
	} else {
		fmt.Fprintf(out, config.LineDiv, config.DemoDivisor, d.AsSeconds())
	}

	parsed, err := chrono.ParseSpan(config.DemoSpanInput)
	if err != nil {
		failed(config.StepParse, err)
	} else {
		fmt.Fprintf(out, config.LineParsed, config.DemoSpanInput, parsed.AsSeconds(), parsed)
		fmt.Fprintf(out, config.LineLocalized, config.DefaultLanguage, loc.en.Span(parsed))
		fmt.Fprintf(out, config.LineLocalized, config.DemoLangFrench, loc.fr.Span(parsed))
	}

	precise := chrono.FromMillis(config.DemoTruncMillis)
	fmt.Fprintf(out, config.LineTruncated, precise, precise.TruncateToSeconds())

	if text, err := now.Format(config.PatternOffset); err != nil {
		failed(config.StepFormat, err)
	} else if back, err := chrono.ParseAny(text); err != nil {
		failed(config.StepParse, err)
	} else {
		fmt.Fprintf(out, config.LineRoundTrip, text, back)
	}

	if _, err := now.FormatWithTimezone(config.PatternDateTime, config.DemoBadOffset); err != nil {
		fmt.Fprintf(out, config.LineBadZone, config.DemoBadOffset, kindOf(err))
	}
	if _, err := duration.Div(0); err != nil {
		fmt.Fprintf(out, config.LineDivZero, duration, kindOf(err))
	}
}

// writeCalendar exports a window starting now as iCalendar, reads it back
// and prints both.
func writeCalendar(out io.Writer, now chrono.Instant, length chrono.Span) error {
	data, err := calendar.Encode(now, calendar.Event(config.DemoSummary, now, length))
	if err != nil {
		return err
	}

	windows, err := calendar.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	for _, w := range windows {
		start, err := w.Start.Format(config.PatternDateTime)
		if err != nil {
			return err
		}
		end, err := w.End().Format(config.PatternDateTime)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, config.LineWindow, w.Summary, start, end, w.Length.ISO8601())
	}

	_, err = out.Write(data)
	return err
}

// kindOf reduces err to its error kind, so that output does not depend on
// the wording of the underlying parser diagnostics.
func kindOf(err error) error {
	var te *chrono.TimeError
	if errors.As(err, &te) {
		return te.Kind
	}
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}

// printVersion outputs the build information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		config.Commit,
		config.Date,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger. Logs go to w so that
// stdout only carries the examples.
func setupLogging(w io.Writer, debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))
}
