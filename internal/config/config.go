package config

import "time"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName = "Go Chrono"
	AppID   = "com.github.tartampluch.go-chrono"
	CmdName = "go-chrono"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
)

// -----------------------------------------------------------------------------
// CLI Commands & Descriptions
// -----------------------------------------------------------------------------

const (
	CmdVersion       = "version"
	CmdShortRoot     = "Print worked examples of instants and spans"
	CmdShortVersion  = "Show application version and exit"
	MsgVersionOutput = "%s version %s (%s, built %s, %s/%s)\n"

	FlagDebug        = "debug"
	FlagDescDebug    = "Enable debug logging on stderr"
	FlagTimezone     = "tz"
	FlagDescTimezone = "Fixed offset (+HH:MM) used by the zoned examples"
)

// -----------------------------------------------------------------------------
// strftime Patterns
// -----------------------------------------------------------------------------

const (
	// PatternDateTime is the plain UTC rendering used by the demo.
	PatternDateTime = "%Y-%m-%d %H:%M:%S"

	// PatternDisplay is used by ToTimezone when no pattern is given.
	PatternDisplay = "%Y-%m-%d %H:%M:%S %z"

	// Offset-aware patterns tried by ParseAny, in order.
	PatternOffset         = "%Y-%m-%d %H:%M:%S %z"
	PatternOffsetNanos    = "%Y-%m-%d %H:%M:%S.%f %z"
	PatternISOOffset      = "%Y-%m-%dT%H:%M:%S%z"
	PatternISOOffsetNanos = "%Y-%m-%dT%H:%M:%S.%f%z"

	// LayoutOffset is the Go reference layout for a fixed ±HH:MM offset.
	LayoutOffset = "-07:00"

	// LayoutRFC3339 is the last resort of ParseAny and the text encoding of an Instant.
	LayoutRFC3339 = time.RFC3339Nano

	// MaxOffset bounds a fixed offset (exclusive).
	MaxOffset = 24 * time.Hour

	// NanosDigits is the width of the %f rendering.
	NanosDigits = 9
)

// -----------------------------------------------------------------------------
// Span Units
// -----------------------------------------------------------------------------

const (
	UnitYear        = "y"
	UnitWeek        = "w"
	UnitDay         = "d"
	UnitHour        = "h"
	UnitMinute      = "m"
	UnitSecond      = "s"
	UnitMillisecond = "ms"
	UnitMicrosecond = "us"
	UnitNanosecond  = "ns"

	Day  = 24 * time.Hour
	Week = 7 * Day
	Year = 365 * Day // Calendar years are not modelled; a year is 365 days.

	// SpanSeparator joins the components of a human-readable span.
	SpanSeparator = " "
	SpanZero      = "0s"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeySpanYear        = "span_year"
	TKeySpanWeek        = "span_week"
	TKeySpanDay         = "span_day"
	TKeySpanHour        = "span_hour"
	TKeySpanMinute      = "span_minute"
	TKeySpanSecond      = "span_second"
	TKeySpanMillisecond = "span_millisecond"
	TKeySpanMicrosecond = "span_microsecond"
	TKeySpanNanosecond  = "span_nanosecond"

	TemplateKeyCount = "Count"

	DefaultLanguage = "en"
	LocaleDir       = "locales"
	LocalePrefix    = "active."
	LocaleExt       = ".json"
	LocaleFormat    = "json"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Chrono//Calendar//EN"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gochrono"

	PropUID      = "UID"
	PropSummary  = "SUMMARY"
	PropDTStart  = "DTSTART"
	PropDTStamp  = "DTSTAMP"
	PropDuration = "DURATION"
	PropVersion  = "VERSION"
	PropProdid   = "PRODID"
	PropCalScale = "CALSCALE"
	PropMethod   = "METHOD"

	FormatUIDInput = "%s|%s|%d"

	// StubVCalendar is the minimal valid iCalendar object used when no events are given.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// SQL
// -----------------------------------------------------------------------------

const (
	SQLDriver = "sqlite3"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidTime           = "invalid time"
	ErrInvalidTimeFormat     = "invalid time format"
	ErrInvalidTimezoneFormat = "invalid timezone format"
	ErrParse                 = "parse error"
	ErrDivisionByZero        = "division by zero"
	ErrUnderflow             = "span underflow"
	ErrOverflow              = "span overflow"

	ErrUnsupportedToken = "unsupported strftime token"
	ErrDanglingPercent  = "pattern ends with a lone %"
	ErrNanosNoDot       = "%f must follow a literal '.'"
	ErrLiteralAmbiguous = "literal text cannot be parsed unambiguously"
	ErrOffsetRange      = "offset must be strictly between -24:00 and +24:00"
	ErrEmptyInput       = "empty input"
	ErrMissingUnit      = "number without unit"
	ErrMissingNumber    = "unit without number"
	ErrUnknownUnit      = "unknown unit"
	ErrScanType         = "unsupported scan type"
	ErrScanNull         = "cannot scan NULL"
	ErrYAMLKind         = "span must be a YAML scalar"

	ErrICalEncode     = "failed to encode iCalendar data"
	ErrICalDecode     = "failed to decode iCalendar data"
	ErrICalMissing    = "event is missing a property"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrExampleFailed  = "example failed"
	ErrCommandFailed  = "command failed"
	ErrCatalogMissing = "locale catalog unavailable"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application finished"
	MsgParseExhaust  = "No fallback pattern matched"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgCalendarBuilt = "Calendar encoded"
)

// -----------------------------------------------------------------------------
// Demo Output
// -----------------------------------------------------------------------------

const (
	DemoOffset      = "+05:30"
	DemoBadOffset   = "not-a-tz"
	DemoSpanInput   = "1h 30m"
	DemoSummary     = "Next two hours"
	DemoLangFrench  = "fr"
	DemoSpanHours   = 2
	DemoMulFactor   = 3
	DemoDivisor     = 2
	DemoTruncMillis = 1500

	LineUTC        = "Current UTC time: %s\n"
	LineZoned      = "Current time in %s timezone: %s\n"
	LineToTimezone = "Current time with offset: %s\n"
	LineTimestamp  = "Current timestamp: %d\n"
	LineAfter      = "Time after %s: %s\n"
	LineBefore     = "Time %s ago: %s\n"
	LineMul        = "Duration multiplied by %d: %d seconds\n"
	LineDiv        = "Duration divided by %d: %d seconds\n"
	LineParsed     = "Parsed %q: %d seconds (%s)\n"
	LineTruncated  = "%s truncated to seconds: %s\n"
	LineLocalized  = "Localized (%s): %s\n"
	LineRoundTrip  = "Round trip via ParseAny: %s -> %s\n"
	LineBadZone    = "Error formatting time in %q timezone: %v\n"
	LineDivZero    = "Error dividing %s by zero: %v\n"
	LineFailed     = "Error %s: %v\n"
	LineWindow     = "Window %q: %s -> %s (%s)\n"

	StepFormat    = "formatting time"
	StepTimestamp = "getting timestamp"
	StepArith     = "computing span"
	StepParse     = "parsing"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyInput     = "input"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyEvents    = "events"
	LogKeySection   = "section"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompChrono   = "chrono"
	CompLocale   = "locale"
	CompCalendar = "calendar"
)
