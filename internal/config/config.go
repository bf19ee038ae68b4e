package config

import (
	"io/fs"
)

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
	AppName          = "Go Address Book"
	AppID            = "com.github.tartampluch.go-addressbook"
	AppCommand       = "go-addressbook"
	LogFileName      = "app.log"
	SnapshotFileName = "addressbook.json"
	SettingsFileName = "config.yaml"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs and snapshots, which hold personal data.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// TempFilePattern is used for the write-then-rename snapshot replacement.
	TempFilePattern = ".addressbook-*.tmp"
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagConfig   = "config"
	FlagFile     = "file"
	FlagFormat   = "format"
	FlagLang     = "lang"
	FlagNoColor  = "no-color"
	FlagDebug    = "debug"
	FlagDate     = "date"
	FlagReminder = "reminder"

	FlagDescConfig   = "Path to a YAML settings file"
	FlagDescFile     = "Path to the address book snapshot"
	FlagDescFormat   = "Snapshot format (json, yaml, vcf, sqlite); inferred from the extension when empty"
	FlagDescLang     = "Interface language (en, fr)"
	FlagDescNoColor  = "Disable colored output"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescDate     = "Reference date (DD.MM.YYYY) instead of today"
	FlagDescReminder = "ISO-8601 alarm trigger for exported events (e.g. -P1D)"

	CmdShortRoot      = "Interactive address book with birthday reminders"
	CmdUseList        = "list"
	CmdShortList      = "Print all contacts"
	CmdUseBirthdays   = "birthdays"
	CmdShortBirthdays = "Print the birthdays of the coming week"
	CmdUseExport      = "export <path>"
	CmdShortExport    = "Write the address book to another file (.json, .yaml, .vcf, .db, .ics)"
	CmdUseImport      = "import <path>"
	CmdShortImport    = "Merge contacts from another snapshot into the address book"
	MsgVersionOutput  = "%s version %s (%s/%s)\n"
	MsgExported       = "Exported %d contacts to %s\n"
	MsgImported       = "Imported %d contacts from %s\n"
)

// -----------------------------------------------------------------------------
// Snapshot Formats
// -----------------------------------------------------------------------------

const (
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatVCard  = "vcf"
	FormatSQLite = "sqlite"
	FormatICal   = "ics"

	ExtJSON   = ".json"
	ExtYAML   = ".yaml"
	ExtYML    = ".yml"
	ExtVCF    = ".vcf"
	ExtVCard  = ".vcard"
	ExtDB     = ".db"
	ExtSQLite = ".sqlite"
	ExtICS    = ".ics"

	SQLiteDriver = "sqlite"
	JSONIndent   = "    "
	YAMLIndent   = 2
)

// -----------------------------------------------------------------------------
// Domain Rules & Display Formats
// -----------------------------------------------------------------------------

const (
	// PhoneDigits is the exact length of a valid phone number.
	PhoneDigits = 10

	// BirthdayLayout is the user-facing and persisted date format (DD.MM.YYYY).
	BirthdayLayout = "02.01.2006"

	// BirthdayPattern guards the layout before the calendar round-trip check.
	BirthdayPattern = `^(0[1-9]|[12]\d|3[01])\.(0[1-9]|1[0-2])\.\d{4}$`

	// UpcomingWindowDays is the size of the birthday window, today included.
	UpcomingWindowDays = 7

	NoPhone      = "No phone"
	NoPhones     = "No phones"
	NoBirthday   = "No birthday"
	PhoneJoin    = "; "
	RecordFormat = "Name: %s, Phones: %s, Birthday: %s"

	DefaultLeapYear = 2000 // Leap year fallback for year-less vCard dates like --02-29
	DefaultLanguage = "en"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdHelp         = "help"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdDelete       = "delete"
	CmdDeletePhone  = "delete-phone"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdClose        = "close"
	CmdExit         = "exit"
	CmdQuit         = "quit"

	TableNameWidth     = 15
	TableBirthdayWidth = 15
	TableRulerPadding  = 4
	TableRuler         = "-"
)

// -----------------------------------------------------------------------------
// Output Colors (lipgloss)
// -----------------------------------------------------------------------------

const (
	ColorAdd     = "#8BC34A"
	ColorChange  = "#2196F3"
	ColorDelete  = "#e53935"
	ColorWarn    = "#FFC107"
	ColorName    = "#FFC107"
	ColorPhone   = "#4db6ac"
	ColorDate    = "#ba68c8"
	ColorDefault = "#f2f2f2"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome         = "msg_welcome"
	TKeyHelpHint        = "msg_help_hint"
	TKeyPhonebook       = "msg_phonebook"
	TKeyPrompt          = "msg_prompt"
	TKeyHello           = "msg_hello"
	TKeyHelpText        = "msg_help_text"
	TKeyGoodbye         = "msg_goodbye"
	TKeyInvalidCommand  = "msg_invalid_command"
	TKeyContactAdded    = "msg_contact_added"
	TKeyContactUpdated  = "msg_contact_updated"
	TKeyOldPhoneMissing = "msg_old_phone_missing"
	TKeyPhoneDeleted    = "msg_phone_deleted"
	TKeyPhoneMissing    = "msg_phone_missing"
	TKeyContactDeleted  = "msg_contact_deleted"
	TKeyBirthdaySet     = "msg_birthday_set"
	TKeyBirthdayUnset   = "msg_birthday_unset"
	TKeyBirthdayShow    = "msg_birthday_show"
	TKeyNoUpcoming      = "msg_no_upcoming"
	TKeyUpcomingLine    = "msg_upcoming_line"
	TKeyNoContacts      = "msg_no_contacts"
	TKeyColName         = "col_name"
	TKeyColBirthday     = "col_birthday"
	TKeyColPhones       = "col_phones"
	TKeyNoPhones        = "lbl_no_phones"
	TKeyNoPhone         = "lbl_no_phone"
	TKeyNoBirthday      = "lbl_no_birthday"
	TKeyWarnValue       = "warn_value"
	TKeyWarnNotFound    = "warn_not_found"
	TKeyWarnMissingArg  = "warn_missing_argument"
	TKeyWarnSave        = "warn_save"
	TKeyEvtSummary      = "event_summary"     // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age" // Requires Name, Age
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Address Book//Calendar//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "goaddressbook"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardVersion = "4.0"

	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// UID Generation
	UIDSalt         = "go-addressbook-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	FallbackSummary    = "Birthday: %s"
	FallbackSummaryAge = "Birthday: %s (%d)"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidName     = "name must contain only letters"
	ErrInvalidPhone    = "phone number must be exactly 10 digits"
	ErrInvalidDate     = "invalid date format, use DD.MM.YYYY"
	ErrNotFound        = "contact not found"
	ErrMissingArgument = "not enough arguments"
	ErrFormatUnsupport = "unsupported snapshot format"
	ErrSnapshotRead    = "failed to read snapshot"
	ErrSnapshotDecode  = "failed to decode snapshot"
	ErrSnapshotEncode  = "failed to encode snapshot"
	ErrSnapshotWrite   = "failed to write snapshot"
	ErrSnapshotRecord  = "invalid contact in snapshot"
	ErrDBOpen          = "failed to open database"
	ErrDBQuery         = "database query failed"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrDateParse       = "unable to parse date"
	ErrSettingsRead    = "could not read settings"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrConfigDir       = "could not determine user config dir"
	ErrCreateDir       = "could not create app directory"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrInputRead       = "failed to read input"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgSnapshotLoaded = "Snapshot loaded"
	MsgSnapshotSaved  = "Snapshot saved"
	MsgSnapshotAbsent = "No snapshot found, starting with an empty address book"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedPhone   = "Skipping invalid phone number"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgGenSuccess     = "Calendar generation successful"
	MsgCommand        = "Command executed"
	MsgCommandFailed  = "Command failed"
	MsgSessionEnd     = "Session ended"
	MsgSettingsLoaded = "Settings resolved"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyFormat    = "format"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyArgs      = "args"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_contacts"
	LogKeyFound     = "birthdays_found"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "build_date"
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
	CompCLI      = "cli"
	CompStorage  = "storage"
	CompCalendar = "calendar"
	CompI18n     = "i18n"
	CompConfig   = "config"
)
