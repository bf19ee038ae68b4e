package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/cli"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/storage"
)

// main is the application entry point.
// It delegates execution to runMain so that deferred calls (like closing the
// log file) run before the process terminates.
func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain manages the application lifecycle and exit codes.
func runMain(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// app carries the flag values and the resolved settings shared by all commands.
type app struct {
	configPath string
	dataFile   string
	format     string
	lang       string
	noColor    bool
	debug      bool

	settings  *config.Settings
	logCloser io.Closer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppCommand,
		Short:         config.CmdShortRoot,
		Version:       config.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSession(cmd)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf(config.MsgVersionOutput,
		config.AppName, config.Version, runtime.GOOS, runtime.GOARCH))

	f := root.PersistentFlags()
	f.StringVarP(&a.configPath, config.FlagConfig, "c", "", config.FlagDescConfig)
	f.StringVarP(&a.dataFile, config.FlagFile, "f", "", config.FlagDescFile)
	f.StringVar(&a.format, config.FlagFormat, "", config.FlagDescFormat)
	f.StringVar(&a.lang, config.FlagLang, "", config.FlagDescLang)
	f.BoolVar(&a.noColor, config.FlagNoColor, false, config.FlagDescNoColor)
	f.BoolVar(&a.debug, config.FlagDebug, false, config.FlagDescDebug)

	root.AddCommand(
		listCommand(a),
		birthdaysCommand(a),
		exportCommand(a),
		importCommand(a),
	)
	return root
}

// setup configures logging and resolves settings. Flags win over the
// settings file and the environment.
func (a *app) setup(cmd *cobra.Command) error {
	a.logCloser = setupLogging(a.debug)
	logStartupInfo()

	s, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed(config.FlagFile) {
		s.DataFile = a.dataFile
	}
	if flags.Changed(config.FlagFormat) {
		s.Format = a.format
	}
	if flags.Changed(config.FlagLang) {
		s.Language = a.lang
	}
	if flags.Changed(config.FlagNoColor) {
		s.NoColor = a.noColor
	}
	a.settings = s
	return nil
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close() // Best effort close
	}
}

// load opens the configured store and reads the book from it.
func (a *app) load(ctx context.Context) (storage.Store, *addressbook.AddressBook, error) {
	store, err := storage.Open(a.settings.DataFile, a.settings.Format)
	if err != nil {
		return nil, nil, err
	}
	book, err := store.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return store, book, nil
}

func (a *app) session(cmd *cobra.Command, book *addressbook.AddressBook, store storage.Store) *cli.Session {
	return cli.NewSession(book, store, cmd.InOrStdin(), cmd.OutOrStdout(), cli.Options{
		Language: a.settings.Language,
		NoColor:  a.settings.NoColor,
	})
}

// runSession starts the interactive loop. The book is saved when it ends.
func (a *app) runSession(cmd *cobra.Command) error {
	store, book, err := a.load(cmd.Context())
	if err != nil {
		return err
	}
	return a.session(cmd, book, store).Run(cmd.Context())
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyDate, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
// Logs go to a file in the user's cache directory; stdout belongs to the
// interactive session, so stderr only receives them in debug mode.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if debugMode {
		writers = append(writers, os.Stderr)
	}

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	var w io.Writer = io.Discard
	if len(writers) > 0 {
		w = io.MultiWriter(writers...)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
