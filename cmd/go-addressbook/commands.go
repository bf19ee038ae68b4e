package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/calendar"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/storage"
)

// fixedClock pins "today" for the birthdays command.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

func listCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseList,
		Short: config.CmdShortList,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, book, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			out, _ := a.session(cmd, book, store).Execute(config.CmdAll)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func birthdaysCommand(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   config.CmdUseBirthdays,
		Short: config.CmdShortBirthdays,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, book, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			s := a.session(cmd, book, store)
			if date != "" {
				ref, err := addressbook.ParseBirthday(date)
				if err != nil {
					return err
				}
				s.Clock = fixedClock{t: ref.Time()}
			}
			out, _ := s.Execute(config.CmdBirthdays)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&date, config.FlagDate, "", config.FlagDescDate)
	return cmd
}

// exportCommand writes the book to another snapshot format, or to an
// iCalendar feed for .ics targets.
func exportCommand(a *app) *cobra.Command {
	var reminder string

	cmd := &cobra.Command{
		Use:   config.CmdUseExport,
		Short: config.CmdShortExport,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			store, book, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			if storage.FormatOf(target) == config.FormatICal {
				if !cmd.Flags().Changed(config.FlagReminder) {
					reminder = a.settings.Reminder
				}
				gen := &calendar.Generator{
					Clock:         addressbook.RealClock{},
					Reminder:      reminder,
					FormatSummary: a.session(cmd, book, store).Translator().BirthdaySummary,
				}
				data, err := gen.Generate(book)
				if err != nil {
					return err
				}
				if err := os.WriteFile(target, data, config.FilePermUserRW); err != nil {
					return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
				}
			} else {
				dst, err := storage.Open(target, "")
				if err != nil {
					return err
				}
				if err := dst.Save(cmd.Context(), book); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), config.MsgExported, book.Len(), target)
			return err
		},
	}
	cmd.Flags().StringVar(&reminder, config.FlagReminder, "", config.FlagDescReminder)
	return cmd
}

// importCommand merges another snapshot into the book. Contacts with the
// same name are replaced in place; new ones are appended.
func importCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseImport,
		Short: config.CmdShortImport,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, book, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			src, err := storage.Open(args[0], "")
			if err != nil {
				return err
			}
			other, err := src.Load(cmd.Context())
			if err != nil {
				return err
			}

			for _, r := range other.Records() {
				book.AddRecord(r)
			}
			if err := store.Save(cmd.Context(), book); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), config.MsgImported, other.Len(), args[0])
			return err
		},
	}
}
