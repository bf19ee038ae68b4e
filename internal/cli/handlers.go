package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// ErrMissingArgument is returned when a command receives too few arguments.
var ErrMissingArgument = errors.New(config.ErrMissingArgument)

// Reply is the successful outcome of a command.
type Reply struct {
	Tone Tone
	Text string
}

// handler runs one command against the session book.
type handler func(s *Session, args []string) (Reply, error)

// handlers maps command words to their implementation. Exit commands are
// handled by the session loop.
var handlers = map[string]handler{
	config.CmdHello:        hello,
	config.CmdHelp:         help,
	config.CmdAdd:          addContact,
	config.CmdChange:       changeContact,
	config.CmdPhone:        showPhone,
	config.CmdAll:          showAll,
	config.CmdDelete:       deleteContact,
	config.CmdDeletePhone:  deletePhone,
	config.CmdAddBirthday:  addBirthday,
	config.CmdShowBirthday: showBirthday,
	config.CmdBirthdays:    birthdays,
}

func requireArgs(cmd string, args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("%w: %s expects %d, got %d", ErrMissingArgument, cmd, n, len(args))
	}
	return nil
}

// lookup resolves a user-typed name to its Record.
func (s *Session) lookup(raw string) (*addressbook.Record, error) {
	name, err := addressbook.ParseName(raw)
	if err != nil {
		return nil, err
	}
	r, ok := s.Book.Find(name.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", addressbook.ErrNotFound, name)
	}
	return r, nil
}

// fetchOrCreate returns the existing Record for raw, or adds a new one.
// created reports which case happened.
func (s *Session) fetchOrCreate(raw string) (r *addressbook.Record, created bool, err error) {
	r, err = s.lookup(raw)
	if err == nil {
		return r, false, nil
	}
	if !errors.Is(err, addressbook.ErrNotFound) {
		return nil, false, err
	}
	r, err = addressbook.NewRecord(raw)
	if err != nil {
		return nil, false, err
	}
	s.Book.AddRecord(r)
	return r, true, nil
}

func hello(s *Session, _ []string) (Reply, error) {
	return Reply{Text: s.tr.Msg(config.TKeyHello, nil)}, nil
}

func help(s *Session, _ []string) (Reply, error) {
	return Reply{Tone: ToneAdd, Text: s.tr.Msg(config.TKeyHelpText, nil)}, nil
}

// addContact creates the contact if needed and appends the optional phone.
// The phone is validated before anything is created.
func addContact(s *Session, args []string) (Reply, error) {
	if err := requireArgs(config.CmdAdd, args, 1); err != nil {
		return Reply{}, err
	}
	if len(args) > 1 {
		if _, err := addressbook.ParsePhone(args[1]); err != nil {
			return Reply{}, err
		}
	}

	r, created, err := s.fetchOrCreate(args[0])
	if err != nil {
		return Reply{}, err
	}
	if len(args) > 1 {
		if err := r.AddPhone(args[1]); err != nil {
			return Reply{}, err
		}
	}

	key := config.TKeyContactUpdated
	if created {
		key = config.TKeyContactAdded
	}
	return Reply{Tone: ToneAdd, Text: s.tr.Msg(key, nil)}, nil
}

func changeContact(s *Session, args []string) (Reply, error) {
	if err := requireArgs(config.CmdChange, args, 3); err != nil {
		return Reply{}, err
	}
	r, err := s.lookup(args[0])
	if err != nil {
		return Reply{}, err
	}
	ok, err := r.EditPhone(args[1], args[2])
	if err != nil {
		return Reply{}, err
	}
	if !ok {
		return Reply{Tone: ToneWarn, Text: s.tr.Msg(config.TKeyOldPhoneMissing, nil)}, nil
	}
	return Reply{Tone: ToneChange, Text: s.tr.Msg(config.TKeyContactUpdated, nil)}, nil
}

func showPhone(s *Session, args []string) (Reply, error) {
	if err := requireArgs(config.CmdPhone, args, 1); err != nil {
		return Reply{}, err
	}
	r, err := s.lookup(args[0])
	if err != nil {
		return Reply{}, err
	}
	phones := r.PhoneList()
	if phones == "" {
		phones = s.tr.Msg(config.TKeyNoPhones, nil)
	}
	return Reply{Text: r.Name().String() + ": " + phones}, nil
}

func showAll(s *Session, _ []string) (Reply, error) {
	return Reply{Text: s.contactsTable()}, nil
}

func deleteContact(s *Session, args []string) (Reply, error) {
	if err := requireArgs(config.CmdDelete, args, 1); err != nil {
		return Reply{}, err
	}
	r, err := s.lookup(args[0])
	if err != nil {
		return Reply{}, err
	}
	name := r.Name().String()
	s.Book.Delete(name)
	return Reply{Tone: ToneDelete, Text: s.tr.Msg(config.TKeyContactDeleted, map[string]any{"Name": name})}, nil
}

func deletePhone(s *Session, args []string) (Reply, error) {
	if err := requireArgs(config.CmdDeletePhone, args, 2); err != nil {
		return Reply{}, err
	}
	r, err := s.lookup(args[0])
	if err != nil {
		return Reply{}, err
	}
	data := map[string]any{"Name": r.Name().String(), "Phone": args[1]}
	if !r.DeletePhone(args[1]) {
		return Reply{Tone: ToneWarn, Text: s.tr.Msg(config.TKeyPhoneMissing, data)}, nil
	}
	return Reply{Tone: ToneDelete, Text: s.tr.Msg(config.TKeyPhoneDeleted, data)}, nil
}

// addBirthday creates the contact if needed. The date is validated first.
func addBirthday(s *Session, args []string) (Reply, error) {
	if err := requireArgs(config.CmdAddBirthday, args, 2); err != nil {
		return Reply{}, err
	}
	if _, err := addressbook.ParseBirthday(args[1]); err != nil {
		return Reply{}, err
	}
	r, _, err := s.fetchOrCreate(args[0])
	if err != nil {
		return Reply{}, err
	}
	if err := r.AddBirthday(args[1]); err != nil {
		return Reply{}, err
	}
	return Reply{Tone: ToneAdd, Text: s.tr.Msg(config.TKeyBirthdaySet, map[string]any{"Name": r.Name().String()})}, nil
}

func showBirthday(s *Session, args []string) (Reply, error) {
	if err := requireArgs(config.CmdShowBirthday, args, 1); err != nil {
		return Reply{}, err
	}
	r, err := s.lookup(args[0])
	if err != nil {
		return Reply{}, err
	}
	name := r.Name().String()
	b, ok := r.Birthday()
	if !ok {
		return Reply{Text: s.tr.Msg(config.TKeyBirthdayUnset, map[string]any{"Name": name})}, nil
	}
	return Reply{Text: s.tr.Msg(config.TKeyBirthdayShow, map[string]any{"Name": name, "Date": b.String()})}, nil
}

func birthdays(s *Session, _ []string) (Reply, error) {
	upcoming := s.Book.UpcomingBirthdays(s.Clock.Now())
	if len(upcoming) == 0 {
		return Reply{Text: s.tr.Msg(config.TKeyNoUpcoming, nil)}, nil
	}

	lines := make([]string, 0, len(upcoming))
	for _, u := range upcoming {
		phone := u.Phone
		if phone == config.NoPhone {
			phone = s.tr.Msg(config.TKeyNoPhone, nil)
		}
		lines = append(lines, s.tr.Msg(config.TKeyUpcomingLine, map[string]any{
			"Name":  s.styles.Name.Render(fmt.Sprintf("%-*s", config.TableNameWidth, u.Name)),
			"Phone": s.styles.Phone.Render(phone),
			"Date":  s.styles.Date.Render(u.CongratulationDate.Format(config.BirthdayLayout)),
		}))
	}
	return Reply{Text: strings.Join(lines, "\n")}, nil
}

// contactsTable renders every contact as a Name / Birthday / Phones table.
func (s *Session) contactsTable() string {
	if s.Book.Len() == 0 {
		return s.tr.Msg(config.TKeyNoContacts, nil)
	}

	var b strings.Builder
	header := fmt.Sprintf("%-*s %-*s %s",
		config.TableNameWidth, s.tr.Msg(config.TKeyColName, nil),
		config.TableBirthdayWidth, s.tr.Msg(config.TKeyColBirthday, nil),
		s.tr.Msg(config.TKeyColPhones, nil))
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(config.TableRuler, len([]rune(header))+config.TableRulerPadding))

	for _, r := range s.Book.Records() {
		birthday := s.tr.Msg(config.TKeyNoBirthday, nil)
		if bd, ok := r.Birthday(); ok {
			birthday = bd.String()
		}
		phones := r.PhoneList()
		if phones == "" {
			phones = s.tr.Msg(config.TKeyNoPhones, nil)
		}
		b.WriteString("\n")
		b.WriteString(s.styles.Name.Render(fmt.Sprintf("%-*s", config.TableNameWidth, r.Name())))
		b.WriteString(" ")
		b.WriteString(s.styles.Date.Render(fmt.Sprintf("%-*s", config.TableBirthdayWidth, birthday)))
		b.WriteString(" ")
		b.WriteString(s.styles.Phone.Render(phones))
	}
	return b.String()
}
