package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantCmd  string
		wantArgs []string
	}{
		{"Empty", "", "", nil},
		{"Blank", " \t ", "", nil},
		{"Command only", "hello", "hello", []string{}},
		{"Command is lower-cased", "ADD Alice 1234567890", "add", []string{"Alice", "1234567890"}},
		{"Extra whitespace", "  change  bob\t1 2  ", "change", []string{"bob", "1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := parseInput(tt.line)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
