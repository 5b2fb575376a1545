package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		def    string
		want   string
		prompt string
	}{
		{"answer", "me@example.com\n", "", "me@example.com", "Email: "},
		{"trimmed", "  me@example.com \r\n", "", "me@example.com", "Email: "},
		{"default used", "\n", "last@example.com", "last@example.com", "Email [last@example.com]: "},
		{"default overridden", "new@example.com\n", "last@example.com", "new@example.com", "Email [last@example.com]: "},
		{"last line without newline", "tail", "", "tail", "Email: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(bufio.NewReader(strings.NewReader(tt.input)), "Email", tt.def, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.prompt, out.String())
		})
	}
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "Email", "x", &out)
	assert.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)
	assert.Equal(t, "Password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("not a terminal") }
	_, err = GetPassword(&out)
	assert.ErrorContains(t, err, "read password: not a terminal")
}
