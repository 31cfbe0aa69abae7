package logbuf

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyEmptyBuffer(t *testing.T) {
	e := NewExporter(afero.NewMemMapFs())

	msg, err := e.Copy(NewBuffer())
	require.NoError(t, err)
	assert.Equal(t, "No log data to copy.", msg)
}

func TestCopyUsesFirstAvailableUtility(t *testing.T) {
	var usedName string
	var usedInput string

	e := &Exporter{
		fs: afero.NewMemMapFs(),
		lookPath: func(name string) (string, error) {
			if name == "wl-copy" || name == "xclip" {
				return "/usr/bin/" + name, nil
			}
			return "", errors.New("not found")
		},
		pipeTo: func(name string, args []string, input string) error {
			usedName = name
			usedInput = input
			return nil
		},
	}

	b := NewBuffer()
	b.Append("hello")
	b.Append("world")

	msg, err := e.Copy(b)
	require.NoError(t, err)

	assert.Equal(t, "wl-copy", usedName)
	assert.Equal(t, "hello\nworld", usedInput)
	assert.Contains(t, msg, "wl-copy")
}

func TestCopyFallsThroughFailingUtilities(t *testing.T) {
	var attempts []string

	e := &Exporter{
		fs: afero.NewMemMapFs(),
		lookPath: func(name string) (string, error) {
			return "/usr/bin/" + name, nil
		},
		pipeTo: func(name string, args []string, input string) error {
			attempts = append(attempts, name)
			if name == "xclip" {
				return nil
			}
			return errors.New("exit 1")
		},
	}

	b := NewBuffer()
	b.Append("data")

	msg, err := e.Copy(b)
	require.NoError(t, err)

	assert.Equal(t, []string{"pbcopy", "wl-copy", "xclip"}, attempts)
	assert.Contains(t, msg, "xclip")
}

func TestCopyFallsBackToTempFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	e := &Exporter{
		fs:       fs,
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
		pipeTo: func(string, []string, string) error {
			t.Fatal("no utility should be spawned")
			return nil
		},
	}

	b := NewBuffer()
	b.Append("first line")
	b.Append("second line")

	msg, err := e.Copy(b)
	require.NoError(t, err)
	require.Contains(t, msg, "log written to: ")

	path := strings.TrimPrefix(msg, "Clipboard utilities not found; log written to: ")
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	// Byte-for-byte match with the buffer contents.
	assert.Equal(t, b.String(), string(content))
}
