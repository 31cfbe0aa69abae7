package logbuf

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/afero"

	"github.com/stralyx/simetrio/internal/errdefs"
)

type clipboardUtil struct {
	name string
	args []string
}

// Utility order: macOS first, then Wayland, then X11.
var clipboardUtils = []clipboardUtil{
	{name: "pbcopy"},
	{name: "wl-copy"},
	{name: "xclip", args: []string{"-selection", "clipboard"}},
}

// Exporter copies the log buffer to the system clipboard, falling back to a
// uniquely named temp file when no clipboard utility succeeds.
type Exporter struct {
	fs       afero.Fs
	lookPath func(string) (string, error)
	pipeTo   func(name string, args []string, input string) error
}

func NewExporter(fs afero.Fs) *Exporter {
	return &Exporter{
		fs:       fs,
		lookPath: exec.LookPath,
		pipeTo:   pipeToUtility,
	}
}

func pipeToUtility(name string, args []string, input string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(input)
	return cmd.Run()
}

// Copy exports the buffer contents and returns a human-readable result
// line for the log. Data is never lost: either a utility accepted it, or
// it was written to a temp file, or the returned error says why not.
func (e *Exporter) Copy(buf *Buffer) (string, error) {
	data := buf.String()
	if data == "" {
		return "No log data to copy.", nil
	}

	for _, util := range clipboardUtils {
		if _, err := e.lookPath(util.name); err != nil {
			continue
		}
		if err := e.pipeTo(util.name, util.args, data); err == nil {
			return fmt.Sprintf("Log copied to clipboard (%s).", util.name), nil
		}
	}

	f, err := afero.TempFile(e.fs, "", "simetrio-log-*.txt")
	if err != nil {
		return "", errdefs.NewCustomError(errdefs.ErrTypeClipboardUnavailable,
			fmt.Sprintf("no clipboard utility available and temp file failed: %v", err))
	}
	defer f.Close()

	if _, err := f.WriteString(data); err != nil {
		return "", errdefs.NewCustomError(errdefs.ErrTypeClipboardUnavailable,
			fmt.Sprintf("failed writing log fallback file: %v", err))
	}
	return fmt.Sprintf("Clipboard utilities not found; log written to: %s", f.Name()), nil
}
