package command

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/stralyx/simetrio/internal/errdefs"
)

// External executables this front-end delegates to.
const (
	ScriptBuild       = "multipass-run.sh"
	ScriptRunDisplay  = "novnc-run.sh"
	ScriptClean       = "clean-build.sh"
	ScriptStopDisplay = "stop-novnc.sh"
	ScriptCLI         = "simetrio"
)

// Resolver locates the delegated scripts. Search order: the scripts
// directory, then bin, then the repository root; first existing match wins.
type Resolver struct {
	fs         afero.Fs
	searchDirs []string
}

func NewResolver(fs afero.Fs, repoRoot string) *Resolver {
	return &Resolver{
		fs: fs,
		searchDirs: []string{
			filepath.Join(repoRoot, "scripts"),
			filepath.Join(repoRoot, "bin"),
			repoRoot,
		},
	}
}

func (r *Resolver) Resolve(name string) (string, error) {
	for _, dir := range r.searchDirs {
		candidate := filepath.Join(dir, name)
		info, err := r.fs.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		r.ensureExecutable(candidate)
		return candidate, nil
	}
	return "", errdefs.NewCustomError(errdefs.ErrTypeUnresolvedScript,
		fmt.Sprintf("required script not found: %s (searched %v)", name, r.searchDirs))
}

// ensureExecutable sets the exec bits when missing. Best-effort, matching
// the behavior of chmod +x before launch. Mode comes from the injected
// filesystem so the check works under any backend.
func (r *Resolver) ensureExecutable(path string) {
	info, err := r.fs.Stat(path)
	if err != nil || info.Mode()&0o111 != 0 {
		return
	}
	_ = r.fs.Chmod(path, info.Mode()|0o111)
}
