package command

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stralyx/simetrio/internal/errdefs"
)

func newTestBuilder(t *testing.T, scripts ...string) (*Builder, string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	root := "/repo"
	scriptsDir := filepath.Join(root, "scripts")
	require.NoError(t, fs.MkdirAll(scriptsDir, 0o755))
	for _, name := range scripts {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(scriptsDir, name), []byte("#!/bin/sh\n"), 0o755))
	}
	return NewBuilder(NewResolver(fs, root)), scriptsDir
}

func TestBuildWithDefaults(t *testing.T) {
	b, scriptsDir := newTestBuilder(t, ScriptBuild)

	inv, err := b.Build(ActionBuild, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(scriptsDir, ScriptBuild), inv.Path)
	assert.Equal(t, []string{"--name", "stralyx", "--mem", "4G", "--cpus", "2", "--disk", "20G"}, inv.Args)
}

func TestBuildEmptyFieldsFallBackToDefaults(t *testing.T) {
	b, _ := newTestBuilder(t, ScriptBuild)

	inv, err := b.Build(ActionBuild, FormParams{})
	require.NoError(t, err)

	assert.Equal(t, []string{"--name", "stralyx", "--mem", "4G", "--cpus", "2", "--disk", "20G"}, inv.Args)
}

func TestBuildOptionalFlags(t *testing.T) {
	b, _ := newTestBuilder(t, ScriptBuild)

	params := DefaultParams()
	params.InstallKDE = true
	params.InstallCalamares = true

	inv, err := b.Build(ActionBuild, params)
	require.NoError(t, err)

	assert.Equal(t, []string{"--name", "stralyx", "--mem", "4G", "--cpus", "2", "--disk", "20G", "--with-kde", "--with-calamares"}, inv.Args)
}

func TestRunDisplayRequiresImagePath(t *testing.T) {
	b, _ := newTestBuilder(t, ScriptRunDisplay)

	_, err := b.Build(ActionRunDisplay, FormParams{})
	require.Error(t, err)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeMissingRequiredField))
}

func TestRunDisplayPassesImagePath(t *testing.T) {
	b, _ := newTestBuilder(t, ScriptRunDisplay)

	inv, err := b.Build(ActionRunDisplay, FormParams{Name: "build/Stralyx/output/debian-smoke.img"})
	require.NoError(t, err)
	assert.Equal(t, []string{"build/Stralyx/output/debian-smoke.img"}, inv.Args)
}

func TestCleanInvocation(t *testing.T) {
	b, _ := newTestBuilder(t, ScriptClean)

	inv, err := b.Build(ActionClean, FormParams{Name: "myvm"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--yes", "--remove-instance", "--instance-name", "myvm"}, inv.Args)
}

func TestStopDisplayHasNoArgs(t *testing.T) {
	b, _ := newTestBuilder(t, ScriptStopDisplay)

	inv, err := b.Build(ActionStopDisplay, DefaultParams())
	require.NoError(t, err)
	assert.Empty(t, inv.Args)
}

func TestCheckInvocation(t *testing.T) {
	b, _ := newTestBuilder(t, ScriptCLI)

	inv, err := b.Build(ActionCheck, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, []string{"check"}, inv.Args)
}

func TestDepsFlagMapping(t *testing.T) {
	tests := []struct {
		name     string
		params   FormParams
		wantArgs []string
	}{
		{
			name:     "no toggles",
			params:   FormParams{},
			wantArgs: []string{"deps"},
		},
		{
			name:     "python only",
			params:   FormParams{InstallPythonDeps: true},
			wantArgs: []string{"deps", "--install-python"},
		},
		{
			name:     "binaries only",
			params:   FormParams{InstallSystemDeps: true},
			wantArgs: []string{"deps", "--install-binaries"},
		},
		{
			name:     "everything elevated",
			params:   FormParams{InstallPythonDeps: true, InstallSystemDeps: true, Elevate: true},
			wantArgs: []string{"deps", "--install-python", "--install-binaries", "--elevate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBuilder(t, ScriptCLI)
			inv, err := b.Build(ActionDeps, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, inv.Args)
		})
	}
}

func TestUnresolvedScript(t *testing.T) {
	b, _ := newTestBuilder(t) // no scripts on disk

	_, err := b.Build(ActionBuild, DefaultParams())
	require.Error(t, err)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeUnresolvedScript))
}

func TestInstallerInvocations(t *testing.T) {
	b, _ := newTestBuilder(t, ScriptCLI)

	py, err := b.InstallPython(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"deps", "--install-python"}, py.Args)

	pyElevated, err := b.InstallPython(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"deps", "--install-python", "--elevate"}, pyElevated.Args)

	bins, err := b.InstallBinaries(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"deps", "--install-binaries", "--elevate"}, bins.Args)

	check, err := b.Check()
	require.NoError(t, err)
	assert.Equal(t, []string{"check"}, check.Args)
}
