package depflow

import (
	"context"
	"fmt"

	"github.com/stralyx/simetrio/internal/command"
	"github.com/stralyx/simetrio/internal/gate"
)

// CommandRunner captures and streams a child process's combined output.
type CommandRunner interface {
	RunCapture(ctx context.Context, inv command.Invocation) (string, int, error)
}

// Flow sequences the dependency check, conditional installs, and re-check.
// It runs on its own goroutine and does not share the primary worker latch.
type Flow struct {
	builder       *command.Builder
	runner        CommandRunner
	elevateGate   *gate.Gate
	installerGate *gate.Gate
	logChan       chan<- string
}

func New(builder *command.Builder, runner CommandRunner, elevateGate, installerGate *gate.Gate, logChan chan<- string) *Flow {
	return &Flow{
		builder:       builder,
		runner:        runner,
		elevateGate:   elevateGate,
		installerGate: installerGate,
		logChan:       logChan,
	}
}

// Run executes the full dependency flow. Every failure is reported as log
// lines; nothing escalates past this method.
func (f *Flow) Run(ctx context.Context, params command.FormParams) {
	if params.Elevate && !f.elevateGate.Confirm() {
		f.log("Elevated dependency install requested. Run deps again to confirm.")
		return
	}

	output, code, err := f.check(ctx)
	if err != nil {
		f.log(fmt.Sprintf("Dependency check failed to run: %v", err))
		return
	}
	if code == 0 {
		f.log("Dependencies satisfied.")
		return
	}

	branch := Classify(output)
	f.log(fmt.Sprintf("Dependency check failed (exit %d); remediation: %s", code, branch))

	switch branch {
	case BranchPythonPackages:
		f.remediatePython(ctx, params)
	case BranchMultipassPKG:
		f.remediateMultipassPKG(ctx, params)
	case BranchMissingBinaries:
		f.remediateMissingBinaries(ctx, params)
	default:
		f.log("No known remediation for this failure. Review the output above and resolve manually.")
	}
}

func (f *Flow) remediatePython(ctx context.Context, params command.FormParams) {
	if params.InstallSystemDeps {
		if !f.install(ctx, "system binaries", f.builder.InstallBinaries, params.Elevate) {
			return
		}
	}
	if !f.install(ctx, "Python requirements", f.builder.InstallPython, params.Elevate) {
		return
	}
	f.recheck(ctx)
}

func (f *Flow) remediateMultipassPKG(ctx context.Context, params command.FormParams) {
	if !params.InstallSystemDeps {
		f.log("A Multipass PKG is present but system dependency installs are disabled. Enable the system deps toggle to proceed.")
		return
	}
	if !f.installerGate.Confirm() {
		f.log("Running the package installer requires confirmation. Run deps again to confirm.")
		return
	}
	// The PKG installer always runs elevated.
	if !f.install(ctx, "Multipass PKG", f.builder.InstallBinaries, true) {
		return
	}
	f.recheck(ctx)
}

func (f *Flow) remediateMissingBinaries(ctx context.Context, params command.FormParams) {
	if !params.InstallSystemDeps {
		f.log("Binaries are missing but system dependency installs are disabled. Enable the system deps toggle to proceed.")
		return
	}
	if !f.install(ctx, "system binaries", f.builder.InstallBinaries, params.Elevate) {
		return
	}
	f.recheck(ctx)
}

// install runs one installer step, aborting the flow on any failure.
func (f *Flow) install(ctx context.Context, what string, build func(bool) (command.Invocation, error), elevate bool) bool {
	inv, err := build(elevate)
	if err != nil {
		f.log(fmt.Sprintf("Cannot install %s: %v", what, err))
		return false
	}
	f.log(fmt.Sprintf("Installing %s...", what))
	_, code, err := f.runner.RunCapture(ctx, inv)
	if err != nil {
		f.log(fmt.Sprintf("Installer for %s failed to run: %v", what, err))
		return false
	}
	if code != 0 {
		f.log(fmt.Sprintf("Installer for %s exited with %d; aborting. Manual intervention required.", what, code))
		return false
	}
	return true
}

func (f *Flow) check(ctx context.Context) (string, int, error) {
	inv, err := f.builder.Check()
	if err != nil {
		return "", -1, err
	}
	return f.runner.RunCapture(ctx, inv)
}

func (f *Flow) recheck(ctx context.Context) {
	_, code, err := f.check(ctx)
	if err != nil {
		f.log(fmt.Sprintf("Re-check failed to run: %v", err))
		return
	}
	if code == 0 {
		f.log("Dependencies satisfied.")
	} else {
		f.log(fmt.Sprintf("Dependencies still unsatisfied after install (exit %d). Manual intervention required.", code))
	}
}

func (f *Flow) log(message string) {
	if f.logChan != nil {
		f.logChan <- message
	}
}
