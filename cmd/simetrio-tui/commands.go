package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/stralyx/simetrio/internal/command"
	"github.com/stralyx/simetrio/internal/depflow"
	"github.com/stralyx/simetrio/internal/gate"
	"github.com/stralyx/simetrio/internal/tui"
	"github.com/stralyx/simetrio/internal/worker"
)

var rootCmd = &cobra.Command{
	Use:   "simetrio-tui",
	Short: "Stralyx image build front-end",
	Long:  "Terminal front-end for the Stralyx image build scripts.\n\nPresents a menu and parameter form, delegates the heavy lifting to the\nexisting scripts, and streams their output into an on-screen log.",
	Run:   runInteractiveMode,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Simetrio TUI v%s\n", Version)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the preflight check without the TUI",
	Run: func(cmd *cobra.Command, args []string) {
		runHeadlessCheck()
	},
}

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Run the dependency flow without the TUI",
	Long:  "Check dependencies and optionally install what is missing, using the\nsame check/install/re-check sequence as the TUI's deps action.",
	Run: func(cmd *cobra.Command, args []string) {
		installPython, _ := cmd.Flags().GetBool("install-python")
		installBinaries, _ := cmd.Flags().GetBool("install-binaries")
		elevate, _ := cmd.Flags().GetBool("elevate")
		runHeadlessDeps(installPython, installBinaries, elevate)
	},
}

func runInteractiveMode(cmd *cobra.Command, args []string) {
	model := tui.NewModel(Version)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func repoRoot() string {
	if root := os.Getenv("SIMETRIO_ROOT"); root != "" {
		return root
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// headlessToolchain wires the builder and runner with a stdout-printing
// log consumer. Call flush before exiting so buffered lines land.
type headlessToolchain struct {
	builder *command.Builder
	runner  *worker.Runner
	logChan chan string
	done    chan struct{}
}

func newToolchain() *headlessToolchain {
	tc := &headlessToolchain{
		builder: command.NewBuilder(command.NewResolver(afero.NewOsFs(), repoRoot())),
		logChan: make(chan string, 256),
		done:    make(chan struct{}),
	}
	tc.runner = worker.NewRunner(tc.logChan)
	go func() {
		defer close(tc.done)
		for line := range tc.logChan {
			fmt.Println(line)
		}
	}()
	return tc
}

func (tc *headlessToolchain) flush() {
	close(tc.logChan)
	<-tc.done
}

func runHeadlessCheck() {
	tc := newToolchain()

	inv, err := tc.builder.Check()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	_, code, err := tc.runner.RunCapture(context.Background(), inv)
	tc.flush()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func runHeadlessDeps(installPython, installBinaries, elevate bool) {
	params := command.FormParams{
		InstallPythonDeps: installPython,
		InstallSystemDeps: installBinaries,
		Elevate:           elevate,
	}

	// The package-installer branch always runs elevated, so binary
	// installs need the sudo prompt even without --elevate.
	if (elevate || installBinaries) && !confirmElevated() {
		fmt.Println("Aborted.")
		return
	}

	tc := newToolchain()
	elevateGate, installerGate := depsGates(installBinaries, elevate)

	flow := depflow.New(tc.builder, tc.runner, elevateGate, installerGate, tc.logChan)
	flow.Run(context.Background(), params)
	tc.flush()
}

// depsGates arms the confirmation gates the y/N prompt already covers.
// Each invocation gets fresh gates, so a gate left unarmed here could
// never be confirmed by "run deps again".
func depsGates(installBinaries, elevate bool) (elevateGate, installerGate *gate.Gate) {
	elevateGate = gate.New()
	installerGate = gate.New()
	if elevate {
		elevateGate.Confirm()
	}
	if elevate || installBinaries {
		installerGate.Confirm()
	}
	return elevateGate, installerGate
}

func confirmElevated() bool {
	fmt.Print("This may run installers with sudo. Proceed? (y/N): ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
