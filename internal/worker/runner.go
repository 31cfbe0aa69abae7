package worker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/stralyx/simetrio/internal/command"
	"github.com/stralyx/simetrio/internal/errdefs"
)

// Runner executes one external invocation at a time and streams its merged
// stdout/stderr into the log channel, line by line, in order.
type Runner struct {
	mu      sync.Mutex
	running bool
	logChan chan<- string
}

func NewRunner(logChan chan<- string) *Runner {
	return &Runner{logChan: logChan}
}

// Busy reports whether a primary action is currently executing.
func (r *Runner) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Runner) tryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return false
	}
	r.running = true
	return true
}

func (r *Runner) release() {
	r.mu.Lock()
	r.running = false
	r.mu.Unlock()
}

// Run executes the invocation as the primary worker. It no-ops with a busy
// warning when another run is in flight. The latch is released on every
// path, launch failures included. Blocks until the child exits.
func (r *Runner) Run(ctx context.Context, inv command.Invocation) {
	if !r.tryAcquire() {
		r.log("Another task is running; please wait or stop it first.")
		return
	}
	defer r.release()

	r.log("Running: " + inv.String())
	code, err := r.stream(ctx, inv, nil)
	if err != nil {
		r.log(fmt.Sprintf("Worker error: %v", err))
		return
	}
	r.log(fmt.Sprintf("Process exited with %d", code))
}

// RunCapture executes the invocation, streaming output like Run while also
// returning the full combined output and exit code. It deliberately does
// not take the primary latch: the dependency flow runs beside the worker.
func (r *Runner) RunCapture(ctx context.Context, inv command.Invocation) (string, int, error) {
	var captured strings.Builder

	r.log("Running: " + inv.String())
	code, err := r.stream(ctx, inv, &captured)
	if err != nil {
		return captured.String(), code, err
	}
	r.log(fmt.Sprintf("Process exited with %d", code))
	return captured.String(), code, nil
}

func (r *Runner) stream(ctx context.Context, inv command.Invocation, capture *strings.Builder) (int, error) {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		return -1, errdefs.NewCustomError(errdefs.ErrTypeChildProcessFailure,
			fmt.Sprintf("failed to start %s: %v", inv.Path, err))
	}

	scanDone := make(chan struct{})
	go func() {
		defer close(scanDone)
		// ReadString has no line-length cap. A Scanner would stop on a
		// line past its buffer, leave the pipe undrained, and block the
		// child mid-write, so Wait would never return.
		reader := bufio.NewReader(pr)
		for {
			chunk, readErr := reader.ReadString('\n')
			if len(chunk) > 0 {
				line := strings.TrimRight(chunk, "\r\n")
				r.log(line)
				if capture != nil {
					capture.WriteString(line)
					capture.WriteByte('\n')
				}
			}
			if readErr != nil {
				return
			}
		}
	}()

	err := cmd.Wait()
	pw.Close()
	<-scanDone
	pr.Close()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, errdefs.NewCustomError(errdefs.ErrTypeChildProcessFailure,
			fmt.Sprintf("waiting for %s: %v", inv.Path, err))
	}
	return 0, nil
}

func (r *Runner) log(message string) {
	if r.logChan != nil {
		r.logChan <- message
	}
}
