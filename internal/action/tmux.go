// Package action runs the commands configured on menu items.
package action

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atomicstack/popup-menu/internal/logging"
	"github.com/atomicstack/popup-menu/internal/logging/events"
)

// Runner executes tmux commands against an optional socket.
type Runner struct {
	Socket string

	// run is swapped out by tests.
	run func(*exec.Cmd) error
}

// NewRunner returns a runner targeting socket; empty means tmux's default.
func NewRunner(socket string) *Runner {
	return &Runner{Socket: socket}
}

// Args builds the tmux argument list for a command.
func (r *Runner) Args(extra ...string) []string {
	args := make([]string, 0, len(extra)+2)
	if trimmed := strings.TrimSpace(r.Socket); trimmed != "" {
		args = append(args, "-S", trimmed)
	}
	return append(args, extra...)
}

// Command returns the exec.Cmd for a tmux invocation.
func (r *Runner) Command(extra ...string) *exec.Cmd {
	cmd := exec.Command("tmux", r.Args(extra...)...)
	if dir := socketDir(r.Socket); dir != "" {
		cmd.Env = append(os.Environ(), "TMUX_TMPDIR="+dir)
	}
	return cmd
}

// Run executes a tmux command.
func (r *Runner) Run(extra ...string) error {
	if len(extra) == 0 {
		return fmt.Errorf("empty tmux command")
	}
	run := r.run
	if run == nil {
		run = (*exec.Cmd).Run
	}
	if err := run(r.Command(extra...)); err != nil {
		return fmt.Errorf("tmux %s failed: %w", strings.Join(extra, " "), err)
	}
	return nil
}

// Callback adapts a configured command into a menu item callback. Failures
// are logged because item callbacks have no error path.
func (r *Runner) Callback(slug string, command []string) func() {
	if len(command) == 0 {
		return nil
	}
	args := append([]string(nil), command...)
	return func() {
		events.Action.Run(slug, args)
		if err := r.Run(args...); err != nil {
			events.Action.Error(err)
			logging.Error(err)
			return
		}
		events.Action.Success(fmt.Sprintf("Executed %s", strings.Join(args, " ")))
	}
}

func socketDir(socket string) string {
	trimmed := strings.TrimSpace(socket)
	if trimmed == "" {
		return ""
	}
	return filepath.Dir(trimmed)
}
