// Package shell runs external tools such as the editor and the build tool.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner using os/exec and pty.
type Runner struct {
	logger  ports.Logger
	timeout time.Duration
}

// NewRunner creates a Runner that kills commands running longer than timeout.
// A zero timeout disables the limit.
func NewRunner(logger ports.Logger, timeout time.Duration) *Runner {
	return &Runner{
		logger:  logger,
		timeout: timeout,
	}
}

// Run starts the command in a PTY when the system supports one, or with plain pipes otherwise,
// streams its output to the logger and waits for it to exit.
func (r *Runner) Run(ctx context.Context, command ports.Command) error {
	if len(command.Args) == 0 {
		return nil
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	display := strings.Join(command.Args, " ")
	r.logger.Debug("running " + display)

	err := r.runPTY(ctx, command)
	if errors.Is(err, errNoPTY) {
		r.logger.Debug("pty unavailable, falling back to pipes")
		err = r.runPipes(ctx, command)
	}
	if err == nil {
		return nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.Annotate(domain.ErrCommandTimeout,
			"command", display,
			"timeout", r.timeout.String(),
		)
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return domain.Annotate(domain.ErrCommandFailed,
		"command", display,
		"exit_code", exitCode,
		"cause", err.Error(),
	)
}

var errNoPTY = zerr.New("pty unavailable")

func (r *Runner) newCmd(ctx context.Context, command ports.Command) *exec.Cmd {
	cmd := exec.CommandContext(ctx, command.Args[0], command.Args[1:]...) //nolint:gosec // tool paths come from settings
	cmd.Dir = command.Dir
	cmd.Env = os.Environ()
	return cmd
}

func (r *Runner) runPTY(ctx context.Context, command ports.Command) error {
	cmd := r.newCmd(ctx, command)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		if ptyUnavailable(err) {
			return errNoPTY
		}
		return err
	}

	out := &logWriter{logger: r.logger, level: "info"}
	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// A PTY merges stdout and stderr.
		_, _ = io.Copy(out, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone
	_ = out.Close()
	return err
}

func (r *Runner) runPipes(ctx context.Context, command ports.Command) error {
	cmd := r.newCmd(ctx, command)

	stdout := &logWriter{logger: r.logger, level: "info"}
	stderr := &logWriter{logger: r.logger, level: "warn"}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	_ = stdout.Close()
	_ = stderr.Close()
	return err
}

// ptyUnavailable reports whether pty.Start failed before the command was started.
func ptyUnavailable(err error) bool {
	if errors.Is(err, pty.ErrUnsupported) {
		return true
	}
	var pathErr *os.PathError
	return errors.As(err, &pathErr) && strings.HasPrefix(pathErr.Path, "/dev/")
}

type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r.
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}
