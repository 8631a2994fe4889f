// Package shell provides the process executor adapter.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/nbuild/internal/core/domain"
	"go.trai.ch/nbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds a single line of tool output.
const maxLineSize = 1 << 20

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

var _ ports.Executor = (*Executor)(nil)

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the invocation's tool with its arguments.
// The environment is os.Environ() overlaid with inv.Environment.
//
// Output is streamed line by line to the vertex carried by ctx, or to the
// logger when there is none.
func (e *Executor) Execute(ctx context.Context, inv *domain.Invocation) error {
	if inv == nil || inv.Tool == "" {
		return domain.ErrMissingTool
	}

	cmdEnv := resolveEnvironment(os.Environ(), inv.Environment)

	executable := inv.Tool
	if !filepath.IsAbs(inv.Tool) && !strings.ContainsRune(inv.Tool, filepath.Separator) {
		if lp, err := lookPath(inv.Tool, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, inv.Args...) //nolint:gosec // tool comes from the builder config
	if len(cmd.Args) > 0 {
		cmd.Args[0] = inv.Tool
	}
	if inv.WorkingDir != "" {
		cmd.Dir = inv.WorkingDir
	}
	cmd.Env = cmdEnv

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return wrapExecError(err, inv.Tool)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return wrapExecError(err, inv.Tool)
	}

	outSink, errSink := e.sinks(ctx)

	if err := cmd.Start(); err != nil {
		return wrapExecError(err, inv.Tool)
	}

	// Pipes must be drained before Wait closes them.
	var g errgroup.Group
	g.Go(func() error { return scanLines(stdout, outSink) })
	g.Go(func() error { return scanLines(stderr, errSink) })
	scanErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		return wrapExecError(err, inv.Tool)
	}
	if scanErr != nil {
		return zerr.With(zerr.Wrap(scanErr, "failed to read tool output"), "tool", inv.Tool)
	}
	return nil
}

// sinks returns the line consumers for stdout and stderr.
func (e *Executor) sinks(ctx context.Context) (stdout, stderr func(string)) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		return writerSink(v.Stdout()), writerSink(v.Stderr())
	}
	return e.logger.Info, e.logger.Warn
}

func writerSink(w io.Writer) func(string) {
	return func(line string) {
		_, _ = io.WriteString(w, line+"\n")
	}
}

func scanLines(r io.Reader, sink func(string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		sink(scanner.Text())
	}
	return scanner.Err()
}

func wrapExecError(err error, tool string) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.Wrap(err, domain.ErrToolExecutionFailed.Error())
	wrapped = zerr.With(wrapped, "tool", tool)
	return zerr.With(wrapped, "exit_code", exitCode)
}

// resolveEnvironment overlays overrides on the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for k, v := range overrides {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the PATH of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
