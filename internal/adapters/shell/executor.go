// Package shell runs the external build command that realizes a build plan.
package shell

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildExecutor = (*Executor)(nil)

// Executor implements ports.BuildExecutor using os/exec. The build command
// itself is opaque: the executor hands it the filtered source tree as its
// working directory, the build-time dependency paths on PATH, and the
// output path in FORGE_OUT, then observes only its exit status.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs plan's build command with the given environment.
// It merges environments with the following priority (low to high):
// 1. os.Environ() (system base)
// 2. env (composed build environment, PATH prepended)
// Returns domain.ErrBuildExecution with the exit code on failure, or if the
// command completed without producing the plan's output.
func (e *Executor) Execute(ctx context.Context, plan *domain.BuildPlan, env []string) error {
	if len(plan.Command) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrBuildExecution, "no build command declared"), "plan", plan.Name)
	}

	name := plan.Command[0]
	args := plan.Command[1:]

	cmdEnv := resolveEnvironment(os.Environ(), env)
	cmdEnv = append(cmdEnv, "FORGE_OUT="+plan.OutputPath)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // Build command is declared by the user

	// Restore the original command name in Args[0]; CommandContext sets it
	// to the resolved executable path.
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	cmd.Dir = plan.Source.Root
	cmd.Env = cmdEnv
	cmd.Stdout = &logWriter{logger: e.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: e.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		execErr := zerr.Wrap(err, domain.ErrBuildExecution.Error())
		execErr = zerr.With(execErr, "plan", plan.Name)
		execErr = zerr.With(execErr, "platform", plan.Platform.String())
		return zerr.With(execErr, "exit_code", exitCode)
	}

	if _, err := os.Stat(plan.OutputPath); err != nil {
		execErr := zerr.Wrap(domain.ErrBuildExecution, "build completed without producing the output")
		execErr = zerr.With(execErr, "plan", plan.Name)
		return zerr.With(execErr, "output_path", plan.OutputPath)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}

// resolveEnvironment merges environment variables with the defined priority.
func resolveEnvironment(sysEnv, buildEnv []string) []string {
	// 1. Start with the system environment.
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	// 2. Apply the composed build environment; PATH is prepended so declared
	// build tools win over system tools.
	for _, entry := range buildEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" && v != "" {
				envMap[k] = v + string(os.PathListSeparator) + sysPath
			} else if v != "" {
				envMap[k] = v
			}
		} else {
			envMap[k] = v
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
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
