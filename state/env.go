// Package state carries per run environment through context.
package state

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"xlsxw/config"
)

type envKey struct{}

// LocalEnv is created once per program run, before command line is parsed,
// and is filled by the app hooks and the running command.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// build flags
	NoDirs    bool
	Overwrite bool

	// Stylesheet holds named formats shared by every description of the run,
	// StylesheetSource tells where they came from.
	Stylesheet       []byte
	StylesheetSource string

	start         time.Time
	restoreStdLog func()
}

// EnvFromContext panics when ctx was not prepared with ContextWithEnv.
func EnvFromContext(ctx context.Context) *LocalEnv {
	env, ok := ctx.Value(envKey{}).(*LocalEnv)
	if !ok {
		panic("state: context has no program environment")
	}
	return env
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// UseStylesheet replaces built-in named formats with content of the file.
// Empty path keeps what is there.
func (e *LocalEnv) UseStylesheet(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet from %q: %w", path, err)
	}
	e.Stylesheet, e.StylesheetSource = data, path
	return nil
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// RedirectStdLog sends output of standard "log" package to zap at info
// level. Nothing happens until logger is set.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log != nil {
		e.restoreStdLog = zap.RedirectStdLog(e.Log)
	}
}

// RestoreStdLog syncs the logger and undoes RedirectStdLog.
func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
}
