package launch

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/DataScienceMom/hue/pkg/exec"
)

// recordingExecutor captures the would-be invocation instead of exec'ing.
type recordingExecutor struct {
	path string
	argv []string
	env  []string
	err  error
}

func (r *recordingExecutor) Exec(path string, argv []string, env []string) error {
	r.path = path
	r.argv = argv
	r.env = env
	return r.err
}

func TestSessionKind(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no arguments defaults to process", nil, "process"},
		{"empty slice defaults to process", []string{}, "process"},
		{"explicit process", []string{"process"}, "process"},
		{"yarn lower-cased", []string{"YARN"}, "yarn"},
		{"mixed case lower-cased", []string{"Yarn"}, "yarn"},
		{"unknown kind passed through", []string{"mesos"}, "mesos"},
		{"extra arguments ignored", []string{"yarn", "process", "--verbose"}, "yarn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SessionKind(tt.args); got != tt.want {
				t.Errorf("SessionKind(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestServerPath(t *testing.T) {
	got := ServerPath("/opt/hue")
	want := filepath.Join("/opt/hue", "java", "bin", "livy-server")
	if got != want {
		t.Errorf("ServerPath(/opt/hue) = %q, want %q", got, want)
	}
}

func TestServerPath_IndependentOfArguments(t *testing.T) {
	// The path is fixed for a given root no matter which kind launches.
	first := ServerPath("/srv/hue")
	for _, args := range [][]string{nil, {"yarn"}, {"process", "extra"}} {
		_ = SessionKind(args)
		if got := ServerPath("/srv/hue"); got != first {
			t.Errorf("ServerPath changed after SessionKind(%v): %q != %q", args, got, first)
		}
	}
}

func TestLauncher_Launch_Invocation(t *testing.T) {
	rec := &recordingExecutor{}
	env := []string{"HOME=/home/hue", "SPARK_HOME=/opt/spark"}

	l := &Launcher{Root: "/opt/hue", Env: env, Executor: rec}
	if err := l.Launch("yarn"); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	wantPath := ServerPath("/opt/hue")
	if rec.path != wantPath {
		t.Errorf("path = %q, want %q", rec.path, wantPath)
	}
	if want := []string{wantPath, "yarn"}; !reflect.DeepEqual(rec.argv, want) {
		t.Errorf("argv = %v, want %v", rec.argv, want)
	}
	if !reflect.DeepEqual(rec.env, env) {
		t.Errorf("env = %v, want the snapshot passed in: %v", rec.env, env)
	}
}

func TestLauncher_Launch_EnvForwardedUnmodified(t *testing.T) {
	rec := &recordingExecutor{}
	env := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		env = append(env, fmt.Sprintf("VAR_%02d=value-%02d", i, i))
	}

	l := &Launcher{Root: "/opt/hue", Env: env, Executor: rec}
	if err := l.Launch("process"); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	if !reflect.DeepEqual(rec.env, env) {
		t.Error("environment snapshot was modified before exec")
	}
}

func TestLauncher_Launch_ErrorPropagates(t *testing.T) {
	wantErr := &exec.ReplaceError{Path: "/opt/hue/java/bin/livy-server", Err: errors.New("no such file or directory")}
	rec := &recordingExecutor{err: wantErr}

	l := &Launcher{Root: "/opt/hue", Executor: rec}
	err := l.Launch("process")

	if !errors.Is(err, wantErr) {
		t.Errorf("Launch() error = %v, want %v", err, wantErr)
	}
}

func TestLauncher_Launch_TracesInvocation(t *testing.T) {
	rec := &recordingExecutor{}
	var trace string

	l := &Launcher{
		Root:     "/opt/hue",
		Env:      []string{"PATH=/usr/bin"},
		Executor: rec,
		Logf: func(format string, args ...interface{}) {
			trace = fmt.Sprintf(format, args...)
		},
	}
	if err := l.Launch("yarn"); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	wantPath := ServerPath("/opt/hue")
	for _, fragment := range []string{wantPath, "yarn", "PATH=/usr/bin"} {
		if !strings.Contains(trace, fragment) {
			t.Errorf("trace %q missing %q", trace, fragment)
		}
	}
}
