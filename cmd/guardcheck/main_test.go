package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guards/pkg/config"
	"github.com/dmitrymomot/guards/pkg/guard"
	"github.com/dmitrymomot/guards/pkg/validator"
)

// run executes the root command and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// unsetEnv clears key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "guardcheck", cmd.Use)
	assert.True(t, cmd.SilenceUsage)

	for _, name := range []string{"env-file", "log-level", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %s", name)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"list", "check", "call"})
}

func TestListCommand(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Guards:")
	assert.Contains(t, out, "Targets:")
	for _, name := range validator.Names() {
		assert.Contains(t, out, name)
	}
	for _, name := range targetNames() {
		assert.Contains(t, out, name)
	}
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "value passes every guard",
			args: []string{"check", "-g", "is-number", "-g", "in-range:0,10", "5"},
			want: "ok: 5\n",
		},
		{
			name: "chained expression",
			args: []string{"check", "-g", "is-integer&greater-than:1", "2"},
			want: "ok: 2\n",
		},
		{
			name: "list value",
			args: []string{"check", "-g", "is-list", "-g", "not-empty-list", "[1, 2]"},
			want: "ok: [1 2]\n",
		},
		{
			name:    "out of range",
			args:    []string{"check", "-g", "greater-or-equal:4", "3"},
			wantErr: guard.ErrOutOfRange,
		},
		{
			name:    "first failing guard wins",
			args:    []string{"check", "-g", "not-zero", "-g", "is-list", "0"},
			wantErr: guard.ErrRequired,
		},
		{
			name:    "string against numeric guard",
			args:    []string{"check", "-g", "less-than:4", "abc"},
			wantErr: guard.ErrIncomparable,
		},
		{
			name:    "unknown guard",
			args:    []string{"check", "-g", "no-such-guard", "1"},
			wantErr: validator.ErrUnknownGuard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCheckCommandMessage(t *testing.T) {
	_, _, err := run(t, "check", "-g", "greater-or-equal:4", "3")
	require.Error(t, err)
	assert.Equal(t, `guard "greater-or-equal:4": value is less than 4`, err.Error())
}

func TestCheckCommandRequiresGuard(t *testing.T) {
	_, _, err := run(t, "check", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one guard is required")
}

func TestCallCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "unguarded add",
			args: []string{"call", "add", "2", "3"},
			want: "5\n",
		},
		{
			name: "guarded div",
			args: []string{"call", "div", "-g", "not-zero", "-g", "not-zero", "-g", "greater-or-equal:4", "10", "2"},
			want: "5\n",
		},
		{
			name: "float guards see converted int literals",
			args: []string{"call", "add", "-g", "is-float", "-g", "is-float", "-g", "pass", "2", "3"},
			want: "5\n",
		},
		{
			name: "negative argument after separator",
			args: []string{"call", "neg", "--", "-4"},
			want: "4\n",
		},
		{
			name: "len of a list",
			args: []string{"call", "len", "-g", "not-empty-list", "-g", "less-than:5", "[1, 2, 3]"},
			want: "3\n",
		},
		{
			name: "concat strings",
			args: []string{"call", "concat", "-g", "not-empty-string", "-g", "pass", "-g", "pass", "foo", "bar"},
			want: "foobar\n",
		},
		{
			name:    "argument guard fails",
			args:    []string{"call", "div", "-g", "pass", "-g", "not-zero", "-g", "pass", "1", "0"},
			wantErr: guard.ErrRequired,
		},
		{
			name:    "result guard fails",
			args:    []string{"call", "sub", "-g", "pass", "-g", "pass", "-g", "greater-than:0", "1", "5"},
			wantErr: guard.ErrOutOfRange,
		},
		{
			name:    "target error passes through",
			args:    []string{"call", "div", "1", "0"},
			wantErr: errDivisionByZero,
		},
		{
			name:    "guard count mismatch",
			args:    []string{"call", "add", "-g", "pass", "1", "2"},
			wantErr: guard.ErrGuardCountMismatch,
		},
		{
			name:    "argument count mismatch",
			args:    []string{"call", "add", "1"},
			wantErr: guard.ErrArgumentCount,
		},
		{
			name:    "argument type mismatch",
			args:    []string{"call", "add", "1", "abc"},
			wantErr: guard.ErrArgumentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCallCommandUnknownTarget(t *testing.T) {
	_, _, err := run(t, "call", "pow", "2", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown target "pow"`)
}

func TestLogging(t *testing.T) {
	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("GUARDCHECK_ENV", "production")
		t.Setenv("GUARDCHECK_LOG_LEVEL", "error")

		_, stderr, err := run(t, "--log-level", "debug", "--log-format", "json", "check", "-g", "not-zero", "0")
		require.Error(t, err)

		assert.Contains(t, stderr, `"msg":"value rejected"`)
		assert.Contains(t, stderr, `"env":"production"`)
		assert.Contains(t, stderr, `"service":"guardcheck"`)
		assert.Contains(t, stderr, `"command":"check"`)
	})

	t.Run("production preset hides debug records", func(t *testing.T) {
		t.Setenv("GUARDCHECK_ENV", "production")
		unsetEnv(t, "GUARDCHECK_LOG_LEVEL")
		unsetEnv(t, "GUARDCHECK_LOG_FORMAT")

		_, stderr, err := run(t, "check", "-g", "not-zero", "0")
		require.Error(t, err)
		assert.Empty(t, stderr)
	})

	t.Run("composed guard violations", func(t *testing.T) {
		t.Setenv("GUARDCHECK_ENV", "development")
		t.Setenv("GUARDCHECK_LOG_FORMAT", "json")
		unsetEnv(t, "GUARDCHECK_LOG_LEVEL")

		_, stderr, err := run(t, "call", "div", "-g", "pass", "-g", "not-zero", "-g", "pass", "1", "0")
		require.Error(t, err)

		assert.Contains(t, stderr, `"msg":"guard violation"`)
		assert.Contains(t, stderr, `"function":"div"`)
		assert.Contains(t, stderr, `"command":"call"`)
		assert.Contains(t, stderr, `"env":"development"`)
		assert.Contains(t, stderr, `"position":"argument"`)
		assert.Contains(t, stderr, `"index":1`)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, _, err := run(t, "--log-level", "loud", "list")
		require.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, _, err := run(t, "--log-format", "xml", "list")
		require.Error(t, err)
	})
}

func TestEnvFile(t *testing.T) {
	unsetEnv(t, "GUARDCHECK_ENV")
	unsetEnv(t, "GUARDCHECK_LOG_LEVEL")
	unsetEnv(t, "GUARDCHECK_LOG_FORMAT")

	path := filepath.Join(t.TempDir(), ".env")
	content := "GUARDCHECK_ENV=staging\nGUARDCHECK_LOG_LEVEL=debug\nGUARDCHECK_LOG_FORMAT=json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, stderr, err := run(t, "--env-file", path, "check", "-g", "not-zero", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, guard.ErrRequired)
	assert.Contains(t, stderr, `"env":"staging"`)

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "--env-file", filepath.Join(t.TempDir(), "missing.env"), "list")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestLocalizedMessages(t *testing.T) {
	unsetEnv(t, "GUARDCHECK_LANG")
	unsetEnv(t, "GUARDCHECK_MESSAGES")

	t.Run("lang flag", func(t *testing.T) {
		_, _, err := run(t, "--lang", "de", "check", "-g", "greater-or-equal:4", "3")
		require.Error(t, err)
		assert.Equal(t, `guard "greater-or-equal:4": Wert ist kleiner als 4`, err.Error())
		assert.ErrorIs(t, err, guard.ErrOutOfRange)
	})

	t.Run("lang from environment", func(t *testing.T) {
		t.Setenv("GUARDCHECK_LANG", "es_ES.UTF-8")
		_, _, err := run(t, "call", "div", "-g", "pass", "-g", "not-zero", "-g", "pass", "1", "0")
		require.Error(t, err)
		assert.Equal(t, "div: el valor es cero", err.Error())
	})

	t.Run("unsupported lang falls back to english", func(t *testing.T) {
		_, _, err := run(t, "--lang", "ja", "check", "-g", "not-empty-string", `""`)
		require.Error(t, err)
		assert.Equal(t, `guard "not-empty-string": string is empty`, err.Error())
	})

	t.Run("custom catalogue", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.yaml")
		content := "en:\n  validation:\n    not_zero: \"zero is not allowed here\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, _, err := run(t, "--messages", path, "check", "-g", "not-zero", "0")
		require.Error(t, err)
		assert.Equal(t, `guard "not-zero": zero is not allowed here`, err.Error())
	})

	t.Run("missing catalogue", func(t *testing.T) {
		_, _, err := run(t, "--messages", filepath.Join(t.TempDir(), "none.yaml"), "list")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load messages")
	})

	t.Run("target errors are not translated", func(t *testing.T) {
		_, _, err := run(t, "--lang", "de", "call", "div", "1", "0")
		require.Error(t, err)
		assert.Equal(t, "div: division by zero", err.Error())
	})
}
