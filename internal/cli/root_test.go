package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliEnv isolates config lookup from the developer's machine.
type cliEnv struct {
	dir string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("CSV2LUA_CONFIG", "")
	t.Setenv("CSV2LUA_VERBOSE", "")
	t.Setenv("CSV2LUA_STRICT_ARGS", "")
	return &cliEnv{dir: dir}
}

func (e *cliEnv) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(args ...string) result {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRunConverts(t *testing.T) {
	env := newCLIEnv(t)
	in := env.write(t, "people.csv", "name,age\nAda,36\nLin,abc\n")
	out := filepath.Join(env.dir, "people.lua")

	res := runCLI(in, out, "people")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Empty(t, res.stdout)
	assert.Empty(t, res.stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "people = {\n  {name=\"Ada\", age=36},\n  {name=\"Lin\", age=\"abc\"}\n}\n", string(data))
}

func TestRunWrongArityPrintsUsage(t *testing.T) {
	tests := []struct {
		name string
		args func(in, out string) []string
	}{
		{name: "no arguments", args: func(in, out string) []string { return nil }},
		{name: "two arguments", args: func(in, out string) []string { return []string{in, out} }},
		{name: "four arguments", args: func(in, out string) []string { return []string{in, out, "T", "extra"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newCLIEnv(t)
			in := env.write(t, "in.csv", "a\n1\n")
			out := env.write(t, "out.lua", "untouched")

			res := runCLI(tt.args(in, out)...)
			assert.Equal(t, exitSuccess, res.code)
			assert.Contains(t, res.stdout, "Usage:")
			assert.Contains(t, res.stdout, "<input-path> <output-path> <global-name>")
			assert.Empty(t, res.stderr)

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, "untouched", string(data))
		})
	}
}

func TestRunStrictArity(t *testing.T) {
	t.Run("from environment", func(t *testing.T) {
		newCLIEnv(t)
		t.Setenv("CSV2LUA_STRICT_ARGS", "true")

		res := runCLI("only-one")
		assert.Equal(t, exitUserError, res.code)
		assert.Contains(t, res.stdout, "Usage:")
		assert.Contains(t, res.stderr, "expected exactly 3 arguments")
		assert.Contains(t, res.stderr, "got 1")
	})

	t.Run("from config file", func(t *testing.T) {
		env := newCLIEnv(t)
		cfg := env.write(t, "csv2lua.yaml", "strict_args: true\n")

		res := runCLI("--config", cfg, "a", "b")
		assert.Equal(t, exitUserError, res.code)
		assert.Contains(t, res.stderr, "got 2")
	})
}

func TestRunErrors(t *testing.T) {
	t.Run("missing input is a user error", func(t *testing.T) {
		env := newCLIEnv(t)
		out := filepath.Join(env.dir, "out.lua")

		res := runCLI(filepath.Join(env.dir, "missing.csv"), out, "T")
		assert.Equal(t, exitUserError, res.code)
		assert.Contains(t, res.stderr, "Error: input error")
		assert.NoFileExists(t, out)
	})

	t.Run("short record is a user error", func(t *testing.T) {
		env := newCLIEnv(t)
		in := env.write(t, "in.csv", "a,b\n1\n")

		res := runCLI(in, filepath.Join(env.dir, "out.lua"), "T")
		assert.Equal(t, exitUserError, res.code)
		assert.Contains(t, res.stderr, "malformed record: line 2 has 1 cells, header has 2 fields")
	})

	t.Run("unwritable output is a system error", func(t *testing.T) {
		env := newCLIEnv(t)
		in := env.write(t, "in.csv", "a\n1\n")

		res := runCLI(in, filepath.Join(env.dir, "missing-dir", "out.lua"), "T")
		assert.Equal(t, exitSysError, res.code)
		assert.Contains(t, res.stderr, "Error: output error")
	})

	t.Run("explicit config that does not exist", func(t *testing.T) {
		env := newCLIEnv(t)

		res := runCLI("--config", filepath.Join(env.dir, "nope.yaml"), "a", "b", "c")
		assert.Equal(t, exitUserError, res.code)
		assert.Contains(t, res.stderr, "stat config file")
	})

	t.Run("malformed config", func(t *testing.T) {
		env := newCLIEnv(t)
		cfg := env.write(t, "bad.yaml", "verbose: [unclosed\n")

		res := runCLI("--config", cfg, "a", "b", "c")
		assert.Equal(t, exitUserError, res.code)
		assert.Contains(t, res.stderr, "read config")
	})
}

func TestRunVerbose(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		env := newCLIEnv(t)
		in := env.write(t, "in.csv", "a,b\n1,x\n")
		out := filepath.Join(env.dir, "out.lua")

		res := runCLI("-v", in, out, "T")
		require.Equal(t, exitSuccess, res.code, res.stderr)
		assert.Contains(t, res.stderr, "csv2lua: line 2: [1, x]")
		assert.Contains(t, res.stderr, "1 rows, 2 columns")
	})

	t.Run("default config file", func(t *testing.T) {
		env := newCLIEnv(t)
		cfgDir := filepath.Join(env.dir, "xdg", "csv2lua")
		require.NoError(t, os.MkdirAll(cfgDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("verbose: true\n"), 0o644))
		in := env.write(t, "in.csv", "a\n1\n")

		res := runCLI(in, filepath.Join(env.dir, "out.lua"), "T")
		require.Equal(t, exitSuccess, res.code, res.stderr)
		assert.Contains(t, res.stderr, "line 2: [1]")
	})

	t.Run("environment", func(t *testing.T) {
		env := newCLIEnv(t)
		t.Setenv("CSV2LUA_VERBOSE", "true")
		in := env.write(t, "in.csv", "a\n1\n")

		res := runCLI(in, filepath.Join(env.dir, "out.lua"), "T")
		require.Equal(t, exitSuccess, res.code, res.stderr)
		assert.Contains(t, res.stderr, "line 2: [1]")
	})
}

func TestRunVersion(t *testing.T) {
	newCLIEnv(t)

	res := runCLI("--version")
	assert.Equal(t, exitSuccess, res.code)
	assert.Equal(t, "csv2lua v0.1.0\n", res.stdout)
}
