package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/domenkozar/language-ecmascript/parser"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeFile(t, "cfg.yaml", "maxDepth: 50\n"))
	require.NoError(t, err)
	assert.Equal(t, config{MaxDepth: 50, Print: printTree}, cfg)

	_, err = loadConfig(writeFile(t, "cfg.yaml", "maxDepht: 50\n"))
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunPrintsSource(t *testing.T) {
	src := writeFile(t, "a.js", "var a = 1 + 2 * 3")
	cfg := writeFile(t, "cfg.yaml", "print: parens\n")

	var out bytes.Buffer
	err := run(args{Files: []string{src}, Config: cfg, Repeat: 1}, &out, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "var a = (1 + (2 * 3));\n", out.String())

	out.Reset()
	err = run(args{Files: []string{src}, Config: cfg, Print: printJS}, &out, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "var a = 1 + 2 * 3;\n", out.String())
}

func TestRunTiming(t *testing.T) {
	src := writeFile(t, "a.js", "a(b)")

	var out bytes.Buffer
	err := run(args{Files: []string{src}, Print: printNone, Repeat: 3, Time: true}, &out, zap.NewNop())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(3 runs)")
	assert.Contains(t, out.String(), "Median:")
}

func TestRunFailures(t *testing.T) {
	good := writeFile(t, "good.js", "a;")
	bad := writeFile(t, "bad.js", "a = ;")

	var out bytes.Buffer
	err := run(args{Files: []string{good, bad}, Print: printNone}, &out, zap.NewNop())
	require.Error(t, err)
	assert.Equal(t, "1 of 2 files failed to parse", err.Error())

	err = run(args{Files: []string{good}, Print: "xml"}, &out, zap.NewNop())
	assert.Error(t, err)
}

func TestRunPrintsTree(t *testing.T) {
	src := writeFile(t, "a.js", "a + b;")
	var out bytes.Buffer
	require.NoError(t, run(args{Files: []string{src}}, &out, zap.NewNop()))
	assert.Contains(t, out.String(), "ast.BinaryExpression")
}

func TestCountNodes(t *testing.T) {
	program, err := parser.ParseProgram("a.js", "a + b;")
	require.NoError(t, err)
	// program, statement, binary expression and two identifiers
	assert.Equal(t, 5, countNodes(program))
}
