package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArith(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_ReadsOneLineFromStdin(t *testing.T) {
	code, out, errOut := runArith(t, "(10 + 20) * 30\n1 + 1\n")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "900\n", out)
}

func TestRun_LineWithoutNewline(t *testing.T) {
	code, out, _ := runArith(t, "10 / 20")
	require.Equal(t, 0, code)
	assert.Equal(t, "0.5\n", out)
}

func TestRun_EmptyStdin(t *testing.T) {
	code, out, errOut := runArith(t, "")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "no expression on standard input")
}

func TestRun_Arguments(t *testing.T) {
	code, out, _ := runArith(t, "", "10-5-2", "--++-+-10", "1/0")
	require.Equal(t, 0, code)
	assert.Equal(t, "3\n10\n+Inf\n", out)
}

func TestRun_ReportsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lex", input: "1@2", want: "unexpected character '@' at position 1"},
		{name: "trailing", input: "1 2", want: "trailing input"},
		{name: "unclosed", input: "(1+2", want: "missing ')'"},
		{name: "unexpected", input: "1+", want: "unexpected end of input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runArith(t, "", tt.input)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.want)
			assert.Contains(t, errOut, "evaluation failed")
		})
	}
}

func TestRun_KeepsGoingAfterAnError(t *testing.T) {
	code, out, _ := runArith(t, "", "1+", "2*3")
	assert.Equal(t, 1, code)
	assert.Equal(t, "6\n", out)
}

func TestRun_DumpAST(t *testing.T) {
	code, out, _ := runArith(t, "", "-ast", "--", "-2")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "arith.Unary")
	assert.Contains(t, out, "arith.Number")
	assert.True(t, strings.HasSuffix(out, "-2\n"), out)
}

func TestRun_DebugLogging(t *testing.T) {
	code, _, errOut := runArith(t, "", "-log-level", "debug", "1+2*3")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "compiled")
	assert.Contains(t, errOut, "(1 + (2 * 3))")
}

func TestRun_BadFlag(t *testing.T) {
	code, _, errOut := runArith(t, "", "-nope")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "flag provided but not defined")
}
