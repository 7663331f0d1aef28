package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	in := strings.NewReader("3 + 4 * 2 =\n\n5 / 0 =\n7 F1 %\nEscape\n")
	var out, logs bytes.Buffer

	err := run(in, &out, slog.New(slog.NewTextHandler(&logs, nil)))

	require.NoError(t, err)
	assert.Equal(t, "14\nCannot divide by 0\n0.07\n0\n", out.String())
	assert.Contains(t, logs.String(), "key=F1")
}

func TestRun_EmptyInput(t *testing.T) {
	var out bytes.Buffer

	err := run(strings.NewReader(""), &out, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, err)
	assert.Empty(t, out.String())
}
