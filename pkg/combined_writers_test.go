package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestCombinedWriter_Write(t *testing.T) {
	stdout := &strings.Builder{}
	stdout.WriteString("boot;")
	logFile := &strings.Builder{}

	cw := NewCombinedWriter(stdout, logFile)
	require.Len(t, cw.Writers, 2)

	n, err := cw.Write([]byte("points+22;"))
	require.NoError(t, err)
	assert.Equal(t, 2*len("points+22;"), n)

	assert.Equal(t, "boot;points+22;", stdout.String())
	assert.Equal(t, "points+22;", logFile.String())
}

func TestCombinedWriter_Write_WithErrors(t *testing.T) {
	sb := &strings.Builder{}
	cw := NewCombinedWriter(&faultyWriter{msg: "disk full"}, sb, &faultyWriter{msg: "pipe closed"})

	n, err := cw.Write([]byte("streak"))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "pipe closed")

	// only the healthy writer got the payload
	assert.Equal(t, len("streak"), n)
	assert.Equal(t, "streak", sb.String())
}

type faultyWriter struct {
	msg string
}

func (f *faultyWriter) Write([]byte) (int, error) {
	return 0, errors.New(f.msg)
}
