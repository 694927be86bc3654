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
	sb1 := &strings.Builder{}
	sb1.WriteString("already-here")
	sb2 := &strings.Builder{}

	cw := NewCombinedWriter(sb1, sb2)
	require.NotNil(t, cw)
	assert.Len(t, cw.Writers, 2)

	n, err := cw.Write([]byte("hrv=52"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	assert.Equal(t, "already-herehrv=52", sb1.String())
	assert.Equal(t, "hrv=52", sb2.String())
}

func TestCombinedWriter_Write_WithErrors(t *testing.T) {
	sb := &strings.Builder{}
	cw := NewCombinedWriter(&faultyWriter{err: errors.New("disk full")}, sb, &faultyWriter{err: errors.New("closed")})

	n, err := cw.Write([]byte("a message"))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "closed")

	// written only to the string builder
	assert.Equal(t, len("a message"), n)
	assert.Equal(t, "a message", sb.String())
}

type faultyWriter struct {
	err error
}

func (fw *faultyWriter) Write(_ []byte) (int, error) {
	return 0, fw.err
}
