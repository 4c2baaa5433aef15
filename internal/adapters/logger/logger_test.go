package logger_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/colortools/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.NewWithWriter(buf)

	lg.Info("some message")
	lg.Warn("invalid color value specified for config.colors.green-600: invalid")
	lg.Error(os.ErrPermission)

	assert.Equal(t,
		"some message\n"+
			"! Warning: invalid color value specified for config.colors.green-600: invalid\n"+
			"✗ Error: permission denied\n",
		buf.String(),
	)
}

func TestLogger_ErrorNil(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithWriter(buf)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	first, second := &bytes.Buffer{}, &bytes.Buffer{}
	lg := logger.NewWithWriter(first)
	lg.SetOutput(second)
	lg.Info("moved")

	assert.Empty(t, first.String())
	assert.Equal(t, "moved\n", second.String())
}

func TestNew(t *testing.T) {
	if logger.New() == nil {
		t.Fatal("Expected New() to return a non-nil logger")
	}
}

func TestCollectErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: []string{"simple error"},
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			want: []string{"outer layer", "middle layer", "root cause"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorMessages(tt.err))
		})
	}
}

func TestFormatErrorChain(t *testing.T) {
	got := logger.FormatErrorChain([]string{`cannot parse color "x"`, "invalid color"})

	assert.Equal(t, "Error: cannot parse color \"x\"\n\n  Caused by:\n    → invalid color", got)
	assert.Equal(t, "Error: one\n       two", logger.FormatErrorChain([]string{"one\ntwo"}))
}
