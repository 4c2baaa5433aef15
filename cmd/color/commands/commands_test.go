package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/colortools/cmd/color/commands"
	"go.trai.ch/colortools/internal/app"
	"go.trai.ch/colortools/internal/build"
	"go.trai.ch/colortools/internal/core/domain"
)

type mockApp struct {
	showFunc   func(ctx context.Context, w io.Writer, args []string, opts app.ShowOptions) error
	getFunc    func(ctx context.Context, w io.Writer, key string) error
	setFunc    func(ctx context.Context, key, value string) error
	deleteFunc func(ctx context.Context, key string) error
	listFunc   func(ctx context.Context, w io.Writer) error
}

func (m *mockApp) Show(ctx context.Context, w io.Writer, args []string, opts app.ShowOptions) error {
	if m.showFunc != nil {
		return m.showFunc(ctx, w, args, opts)
	}
	return nil
}

func (m *mockApp) ConfigGet(ctx context.Context, w io.Writer, key string) error {
	if m.getFunc != nil {
		return m.getFunc(ctx, w, key)
	}
	return nil
}

func (m *mockApp) ConfigSet(ctx context.Context, key, value string) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value)
	}
	return nil
}

func (m *mockApp) ConfigDelete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

func (m *mockApp) ConfigList(ctx context.Context, w io.Writer) error {
	if m.listFunc != nil {
		return m.listFunc(ctx, w)
	}
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Show(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ShowOptions
		var capturedArgs []string

		mock := &mockApp{
			showFunc: func(_ context.Context, _ io.Writer, args []string, opts app.ShowOptions) error {
				capturedArgs = args
				capturedOpts = opts
				return nil
			},
		}

		_, err := execute(t, mock, "show", "000000", "bada55",
			"--format", "long", "--sort", "-1", "--columns", "hex,rgb", "--no-headers", "--no-truncate")
		require.NoError(t, err)

		assert.Equal(t, []string{"000000", "bada55"}, capturedArgs)
		assert.Equal(t, app.ShowOptions{
			Format:       "long",
			Sort:         true,
			SingleColumn: true,
			Columns:      "hex,rgb",
			NoHeaders:    true,
			NoTruncate:   true,
		}, capturedOpts)
	})

	t.Run("shorthands select the format", func(t *testing.T) {
		tests := []struct {
			flag   string
			format string
		}{
			{flag: "--json", format: "json"},
			{flag: "--long", format: "long"},
			{flag: "-l", format: "long"},
		}

		for _, tt := range tests {
			t.Run(tt.flag, func(t *testing.T) {
				var got string
				mock := &mockApp{
					showFunc: func(_ context.Context, _ io.Writer, _ []string, opts app.ShowOptions) error {
						got = opts.Format
						return nil
					},
				}

				_, err := execute(t, mock, "show", "000000", tt.flag)
				require.NoError(t, err)
				assert.Equal(t, tt.format, got)
			})
		}
	})

	t.Run("default format", func(t *testing.T) {
		var got string
		mock := &mockApp{
			showFunc: func(_ context.Context, _ io.Writer, _ []string, opts app.ShowOptions) error {
				got = opts.Format
				return nil
			},
		}

		_, err := execute(t, mock, "show", "000000")
		require.NoError(t, err)
		assert.Equal(t, string(domain.FormatHex), got)
	})

	t.Run("returns error on show failure", func(t *testing.T) {
		mock := &mockApp{
			showFunc: func(_ context.Context, _ io.Writer, _ []string, _ app.ShowOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "show", "target")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no colors provided", func(t *testing.T) {
		mock := &mockApp{
			showFunc: func(_ context.Context, _ io.Writer, _ []string, _ app.ShowOptions) error {
				panic("should not be called")
			},
		}

		out, err := execute(t, mock, "show")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
		assert.Contains(t, out, "color show")
	})
}

func TestCommands_Config(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		var key string
		mock := &mockApp{
			getFunc: func(_ context.Context, w io.Writer, k string) error {
				key = k
				_, err := io.WriteString(w, "#3b82f6\n")
				return err
			},
		}

		out, err := execute(t, mock, "config", "get", "colors.blue-500")
		require.NoError(t, err)
		assert.Equal(t, "colors.blue-500", key)
		assert.Equal(t, "#3b82f6\n", out)
	})

	t.Run("set", func(t *testing.T) {
		var key, value string
		mock := &mockApp{
			setFunc: func(_ context.Context, k, v string) error {
				key, value = k, v
				return nil
			},
		}

		_, err := execute(t, mock, "config", "set", "colors.blue-500", "#3B82F6")
		require.NoError(t, err)
		assert.Equal(t, "colors.blue-500", key)
		assert.Equal(t, "#3B82F6", value)
	})

	t.Run("set without value", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "config", "set", "colors.blue-500")
		require.Error(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		var key string
		mock := &mockApp{
			deleteFunc: func(_ context.Context, k string) error {
				key = k
				return nil
			},
		}

		_, err := execute(t, mock, "config", "delete", "colors.blue-500")
		require.NoError(t, err)
		assert.Equal(t, "colors.blue-500", key)
	})

	t.Run("list", func(t *testing.T) {
		called := false
		mock := &mockApp{
			listFunc: func(_ context.Context, _ io.Writer) error {
				called = true
				return nil
			},
		}

		_, err := execute(t, mock, "config", "list")
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "config", "rename")
		require.ErrorIs(t, err, domain.ErrUnknownConfigTopic)
	})

	t.Run("shows usage without topic", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "config")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		t.Run(flag, func(t *testing.T) {
			out, err := execute(t, &mockApp{}, flag)
			require.NoError(t, err)
			assert.Contains(t, out, "color version "+build.Version)
		})
	}
}
