package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/colortools/internal/ui/output"
	"go.trai.ch/colortools/internal/ui/style"
)

// severity is how one level is presented: a prefix on the first line and the color of that line.
type severity struct {
	prefix string
	color  lipgloss.Color
}

func severityOf(level slog.Level) severity {
	switch {
	case level >= slog.LevelError:
		return severity{prefix: style.Cross + " ", color: style.Red}
	case level >= slog.LevelWarn:
		return severity{prefix: style.Warning + " Warning: ", color: style.Yellow}
	default:
		return severity{color: style.Slate}
	}
}

// PrettyHandler is a slog.Handler for terminal output.
//
// The first line of a record is the headline: it carries the severity
// prefix, the level color and the attributes. Any further lines of the
// message, such as an error's cause chain, are written dimmed below it.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []string
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w. A nil w writes to stderr.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single write.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	sev := severityOf(r.Level)
	headline, rest, _ := strings.Cut(r.Message, "\n")

	attrs := h.attrs
	if r.NumAttrs() > 0 {
		attrs = append([]string(nil), h.attrs...)
		r.Attrs(func(a slog.Attr) bool {
			attrs = appendAttr(attrs, h.group, a)
			return true
		})
	}
	if len(attrs) > 0 {
		headline += " " + strings.Join(attrs, " ")
	}

	var b strings.Builder
	b.WriteString(h.paint(sev.prefix+headline, sev.color))
	b.WriteString("\n")
	if rest != "" {
		b.WriteString(h.paint(rest, style.Slate))
		b.WriteString("\n")
	}

	_, err := h.out.WriteString(b.String())
	return err
}

func (h *PrettyHandler) paint(s string, c lipgloss.Color) string {
	return h.out.String(s).Foreground(termenv.RGBColor(string(c))).String()
}

// WithAttrs returns a Handler that writes attrs after every headline.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		next.attrs = appendAttr(next.attrs, h.group, a)
	}
	return &next
}

// WithGroup returns a Handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = qualify(h.group, name)
	return &next
}

// appendAttr formats a as key=value pairs. Group values are flattened into
// dotted keys and empty attributes are dropped.
func appendAttr(dst []string, group string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			group = qualify(group, a.Key)
		}
		for _, member := range a.Value.Group() {
			dst = appendAttr(dst, group, member)
		}
		return dst
	}

	return append(dst, qualify(group, a.Key)+"="+a.Value.String())
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
