package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// addressKeys are attribute keys whose string values are always masked.
var addressKeys = map[string]bool{
	"to":        true,
	"email":     true,
	"recipient": true,
	"address":   true,
}

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+`)

// MaskValue replaces a value under an address key that holds no '@'.
const MaskValue = "***"

// MaskingHandler wraps an slog.Handler and masks email addresses in
// attribute values.
type MaskingHandler struct {
	handler slog.Handler
}

// NewMaskingHandler wraps handler. A nil handler wraps slog.Default's.
func NewMaskingHandler(handler slog.Handler) *MaskingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &MaskingHandler{handler: handler}
}

func (h *MaskingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *MaskingHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(maskAttr(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

func (h *MaskingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = maskAttr(a)
	}
	return &MaskingHandler{handler: h.handler.WithAttrs(out)}
}

func (h *MaskingHandler) WithGroup(name string) slog.Handler {
	return &MaskingHandler{handler: h.handler.WithGroup(name)}
}

func maskAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			out[i] = maskAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}
	if a.Value.Kind() != slog.KindString {
		return a
	}
	v := a.Value.String()
	if addressKeys[strings.ToLower(a.Key)] && !strings.Contains(v, "@") && v != "" {
		return slog.String(a.Key, MaskValue)
	}
	if emailPattern.MatchString(v) {
		return slog.String(a.Key, emailPattern.ReplaceAllStringFunc(v, MaskEmail))
	}
	return a
}

// MaskEmail keeps the first character of the local part and the domain:
// "student@example.edu" becomes "s***@example.edu".
func MaskEmail(addr string) string {
	local, domain, ok := strings.Cut(addr, "@")
	if !ok || local == "" {
		return MaskValue
	}
	return local[:1] + MaskValue + "@" + domain
}

// New returns a text logger on w behind a MaskingHandler. verbose selects
// Debug level, otherwise Info.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(NewMaskingHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
