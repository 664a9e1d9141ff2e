package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sirupsen/logrus"
)

// logrusHandler forwards slog records to a logrus logger, so library logs
// share the command's formatter and level.
type logrusHandler struct {
	logger *logrus.Logger
	fields logrus.Fields
	prefix string
}

func newLogrusLogger(l *logrus.Logger) *slog.Logger {
	return slog.New(&logrusHandler{logger: l, fields: logrus.Fields{}})
}

func toLogrusLevel(l slog.Level) logrus.Level {
	switch {
	case l >= slog.LevelError:
		return logrus.ErrorLevel
	case l >= slog.LevelWarn:
		return logrus.WarnLevel
	case l >= slog.LevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

func (h *logrusHandler) Enabled(_ context.Context, l slog.Level) bool {
	return h.logger.IsLevelEnabled(toLogrusLevel(l))
}

func (h *logrusHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(logrus.Fields, len(h.fields)+r.NumAttrs())
	for k, v := range h.fields {
		fields[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		h.addAttr(fields, h.prefix, a)
		return true
	})

	entry := h.logger.WithFields(fields)
	if !r.Time.IsZero() {
		entry = entry.WithTime(r.Time)
	}
	entry.Log(toLogrusLevel(r.Level), r.Message)
	return nil
}

func (h *logrusHandler) addAttr(fields logrus.Fields, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, ga := range v.Group() {
			h.addAttr(fields, p, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	fields[prefix+a.Key] = v.Any()
}

func (h *logrusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make(logrus.Fields, len(h.fields)+len(attrs))
	for k, v := range h.fields {
		fields[k] = v
	}
	for _, a := range attrs {
		h.addAttr(fields, h.prefix, a)
	}
	return &logrusHandler{logger: h.logger, fields: fields, prefix: h.prefix}
}

func (h *logrusHandler) WithGroup(name string) slog.Handler {
	if strings.TrimSpace(name) == "" {
		return h
	}
	return &logrusHandler{logger: h.logger, fields: h.fields, prefix: h.prefix + name + "."}
}
