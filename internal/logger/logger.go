package logger

import (
	"HueKit/internal/console"
	"HueKit/internal/paths"
	"HueKit/internal/version"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/lmittmann/tint"
)

// Helper to resolve message from any type to string
func resolveMsg(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		var parts []string
		for _, item := range v {
			parts = append(parts, resolveMsg(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}

func log(ctx context.Context, level slog.Level, msg any, args ...any) {
	logAt(ctx, time.Now(), level, msg, args...)
}

// logAt renders tags in msg and emits one record per line, all sharing t.
func logAt(ctx context.Context, t time.Time, level slog.Level, msg any, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	msgStr := resolveMsg(msg)
	// Printf-style args are consumed by the message; anything else becomes attributes.
	if len(args) > 0 && strings.Contains(msgStr, "%") {
		msgStr = fmt.Sprintf(msgStr, args...)
		args = nil
	}
	msgStr = console.ToANSI(msgStr)

	lines := strings.Split(msgStr, "\n")
	for i, line := range lines {
		// Reset every line to prevent color bleed into the next timestamp
		r := slog.NewRecord(t, level, line+console.CodeReset, 0)
		if i == 0 {
			r.Add(args...)
		}
		_ = h.Handle(ctx, r)
	}
}

// Custom log levels
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

// LevelVar allows dynamic changing of the log level
var LevelVar = new(slog.LevelVar)
var FileLevelVar = new(slog.LevelVar)

var (
	logFile   *os.File
	logFileMu sync.Mutex
)

func init() {
	LevelVar.Set(LevelNotice)
	FileLevelVar.Set(LevelInfo)
}

// SetLevel changes the console level. The file never records less than Info.
func SetLevel(level slog.Level) {
	LevelVar.Set(level)
	if level < LevelInfo {
		FileLevelVar.Set(level)
	} else {
		FileLevelVar.Set(LevelInfo)
	}
}

func levelLabel(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "[TRACE ]"
	case LevelDebug:
		return "[DEBUG ]"
	case LevelInfo:
		return "[INFO  ]"
	case LevelNotice:
		return "[NOTICE]"
	case LevelWarn:
		return "[WARN  ]"
	case LevelError:
		return "[ERROR ]"
	case LevelFatal:
		return "[FATAL ]"
	default:
		return "[" + level.String() + "]"
	}
}

func levelColor(level slog.Level) string {
	switch level {
	case LevelNotice:
		return console.CodeGreen
	case LevelWarn:
		return console.CodeYellow
	case LevelError:
		return console.CodeRed
	case LevelFatal:
		return console.CodeRedBg + console.CodeWhite
	default:
		return console.CodeBlue
	}
}

// NewConsoleHandler returns the stderr handler, colored when w is a terminal.
func NewConsoleHandler(w io.Writer, isTTY bool) slog.Handler {
	replaceAttr := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			level := a.Value.Any().(slog.Level)
			label := levelLabel(level)
			if isTTY {
				label = levelColor(level) + label + console.CodeReset
			}
			a.Value = slog.StringValue(label + "  ")
		}
		return a
	}
	return tint.NewHandler(w, &tint.Options{
		Level:       LevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     !isTTY,
		ReplaceAttr: replaceAttr,
	})
}

// NewFileHandler returns a plain-text handler; ANSI sequences are stripped from messages.
func NewFileHandler(w io.Writer) slog.Handler {
	replaceAttr := func(groups []string, a slog.Attr) slog.Attr {
		switch a.Key {
		case slog.LevelKey:
			a.Value = slog.StringValue(levelLabel(a.Value.Any().(slog.Level)) + "  ")
		case slog.MessageKey:
			a.Value = slog.StringValue(ansi.Strip(a.Value.String()))
		}
		return a
	}
	return tint.NewHandler(w, &tint.Options{
		Level:       FileLevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     true,
		ReplaceAttr: replaceAttr,
	})
}

// NewLogger builds the console handler and, when the state directory is
// writable, a file handler at paths.GetLogFilePath().
func NewLogger() *slog.Logger {
	isTTY := false
	if stat, err := os.Stderr.Stat(); err == nil {
		isTTY = (stat.Mode() & os.ModeCharDevice) != 0
	}
	handlers := []slog.Handler{muteDuringTUI(NewConsoleHandler(os.Stderr, isTTY))}

	logPath := paths.GetLogFilePath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err == nil {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		} else {
			logFileMu.Lock()
			logFile = f
			logFileMu.Unlock()
			handlers = append(handlers, NewFileHandler(f))
		}
	}

	return slog.New(&FanoutHandler{handlers: handlers})
}

// Cleanup closes the log file.
func Cleanup() {
	logFileMu.Lock()
	defer logFileMu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// tuiMutedHandler drops records while an interactive program owns the screen.
type tuiMutedHandler struct {
	slog.Handler
}

func muteDuringTUI(h slog.Handler) slog.Handler {
	return tuiMutedHandler{h}
}

func (h tuiMutedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return !console.IsTUIEnabled() && h.Handler.Enabled(ctx, level)
}

func (h tuiMutedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return tuiMutedHandler{h.Handler.WithAttrs(attrs)}
}

func (h tuiMutedHandler) WithGroup(name string) slog.Handler {
	return tuiMutedHandler{h.Handler.WithGroup(name)}
}

// FanoutHandler broadcasts records to multiple handlers
type FanoutHandler struct {
	handlers []slog.Handler
}

// NewFanoutHandler combines handlers into one.
func NewFanoutHandler(handlers ...slog.Handler) *FanoutHandler {
	return &FanoutHandler{handlers: handlers}
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: newHandlers}
}

// Global helpers for custom levels that don't satisfy standard slog methods
func Trace(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

func Debug(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Notice(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelNotice, msg, args...)
}

func Warn(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelError, msg, args...)
}

func getSystemInfo() []string {
	var info []string

	info = append(info, fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}] commit %s built %s", version.ApplicationName, version.Version, version.Commit, version.BuildDate))
	info = append(info, "")

	executable, _ := os.Executable()
	info = append(info, fmt.Sprintf("Currently running as: %s (PID %d)", executable, os.Getpid()))
	info = append(info, "")

	info = append(info, fmt.Sprintf("ARCH:        %s", runtime.GOARCH))
	info = append(info, fmt.Sprintf("OS:          %s", runtime.GOOS))
	info = append(info, fmt.Sprintf("GO:          %s", runtime.Version()))
	info = append(info, fmt.Sprintf("CONFIG FILE: %s", paths.GetConfigFilePath()))
	info = append(info, fmt.Sprintf("LOG FILE:    %s", paths.GetLogFilePath()))

	return info
}

// Fatal logs a message at FatalLevel with system information and a stack
// trace, then panics with FatalError for main to recover.
func Fatal(ctx context.Context, msg any, args ...any) {
	FatalWithStackSkip(ctx, 1, msg, args...)
}

// FatalWithStackSkip is Fatal, omitting skip additional frames from the trace.
func FatalWithStackSkip(ctx context.Context, skip int, msg any, args ...any) {
	now := time.Now()

	pc := make([]uintptr, 32)
	n := runtime.Callers(2+skip, pc)
	frames := runtime.CallersFrames(pc[:n])

	var infoLines []string
	for _, i := range getSystemInfo() {
		if i != "" {
			infoLines = append(infoLines, "  "+i)
		} else {
			infoLines = append(infoLines, "")
		}
	}

	var allFrames []runtime.Frame
	for {
		frame, more := frames.Next()
		allFrames = append(allFrames, frame)
		if !more {
			break
		}
	}

	var traceLines []string
	width := len(fmt.Sprintf("%d", len(allFrames)-1))
	wd, _ := os.Getwd()

	// Main (last) first, down to the caller of Fatal
	indent := ""
	for i := len(allFrames) - 1; i >= 0; i-- {
		frame := allFrames[i]

		if wd != "" {
			if rel, err := filepath.Rel(wd, frame.File); err == nil {
				if !strings.HasPrefix(rel, "..") && !strings.HasPrefix(rel, string(filepath.Separator)) {
					frame.File = "./" + filepath.ToSlash(rel)
				}
			}
		}

		suffix := ""
		arrowIndent := indent
		if i < len(allFrames)-1 {
			suffix = "└>"
			if len(indent) >= 2 {
				arrowIndent = indent[:len(indent)-2]
			}
		}

		line := fmt.Sprintf(
			"{{_TraceFrameNumber_}}%*d{{|-|}}: %s{{_TraceFrameLines_}}%s{{|-|}}{{_TraceSourceFile_}}%s{{|-|}}:{{_TraceLineNumber_}}%d{{|-|}} ({{_TraceFunction_}}%s{{|-|}})",
			width, i,
			arrowIndent,
			suffix,
			frame.File,
			frame.Line,
			filepath.Base(frame.Function),
		)
		traceLines = append(traceLines, "  "+line)
		indent += "  "
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(resolveMsg(msg), args...)
	}
	output := []any{
		"{{_TraceHeader_}}### BEGIN SYSTEM INFORMATION AND STACK TRACE ###",
		infoLines,
		"",
		traceLines,
		"{{_TraceFooter_}}### END SYSTEM INFORMATION AND STACK TRACE ###",
		"",
		msg,
		"",
		fmt.Sprintf("{{_FatalFooter_}}The log has been written to {{|-|}}'{{_File_}}%s{{|-|}}'.", paths.GetLogFilePath()),
	}

	logAt(ctx, now, LevelFatal, output)

	panic(FatalError{})
}

// FatalNoTrace logs a message at FatalLevel without stack trace and exits
func FatalNoTrace(ctx context.Context, msg any, args ...any) {
	logAt(ctx, time.Now(), LevelFatal, msg, args...)
	panic(FatalError{})
}

// FatalError is a special error used to panic from Fatal logger calls
// This allows the main run loop to recover and perform cleanup before exiting
type FatalError struct{}
