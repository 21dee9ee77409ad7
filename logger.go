package hotel

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Log level tags
const (
	levelInfo  = "[\033[94mINFO\033[0m]"
	levelWarn  = "[\033[93mWARN\033[0m]"
	levelError = "[\033[91mERROR\033[0m]"
)

// Logger wraps the standard library logger with level tags, timestamps and
// caller information.
type Logger struct {
	*log.Logger
	dateFormat string
}

func NewLogger() *Logger {
	return &Logger{
		Logger:     log.New(os.Stdout, "", 0),
		dateFormat: "2006-01-02 15:04:05.000 -07:00",
	}
}

// SetOutput changes the output destination for the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) {
	l.Println(l.entry(levelInfo, format, args...))
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...any) {
	l.Println(l.entry(levelWarn, format, args...))
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.Println(l.entry(levelError, format, args...))
}

func (l *Logger) entry(level, format string, args ...any) string {
	timestamp := time.Now().Format(l.dateFormat)
	return fmt.Sprintf("[%s] %s %s: %s", timestamp, level, caller(), fmt.Sprintf(format, args...))
}

// caller returns the file name and line number of the logging call site.
func caller() string {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return "???:0"
	}
	if i := strings.LastIndex(file, "/"); i >= 0 {
		file = file[i+1:]
	}
	return file + ":" + strconv.Itoa(line)
}
