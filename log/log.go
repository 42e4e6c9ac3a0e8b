// Package log is a thin structured-logging facade over logrus. Call sites
// pass an optional context first, then the message, then alternating
// key/value pairs; a trailing error is logged under the "error" key:
//
//	log.Warn(ctx, "Oracle call failed", "mood", mood, err)
package log

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var defaultLogger = logrus.New()

// SetLevel adjusts the global log level. Unknown names fall back to info.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	defaultLogger.SetLevel(parsed)
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

func Error(args ...interface{}) { entry(args).Error(message(args)) }
func Warn(args ...interface{})  { entry(args).Warn(message(args)) }
func Info(args ...interface{})  { entry(args).Info(message(args)) }
func Debug(args ...interface{}) { entry(args).Debug(message(args)) }

func message(args []interface{}) string {
	args = stripContext(args)
	if len(args) == 0 {
		return ""
	}
	if msg, ok := args[0].(string); ok {
		return msg
	}
	return ""
}

func entry(args []interface{}) *logrus.Entry {
	args = stripContext(args)
	fields := logrus.Fields{}
	if len(args) < 2 {
		return defaultLogger.WithFields(fields)
	}
	kv := args[1:]
	for i := 0; i < len(kv); i++ {
		if err, ok := kv[i].(error); ok {
			fields["error"] = err
			continue
		}
		key, ok := kv[i].(string)
		if !ok || i+1 >= len(kv) {
			continue
		}
		fields[key] = kv[i+1]
		i++
	}
	return defaultLogger.WithFields(fields)
}

func stripContext(args []interface{}) []interface{} {
	if len(args) == 0 {
		return args
	}
	if _, ok := args[0].(context.Context); ok {
		return args[1:]
	}
	return args
}
