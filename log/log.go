// Package log writes structured diagnostics to a daily file under where.Logs.
// Nothing is emitted unless logs.write is set.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anisan-cli/seriesdex/constant"
	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/anisan-cli/seriesdex/key"
	"github.com/anisan-cli/seriesdex/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

type Fields = logrus.Fields

var enabled bool

func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if err := prune(dir, viper.GetInt(key.LogsKeepDays)); err != nil {
		return fmt.Errorf("prune logs: %w", err)
	}

	f, err := filesystem.API().OpenFile(
		filepath.Join(dir, filename(time.Now())),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0o666,
	)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

func filename(day time.Time) string {
	return fmt.Sprintf("%s-%s.log", constant.Seriesdex, day.Format(dateLayout))
}

// prune removes daily log files older than keepDays. Zero keeps everything.
func prune(dir string, keepDays int) error {
	if keepDays <= 0 {
		return nil
	}

	files, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return err
	}

	cutoff := time.Now().AddDate(0, 0, -keepDays)
	prefix := constant.Seriesdex + "-"
	for _, file := range files {
		name := file.Name()
		if file.IsDir() || !strings.HasPrefix(name, prefix) || filepath.Ext(name) != ".log" {
			continue
		}

		day, err := time.Parse(dateLayout, strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".log"))
		if err != nil || !day.Before(cutoff) {
			continue
		}
		if err := filesystem.API().Remove(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// Entry carries fields into every message it emits.
type Entry struct {
	fields Fields
}

func With(fields Fields) Entry {
	return Entry{fields: fields}
}

func (e Entry) emit(level logrus.Level, format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Logf(level, format, args...)
	}
}

func (e Entry) Debugf(format string, args ...any) { e.emit(logrus.DebugLevel, format, args...) }
func (e Entry) Infof(format string, args ...any)  { e.emit(logrus.InfoLevel, format, args...) }
func (e Entry) Warnf(format string, args ...any)  { e.emit(logrus.WarnLevel, format, args...) }

var bare Entry

func Error(args ...any)                 { bare.emit(logrus.ErrorLevel, "%s", fmt.Sprint(args...)) }
func Errorf(format string, args ...any) { bare.emit(logrus.ErrorLevel, format, args...) }
func Warn(args ...any)                  { bare.emit(logrus.WarnLevel, "%s", fmt.Sprint(args...)) }
func Warnf(format string, args ...any)  { bare.emit(logrus.WarnLevel, format, args...) }
func Info(args ...any)                  { bare.emit(logrus.InfoLevel, "%s", fmt.Sprint(args...)) }
func Infof(format string, args ...any)  { bare.emit(logrus.InfoLevel, format, args...) }
func Debugf(format string, args ...any) { bare.emit(logrus.DebugLevel, format, args...) }
