// Package logger уровневый логгер сервиса поверх logrus.
// Сохраняет printf-контракт Info/Warn/Error(format, v...), на который завязаны все пакеты.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// maxFileSizeMB размер файла лога до ротации
const maxFileSizeMB = 10

// Logger пишет в stdout и (опционально) в файл с ротацией
type Logger struct {
	mu   sync.Mutex
	log  *logrus.Logger
	file io.Closer
}

// ParseLevel конвертирует строку из конфига в уровень logrus, пустая строка = info
func ParseLevel(s string) (logrus.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("unknown log level %q: %w", s, err)
	}
	return lvl, nil
}

// New создает логгер. Если file пустой, пишет только в stdout
func New(file string, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := &Logger{log: logrus.New()}
	l.log.SetLevel(lvl)
	l.log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000",
	})

	if file == "" {
		l.log.SetOutput(os.Stdout)
	} else {
		rotated := &lumberjack.Logger{
			Filename:  file,
			MaxSize:   maxFileSizeMB,
			LocalTime: true,
		}
		l.file = rotated
		l.log.SetOutput(io.MultiWriter(os.Stdout, rotated))
	}

	// Перед выходом по Fatal дописываем и закрываем файл
	l.log.ExitFunc = func(code int) {
		_ = l.Close()
		os.Exit(code)
	}

	return l, nil
}

// NewWithWriter создает логгер поверх произвольного writer (для тестов)
func NewWithWriter(w io.Writer, level logrus.Level) *Logger {
	l := &Logger{log: logrus.New()}
	l.log.SetOutput(w)
	l.log.SetLevel(level)
	l.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return l
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Fatal пишет сообщение уровня FATAL и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatalf(format, v...)
}

// Close закрывает файл лога, если он был открыт. Повторный вызов безопасен
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
