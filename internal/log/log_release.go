//go:build release

package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"rwall/internal/config"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix(config.AppName + ": ")

	home, err := os.UserHomeDir()
	if err != nil {
		// stderr only
		return
	}

	logDir := filepath.Join(home, config.CacheSubDir)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return
	}

	log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   filepath.Join(logDir, config.AppName+config.LogExt),
		MaxSize:    5, // MB
		MaxBackups: 2,
		MaxAge:     28, // days
		Compress:   true,
	}))
	log.SetFlags(log.Ldate | log.Ltime)
}

// Print calls the standard log.Print()
func Print(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
}

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
}

// Println calls the standard log.Println()
func Println(v ...interface{}) {
	log.Output(2, fmt.Sprintln(v...))
}

// Fatal calls the standard log.Print() then exits with status 1
func Fatal(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf calls the standard log.Printf() then exits with status 1
func Fatalf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Debugf is a no-op in release builds
func Debugf(format string, v ...interface{}) {}
