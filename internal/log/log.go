//go:build !release

// Package log is the single diagnostic stream of rwall.
// Development builds write to stderr through the standard logger.
package log

import (
	"log"
	"os"
)

var debug = os.Getenv("RWALL_DEBUG") != ""

func init() {
	log.SetFlags(0)
	log.SetPrefix("rwall: ")
}

// Print calls the standard log.Print()
func Print(v ...interface{}) {
	log.Print(v...)
}

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Println calls the standard log.Println()
func Println(v ...interface{}) {
	log.Println(v...)
}

// Fatal calls the standard log.Fatal()
func Fatal(v ...interface{}) {
	log.Fatal(v...)
}

// Fatalf calls the standard log.Fatalf()
func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

// Debugf prints only when RWALL_DEBUG is set.
func Debugf(format string, v ...interface{}) {
	if debug {
		log.Printf("[DEBUG] "+format, v...)
	}
}
