package logs

import (
	"io"
	"log"
	"os"
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

// Silence routes both loggers to io.Discard. Used by tests and by the -quiet flag.
func Silence() {
	ErrorLogger.SetOutput(io.Discard)
	InfoLogger.SetOutput(io.Discard)
}
