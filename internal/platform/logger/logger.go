package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	InfoLogger  *log.Logger
	WarnLogger  *log.Logger
	ErrorLogger *log.Logger
)

func init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarnLogger = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// SetOutput redirects all three loggers, mostly so tests can capture or silence them.
func SetOutput(w io.Writer) {
	InfoLogger.SetOutput(w)
	WarnLogger.SetOutput(w)
	ErrorLogger.SetOutput(w)
}

func Info(msg string, v ...interface{}) {
	InfoLogger.Output(2, sprintf(msg, v...))
}

func Warn(msg string, v ...interface{}) {
	WarnLogger.Output(2, sprintf(msg, v...))
}

func Error(msg string, err error, v ...interface{}) {
	if err != nil {
		ErrorLogger.Output(2, sprintf(msg+": %v", append(v, err)...))
	} else {
		ErrorLogger.Output(2, sprintf(msg, v...))
	}
}

func sprintf(msg string, v ...interface{}) string {
	if len(v) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, v...)
}
