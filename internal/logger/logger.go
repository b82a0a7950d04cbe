package logger

import (
	"fmt"

	"github.com/fatih/color"
)

// Info logs general information (cyan).
func Info(format string, v ...interface{}) {
	color.Cyan("[INFO] %s", fmt.Sprintf(format, v...))
}

// Success logs a successful operation (green).
func Success(format string, v ...interface{}) {
	color.Green("[OK] %s", fmt.Sprintf(format, v...))
}

// Warning logs a recoverable problem (yellow).
func Warning(format string, v ...interface{}) {
	color.Yellow("[WARN] %s", fmt.Sprintf(format, v...))
}

// Error logs a failure (red).
func Error(format string, v ...interface{}) {
	color.Red("[ERROR] %s", fmt.Sprintf(format, v...))
}
