package ui

import (
	"fmt"
	"io"
)

// FormatStatus returns the icon, color and label of a run status.
func FormatStatus(status string) (icon, color, text string) {
	switch status {
	case "passed":
		return IconCheckmark, ColorGreen, "passed"
	case "failed":
		return IconCross, ColorRed, "failed"
	case "running":
		return IconPlay, ColorCyan, "running"
	default:
		return IconClock, ColorYellow, status
	}
}

func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ColorGreen+IconCheckmark+" "+format+ColorReset+"\n", args...)
}

func Failure(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ColorRed+IconCross+" "+format+ColorReset+"\n", args...)
}

func Info(w io.Writer, icon, format string, args ...any) {
	fmt.Fprintf(w, ColorCyan+icon+" "+format+ColorReset+"\n", args...)
}
