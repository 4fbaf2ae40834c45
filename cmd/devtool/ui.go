package main

import (
	"fmt"
	"io"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorReset  = "\033[0m"
)

// useColor is false when NO_COLOR is set (https://no-color.org)
var useColor = os.Getenv("NO_COLOR") == ""

func printColored(w io.Writer, color, symbol, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !useColor {
		fmt.Fprintf(w, "%s %s\n", symbol, msg)
		return
	}
	fmt.Fprintf(w, "%s%s %s%s\n", color, symbol, msg, colorReset)
}

func PrintSuccess(format string, a ...any) {
	printColored(os.Stdout, colorGreen, "✓", format, a...)
}

func PrintError(format string, a ...any) {
	printColored(os.Stderr, colorRed, "✗", format, a...)
}

func PrintHeader(title string) {
	if !useColor {
		fmt.Printf("\n=== %s ===\n", title)
		return
	}
	fmt.Printf("\n%s=== %s ===%s\n", colorYellow, title, colorReset)
}
