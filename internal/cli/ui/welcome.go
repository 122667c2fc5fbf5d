package ui

import (
	"fmt"
	"io"
)

// PrintBanner prints the driver and target of the session.
func PrintBanner(w io.Writer, driver, url string) {
	fmt.Fprintln(w, ColorBold+IconGlobe+" gridcheck"+ColorReset+ColorGray+" ("+driver+")"+ColorReset)
	fmt.Fprintln(w, ColorGray+url+ColorReset)
}
