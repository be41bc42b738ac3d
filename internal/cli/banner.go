package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const banner = `
  ____   ____ ____   ____ _____ _   _
 |  _ \ / ___| __ ) / ___| ____| \ | |
 | |_) | |   |  _ \| |  _|  _| |  \| |
 |  __/| |___| |_) | |_| | |___| |\  |
 |_|    \____|____/ \____|_____|_| \_|

 Turn flat PCB designs into 3D models
 Version: %s
`

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printBanner(w io.Writer) {
	fmt.Fprintf(w, banner, Version)
}
