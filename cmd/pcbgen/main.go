// Command pcbgen converts PCB Gerber files into 3D models.
package main

import "github.com/chazu/pcbgen/internal/cli"

func main() {
	cli.Execute()
}
