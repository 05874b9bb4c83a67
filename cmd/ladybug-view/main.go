/*
ladybug-view is an interactive terminal viewer for visualization set
JSON documents. Geometry is drawn with braille characters at an
eightfold cell resolution; layers toggle with the number keys and the
view pans and zooms with the arrow and +/- keys.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: ladybug-view <vis-set.json>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	m, err := load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
