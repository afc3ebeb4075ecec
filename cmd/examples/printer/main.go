// The printer example: a three-state machine driven from a YAML definition,
// with per-state entered/exited signals wired to log lines.
package main

import (
	"fmt"
	"os"

	"github.com/comalice/interconnect/machinedef"
)

const printerDef = `
name: printer
states: [ready, printing, finished]
inputs: [operate, take-document]
transitions:
  - {from: ready, on: operate, to: printing}
  - {from: printing, on: operate, to: finished}
  - {from: finished, on: take-document, to: ready}
`

func main() {
	def, err := machinedef.Parse([]byte(printerDef))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	printer, err := def.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ready, _ := printer.StateNamed("ready")
	printing, _ := printer.StateNamed("printing")
	finished, _ := printer.StateNamed("finished")

	printer.OnEntered(ready, func(machinedef.State) {
		fmt.Println("Printer is ready.")
	})
	printer.OnEntered(printing, func(machinedef.State) {
		fmt.Println("Starting the print...")
	})
	printer.OnExited(printing, func(machinedef.State) {
		fmt.Println("Finishing the print...")
	})
	printer.OnEntered(finished, func(machinedef.State) {
		fmt.Println("Print finished. Please take the document.")
	})

	for _, input := range []string{"operate", "operate", "take-document"} {
		if err := printer.StepNamed(input); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Printf("final state: %s\n\n%s", printer.CurrentName(), printer.DOT())
}
