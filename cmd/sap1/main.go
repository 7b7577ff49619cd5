// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/sap1/cpu"
	"github.com/ezrec/sap1/emulator"
	"github.com/ezrec/sap1/translate"
)

var f = translate.From

func main() {
	var program string
	var limit int
	var verbose bool
	var step bool
	var trace bool
	var check string
	var listing bool
	var hex bool

	flag.StringVar(&program, "p", "add", f("Program to run: %v", strings.Join(cpu.ProgramNames(), ", ")))
	flag.IntVar(&limit, "n", emulator.TICK_LIMIT, "Micro-step limit, 0 for none")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&step, "s", false, "Wait for a key between micro-steps")
	flag.BoolVar(&trace, "t", false, "Print the state after every micro-step")
	flag.StringVar(&check, "c", "", "Starlark expression that must hold after the run")
	flag.BoolVar(&listing, "l", false, "List the program, do not execute")
	flag.BoolVar(&hex, "x", false, "Show output in hex")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: %v", os.Args[0], f("Unknown arguments: %v", flag.Args()))
	}

	image, err := emulator.Program(program)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if listing {
		fmt.Print(image.String())
		return
	}

	emu := emulator.NewEmulator(image)
	emu.Verbose = verbose
	emu.Limit = limit
	emu.Display.Output = os.Stdout
	emu.Display.Hex = hex
	emu.Reset()

	var keys *keyboard
	if step {
		keys = newKeyboard(os.Stdin)
	}

	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		if (step || trace) && !done {
			fmt.Print(emu.String())
		}
		if keys != nil && !done {
			err = keys.wait()
			if errors.Is(err, errInterrupt) {
				os.Exit(130)
			}
			if err != nil {
				log.Fatalf("%v: %v", program, err)
			}
		}
	}

	fmt.Print(emu.String())

	if emu.Display.Err != nil {
		log.Fatalf("%v: %v", program, emu.Display.Err)
	}

	if len(check) != 0 {
		ok, err := emu.Check(check)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		if !ok {
			_ = translate.To(os.Stderr, "%v: check failed: %v\n", program, check)
			os.Exit(1)
		}
	}
}
