// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command tqvsim runs TinyQV peripheral models on a simulated bus and shows
// the resulting waveforms.
//
// Usage:
//
//	tqvsim [-log] pwm -level N [-cycles N] [-show N] [-vcd file] [-wav file]
//	tqvsim [-log] gamepad -word 0xNNNNNN [-enable=true] [-show N] [-vcd file]
//	tqvsim [-log] edge [-mode rising|falling|both|none] [-pulses N] [-vcd file]
//
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/db47h/tqvsim/logger"
	"github.com/pkg/errors"
)

type command struct {
	name  string
	usage string
	run   func(args []string) error
}

var commands = []command{
	{"pwm", "run the PWM peripheral at a fixed level", runPWM},
	{"gamepad", "send a controller word to the gamepad peripheral", runGamepad},
	{"edge", "count edges on ui_in[0]", runEdge},
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: %s [flags] command [command flags]\n\nflags:\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprint(out, "\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-8s %s\n", c.name, c.usage)
	}
}

func main() {
	echo := flag.Bool("log", false, "echo bus transactions to stderr")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	if *echo {
		logger.SetEcho(os.Stderr)
	}

	name, args := flag.Arg(0), flag.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(args); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %+v\n", name, err)
			os.Exit(1)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n", name)
	usage()
	os.Exit(2)
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(os.Args[0]+" "+name, flag.ContinueOnError)
}

// create is a helper for commands writing output files.
func create(name string, write func(f *os.File) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, name)
		}
	}()
	return errors.Wrap(write(f), name)
}
