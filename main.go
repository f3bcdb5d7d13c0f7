// Command brainfk executes Brainfuck programs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/arketec/brainfk/bf"
	"github.com/arketec/brainfk/console"
)

func main() {
	log.SetPrefix("brainfk: ")
	log.SetFlags(0)

	var (
		tapeFlag     = flag.Int("tape", bf.DefaultTapeSize, "tape size in `cells`")
		wrapFlag     = flag.Bool("wrap", false, "wrap the pointer at the tape boundaries")
		binaryFlag   = flag.Bool("binary", false, "read input as two-digit hexadecimal bytes")
		realtimeFlag = flag.Bool("realtime", false, "read input one keypress at a time")
		rawFlag      = flag.Bool("raw", false, "do not strip non-instruction characters")
		watchFlag    = flag.Bool("watch", false, "re-run the program whenever its file changes")
		optionsFlag  = flag.String("options", "", "read execution options from a TOML `file`")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <program.bf | program>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	cfg := bf.NewConfig()
	if *optionsFlag != "" {
		if err := applyOptionsFile(cfg, *optionsFlag); err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tape":
			cfg.SetTapeSize(*tapeFlag)
		case "wrap":
			cfg.Wrap = *wrapFlag
		case "binary":
			cfg.BinaryInput = *binaryFlag
		case "realtime":
			cfg.RealtimeInput = *realtimeFlag
		case "raw":
			cfg.Raw = *rawFlag
		}
	})

	arg := flag.Arg(0)
	if *watchFlag {
		if filepath.Ext(arg) != ".bf" {
			log.Fatal("-watch needs a .bf program file")
		}
		if err := watchMode(arg, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	src, err := loadSource(arg)
	if err != nil {
		log.Fatal(err)
	}
	applyHeader(cfg, src)

	m := bf.NewMachine(cfg)
	m.Con = newConsole(cfg)
	if err := m.Execute(src); err != nil {
		log.Fatal(err)
	}
}

// loadSource returns the program text for the command line argument:
// the contents of a .bf file, or the argument itself as literal source.
func loadSource(arg string) (string, error) {
	if filepath.Ext(arg) != ".bf" {
		return arg, nil
	}
	b, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func newConsole(cfg *bf.Config) bf.Console {
	if cfg.RealtimeInput {
		return console.NewTerm(os.Stdin, os.Stdout)
	}
	return console.New(os.Stdin, os.Stdout)
}
