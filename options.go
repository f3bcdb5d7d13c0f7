package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arketec/brainfk/bf"
)

// fileOptions mirrors bf.Config in a TOML options file. Pointer fields
// distinguish keys the file sets from keys it omits.
type fileOptions struct {
	Tape     *int  `toml:"tape"`
	Wrap     *bool `toml:"wrap"`
	Binary   *bool `toml:"binary"`
	Realtime *bool `toml:"realtime"`
	Raw      *bool `toml:"raw"`
}

func applyOptionsFile(cfg *bf.Config, file string) error {
	var o fileOptions
	meta, err := toml.DecodeFile(file, &o)
	if err != nil {
		return fmt.Errorf("options file: %v", err)
	}
	for _, k := range meta.Undecoded() {
		log.Printf("options file: ignoring unknown key %q", k)
	}
	if o.Tape != nil {
		cfg.SetTapeSize(*o.Tape)
	}
	if o.Wrap != nil {
		cfg.Wrap = *o.Wrap
	}
	if o.Binary != nil {
		cfg.BinaryInput = *o.Binary
	}
	if o.Realtime != nil {
		cfg.RealtimeInput = *o.Realtime
	}
	if o.Raw != nil {
		cfg.Raw = *o.Raw
	}
	return nil
}

const headerPrefix = "[options:"

// applyHeader adjusts cfg according to an inline options header, a
// leading comment loop of the form
//
//	[options: wrap binary realtime raw tape=100]
//
// The machine itself skips the header as an ordinary loop over a zero
// cell, so no rewriting of the source is needed.
func applyHeader(cfg *bf.Config, src string) {
	s := strings.TrimSpace(src)
	if !strings.HasPrefix(s, headerPrefix) {
		return
	}
	s = s[len(headerPrefix):]
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return
	}
	for _, tok := range strings.Fields(s[:end]) {
		switch {
		case tok == "wrap":
			cfg.Wrap = true
		case tok == "binary":
			cfg.BinaryInput = true
		case tok == "realtime":
			cfg.RealtimeInput = true
		case tok == "raw":
			cfg.Raw = true
		case strings.HasPrefix(tok, "tape="):
			n, err := strconv.Atoi(tok[len("tape="):])
			if err != nil {
				log.Printf("options header: bad tape size %q", tok)
				break
			}
			cfg.SetTapeSize(n)
		default:
			log.Printf("options header: ignoring unknown option %q", tok)
		}
	}
}
