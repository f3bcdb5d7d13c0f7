package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arketec/brainfk/bf"
)

func TestApplyHeader(t *testing.T) {
	for _, c := range []struct {
		name string
		src  string
		want bf.Config
	}{
		{
			name: "no header",
			src:  "+++.",
			want: bf.Config{TapeSize: bf.DefaultTapeSize},
		},
		{
			name: "all options",
			src:  "[options: wrap binary realtime raw tape=512]+.",
			want: bf.Config{TapeSize: 512, Wrap: true, BinaryInput: true, RealtimeInput: true, Raw: true},
		},
		{
			name: "leading whitespace",
			src:  "\n  [options: wrap]+.",
			want: bf.Config{TapeSize: bf.DefaultTapeSize, Wrap: true},
		},
		{
			name: "unknown option ignored",
			src:  "[options: wrap frobnicate]",
			want: bf.Config{TapeSize: bf.DefaultTapeSize, Wrap: true},
		},
		{
			name: "bad tape size ignored",
			src:  "[options: tape=lots wrap]",
			want: bf.Config{TapeSize: bf.DefaultTapeSize, Wrap: true},
		},
		{
			name: "unterminated header ignored",
			src:  "[options: wrap",
			want: bf.Config{TapeSize: bf.DefaultTapeSize},
		},
		{
			name: "ordinary leading loop",
			src:  "[this is just a comment]+.",
			want: bf.Config{TapeSize: bf.DefaultTapeSize},
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			cfg := bf.NewConfig()
			applyHeader(cfg, c.src)
			if *cfg != c.want {
				t.Errorf("config is %+v, want %+v", *cfg, c.want)
			}
		})
	}
}

func TestApplyOptionsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "opts.toml")
	const data = "tape = 99\nwrap = true\nbinary = true\nmystery = 1\n"
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := bf.NewConfig()
	if err := applyOptionsFile(cfg, file); err != nil {
		t.Fatal(err)
	}
	want := bf.Config{TapeSize: 99, Wrap: true, BinaryInput: true}
	if *cfg != want {
		t.Errorf("config is %+v, want %+v", *cfg, want)
	}

	if err := applyOptionsFile(cfg, filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file: got nil error")
	}
}

func TestLoadSource(t *testing.T) {
	file := filepath.Join(t.TempDir(), "prog.bf")
	if err := os.WriteFile(file, []byte("+++."), 0o644); err != nil {
		t.Fatal(err)
	}

	if got, err := loadSource(file); err != nil || got != "+++." {
		t.Errorf("loadSource(%q) = %q, %v", file, got, err)
	}
	if got, err := loadSource("+-<>."); err != nil || got != "+-<>." {
		t.Errorf("loadSource(literal) = %q, %v", got, err)
	}
	if _, err := loadSource("nope.bf"); err == nil {
		t.Error("missing .bf file: got nil error")
	}
}
