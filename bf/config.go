package bf

// Config holds the execution policy for a Machine. A Machine copies its
// Config at construction time; changing a Config afterwards has no
// effect on machines already built from it.
type Config struct {
	TapeSize      int  // number of tape cells
	Wrap          bool // wrap the pointer at the tape boundaries instead of faulting
	BinaryInput   bool // `,` reads a two-digit hexadecimal line
	RealtimeInput bool // `,` reads a single un-echoed keypress
	Raw           bool // skip token filtering; other bytes are no-ops
}

// NewConfig returns a Config with the default tape size and all modes
// disabled.
func NewConfig() *Config {
	return &Config{TapeSize: DefaultTapeSize}
}

// SetTapeSize sets the tape size and returns the Config for chaining.
// The value is not validated here; a machine built with a non-positive
// size reports BadTape on its first Execute.
func (c *Config) SetTapeSize(n int) *Config {
	c.TapeSize = n
	return c
}

// ToggleWrap flips the pointer wrap mode.
func (c *Config) ToggleWrap() *Config {
	c.Wrap = !c.Wrap
	return c
}

// ToggleBinaryInput flips the hexadecimal input mode.
func (c *Config) ToggleBinaryInput() *Config {
	c.BinaryInput = !c.BinaryInput
	return c
}

// ToggleRealtimeInput flips the single-keypress input mode.
func (c *Config) ToggleRealtimeInput() *Config {
	c.RealtimeInput = !c.RealtimeInput
	return c
}

// ToggleRaw flips the raw source mode.
func (c *Config) ToggleRaw() *Config {
	c.Raw = !c.Raw
	return c
}
