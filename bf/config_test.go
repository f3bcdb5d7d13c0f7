package bf

import "testing"

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()
	if c.TapeSize != DefaultTapeSize {
		t.Errorf("TapeSize == %d, want %d", c.TapeSize, DefaultTapeSize)
	}
	if c.Wrap || c.BinaryInput || c.RealtimeInput || c.Raw {
		t.Errorf("default config has a mode enabled: %+v", *c)
	}
}

func TestConfigChaining(t *testing.T) {
	c := NewConfig().SetTapeSize(64).ToggleWrap().ToggleBinaryInput()
	want := Config{TapeSize: 64, Wrap: true, BinaryInput: true}
	if *c != want {
		t.Errorf("config is %+v, want %+v", *c, want)
	}
}

func TestToggleIdempotence(t *testing.T) {
	for _, c := range []struct {
		name   string
		toggle func(*Config) *Config
	}{
		{"wrap", (*Config).ToggleWrap},
		{"binary", (*Config).ToggleBinaryInput},
		{"realtime", (*Config).ToggleRealtimeInput},
		{"raw", (*Config).ToggleRaw},
	} {
		t.Run(c.name, func(t *testing.T) {
			cfg := NewConfig()
			orig := *cfg
			if between := *c.toggle(cfg); between == orig {
				t.Error("toggle did not change the config")
			}
			if *c.toggle(cfg) != orig {
				t.Errorf("double toggle is %+v, want %+v", *cfg, orig)
			}
		})
	}
}
