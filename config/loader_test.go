package config

import "testing"

func TestLoadFromEnv_Verbose(t *testing.T) {
	t.Setenv("NCPIPE_VERBOSE", "2")
	cfg := &Config{}
	LoadFromEnv(cfg)
	if cfg.Verbose != 2 {
		t.Errorf("Verbose = %d, want 2", cfg.Verbose)
	}
}

func TestLoadFromEnv_NoDNS(t *testing.T) {
	for _, v := range []string{"1", "true", "yes", "TRUE", "Yes"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("NCPIPE_NO_DNS", v)
			cfg := &Config{}
			LoadFromEnv(cfg)
			if !cfg.NoDNS {
				t.Errorf("NCPIPE_NO_DNS=%q should set NoDNS", v)
			}
		})
	}
}

func TestLoadFromEnv_Garbage(t *testing.T) {
	t.Setenv("NCPIPE_VERBOSE", "lots")
	t.Setenv("NCPIPE_NO_DNS", "maybe")
	cfg := &Config{}
	LoadFromEnv(cfg)
	if cfg.Verbose != 0 || cfg.NoDNS {
		t.Errorf("garbage env should leave zero values, got %+v", cfg)
	}
}

// TestLoadFromEnv_FlagsWin documents the precedence contract: env is
// overlaid before flag parsing, so a flag-set value survives.
func TestLoadFromEnv_FlagsWin(t *testing.T) {
	t.Setenv("NCPIPE_VERBOSE", "1")
	cfg := &Config{}
	LoadFromEnv(cfg)
	cfg.Verbose = 3 // simulate -vvv parsed afterwards
	if cfg.Verbose != 3 {
		t.Errorf("Verbose = %d, want 3", cfg.Verbose)
	}
}
