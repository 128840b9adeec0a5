package core

import (
	"testing"

	"ncpipe/config"
	"ncpipe/util"
)

func TestBuild_Dispatch(t *testing.T) {
	logger := util.NewLogger(0)

	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{"relay", config.Config{Host: "127.0.0.1", Port: 25}, "*core.ConnectMode"},
		{"probe", config.Config{Host: "127.0.0.1", Port: 25, Probe: true}, "*core.ProbeMode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := Build(&tt.cfg, logger)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			switch tt.want {
			case "*core.ConnectMode":
				if _, ok := mode.(*ConnectMode); !ok {
					t.Errorf("got %T, want ConnectMode", mode)
				}
			case "*core.ProbeMode":
				if _, ok := mode.(*ProbeMode); !ok {
					t.Errorf("got %T, want ProbeMode", mode)
				}
			}
		})
	}
}

func TestBuild_Address(t *testing.T) {
	cfg := &config.Config{Host: "::1", Port: 1587, Probe: true}
	mode, err := Build(cfg, util.NewLogger(0))
	if err != nil {
		t.Fatal(err)
	}
	pm := mode.(*ProbeMode)
	if pm.Address != "[::1]:1587" {
		t.Errorf("Address = %q, want %q", pm.Address, "[::1]:1587")
	}
}

// TestBuild_NoDNSRejectsHostname verifies -n fails before any dial
// when the host is not a literal IP.
func TestBuild_NoDNSRejectsHostname(t *testing.T) {
	cfg := &config.Config{Host: "mail.example.com", Port: 25, NoDNS: true}
	if _, err := Build(cfg, util.NewLogger(0)); err == nil {
		t.Fatal("expected error for hostname with -n")
	}
}

// TestBuild_RelayHasMetrics verifies relay sessions carry a collector.
func TestBuild_RelayHasMetrics(t *testing.T) {
	cfg := &config.Config{Host: "127.0.0.1", Port: 25}
	mode, err := Build(cfg, util.NewLogger(0))
	if err != nil {
		t.Fatal(err)
	}
	cm := mode.(*ConnectMode)
	if cm.Metrics == nil {
		t.Error("ConnectMode should carry a metrics collector")
	}
	if cm.Capability == nil {
		t.Error("ConnectMode should carry the relay capability")
	}
}
