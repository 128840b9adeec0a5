package core

import (
	"ncpipe/config"
	"ncpipe/internal/capability"
	"ncpipe/internal/metrics"
	"ncpipe/internal/transport"
	"ncpipe/util"
)

// Build constructs the appropriate Mode from the given configuration.
// This is the single dispatch point between probe and relay.
func Build(cfg *config.Config, logger *util.Logger) (Mode, error) {
	// Address problems (including a hostname under -n) surface here,
	// before any connection attempt: they are usage errors, not
	// connect failures.
	address, err := util.ResolveAddr(cfg.Host, cfg.Port, cfg.NoDNS)
	if err != nil {
		return nil, err
	}

	dialer := &transport.TCPDialer{}

	if cfg.Probe {
		return &ProbeMode{
			Dialer:  dialer,
			Address: address,
			Logger:  logger,
		}, nil
	}

	return &ConnectMode{
		Dialer:     dialer,
		Capability: &capability.Relay{},
		Address:    address,
		Logger:     logger,
		Metrics:    metrics.New(),
	}, nil
}
