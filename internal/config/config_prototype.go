package config

import (
	"flag"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// GetPrototypeConfig builds the configuration of the standalone prototype
// service. Only Server.PrototypeAddress is read: from
// SERVER_PROTOTYPE_ADDRESS, then the -a flag, falling back to
// [DefaultPrototypeAddress].
func GetPrototypeConfig() (*Server, error) {
	envCfg := &Server{}
	if err := parseEnv(envCfg, "SERVER_"); err != nil {
		return nil, err
	}

	cfg := &Server{PrototypeAddress: DefaultPrototypeAddress}
	for _, src := range []*Server{{PrototypeAddress: envCfg.PrototypeAddress}, parsePrototypeFlags(commandLineArgs())} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.PrototypeAddress == "" {
		return nil, fmt.Errorf("%w: prototype address is required", ErrInvalidServerConfigs)
	}
	return cfg, nil
}

func parsePrototypeFlags(args []string) *Server {
	fs := flag.NewFlagSet("veepo-mockapi", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	cfg := &Server{}
	fs.StringVar(&cfg.PrototypeAddress, "a", "", "Prototype service address host:port")

	_ = fs.Parse(args)
	return cfg
}
