// SPDX-License-Identifier: EPL-2.0

// Command audspace plays, renders and inspects a row of four-microphone
// sound sources.
//
// Usage:
//
//	audspace [-config file.toml] [glog flags] <command> [flags]
//
// Commands:
//
//	play     play through the default audio output
//	render   mix a scripted walk into a stereo WAV file
//	inspect  print the layout and channel gains for one listener position
//	config   print the effective configuration as TOML
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/golang/glog"

	"github.com/ik5/audspace/config"
)

var errUsage = errors.New("usage: audspace [-config file] play|render|inspect|config [flags]")

var configPath = flag.String("config", "", "TOML configuration file; built-in defaults when empty")

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, *configPath, flag.Args(), os.Stdin, os.Stdout)
	stop()
	log.Flush()

	if err != nil {
		log.Exitf("audspace: %v", err)
	}
}

func run(ctx context.Context, cfgPath string, args []string, stdin *os.File, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "play":
		return cmdPlay(ctx, cfg, rest, stdin)
	case "render":
		return cmdRender(ctx, cfg, rest)
	case "inspect":
		return cmdInspect(cfg, rest, stdout)
	case "config":
		return cfg.Write(stdout)
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log.Infof("configuration loaded from %s", path)

	return cfg, nil
}
