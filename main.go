package main

import (
	"context"
	"elevsim/config"
	"elevsim/logger"
	"elevsim/sim"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	flags := parseCommandlineFlags()
	log := logger.GetLogger()

	/*
	 * Initiate config: file, then env overrides, then flags
	 */
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load config")
	}

	if err := cfg.ApplyEnv(flags.envPath); err != nil {
		log.Fatal().Err(err).Msg("Could not apply env overrides")
	}

	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	log, err = configuredLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid log level")
	}

	/*
	 * Initiate simulator
	 */
	simulator, err := sim.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not build the building")
	}

	var script []sim.Event
	if flags.scriptPath != "" {
		script, err = sim.LoadScript(flags.scriptPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not load script")
		}
	}

	log.Info().
		Int("floors", cfg.Floors).
		Int("elevators", cfg.Elevators).
		Int("events", len(script)).
		Msg("Starting simulation")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	/*
	 * Feed the script to the simulator loop
	 */
	events := make(chan sim.Event)
	go func() {
		defer close(events)
		for _, event := range script {
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := simulator.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Simulation stopped")
	}

	report, err := simulator.Report()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not take final report")
	}

	logReport(log, report)
}
