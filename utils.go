package main

import (
	"elevsim/logger"
	"elevsim/sim"
	"flag"
	"fmt"

	"github.com/rs/zerolog"
)

type flags struct {
	configPath string
	envPath    string
	scriptPath string
	logLevel   string
}

/*
 * Parse command line arguments
 */
func parseCommandlineFlags() flags {
	configPath := flag.String("config", "", "Building config (YAML)")
	envPath := flag.String("env", ".env", "Env file with ELEVSIM_* overrides")
	scriptPath := flag.String("script", "", "Scenario of events to play (YAML)")
	logLevel := flag.String("loglevel", "", "Log level, overrides the config")

	flag.Parse()

	return flags{
		configPath: *configPath,
		envPath:    *envPath,
		scriptPath: *scriptPath,
		logLevel:   *logLevel,
	}
}

/*
 * Logger at the named level. On a bad name the returned logger is left as it was.
 */
func configuredLogger(levelName string) (*zerolog.Logger, error) {
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return logger.GetLogger(), fmt.Errorf("log level %q: %w", levelName, err)
	}

	return logger.GetLoggerConfigured(level), nil
}

func logReport(log *zerolog.Logger, report sim.Report) {
	log.Info().
		Int("delivered", report.Delivered).
		Int("riding", report.Riding).
		Int("waiting", report.Waiting).
		Dur("meanWait", report.MeanWait).
		Dur("elapsed", report.Elapsed).
		Int("pending", len(report.Building.Pending)).
		Msg("Simulation finished")

	for _, status := range report.Building.Elevators {
		log.Info().
			Int("elevator", status.ID).
			Int("floor", status.Floor).
			Stringer("state", status.State).
			Msg("Final elevator status")
	}
}
