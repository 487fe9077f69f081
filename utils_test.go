package main

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestConfiguredLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.Disabled)

	log, err := configuredLogger("warn")
	if err != nil || log == nil {
		t.Fatalf("configuredLogger(\"warn\") = %v, %v", log, err)
	}
	if level := zerolog.GlobalLevel(); level != zerolog.WarnLevel {
		t.Errorf("global level = %v, expected warn", level)
	}

	log, err = configuredLogger("loud")
	if err == nil {
		t.Fatalf("configuredLogger(\"loud\") = nil error")
	}
	if log == nil {
		t.Errorf("configuredLogger returned no logger to report the error with")
	}
	if level := zerolog.GlobalLevel(); level != zerolog.WarnLevel {
		t.Errorf("bad level changed the global level to %v", level)
	}
}
