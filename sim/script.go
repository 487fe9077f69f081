package sim

import (
	"elevsim/types"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

/*
 * Scenario file format:
 *
 *   events:
 *     - {type: summon, floor: 2, direction: up, destination: 7}
 *     - {type: press, elevator: 0, floor: 3}
 *     - {type: out_of_service, elevator: 1}
 */
type scriptEvent struct {
	Type        string `yaml:"type"`
	Floor       int    `yaml:"floor"`
	Direction   string `yaml:"direction"`
	Destination *int   `yaml:"destination"`
	Elevator    int    `yaml:"elevator"`
}

type script struct {
	Events []scriptEvent `yaml:"events"`
}

func LoadScript(path string) ([]Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer file.Close()

	return ParseScript(file)
}

func ParseScript(r io.Reader) ([]Event, error) {
	var parsed script
	if err := yaml.NewDecoder(r).Decode(&parsed); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode script: %w", err)
	}

	events := make([]Event, 0, len(parsed.Events))

	for i, raw := range parsed.Events {
		event, err := raw.toEvent()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (raw scriptEvent) toEvent() (Event, error) {
	switch raw.Type {
	case "summon":
		dir, err := types.ParseDirection(raw.Direction)
		if err != nil {
			return Event{}, err
		}

		event := Event{Kind: SUMMON, Floor: raw.Floor, Dir: dir}
		if raw.Destination != nil {
			event.Destination = types.SomeFloor(*raw.Destination)
		}
		return event, nil

	case "press":
		return Event{Kind: PRESS, Floor: raw.Floor, Elevator: raw.Elevator}, nil

	case "out_of_service":
		return Event{Kind: OUT_OF_SERVICE, Elevator: raw.Elevator}, nil

	default:
		return Event{}, fmt.Errorf("unknown event type %q", raw.Type)
	}
}
