package elev

import (
	"github.com/rs/zerolog"
)

/*
 * Default door: no hardware attached, actuation is only logged
 */
type loggingDoor struct {
	log *zerolog.Logger
}

func (d loggingDoor) OpenDoor() {
	d.log.Debug().Msg("Door open")
}

func (d loggingDoor) CloseDoor() {
	d.log.Debug().Msg("Door closed")
}
