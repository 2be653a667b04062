package main

import (
	"greeting-service/internal/control"
	"os"

	zlog "github.com/rs/zerolog/log"
)

func main() {
	if err := control.Components.Start(); err != nil {
		zlog.Error().Err(err).Msg("startup failed")
		os.Exit(1)
	}

	control.Components.Wait()
	control.Components.Stop()
}
