package main

import (
	"flag"
	"os"

	"gamepack/config"
	"gamepack/experiments"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := flag.String("config", "", "Path to a YAML config file")
	variant := flag.String("variant", "", "Variant to play, overrides the config")
	matches := flag.Int("matches", -1, "Number of matches, overrides the config")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	c, err := config.Load(*path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *variant != "" {
		c.Variant = *variant
	}
	if *matches >= 0 {
		c.Matches = *matches
	}

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("unknown log level %q", c.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	summary, err := experiments.Run(c)
	if err != nil {
		log.Fatal().Err(err).Msg("playouts failed")
	}
	log.Info().Msgf("%s: %d matches at %.1f plies per second",
		c.Variant, summary.Matches, float64(summary.Plies)/summary.Duration.Seconds())
}
