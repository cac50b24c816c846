package app

import (
	"flag"
	"log/slog"
	"strings"

	"cannon/internal/game"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Seed     int64
	Time     float64
	Cap      int
	Volume   float64
	Mute     bool
	HUD      bool
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := game.DefaultConfig()
	return &Config{
		Width:    480,
		Height:   800,
		Seed:     0,
		Time:     def.StartingTime,
		Cap:      def.ReflectionCap,
		Volume:   0.6,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for target directions (0 picks one from the clock)")
	fs.Float64Var(&c.Time, "time", c.Time, "seconds per session")
	fs.IntVar(&c.Cap, "reflections", c.Cap, "reflections that end a session")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "sound effect volume in [0,1]")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "do not open the audio device")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel at start")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Game returns the session rules selected by the flags.
func (c *Config) Game() game.Config {
	return game.Config{StartingTime: c.Time, ReflectionCap: c.Cap, Seed: c.Seed}
}

// Level parses LogLevel, falling back to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
