package container

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Options configures the shortener service.
type Options struct {
	Port             int    `default:"3000" env:"PORT"                 help:"Port to listen on"                                                      short:"p"`
	PublicDomain     string `env:"WORKSPACE_DEV_DOMAIN" help:"Public domain of short links; links use https when set"`
	CodeLength       int    `default:"7"    env:"CODE_LENGTH"          help:"Length of generated short codes"                                        short:"c"`
	CollisionRetries int    `default:"0"    env:"COLLISION_RETRIES"    help:"Reject taken codes and regenerate up to this many times (0 = no check)"`
	DebugListing     bool   `default:"true" env:"DEBUG_LISTING"        help:"Expose GET /urls, which lists every mapping without authentication"`
	EventsRedisAddr  string `env:"EVENTS_REDIS_ADDR"    help:"Redis address for url.created events; in-process delivery when empty"`
	LogFormat        string `default:"json" env:"LOG_FORMAT"           help:"Log format (json or console)"`
	LogLevel         string `default:"info" env:"LOG_LEVEL"            help:"Log level"`
}

// EdgeOptions configures the edge/static service.
type EdgeOptions struct {
	Port         int    `default:"8080"                  env:"PORT"          help:"Port to listen on"                            short:"p"`
	PublicDir    string `default:"public"                env:"PUBLIC_DIR"    help:"Directory holding the front-end bundle"`
	ShortenerURL string `default:"http://localhost:3000" env:"SHORTENER_URL" help:"Base URL short identifiers are redirected to"`
	CodeLength   int    `default:"7"                     env:"CODE_LENGTH"   help:"Length of short identifiers to forward"`
	LogFormat    string `default:"json"                  env:"LOG_FORMAT"    help:"Log format (json or console)"`
	LogLevel     string `default:"info"                  env:"LOG_LEVEL"     help:"Log level"`
}

// LogOptions configures the logger.
type LogOptions struct {
	Format string
	Level  string
}

// ApplyEnv overrides fields of opts with the environment variables named in
// their env tags. Unset variables leave the field untouched.
func ApplyEnv(opts any) error {
	if err := env.Parse(opts); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	return nil
}
