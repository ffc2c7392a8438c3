package config

import (
	"flag"
	"os"
	"time"

	"github.com/mbs-dev/blogctl/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-u string   base URL for uploaded assets (default from Config)
//	-d string   path of the local credential database (default from Config)
//	-t int      request timeout in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.UploadBaseURL, "u", cfg.UploadBaseURL, "base URL for uploaded assets")
	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "path of the local credential database")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
