package config

import (
	"flag"
	"fmt"
)

// Flags holds the command-line surface of the server:
//
//	server [-c file] [-env-file file] [port]
type Flags struct {
	// JSONFilePath is set by -c or its alias -config.
	JSONFilePath string
	// EnvFilePath is set by -env-file.
	EnvFilePath string
	// Port is the raw positional port override, unparsed.
	Port string
	// Extra holds positional arguments after the port. They are ignored.
	Extra []string
}

// ParseFlags parses args (without the program name).
//
// Flags:
//
//	-c/-config json file path with configs
//	-env-file dotenv file path (default ".env")
//
// The first positional argument overrides the port. It is returned raw so the
// caller can fall back to the configured port when it is not a valid number.
func ParseFlags(args []string) (Flags, error) {
	var flags Flags

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&flags.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&flags.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&flags.EnvFilePath, "env-file", "", "Dotenv file path (default \".env\")")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: server [flags] [port]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return Flags{}, fmt.Errorf("error parsing flags: %w", err)
	}

	if fs.NArg() > 0 {
		flags.Port = fs.Arg(0)
		flags.Extra = fs.Args()[1:]
	}

	return flags, nil
}
