package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/macropower/fwver/internal/cli"
	"github.com/macropower/fwver/pkg/log"
)

func init() {
	h, err := log.CreateHandler(os.Stderr, "warn", log.TextFormat)
	if err != nil {
		panic(err)
	}

	slog.SetDefault(slog.New(h))
}

const (
	cmdName = "fwver"

	shortDesc = "Keep firmware version metadata and source in sync."
	longDesc  = `fwver sets the firmware version in two places at once: the "version" (and
"version_string") fields of a firmware metadata file, and a version constant
declared in the firmware source, such as

  const int FIRMWARE_VERSION = 914;

Versions are encoded as major*100 + minor, so 9.14 is stored as 914.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
