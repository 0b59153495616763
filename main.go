// Command squidarcade runs the Squid Game arcade: a menu of minigames built
// around outline tracing.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose        Enable verbose logging
//	--start <state>  Start in a state instead of the menu (e.g. dalgona, boundary)
//	--config <path>  Arcade configuration (default: data/arcade.yaml)
//	--seed <n>       Random seed, 0 uses the current time
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/squidarcade/pkg/app"
	"github.com/decker502/squidarcade/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	start := flag.String("start", "", "Start state (menu, redlight, dalgona, boundary, tugofwar, bridge, marbles, controls)")
	configPath := flag.String("config", app.DefaultConfigPath, "Arcade configuration file")
	seed := flag.Int64("seed", 0, "Random seed (0 = current time)")
	flag.Parse()

	embedded.Init(assetsFS, dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Start:      *start,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
