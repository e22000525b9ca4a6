// scenetool inspects and exports demo scenes without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/scenelab/internal/config"
	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/demos"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
	"github.com/Faultbox/scenelab/internal/export"
	"github.com/Faultbox/scenelab/internal/host"
	"github.com/Faultbox/scenelab/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	// Demo setup logs through zap; keep it quiet unless something breaks.
	if err := logger.Init("warn", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	switch command {
	case "list", "ls":
		cmdList()
	case "info":
		cmdInfo(args)
	case "export", "x":
		cmdExport(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`scenetool - SceneLab demo scene utility

Usage:
  scenetool <command> [options]

Commands:
  list                                   List demos and their presets
  info <demo> [-preset p]                Show scene contents
  export <demo> [-preset p] [-o file]    Write the scene as glTF (.glb or .gltf)

Options for info and export:
  -assets dir    Asset directory (default "assets")

Examples:
  scenetool list
  scenetool info shadow -preset point
  scenetool export material -preset plain -o material.glb`)
}

func cmdList() {
	reg := demos.Registry()
	for _, name := range reg.Names() {
		d, err := reg.New(name)
		if err != nil {
			continue
		}
		fmt.Printf("%-10s %s\n", name, strings.Join(d.Presets(), ", "))
	}
}

// sceneFlags parses "<demo> [flags]" where flags may come after the name.
func sceneFlags(cmd string, args []string, extra func(*flag.FlagSet)) (name string, cfg *config.Config, preset string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	presetFlag := fs.String("preset", "", "preset name (default: the demo's first)")
	assetsDir := fs.String("assets", "assets", "asset directory")
	if extra != nil {
		extra(fs)
	}

	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		fmt.Fprintf(os.Stderr, "Usage: scenetool %s <demo> [options]\n", cmd)
		os.Exit(1)
	}
	name = args[0]
	if err := fs.Parse(args[1:]); err != nil {
		os.Exit(1)
	}

	cfg = config.Default()
	cfg.Assets.Dir = *assetsDir
	return name, cfg, *presetFlag
}

func startScene(name string, cfg *config.Config, preset string) *demo.App {
	app, err := host.Headless(cfg, name, preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return app
}

func cmdInfo(args []string) {
	name, cfg, preset := sceneFlags("info", args, nil)
	app := startScene(name, cfg, preset)
	defer app.Close()

	ctx := app.Context()
	st := ctx.Scene.CollectStats()

	fmt.Printf("Demo:      %s\n", name)
	fmt.Printf("Preset:    %s\n", ctx.Preset)
	fmt.Printf("Nodes:     %d\n", st.Nodes)
	fmt.Printf("Meshes:    %d\n", st.Meshes)
	fmt.Printf("Lines:     %d\n", st.Lines)
	fmt.Printf("Triangles: %d\n", st.Triangles)
	fmt.Printf("Shadows:   %v\n", ctx.Options.Shadows)

	lights := lighting.Collect(ctx.Scene)
	fmt.Printf("\nLights (%d):\n", len(lights))
	for _, l := range lights {
		p := l.Params()
		fmt.Printf("  %-12s intensity %.2f\n", l.Kind(), p.Intensity)
	}
}

func cmdExport(args []string) {
	var out *string
	var helpers *bool
	name, cfg, preset := sceneFlags("export", args, func(fs *flag.FlagSet) {
		out = fs.String("o", "", "output file (default <demo>-<preset>.glb)")
		helpers = fs.Bool("helpers", false, "include debug helpers")
	})
	app := startScene(name, cfg, preset)
	defer app.Close()

	path := *out
	if path == "" {
		path = fmt.Sprintf("%s-%s.glb", name, app.Context().Preset)
	}

	opts := export.DefaultOptions()
	opts.Helpers = *helpers
	stats, err := export.WriteFile(path, app.Context().Scene, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s: %d nodes, %d meshes, %d materials, %d triangles\n",
		path, stats.Nodes, stats.Meshes, stats.Materials, stats.Triangles)
}
