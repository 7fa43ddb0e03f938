// wavetool samples and bakes the water surface without a window.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/ragingsea/internal/bake"
	"github.com/Faultbox/ragingsea/internal/config"
	"github.com/Faultbox/ragingsea/internal/engine/capture"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "sample":
		cmdSample(args)
	case "render", "bake":
		cmdRender(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`wavetool - Raging Sea surface utility

Usage:
  wavetool <command> [options]

Commands:
  sample [-config f] [-t s] x z       Print elevation, normal and color at (x, z)
  render [-config f] [options] out    Bake a top-down image (.png or .bmp)
  config [-config f]                  Print the effective config as YAML

Render options:
  -width, -height   Image size in pixels (default 512x512)
  -size             World extent covered by the image (default: water.size)
  -t                Shader time in seconds (default 0)
  -mode             color or height (default color)

Examples:
  wavetool sample 0.25 -0.5
  wavetool render -t 3.5 sea.png
  wavetool render -mode height -width 1024 -height 1024 heights.bmp`)
}

// loadConfig returns the defaults, or the file at path layered on top.
func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading %s: %v\n", path, err)
		os.Exit(1)
	}
	return cfg
}

func cmdSample(args []string) {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to config file")
	t := fs.Float64("t", 0, "Shader time in seconds")
	fs.Parse(args)

	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: wavetool sample [-config f] [-t s] <x> <z>")
		os.Exit(1)
	}
	var x, z float32
	if _, err := fmt.Sscan(fs.Arg(0), &x); err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad x %q: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}
	if _, err := fmt.Sscan(fs.Arg(1), &z); err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad z %q: %v\n", fs.Arg(1), err)
		os.Exit(1)
	}

	cfg := loadConfig(*cfgPath)
	p := cfg.Water.Params
	s := bake.At(&p, cfg.Water.Lighting, x, z, float32(*t))

	fmt.Printf("Position:   (%.4f, %.4f) at t=%.3f\n", s.X, s.Z, *t)
	fmt.Printf("Big waves:  %+.6f\n", p.BigWaves(x, z, float32(*t)))
	fmt.Printf("Small waves:%+.6f\n", p.SmallWaves(x, z, float32(*t)))
	fmt.Printf("Elevation:  %+.6f\n", s.Elevation)
	fmt.Printf("Normal:     (%.4f, %.4f, %.4f)\n", s.Normal[0], s.Normal[1], s.Normal[2])
	fmt.Printf("Color:      %s\n", s.Color)
}

func cmdRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to config file")
	width := fs.Int("width", 512, "Image width")
	height := fs.Int("height", 512, "Image height")
	size := fs.Float64("size", 0, "World extent (0 = water.size)")
	t := fs.Float64("t", 0, "Shader time in seconds")
	mode := fs.String("mode", "color", "color or height")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: wavetool render [options] <output.png|output.bmp>")
		os.Exit(1)
	}
	out := fs.Arg(0)

	m, err := bake.ParseMode(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := loadConfig(*cfgPath)
	extent := float32(*size)
	if extent <= 0 {
		extent = cfg.Water.Size
	}

	img, err := bake.Render(bake.Options{
		Width:    *width,
		Height:   *height,
		Size:     extent,
		Time:     float32(*t),
		Mode:     m,
		Params:   cfg.Water.Params,
		Lighting: cfg.Water.Lighting,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := capture.WriteFile(out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d, %s, t=%.3f)\n", out, *width, *height, m, *t)
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to config file")
	fs.Parse(args)

	data, err := yaml.Marshal(loadConfig(*cfgPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
