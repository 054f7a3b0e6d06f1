package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	"mazegen/pkg/engine/input"
	"mazegen/pkg/engine/terminal"
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/config"
	"mazegen/pkg/game/devtools"
	"mazegen/pkg/game/generator"
	"mazegen/pkg/game/renderer"
	ebitenrenderer "mazegen/pkg/game/renderer/ebiten"
	"mazegen/pkg/game/renderer/tui"
)

// constraintFlags collects repeated -constraint x,y flags
type constraintFlags []world.Position

func (c *constraintFlags) String() string {
	parts := make([]string, len(*c))
	for i, p := range *c {
		parts[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func (c *constraintFlags) Set(value string) error {
	p, err := parsePosition(value)
	if err != nil {
		return err
	}
	*c = append(*c, p)
	return nil
}

// parsePosition parses "x,y"
func parsePosition(value string) (world.Position, error) {
	xs, ys, found := strings.Cut(value, ",")
	if !found {
		return world.Position{}, fmt.Errorf("constraint %q: want x,y", value)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return world.Position{}, fmt.Errorf("constraint %q: %w", value, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return world.Position{}, fmt.Errorf("constraint %q: %w", value, err)
	}
	return world.Position{X: x, Y: y}, nil
}

type options struct {
	width       int
	height      int
	seed        int64
	configPath  string
	constraints constraintFlags
	dumpPath    string
	gui         bool
	interactive bool
	sparse      bool
	tileSize    int
	localeDir   string
	lang        string
}

func parseFlags() options {
	var opts options
	flag.IntVar(&opts.width, "width", 0, "maze width in cells (default: fit the terminal)")
	flag.IntVar(&opts.height, "height", 0, "maze height in cells (default: fit the terminal)")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	flag.StringVar(&opts.configPath, "config", "", "YAML run configuration file")
	flag.Var(&opts.constraints, "constraint", "x,y position that must be carved (repeatable)")
	flag.StringVar(&opts.dumpPath, "dump", "", "also write a text dump of the maze to this file")
	flag.BoolVar(&opts.gui, "gui", false, "show the maze in a window instead of the terminal")
	flag.BoolVar(&opts.interactive, "interactive", false, "keep the terminal open: Enter for a new maze, d to dump, q to quit")
	flag.BoolVar(&opts.sparse, "sparse", false, "generate on the sparse grid backend")
	flag.IntVar(&opts.tileSize, "tile", ebitenrenderer.DefaultTileSize, "cell size in pixels for -gui")
	flag.StringVar(&opts.localeDir, "locale", "locales", "directory holding gettext translations")
	flag.StringVar(&opts.lang, "lang", "en_GB", "language used for messages")
	flag.Parse()
	return opts
}

func initGettext(localeDir, lang string) {
	gotext.Configure(localeDir, lang, "default")
}

// runSettings merges the config file with the command line; flags win
func runSettings(opts options) (config.File, world.PositionSet, error) {
	file := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return file, nil, err
		}
		file = loaded
	}
	if opts.width > 0 {
		file.Width = opts.width
	}
	if opts.height > 0 {
		file.Height = opts.height
	}
	if opts.seed != 0 {
		file.Seed = opts.seed
	}

	constraints, err := file.ConstraintSet()
	if err != nil {
		return file, nil, err
	}
	for _, p := range opts.constraints {
		constraints.Put(p)
	}
	return file, constraints, nil
}

// generate runs one generator over the chosen backend and captures the result
func generate[G world.Grid](gen *generator.Generator[G], file config.File, seed int64, constraints world.PositionSet) *renderer.Frame {
	if seed != 0 {
		gen.SetSeed(seed)
	}
	gen.Generate(file.Width, file.Height, file.Generator, constraints)
	return renderer.NewFrame(gen)
}

func newFrameFunc(file config.File, constraints world.PositionSet, sparse bool) func(seed int64) *renderer.Frame {
	return func(seed int64) *renderer.Frame {
		if sparse {
			return generate(generator.NewWithGrid(world.NewSparseGrid), file, seed, constraints)
		}
		return generate(generator.New(), file, seed, constraints)
	}
}

func main() {
	opts := parseFlags()
	initGettext(opts.localeDir, opts.lang)

	file, constraints, err := runSettings(opts)
	if err != nil {
		log.Fatalf("Cannot load settings: %v", err)
	}
	if file.Width <= 0 || file.Height <= 0 {
		width, height := terminal.MazeSize(tui.LegendRows + 1)
		if file.Width <= 0 {
			file.Width = width
		}
		if file.Height <= 0 {
			file.Height = height
		}
	}

	newFrame := newFrameFunc(file, constraints, opts.sparse)
	frame := newFrame(file.Seed)

	dump := func(f *renderer.Frame) {
		path, err := devtools.DumpToFile(opts.dumpPath, f)
		if err != nil {
			log.Printf("Cannot write map dump: %v", err)
			return
		}
		log.Printf("Map dump written to %s", path)
	}
	if opts.dumpPath != "" {
		dump(frame)
	}

	if opts.gui {
		viewer := ebitenrenderer.New(opts.tileSize, func() *renderer.Frame {
			return newFrame(0)
		})
		viewer.SetDumpHandler(dump)
		renderer.SetRenderer(viewer)
		renderer.Init()
		renderer.RenderFrame(frame)
		if err := viewer.Run(); err != nil {
			log.Fatalf("Cannot run viewer: %v", err)
		}
		return
	}

	renderer.SetRenderer(tui.New())
	renderer.Init()
	renderer.Clear()
	renderer.RenderFrame(frame)
	if opts.interactive {
		runInteractive(frame, newFrame, dump)
	}
}

// isTerminalKey keeps the one-letter codes and bare Enter for the terminal help
func isTerminalKey(code string) bool {
	return len(code) <= 1
}

// runInteractive reads commands from the terminal until the user quits
func runInteractive(frame *renderer.Frame, newFrame func(seed int64) *renderer.Frame, dump func(*renderer.Frame)) {
	for {
		renderer.ShowMessage(renderer.KeyHelp(isTerminalKey))
		intent := input.IntentFor(input.DeviceTerminal, input.GetInput())
		switch intent.Action {
		case input.ActionQuit:
			return
		case input.ActionDump:
			dump(frame)
		case input.ActionRegenerate:
			frame = newFrame(0)
			renderer.Clear()
			renderer.RenderFrame(frame)
		}
	}
}
