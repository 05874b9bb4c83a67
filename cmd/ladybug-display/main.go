package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/chriswmackey/ladybug-display/svgraster"
	"github.com/chriswmackey/ladybug-display/visset"
)

// debounceWindow coalesces the bursts of write events editors fire
// when saving a file.
const debounceWindow = 200 * time.Millisecond

func main() {
	var (
		outDir  = flag.String("out", ".", "directory receiving the converted drawings")
		width   = flag.Int("width", 800, "viewport width in pixels")
		height  = flag.Int("height", 600, "viewport height in pixels")
		png     = flag.Bool("png", false, "also rasterize each drawing to PNG")
		watch   = flag.Bool("watch", false, "keep running and re-convert files on change")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	paths, err := expandArgs(flag.Args())
	if err != nil {
		slog.Error("resolving inputs", "error", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		slog.Error("no visualization set files matched")
		os.Exit(1)
	}

	conv := converter{outDir: *outDir, width: *width, height: *height, png: *png}
	failed := 0
	for _, p := range paths {
		if err := conv.convert(p); err != nil {
			slog.Error("converting", "path", p, "error", err)
			failed++
		}
	}
	if *watch {
		if err := watchLoop(paths, conv); err != nil {
			slog.Error("watching", "error", err)
			os.Exit(1)
		}
		return
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: ladybug-display [flags] <vis-set.json|pattern> ...

Converts visualization set JSON documents into SVG drawings.
Arguments may be file paths or glob patterns such as 'sets/**/*.json'.

`)
	flag.PrintDefaults()
}

// expandArgs resolves the positional arguments, keeping plain paths
// as given and expanding glob patterns.
func expandArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

type converter struct {
	outDir        string
	width, height int
	png           bool
}

// convert reads one visualization set file and writes the drawing
// outputs into the configured directory.
func (c converter) convert(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var vs visset.VisualizationSet
	if err := json.Unmarshal(data, &vs); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	doc := vs.ToSVG(float64(c.width), float64(c.height))

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	svgPath := filepath.Join(c.outDir, base+".svg")
	fout, err := os.Create(svgPath)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(fout); err != nil {
		fout.Close()
		return err
	}
	if err := fout.Close(); err != nil {
		return err
	}
	slog.Info("wrote drawing", "path", svgPath)

	if !c.png {
		return nil
	}
	pngPath := filepath.Join(c.outDir, base+".png")
	pout, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := svgraster.RenderPNG(pout, doc, c.width, c.height); err != nil {
		pout.Close()
		return err
	}
	if err := pout.Close(); err != nil {
		return err
	}
	slog.Info("wrote raster", "path", pngPath)
	return nil
}

// watchLoop re-converts files as they change, until interrupted.
func watchLoop(paths []string, conv converter) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// Watch the parent directories: editors replace files on save, so
	// watching the files themselves would lose them after one write.
	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return err
		}
		slog.Debug("watching directory", "path", dir)
	}
	slog.Info("watching for changes", "files", len(watched))

	var mu sync.Mutex
	timers := make(map[string]*time.Timer)
	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			slog.Debug("file event", "path", event.Name, "op", event.Op.String())
			mu.Lock()
			if t, ok := timers[abs]; ok {
				t.Stop()
			}
			timers[abs] = time.AfterFunc(debounceWindow, func() {
				mu.Lock()
				delete(timers, abs)
				mu.Unlock()
				if err := conv.convert(abs); err != nil {
					slog.Error("converting", "path", abs, "error", err)
				}
			})
			mu.Unlock()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		}
	}
}
