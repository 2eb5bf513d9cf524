// Command glyphbake bakes a font into the three binary buffers the GPU
// glyph renderer consumes: glyph_buffer.data (quadratic curves),
// info_buffer.data (per-codepoint curve ranges) and metrics_buffer.data
// (per-codepoint advances).
//
// Usage:
//
//	glyphbake [-font path] [-backend name] [-v] OUTPUT_DIR
//
// Without -font, the embedded Go Regular font is baked.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/fontsrc"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		fontPath = flag.String("font", "", "path to a TTF/OTF font (default: embedded Go Regular)")
		backend  = flag.String("backend", "", "font parsing backend (ximage or gotext)")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Pass output directory as first argument")
		return 1
	}
	outDir := flag.Arg(0)
	if st, err := os.Stat(outDir); err != nil || !st.IsDir() {
		fmt.Println("Argument is not a directory")
		return 1
	}

	if *verbose {
		glyphatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	data := goregular.TTF
	if *fontPath != "" {
		var err error
		data, err = os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
	}

	var opts []fontsrc.Option
	if *backend != "" {
		opts = append(opts, fontsrc.WithParser(*backend))
	}
	src, err := fontsrc.New(data, opts...)
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}

	atlas, err := glyphatlas.Build(src)
	if err != nil {
		log.Fatalf("Failed to build atlas: %v", err)
	}

	writeBuffer(outDir, "glyph_buffer.data", func(w io.Writer) error {
		return glyphatlas.WriteCurves(w, atlas.Curves)
	})
	writeBuffer(outDir, "info_buffer.data", func(w io.Writer) error {
		return glyphatlas.WriteInfos(w, atlas.Infos)
	})
	writeBuffer(outDir, "metrics_buffer.data", func(w io.Writer) error {
		return glyphatlas.WriteMetrics(w, atlas.Metrics)
	})

	log.Printf("Glyph buffer size: %d bytes", len(atlas.Curves)*glyphatlas.CurveRecordSize)
	log.Printf("Info buffer size: %d bytes", len(atlas.Infos)*glyphatlas.InfoRecordSize)
	log.Printf("Metrics buffer size: %d bytes", len(atlas.Metrics)*glyphatlas.MetricsRecordSize)
	return 0
}

// writeBuffer writes one output file, aborting the run on any failure.
// There is no partial-output recovery: the bake is all-or-nothing.
func writeBuffer(dir, name string, write func(io.Writer) error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", path, err)
	}
}
