// Command spxdemo renders a scene with the spx rasterizer, writes it as a
// PNG and optionally previews it in the terminal.
//
// Without -scene it draws the built-in plotter scene.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/spx"
	"github.com/gogpu/spx/font"
	"github.com/gogpu/spx/internal/demo"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		scenePath = flag.String("scene", "", "scene file (.toml, .yaml); built-in scene when empty")
		output    = flag.String("output", "spx.png", "output PNG file, empty to skip")
		preview   = flag.Bool("preview", false, "print the image to the terminal")
		cols      = flag.Int("cols", 80, "preview width in cells")
		fontPath  = flag.String("font", "", "TrueType/OpenType font for text shapes")
		backend   = flag.String("backend", "ximage", "font backend: ximage or gotext")
		dump      = flag.String("dump", "", "print the scene as toml or yaml and exit")
		verbose   = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		spx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	sc := demo.DefaultScene()
	if *scenePath != "" {
		var err error
		if sc, err = demo.LoadScene(*scenePath); err != nil {
			return err
		}
	}

	if *dump != "" {
		data, err := sc.Marshal(*dump)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	f, lib, err := loadFont(*fontPath, *backend, sc)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeFont(f, lib); err != nil {
			log.Printf("Failed to release font: %v", err)
		}
	}()

	s, overflow, err := demo.Render(sc, f)
	if err != nil {
		return err
	}
	if overflow > 0 {
		log.Printf("%d samples fell outside the %dx%d surface", overflow, sc.Width, sc.Height)
	}

	if *preview {
		fmt.Println(demo.Preview(s, *cols))
	}

	if *output == "" {
		return nil
	}
	big := demo.Upscale(s, sc.Scale)
	if err := savePNG(*output, big); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	log.Printf("Scene saved to %s (%dx%d)\n", *output, big.Width(), big.Height())
	return nil
}

// loadFont opens the requested face, falling back to the scene's font and
// then to the built-in one. The library is nil for the built-in font;
// otherwise the caller releases both with closeFont.
func loadFont(path, backend string, sc *demo.Scene) (*spx.Font, *font.Library, error) {
	if path == "" {
		path = sc.Font
	}
	if path == "" {
		return font.Default(), nil, nil
	}

	lib, err := font.NewLibrary(font.WithBackend(backend))
	if err != nil {
		return nil, nil, err
	}
	f, err := lib.Load(path, sc.FontSize)
	if err != nil {
		return nil, nil, errors.Join(err, lib.Close())
	}
	return f, lib, nil
}

func closeFont(f *spx.Font, lib *font.Library) error {
	if lib == nil {
		return nil
	}
	return errors.Join(f.Close(), lib.Close())
}

func savePNG(path string, s *spx.Surface) error {
	// #nosec G304 -- Output path is provided by the user
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, s.ToImage()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
