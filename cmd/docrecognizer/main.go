package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	docrecognizer "github.com/menta2k/document-recognizer"
	"github.com/menta2k/document-recognizer/internal/config"
	"github.com/menta2k/document-recognizer/internal/utils"
	"github.com/menta2k/document-recognizer/pkg/recognizers"
)

func main() {
	var cfgPath, names, in, script string
	var settings, images, list bool
	var scriptTimeout time.Duration
	var out outputFlags

	flag.StringVar(&cfgPath, "config", "", "config file (json|yaml), defaults to "+config.GetConfigPath()+" when present")
	flag.StringVar(&names, "recognizers", "", "comma separated recognizer types (default: all)")
	flag.BoolVar(&list, "list", false, "list available recognizers and exit")
	flag.BoolVar(&settings, "settings", false, "print the engine settings for the recognizers and exit")

	flag.StringVar(&in, "in", "", "JSON array of native results, one per recognizer")
	flag.StringVar(&out.dir, "out", "", "output directory (overrides config)")

	flag.BoolVar(&images, "images", true, "export result images")
	flag.StringVar(&out.ext, "ext", "", "image format: jpg|png|webp (overrides config)")
	flag.IntVar(&out.quality, "quality", 0, "JPEG/WebP image quality 1-100 (overrides config)")
	flag.BoolVar(&out.lossless, "lossless", false, "WebP lossless mode, -lossless=false disables it (overrides config)")
	flag.IntVar(&out.maxDim, "maxdim", -1, "max long side of exported images (px), 0=original (overrides config)")
	flag.StringVar(&out.prefix, "prefix", "", "prefix for exported image files (overrides config)")

	flag.StringVar(&script, "script", "", "JavaScript evaluated with the decoded results as `results`")
	flag.DurationVar(&scriptTimeout, "script-timeout", 5*time.Second, "timeout for -script")

	flag.Parse()

	if list {
		for _, name := range recognizers.Names() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	out.apply(&cfg.Output, set)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	collection, err := cfg.BuildCollection(splitNames(names))
	if err != nil {
		log.Fatal(err)
	}

	dr := docrecognizer.NewWithConfig(collection, cfg.ExportConfig())

	if settings {
		data, err := dr.Settings()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(data))
		return
	}

	if in == "" {
		log.Fatalf("usage: %s -in native.json [-recognizers AustriaPassportRecognizer,...] [-config file] [-out dir] [-ext jpg|png|webp] [-script js]", filepath.Base(os.Args[0]))
	}

	data, err := os.ReadFile(in)
	if err != nil {
		log.Fatal(err)
	}

	results, err := dr.DecodeResults(data)
	if err != nil {
		log.Fatal(err)
	}

	for i, result := range results {
		log.Printf("%s: state=%s", collection.Recognizers[i].Type(), result.State())
	}

	if err := utils.EnsureDir(cfg.Output.Dir); err != nil {
		log.Fatal(err)
	}

	js, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	resultsPath := filepath.Join(cfg.Output.Dir, "results.json")
	if err := os.WriteFile(resultsPath, js, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", resultsPath)

	if images {
		paths, err := dr.ExportImages(results, cfg.Output.Dir)
		for _, path := range paths {
			log.Printf("wrote %s", path)
		}
		if err != nil {
			log.Printf("image export failed: %v", err)
		}
	}

	if script != "" {
		ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
		defer cancel()

		value, err := dr.Evaluate(ctx, results, script)
		if err != nil {
			log.Fatalf("script failed: %v", err)
		}
		fmt.Println(value)
	}
}

// outputFlags holds the command line overrides of the output config
type outputFlags struct {
	dir, ext, prefix string
	quality, maxDim  int
	lossless         bool
}

// apply copies the overrides into cfg. Boolean flags only apply when they
// were given explicitly, so a config file value can be switched off.
func (f outputFlags) apply(cfg *config.OutputConfig, set map[string]bool) {
	if f.dir != "" {
		cfg.Dir = f.dir
	}
	if f.ext != "" {
		cfg.Format = strings.ToLower(f.ext)
	}
	if f.quality > 0 {
		cfg.Quality = f.quality
	}
	if set["lossless"] {
		cfg.Lossless = f.lossless
	}
	if f.maxDim >= 0 {
		cfg.MaxDimension = f.maxDim
	}
	if set["prefix"] {
		cfg.Prefix = f.prefix
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.GetConfigPath()
		if !utils.FileExists(path) {
			return config.Default(), nil
		}
	}

	return config.LoadFromFile(path)
}

func splitNames(value string) []string {
	var names []string
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
