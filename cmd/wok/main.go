package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-command/dispatcher"
	flag "github.com/spf13/pflag"

	"github.com/strogo/wok"
)

const (
	exitOK    = 0
	exitBuild = 1
	exitUsage = 2
)

type cliFlags struct {
	config       string
	templateDir  string
	siteTitle    string
	outputDir    string
	markup       string
	fencedHeader bool
	timezone     string
	logLevel     string
	dryRun       bool
	quiet        bool
}

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wok", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&f.templateDir, "template-dir", "t", "", "directory searched for templates")
	fs.StringVar(&f.siteTitle, "site-title", "", "site title injected into templates")
	fs.StringVarP(&f.outputDir, "output", "o", "", "output directory")
	fs.StringVarP(&f.markup, "markup", "m", "", "body markup (plain, markdown)")
	fs.BoolVar(&f.fencedHeader, "fenced-header", false, "accept headers wrapped in --- fences")
	fs.StringVar(&f.timezone, "timezone", "", "timezone for datetimes without an offset")
	fs.StringVar(&f.logLevel, "log-level", "", "minimum log level")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "render without writing files")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wok [flags] FILE...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := loadConfig(fs, f)
	if err != nil {
		fmt.Fprintf(stderr, "wok: %v\n", err)
		return exitUsage
	}

	module, err := wok.New(cfg, wok.WithLogWriter(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "wok: %v\n", err)
		return exitUsage
	}

	handler := module.BuildPageHandler(func(r wok.BuildResult) {
		if f.quiet {
			return
		}
		if r.DryRun {
			fmt.Fprintf(stdout, "%s -> %s (dry run, %d bytes)\n", r.Path, r.Target, r.Bytes)
			return
		}
		fmt.Fprintf(stdout, "%s -> %s\n", r.Path, r.Target)
	})
	sub := dispatcher.SubscribeCommand(handler)
	defer sub.Unsubscribe()

	for _, path := range fs.Args() {
		cmd := wok.BuildPageCommand{Path: path, DryRun: f.dryRun}
		if err := dispatcher.Dispatch(ctx, cmd); err != nil {
			fmt.Fprintf(stderr, "wok: %s: %v\n", path, err)
			return exitBuild
		}
	}
	return exitOK
}

// loadConfig reads the optional config file and applies explicitly set flags on top.
func loadConfig(fs *flag.FlagSet, f *cliFlags) (wok.Config, error) {
	cfg := wok.DefaultConfig()
	if f.config != "" {
		loaded, err := wok.LoadConfig(f.config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if fs.Changed("template-dir") {
		cfg.TemplateDir = f.templateDir
	}
	if fs.Changed("site-title") {
		cfg.SiteTitle = f.siteTitle
	}
	if fs.Changed("output") {
		cfg.OutputDir = f.outputDir
	}
	if fs.Changed("markup") {
		cfg.Markup = f.markup
	}
	if fs.Changed("fenced-header") {
		cfg.FencedHeader = f.fencedHeader
	}
	if fs.Changed("timezone") {
		cfg.Timezone = f.timezone
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if f.quiet && !fs.Changed("log-level") {
		cfg.Logging.Level = "error"
	}
	return cfg, nil
}
