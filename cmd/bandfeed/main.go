package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/bandfeed/pkg/config"
	"github.com/umputun/bandfeed/pkg/domain"
	"github.com/umputun/bandfeed/pkg/feed"
	"github.com/umputun/bandfeed/pkg/pipeline"
	"github.com/umputun/bandfeed/pkg/registry"
	"github.com/umputun/bandfeed/pkg/scheduler"
	"github.com/umputun/bandfeed/pkg/scraper"
	"github.com/umputun/bandfeed/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"config file, built-in defaults if not set"`
	Auto   bool   `long:"auto" description:"generate feed without the interactive menu"`
	Add    string `long:"add" description:"add artist page URL and exit"`
	List   bool   `long:"list" description:"print entries of the generated feed and exit"`
	Serve  bool   `long:"serve" description:"serve generated feed over HTTP"`

	// any non-empty value, not only a parseable bool, means automation environment
	AutoEnv string `long:"auto-env" env:"GITHUB_ACTIONS" hidden:"true" description:"automation environment marker"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

// Mode is the execution mode, selected once at startup
type Mode int

// execution modes
const (
	ModeInteractive Mode = iota // two-option menu on stdin
	ModeAutomatic               // generate feed and exit
	ModeAdd                     // add a single artist and exit
	ModeList                    // print the generated feed
	ModeServe                   // serve the generated feed
)

func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeAutomatic:
		return "automatic"
	case ModeAdd:
		return "add"
	case ModeList:
		return "list"
	case ModeServe:
		return "serve"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	log.Printf("[DEBUG] starting bandfeed version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts, os.Stdin, os.Stdout)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// modeFromOpts picks execution mode, explicit actions win over the automation signal
func modeFromOpts(opts Opts) Mode {
	switch {
	case opts.Add != "":
		return ModeAdd
	case opts.List:
		return ModeList
	case opts.Serve:
		return ModeServe
	case opts.Auto || opts.AutoEnv != "":
		return ModeAutomatic
	default:
		return ModeInteractive
	}
}

func run(ctx context.Context, opts Opts, in io.Reader, out io.Writer) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	reg := registry.New(cfg.Registry.Path)
	gen := feed.NewGenerator(domain.FeedMeta{
		Title:       cfg.Feed.Title,
		Link:        cfg.Feed.Link,
		Description: cfg.Feed.Description,
	})
	scr := scraper.New(scraper.Options{Timeout: cfg.Fetch.Timeout, UserAgent: cfg.Fetch.UserAgent})
	runner := pipeline.New(reg, scr, gen, cfg.Feed.Path)

	mode := modeFromOpts(opts)
	log.Printf("[DEBUG] running in %s mode", mode)

	switch mode {
	case ModeAutomatic:
		_, err := runner.Generate(ctx)
		return err
	case ModeAdd:
		return addArtist(runner, opts.Add, out)
	case ModeList:
		return listFeed(cfg.Feed.Path, out)
	case ModeServe:
		if cfg.Server.Refresh > 0 {
			sched := scheduler.NewScheduler(runner, cfg.Server.Refresh)
			sched.Start(ctx)
			defer sched.Stop()
		}
		return server.New(cfg, reg, revision, opts.Debug).Run(ctx)
	default:
		return interactive(ctx, runner, in, out)
	}
}

// interactive shows the menu and executes one selected action
func interactive(ctx context.Context, runner *pipeline.Runner, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	readLine := func(prompt string) string {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}

	fmt.Fprintln(out, "Options:\n1. Add a new artist\n2. Generate RSS feed")
	switch readLine("Enter your choice: ") {
	case "1":
		return addArtist(runner, readLine("Enter Bandcamp artist URL: "), out)
	case "2":
		res, err := runner.Generate(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "RSS feed generated: %s (%d releases from %d artists)\n", res.Path, res.Releases, res.Artists)
		return nil
	default:
		fmt.Fprintln(out, "Invalid choice.")
		return nil
	}
}

func addArtist(runner *pipeline.Runner, artistURL string, out io.Writer) error {
	added, err := runner.AddArtist(artistURL)
	if err != nil {
		return err
	}
	if !added {
		fmt.Fprintln(out, "Artist already in list.")
		return nil
	}
	fmt.Fprintf(out, "Added new artist: %s\n", strings.TrimSpace(artistURL))
	return nil
}

// listFeed prints entries of the last generated feed
func listFeed(path string, out io.Writer) error {
	parsed, err := feed.Read(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s, %d releases\n", parsed.Title, len(parsed.Items))
	for _, item := range parsed.Items {
		fmt.Fprintf(out, "- %s %s\n", item.Title, item.Link)
	}
	return nil
}

func setupLog(dbg, noColor bool) {
	logOpts := []lgr.Option{}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
