package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/scout/settings"
	"github.com/sirupsen/logrus"
)

var CLI struct {
	Debug bool `help:"Enable debug logging."`

	Run struct {
		Settings string        `help:"Settings file (.toml or .yaml). Defaults are used when empty." type:"existingfile" short:"s"`
		Duration time.Duration `help:"Simulated time to run the sandbox for." default:"12s"`
		Realtime bool          `help:"Pace frames with the wall clock instead of running as fast as possible."`
	} `cmd:"" default:"1" help:"Run the sandbox scenario."`

	Config struct {
		Path string `arg:"" optional:"" default:"scout.toml" help:"Where to write the settings (.toml, .yaml or .yml)."`
	} `cmd:"" help:"Write the default settings file."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("scout"),
		kong.Description("a headless first-person exploration sandbox"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	switch ctx.Command() {
	case "run":
		if err := runCommand(log); err != nil {
			writeError(err)
		}
	case "config", "config <path>":
		if err := settings.SaveDefault(CLI.Config.Path); err != nil {
			writeError(err)
		}
		log.Infof("wrote default settings to %s", CLI.Config.Path)
	default:
		writeError(errors.New("unknown command " + ctx.Command()))
	}
}

func runCommand(log *logrus.Logger) error {
	s := settings.DefaultSettings()
	if CLI.Run.Settings != "" {
		var err error
		if s, err = settings.Load(CLI.Run.Settings); err != nil {
			return err
		}
	}
	log.SetLevel(s.LogLevel())
	if CLI.Debug {
		log.SetLevel(logrus.DebugLevel)
		log.Warn("debug logging enabled")
	}

	if s.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         s.Sentry.DSN,
			Environment: s.Sentry.Environment,
		}); err != nil {
			return fmt.Errorf("init sentry: %w", err)
		}
		defer sentry.Flush(time.Second * 2)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	sb, err := newSandbox(s, log)
	if err != nil {
		return err
	}
	defer sb.host.Close()
	sb.run(CLI.Run.Duration.Seconds(), CLI.Run.Realtime)
	return nil
}
