package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/pprof"

	"github.com/glassexplorer/glassexplorer/pkg/chroma2tcell"
	"github.com/glassexplorer/glassexplorer/pkg/config"
	"github.com/glassexplorer/glassexplorer/pkg/glass"
	"github.com/glassexplorer/glassexplorer/pkg/logging"
	"github.com/glassexplorer/glassexplorer/pkg/profiling"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var pprofStopCPUProfile = pprof.StopCPUProfile

type cliFlags struct {
	configPath string
	logFile    string
	logLevel   string
	logFormat  string
	asciiWidth int
	cpuProfile string
	memProfile string
	pprofAddr  string
}

func main() {
	osExit(execute(os.Args[1:]))
}

func execute(args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	var f cliFlags
	cmd := &cobra.Command{
		Use:           "glass-explorer [dir]",
		Short:         "Glass Explorer is a terminal file manager",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f, args)
			if err != nil {
				return err
			}
			return runExplorer(cfg, f)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "YAML config `file`")
	flags.StringVar(&f.logFile, "log-file", "", "write logs to `file`")
	flags.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&f.logFormat, "log-format", "", "log format: json or console")
	flags.IntVar(&f.asciiWidth, "ascii-width", 0, "width in characters of ASCII image renders")
	flags.StringVar(&f.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&f.memProfile, "memprofile", "", "write memory profile to `file`")
	flags.StringVar(&f.pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	return cmd
}

// loadConfig reads the config file and lets explicitly set flags and the dir argument override it.
func loadConfig(cmd *cobra.Command, f cliFlags, args []string) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	changed := cmd.Flags().Changed
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if changed("ascii-width") {
		cfg.AsciiWidth = f.asciiWidth
	}
	if len(args) == 1 {
		cfg.StartDir = args[0]
	}
	return cfg, cfg.Validate()
}

func runExplorer(cfg config.Config, f cliFlags) (err error) {
	if err = logging.Init(logging.Config{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		OutputPath: cfg.LogFile,
	}); err != nil {
		return err
	}
	defer func() {
		_ = logging.Sync()
	}()

	if f.pprofAddr != "" {
		go func() {
			if err := httpListenAndServe(f.pprofAddr, nil); err != nil {
				logging.L().Error("pprof server error", zap.Error(err))
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			logging.L().Error("recovered from panic", zap.Any("panic", r))
			pprofStopCPUProfile()
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if f.cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(f.cpuProfile)
		defer stopCPUProfiling()
	}
	if f.memProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(f.memProfile)
		defer writeMemProfile()
	}

	chroma2tcell.SetStyle(cfg.Theme)
	logging.L().Info("starting", zap.String("dir", cfg.StartDir))
	return run(newApp(cfg))
}

var setupApp = func(app *tview.Application, o glass.Options) {
	glass.SetupApp(app, o)
}

var newApp = func(cfg config.Config) application {
	app := tview.NewApplication()
	setupApp(app, glass.Options{
		StartDir:     cfg.StartDir,
		AsciiWidth:   cfg.AsciiWidth,
		PreviewChars: cfg.PreviewChars,
	})
	return app
}

type application interface{ Run() error }

var run = func(app application) error {
	return app.Run()
}
