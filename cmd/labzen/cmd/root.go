package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/labzen/tool/core/config"
	"github.com/labzen/tool/core/log"
	"github.com/labzen/tool/utils/stringx"
)

// Configuration keys read by the commands
const (
	keyLogLevel        = "log.level"
	keyLogFormat       = "log.format"
	keyRandomCharset   = "random.charset"
	keyRandomLength    = "random.length"
	keyDatePattern     = "datetime.pattern"
	keyHowLongPattern  = "datetime.howlong_pattern"
	keyStringsEllipsis = "strings.ellipsis"
	keyBytesUppercase  = "bytes.uppercase"
)

const defaultHowLongPattern = "(d'd' )?HH:mm:ss c(ago|from now)"

// app carries the state shared by all commands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	config *config.Config
	logger *log.Logger
}

// NewRootCommand builds the labzen command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "labzen",
		Short: "labzen - string, byte, random and time utilities",
		Long: `labzen exposes the labzen tool packages on the command line.

Commands:
  case     - convert naming conventions
  sub      - cut a window of characters
  format   - fill {} placeholders
  brief    - shorten text with an ellipsis
  hex      - hex and integer byte encodings
  pack     - serialize key=value pairs into an envelope
  random   - numbers, strings, colors and UUIDs
  howlong  - distance between now and a point in time
  version  - show versions`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: discovered labzen.toml/yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json, text, console or logfmt")

	root.AddCommand(
		newCaseCmd(a),
		newSubCmd(a),
		newFormatCmd(a),
		newBriefCmd(a),
		newHexCmd(a),
		newPackCmd(a),
		newUnpackCmd(a),
		newRandomCmd(a),
		newHowLongCmd(a),
		newNowCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the labzen command tree against os.Args
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.config = cfg

	levelName := cfg.GetString(keyLogLevel, "warn")
	if a.verbose {
		levelName = "debug"
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return err
	}

	formatName := stringx.FirstNonBlank(a.logFormat, cfg.GetString(keyLogFormat))
	format := log.FormatText
	if isTerminal(stderr) {
		format = log.FormatConsole
	}
	if stringx.IsNotBlank(formatName) {
		if format, err = log.ParseFormat(formatName); err != nil {
			return err
		}
	}

	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: stderr,
		Name:   "labzen",
	})
	if path := cfg.FilePath(); path != "" {
		a.logger.Debug("configuration loaded", log.Field("path", path))
	}
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	options := config.DefaultDiscoveryOptions()
	if a.cfgFile == "" {
		return config.Discover(options)
	}
	return config.LoadWithOptions(a.cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// fail logs err and hands it back to cobra
func (a *app) fail(err error) error {
	if a.logger != nil {
		a.logger.LogError(err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("error:")+" "+err.Error())
}
