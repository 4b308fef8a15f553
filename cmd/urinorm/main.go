// Command urinorm prints the structured identifiers found in Russian
// business text: tax and bank requisites, cadastral numbers, e-mail and web
// addresses, classification codes and messenger handles.
//
// Usage:
//
//	urinorm extract [--config FILE] [--format json|yaml|text] [--unique|--check] [FILE|-]
//	urinorm schemes [--config FILE] [--format json|yaml|text]
//	urinorm version
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/open-condo-software/condo-sub035/config"
	"github.com/open-condo-software/condo-sub035/tokenizer"
	"github.com/open-condo-software/condo-sub035/uri"
	"github.com/open-condo-software/condo-sub035/validate"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	flagConfig  = "config"
	flagFormat  = "format"
	flagUnique  = "unique"
	flagCheck   = "check"
	flagVerbose = "v"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagConfig,
		Aliases: []string{"c"},
		Usage:   "TOML configuration `FILE`",
	}
}

// newApp builds the command tree.
func newApp() *cli.App {
	return &cli.App{
		Name:        "urinorm",
		Usage:       "urinorm [command]",
		Description: "Finds identifiers in Russian business text and prints them as scheme:value entities.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: flagVerbose, Usage: "log verbosity, overrides [log] verbosity"},
		},
		Commands: []*cli.Command{
			{
				Name:        "extract",
				Usage:       "urinorm extract [FILE|-]",
				Description: "Reads text from FILE, or standard input when FILE is - or missing, and prints the recognized entities.",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: flagFormat, Aliases: []string{"f"}, Usage: "output format: json, yaml or text"},
					&cli.BoolFlag{Name: flagUnique, Aliases: []string{"u"}, Usage: "print each canonical referent once, without offsets"},
					&cli.BoolFlag{Name: flagCheck, Usage: "verify check digits and print the validation report"},
				},
				Action: extract,
			},
			{
				Name:        "schemes",
				Usage:       "urinorm schemes",
				Description: "Prints the keyword dictionary: canonical keyword, family and variants.",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: flagFormat, Aliases: []string{"f"}, Value: config.FormatText, Usage: "output format: json, yaml or text"},
				},
				Action: schemes,
			},
			{
				Name:        "version",
				Usage:       "urinorm version",
				Description: "Prints out build version information",
				Action: func(c *cli.Context) error {
					fmt.Fprintf(c.App.Writer, "urinorm %s %s %s/%s\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
					return nil
				},
			},
		},
	}
}

func main() {
	// glog registers its flags on the standard flag set; mark it parsed so
	// glog does not complain, the values are set from the cli context.
	_ = flag.CommandLine.Parse(nil)
	_ = flag.Set("logtostderr", "true")

	err := newApp().Run(os.Args)
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "urinorm: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the analyzer for a command.
func setup(c *cli.Context) (*config.Config, *uri.Analyzer, error) {
	cfg, err := config.Load(c.String(flagConfig))
	if err != nil {
		return nil, nil, err
	}
	verbosity := cfg.LogCfg.Verbosity
	if c.IsSet(flagVerbose) {
		verbosity = c.Int(flagVerbose)
	}
	if err := flag.Set("v", strconv.Itoa(verbosity)); err != nil {
		return nil, nil, errors.Wrap(err, "set log verbosity")
	}

	a, err := cfg.NewAnalyzer()
	if err != nil {
		glog.Errorf("urinorm: build analyzer: %v", err)
		return nil, nil, err
	}
	return cfg, a, nil
}

func extract(c *cli.Context) error {
	cfg, a, err := setup(c)
	if err != nil {
		return err
	}
	if f := c.String(flagFormat); f != "" {
		cfg.OutputCfg.Format = strings.ToLower(f)
	}

	text, err := readInput(c.Args().First(), c.App.Reader)
	if err != nil {
		return err
	}
	if len(text) > cfg.AnalyzerCfg.MaxInputBytes {
		return errors.Errorf("input is %d bytes, the limit is %d", len(text), cfg.AnalyzerCfg.MaxInputBytes)
	}

	w := c.App.Writer
	if c.Bool(flagCheck) {
		return writeReport(w, cfg.OutputCfg.Format, validate.Entities(a.Extract(text)))
	}
	if c.Bool(flagUnique) || !cfg.OutputCfg.WithOffsets {
		reg := uri.NewRegistry()
		a.Process(tokenizer.Tokenize(text), reg)
		glog.V(1).Infof("urinorm: %d referents", reg.Len())
		return writeReferents(w, cfg.OutputCfg.Format, reg.Referents())
	}
	es := a.Extract(text)
	glog.V(1).Infof("urinorm: %d entities", len(es))
	return writeEntities(w, cfg.OutputCfg.Format, es)
}

func schemes(c *cli.Context) error {
	_, a, err := setup(c)
	if err != nil {
		return err
	}
	return writeKeywords(c.App.Writer, c.String(flagFormat), a.Keywords().Termins())
}

// readInput returns the text of the named file, or of stdin when name is
// empty or "-".
func readInput(name string, stdin io.Reader) (string, error) {
	if name == "" || name == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", name)
	}
	return string(b), nil
}
