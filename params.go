package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/todoitems/api-contract-tests/client"
	"github.com/todoitems/api-contract-tests/framework"

	"github.com/alessio/shellescape"
	"gopkg.in/yaml.v3"
)

const defaultWaitTimeout = time.Second * 10

type commandParams struct {
	serviceURL     string
	configFile     string
	filters        framework.RegexFilters
	options        framework.OptionList
	requestTimeout time.Duration
	waitTimeout    time.Duration
	lenientCleanup bool
	debug          bool
	debugAll       bool
}

// fileConfig is the format of the optional YAML file given with -config. Anything that is
// also specified on the command line is taken from the command line.
type fileConfig struct {
	URL            string        `yaml:"url"`
	Run            []string      `yaml:"run"`
	Skip           []string      `yaml:"skip"`
	Enable         []string      `yaml:"enable"`
	Timeout        time.Duration `yaml:"timeout"`
	Wait           time.Duration `yaml:"wait"`
	LenientCleanup bool          `yaml:"lenientCleanup"`
	Debug          bool          `yaml:"debug"`
	DebugAll       bool          `yaml:"debugAll"`
}

func (c *commandParams) Read(args []string) bool {
	if err := c.parse(args, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		return false
	}
	return true
}

func (c *commandParams) parse(args []string, errOut io.Writer) error {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.serviceURL, "url", client.DefaultBaseURL, "base URL of the TodoItems service")
	fs.StringVar(&c.configFile, "config", "", "YAML file to read parameters from")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.Var(&c.options, "enable", "optional test group(s) to run: "+strings.Join(allOptionNames(), ", "))
	fs.DurationVar(&c.requestTimeout, "timeout", client.DefaultRequestTimeout, "timeout for each request to the service")
	fs.DurationVar(&c.waitTimeout, "wait", defaultWaitTimeout, "how long to wait for the service to start responding")
	fs.BoolVar(&c.lenientCleanup, "lenient-cleanup", false, "run tests even if the service could not be reset first")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if c.configFile != "" {
		setOnCommandLine := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { setOnCommandLine[f.Name] = true })
		if err := c.applyConfigFile(c.configFile, setOnCommandLine); err != nil {
			return err
		}
	}
	if c.serviceURL == "" {
		fs.Usage()
		return errors.New("-url must not be empty")
	}
	c.serviceURL = strings.TrimSuffix(c.serviceURL, "/")
	return nil
}

func (c *commandParams) applyConfigFile(path string, setOnCommandLine map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}

	if !setOnCommandLine["url"] && fc.URL != "" {
		c.serviceURL = fc.URL
	}
	if !setOnCommandLine["run"] {
		for _, p := range fc.Run {
			if err := c.filters.MustMatch.Set(p); err != nil {
				return fmt.Errorf("invalid run pattern in config file: %w", err)
			}
		}
	}
	if !setOnCommandLine["skip"] {
		for _, p := range fc.Skip {
			if err := c.filters.MustNotMatch.Set(p); err != nil {
				return fmt.Errorf("invalid skip pattern in config file: %w", err)
			}
		}
	}
	if !setOnCommandLine["enable"] {
		for _, name := range fc.Enable {
			_ = c.options.Set(name)
		}
	}
	if !setOnCommandLine["timeout"] && fc.Timeout > 0 {
		c.requestTimeout = fc.Timeout
	}
	if !setOnCommandLine["wait"] && fc.Wait > 0 {
		c.waitTimeout = fc.Wait
	}
	if !setOnCommandLine["lenient-cleanup"] && fc.LenientCleanup {
		c.lenientCleanup = true
	}
	if !setOnCommandLine["debug"] && fc.Debug {
		c.debug = true
	}
	if !setOnCommandLine["debug-all"] && fc.DebugAll {
		c.debugAll = true
	}
	return nil
}

// rerunCommand builds a shell command line that runs only the failed tests again, with the
// same service and options.
func (c *commandParams) rerunCommand(program string, results framework.Results) string {
	var b commandBuilder
	b.add(program, "-url", c.serviceURL)
	for _, name := range c.options.Names() {
		b.add("-enable", name)
	}
	if c.lenientCleanup {
		b.add("-lenient-cleanup")
	}
	if c.requestTimeout != client.DefaultRequestTimeout {
		b.add("-timeout", c.requestTimeout.String())
	}
	if pattern, ok := results.RerunPattern(); ok {
		b.add("-run", pattern)
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
