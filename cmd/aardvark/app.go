package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/funvibe/aardvark/internal/config"
	"github.com/funvibe/aardvark/pkg/filesystem"
	"github.com/funvibe/aardvark/pkg/stdio"
	"github.com/funvibe/aardvark/pkg/tools"
)

type app struct {
	in          io.Reader
	out, errOut io.Writer

	cfgFile string
	verbose bool
	fs      afero.Fs

	cfg     *config.Config
	viper   *viper.Viper
	log     *logrus.Logger
	console *stdio.Console
	files   *filesystem.FS
	gen     *tools.Generator
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:     in,
		out:    out,
		errOut: errOut,
		fs:     afero.NewOsFs(),
		viper:  viper.New(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "aardvark",
		Short:         "Run Aardvark runtime operations from the shell",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags())
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", config.FileName, "configuration file")
	flags.Uint64(config.KeySeed, 0, "random seed (0 seeds from system entropy)")
	flags.String(config.KeyMissing, "", `missing-file policy: "error" or "empty"`)
	flags.String("log-level", "", "log level (panic..trace)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.evalCmd(),
		a.readCmd(),
		a.writeCmd(),
		a.randNumCmd(),
		a.randIntCmd(),
		a.choiceCmd(),
		a.factorialCmd(),
		a.askCmd(),
	)
	return root
}

// setup loads the YAML file, applies environment and flag overrides, and
// builds the runtime collaborators.
func (a *app) setup(flags *pflag.FlagSet) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if err := a.bindOverrides(flags); err != nil {
		return err
	}
	if err := a.applyOverrides(cfg); err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	a.cfg = cfg

	a.log = logrus.New()
	a.log.SetOutput(a.errOut)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	lvl, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	a.log.SetLevel(lvl)

	a.console = stdio.New(a.out, a.in)
	a.files = filesystem.FromConfig(cfg, filesystem.WithFs(a.fs), filesystem.WithLogger(a.log))
	a.gen = tools.FromSeed(cfg.Random.Seed)

	a.log.WithFields(logrus.Fields{
		"config":  a.cfgFile,
		"missing": cfg.Files.Missing,
		"seed":    cfg.Random.Seed,
	}).Debug("configured")
	return nil
}

func (a *app) bindOverrides(flags *pflag.FlagSet) error {
	a.viper.SetEnvPrefix(config.EnvPrefix)
	a.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.viper.AutomaticEnv()

	binds := map[string]string{
		config.KeySeed:     config.KeySeed,
		config.KeyMissing:  config.KeyMissing,
		config.KeyLogLevel: "log-level",
	}
	for key, name := range binds {
		if err := a.viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding --%s", name)
		}
	}
	return nil
}

func (a *app) applyOverrides(cfg *config.Config) error {
	if a.viper.IsSet(config.KeySeed) {
		if err := cfg.Set(config.KeySeed, a.viper.GetUint64(config.KeySeed)); err != nil {
			return err
		}
	}
	for _, key := range []string{config.KeyMissing, config.KeyLogLevel} {
		if s := a.viper.GetString(key); a.viper.IsSet(key) && s != "" {
			if err := cfg.Set(key, s); err != nil {
				return err
			}
		}
	}
	return nil
}
