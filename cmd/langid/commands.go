package main

import (
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"

	"github.com/neurlang/langid/config"
	"github.com/neurlang/langid/logger"
)

var (
	datasetDir string
	trainLimit int
	logLevel   string
	logFormat  string
)

func root() *commander.Command {
	return &commander.Command{
		UsageLine: "langid",
		Short:     "identify the language of sentences",
		Flag:      *flag.NewFlagSet("langid", flag.ExitOnError),
		Subcommands: []*commander.Command{
			evaluateCmd(),
			interactiveCmd(),
			detectCmd(),
		},
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&datasetDir, "datasets", "", "Directory holding the <code>_50K_sentences.txt and <code>_test_1k.txt files")
	fs.IntVar(&trainLimit, "limit", 0, "Sentences learned per language")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", "", "Log format (console, json)")
	return fs
}

func evaluateCmd() *commander.Command {
	return &commander.Command{
		Run:       runEvaluate,
		UsageLine: "evaluate [options]",
		Short:     "train and report the accuracy on every test file",
		Long: `
train on every language and report the accuracy on the labeled test files

	$ ./langid evaluate -datasets <dir> [options]
	$ ./langid

`,
		Flag: *newFlagSet("evaluate"),
	}
}

func interactiveCmd() *commander.Command {
	return &commander.Command{
		Run:       runInteractive,
		UsageLine: "interactive [options]",
		Short:     "classify sentences typed one per line",
		Long: `
train on every language, then classify each line read from standard input
until a line starting with quit or exit

	$ ./langid interactive [options]
	$ ./langid 0

`,
		Flag: *newFlagSet("interactive"),
	}
}

func detectCmd() *commander.Command {
	return &commander.Command{
		Run:       runDetect,
		UsageLine: "detect [options] [file]",
		Short:     "tell which language dominates a document",
		Long: `
train on every language, then report the language most lines of the document
are classified as. Without a file argument the path is read from standard input.

	$ ./langid detect [options] <file>
	$ ./langid 1

`,
		Flag: *newFlagSet("detect"),
	}
}

// loadConfig merges the flags over config.Load
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if datasetDir != "" {
		cfg.Dataset.Dir = datasetDir
	}
	if trainLimit > 0 {
		cfg.Dataset.TrainLimit = trainLimit
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	return cfg, nil
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func runEvaluate(cmd *commander.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	return evaluate(cfg, log, os.Stdout)
}

func runInteractive(cmd *commander.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	return interactive(cfg, log, os.Stdin, os.Stdout)
}

func runDetect(cmd *commander.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	return detect(cfg, log, path, os.Stdin, os.Stdout)
}
