package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/yumyai/binassess/logger"
	"github.com/yumyai/binassess/pkg/handler/request"
	"github.com/yumyai/binassess/pkg/model"
	"go.uber.org/zap/zapcore"
)

const usage = `binassess: assess metagenome deconvolution using single-copy marker genes.

Scores each clustering table by how many of its bins carry more than half of
the kingdom's single-copy marker genes exactly once.

Usage:
  binassess -s <hmmtable> (-d <dbscantable>)... -o <output> [options] [<table>...]
  binassess -h | --help
  binassess --version

Options:
  -s <path>, --hmmtable <path>       HMM table created by make_marker_table.
  -d <path>, --dbscantable <path>    Table(s) containing DBSCAN clusters. Repeat the flag
                                     or list further tables after the options.
  -o <path>, --output <path>         Output table path.
  -c <name>, --column <name>         Bin column name (default: db.cluster, env BINASSESS_COLUMN).
  -k <kingdom>, --kingdom <kingdom>  Kingdom under consideration, bacteria|archaea
                                     (default: bacteria, env BINASSESS_KINGDOM).
  -v, --verbose                      Log every cluster score.
  -h, --help                         Show this screen.
  --version                          Show version.

Environment (also read from ./.env):
  BINASSESS_COLUMN      default for --column
  BINASSESS_KINGDOM     default for --kingdom
  BINASSESS_LOG_LEVEL   debug|info|warn|error [info]
`

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

const (
	envColumn   = "BINASSESS_COLUMN"
	envKingdom  = "BINASSESS_KINGDOM"
	envLogLevel = "BINASSESS_LOG_LEVEL"
)

type options struct {
	Request  request.AssessRequest
	LogLevel zapcore.Level
}

// parseOptions turns argv into a request. Flags win over the environment,
// the environment wins over built-in defaults. When done is true the
// caller should exit with code right away (help, version or bad usage).
func parseOptions(argv []string, getenv func(string) string, stdout, stderr io.Writer) (opt options, code int, done bool) {

	helped := false
	parser := &docopt.Parser{
		HelpHandler: func(err error, text string) {
			if err != nil {
				fmt.Fprintln(stderr, err)
				fmt.Fprintln(stderr, text)
				return
			}
			// --help or --version
			fmt.Fprintln(stdout, text)
			helped = true
		},
	}

	args, err := parser.ParseArgs(usage, argv, VERSION)
	if err != nil {
		return opt, exitUsage, true
	}
	if helped || args == nil {
		return opt, exitSuccess, true
	}

	tables := orderedTables(argv)
	if want := len(stringList(args["--dbscantable"])) + len(stringList(args["<table>"])); len(tables) != want {
		fmt.Fprintf(stderr, "Error, could not order clustering tables: found %d, expected %d\n", len(tables), want)
		return opt, exitUsage, true
	}

	opt.Request = request.AssessRequest{
		MarkerTable:   stringArg(args["--hmmtable"]),
		ClusterTables: tables,
		Output:        stringArg(args["--output"]),
		Column:        firstSet(stringArg(args["--column"]), getenv(envColumn), model.DefaultClusterColumn),
		Kingdom:       firstSet(stringArg(args["--kingdom"]), getenv(envKingdom), model.DefaultKingdom.String()),
	}

	opt.LogLevel, err = logger.ParseLevel(getenv(envLogLevel))
	if err != nil {
		fmt.Fprintf(stderr, "Error, invalid %s: %v\n", envLogLevel, err)
		return opt, exitUsage, true
	}
	if verbose, _ := args["--verbose"].(bool); verbose {
		opt.LogLevel = zapcore.DebugLevel
	}

	return opt, exitSuccess, false
}

// Long options and whether each takes a value.
var longOptions = map[string]bool{
	"hmmtable":    true,
	"dbscantable": true,
	"output":      true,
	"column":      true,
	"kingdom":     true,
	"verbose":     false,
	"help":        false,
	"version":     false,
}

// Short options that take a value, with the long name they stand for.
var shortValued = map[byte]string{
	's': "hmmtable",
	'd': "dbscantable",
	'o': "output",
	'c': "column",
	'k': "kingdom",
}

// orderedTables walks an argv docopt already accepted and returns the
// --dbscantable values and positional tables in the order they appear.
func orderedTables(argv []string) []string {
	var tables []string
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return append(tables, argv[i+1:]...)

		case strings.HasPrefix(arg, "--"):
			name, value, inline := strings.Cut(arg[2:], "=")
			name = expandLong(name)
			if !longOptions[name] {
				continue
			}
			if !inline && i+1 < len(argv) {
				i++
				value = argv[i]
			}
			if name == "dbscantable" {
				tables = append(tables, value)
			}

		case len(arg) > 1 && arg[0] == '-':
			for j := 1; j < len(arg); j++ {
				name, ok := shortValued[arg[j]]
				if !ok {
					continue
				}
				value := arg[j+1:]
				if value == "" && i+1 < len(argv) {
					i++
					value = argv[i]
				}
				if name == "dbscantable" {
					tables = append(tables, value)
				}
				break
			}

		default:
			tables = append(tables, arg)
		}
	}
	return tables
}

// expandLong resolves an unambiguous prefix the way docopt does.
func expandLong(name string) string {
	if _, ok := longOptions[name]; ok {
		return name
	}
	match := ""
	for long := range longOptions {
		if strings.HasPrefix(long, name) {
			if match != "" {
				return name
			}
			match = long
		}
	}
	if match == "" {
		return name
	}
	return match
}

func stringArg(v interface{}) string {
	s, _ := v.(string)
	return s
}

// stringList accepts both shapes docopt uses for option values.
func stringList(v interface{}) []string {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...)
	case string:
		return []string{t}
	default:
		return nil
	}
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
