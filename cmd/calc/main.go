// Command calc evaluates calculator expressions given as arguments or read
// from a file or standard input.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}

// options holds flags that are not part of the configuration.
type options struct {
	in      string
	cfgFile string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate calculator expressions",
		Long: `calc evaluates arithmetic expressions with + - * / ^ %, parentheses,
and the square root sign √. "100+10%" is 110, "50%" is 0.5, and "2^3^2" is 512.

Each argument is evaluated as an expression. With no arguments, or with --in,
the input is read as one expression, or as one per line with -n.
Use -- before expressions that start with a minus sign.`,
		Args:         cobra.ArbitraryArgs,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), opts.cfgFile)
			if err != nil {
				return err
			}
			r, err := newRunner(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			for _, arg := range args {
				r.eval(arg)
			}
			in, err := infile(opts.in, len(args) == 0, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if in != nil {
				if f, ok := in.(*os.File); ok && f != os.Stdin {
					defer f.Close()
				}
				if err := r.read(in, cfg.Lines && interactive(in), cmd.ErrOrStderr()); err != nil {
					return err
				}
			}
			if r.failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", r.failed, r.total)
			}
			return nil
		},
	}

	d := config.Defaults()
	f := cmd.PersistentFlags()
	f.StringVar(&opts.cfgFile, "config", "", "config file (default searches for calc.yaml in the user config dir and .)")
	f.StringVar(&opts.in, "in", "", `input file, "-" for stdin (default stdin if no expressions given)`)
	f.Int("digits", d["digits"].(int), "decimal places in results, -1 for the shortest exact form")
	f.BoolP("lines", "n", d["lines"].(bool), "evaluate separate input lines as separate expressions")
	f.Bool("echo", d["echo"].(bool), "print the postfix form of each expression")
	f.Bool("balance", d["balance"].(bool), "close unclosed parentheses")
	f.Bool("normalize", d["normalize"].(bool), "accept × ÷ − and fullwidth characters")
	f.String("log-level", d["log-level"].(string), "log level (debug, info, warn, error)")

	cmd.AddCommand(newConfigCmd(&opts))
	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), opts.cfgFile)
			if err != nil {
				return err
			}
			b, err := config.Dump(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

// runner evaluates expressions and prints their results.
type runner struct {
	cfg    config.Config
	out    io.Writer
	log    *slog.Logger
	total  int
	failed int
}

func newRunner(out, errw io.Writer, cfg config.Config) (*runner, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log := slog.New(slog.NewTextHandler(errw, &slog.HandlerOptions{Level: lvl}))
	return &runner{cfg: cfg, out: out, log: log}, nil
}

// eval evaluates one expression and prints its result or error.
func (r *runner) eval(src string) {
	r.total++
	if r.cfg.Normalize {
		src = calc.Normalize(src)
	}
	if r.cfg.Balance {
		src = calc.Balance(src)
	}
	e, err := calc.Parse(src)
	if err != nil {
		r.fail(src, err)
		return
	}
	r.log.Debug("parsed", "src", src, "preprocessed", e.Source(), "postfix", e.String())
	if r.cfg.Echo {
		fmt.Fprintf(r.out, "%v : ", e)
	}
	x, err := e.Eval()
	if err != nil {
		r.fail(src, err)
		return
	}
	fmt.Fprintln(r.out, calc.Format(x, r.cfg.Digits))
}

func (r *runner) fail(src string, err error) {
	r.failed++
	k, _ := calc.KindOf(err)
	r.log.Debug("evaluation failed", "src", src, "kind", k, "err", err)
	fmt.Fprintln(r.out, err)
}

// read evaluates input as one expression, or one expression per non-blank
// line if the config says so. If prompt is true, a prompt is written to
// prompts before each line.
func (r *runner) read(in io.Reader, prompt bool, prompts io.Writer) error {
	if !r.cfg.Lines {
		b, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		if s := strings.TrimSpace(string(b)); s != "" {
			r.eval(s)
		}
		return nil
	}
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(prompts, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		r.eval(line)
	}
	return sc.Err()
}

// infile opens the input named by inname. If inname is "-", or if it is empty
// and std is true, the result reads stdin. If inname is empty and std is
// false, the result is nil.
func infile(inname string, std bool, stdin io.Reader) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return stdin, nil
	}
	return nil, nil
}

// interactive returns whether in reads from a terminal.
func interactive(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
