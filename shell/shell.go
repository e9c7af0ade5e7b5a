// Package shell is the terminal front end of the calculator: a line-oriented
// form where each command edits a field, calculates or resets.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"emi-calculator/calculator"
)

const DefaultPrompt = "emi> "

// ErrInvalidInput is returned by Once when the values do not produce a result.
var ErrInvalidInput = errors.New("invalid input")

const helpText = `Commands:
  principal <amount>   set the loan amount (alias p)
  rate <percent>       set the interest rate, % per annum (alias r)
  tenure <years>       set the loan tenure in years (alias t)
  calc                 calculate the EMI (alias c)
  reset                clear all fields and the result
  show                 print the fields and the result
  help                 print this help
  quit                 leave (alias exit)
`

type Shell struct {
	calc   *calculator.Calculator
	in     io.Reader
	out    io.Writer
	prompt string
	logger *zap.Logger
}

type Option func(*Shell)

func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		if prompt != "" {
			s.prompt = prompt
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a shell driving calc, reading commands from in and writing
// the form to out.
func New(calc *calculator.Calculator, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		calc:   calc,
		in:     in,
		out:    out,
		prompt: DefaultPrompt,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads commands until EOF, quit, or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	s.logger.Info("session started")
	defer s.logger.Info("session ended")

	fmt.Fprintln(s.out, "EMI Calculator - type \"help\" for commands")
	for {
		fmt.Fprint(s.out, s.prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if !s.execute(line) {
				return nil
			}
		}
	}
}

// execute handles one command line and reports whether to keep going.
func (s *Shell) execute(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	value := strings.Join(parts[1:], " ")

	switch cmd {
	case "principal", "p":
		s.calc.SetPrincipal(value)
	case "rate", "r":
		s.calc.SetRate(value)
	case "tenure", "t":
		s.calc.SetTenure(value)
	case "calc", "c", "calculate":
		if err := s.calc.Calculate(); err != nil {
			s.logger.Debug("calculation rejected", zap.Error(err))
		}
		s.logger.Debug("form updated", zap.Stringer("state", s.calc.State()))
		s.printResult()
	case "reset":
		s.calc.Reset()
		fmt.Fprintln(s.out, "cleared")
	case "show":
		s.printFields()
		fmt.Fprintf(s.out, "State:                       %s\n", s.calc.State())
		s.printResult()
	case "help", "?":
		fmt.Fprint(s.out, helpText)
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(s.out, "unknown command %q, type \"help\"\n", parts[0])
	}
	return true
}

// Prefill sets the fields whose values are non-empty and leaves the rest
// untouched. It does not calculate.
func (s *Shell) Prefill(principal, rate, tenure string) {
	if principal != "" {
		s.calc.SetPrincipal(principal)
	}
	if rate != "" {
		s.calc.SetRate(rate)
	}
	if tenure != "" {
		s.calc.SetTenure(tenure)
	}
}

// Once calculates a single result from the given values and prints it.
func (s *Shell) Once(principal, rate, tenure string) error {
	s.calc.SetPrincipal(principal)
	s.calc.SetRate(rate)
	s.calc.SetTenure(tenure)

	if err := s.calc.Calculate(); err != nil {
		s.logger.Info("calculation rejected", zap.Error(err))
		fmt.Fprintln(s.out, "invalid input")
		return ErrInvalidInput
	}
	s.printResult()
	return nil
}

func (s *Shell) printFields() {
	f := s.calc.Fields()
	fmt.Fprintf(s.out, "Loan Amount:                 %s\n", f.Principal)
	fmt.Fprintf(s.out, "Interest Rate (%% per annum): %s\n", f.Rate)
	fmt.Fprintf(s.out, "Loan Tenure (in years):      %s\n", f.Tenure)
}

func (s *Shell) printResult() {
	view, ok := s.calc.View()
	if !ok {
		fmt.Fprintln(s.out, "no result")
		return
	}
	fmt.Fprintf(s.out, "Your Monthly EMI: %s\n", view.MonthlyEMI)
	fmt.Fprintf(s.out, "Total Interest:   %s\n", view.TotalInterest)
	fmt.Fprintf(s.out, "Total Amount:     %s\n", view.TotalAmount)
}
