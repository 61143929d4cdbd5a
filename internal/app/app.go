package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/linepick/internal/logging/events"
	"github.com/atomicstack/linepick/internal/match"
	"github.com/atomicstack/linepick/internal/source"
	"github.com/atomicstack/linepick/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Height    int
	Algorithm string
	Prompt    string
}

// Run reads candidates from stdin, runs the picker on the controlling terminal
// and writes the confirmed candidate to stdout.
func Run(cfg Config) error {
	return run(cfg, os.Stdin, os.Stdout)
}

func run(cfg Config, stdin, stdout *os.File) error {
	matcher, err := match.New(cfg.Algorithm)
	if err != nil {
		return err
	}
	candidates, stats, err := source.ReadLines(stdin)
	if err != nil {
		return err
	}
	events.Source.Read(stats.Lines, len(candidates), stats.Dropped)

	term, err := openTerminal(stdin, stdout)
	if err != nil {
		return err
	}
	defer term.Close()

	model := ui.NewModel(candidates, matcher, ui.Options{Height: cfg.Height, Prompt: cfg.Prompt})
	program := tea.NewProgram(model, tea.WithInput(term.input), tea.WithOutput(term.output))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("run picker: %w", err)
	}
	return emit(stdout, model)
}

// emit prints the confirmed candidate, if any, as a single line.
func emit(w io.Writer, model *ui.Model) error {
	choice, ok := model.Result()
	if !ok {
		return nil
	}
	if _, err := fmt.Fprintln(w, choice); err != nil {
		return fmt.Errorf("write selection: %w", err)
	}
	return nil
}
