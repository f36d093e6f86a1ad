package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"islandgen/internal/island"

	"github.com/charmbracelet/lipgloss"
)

type question struct {
	key    string
	prompt string
}

// questions are asked in this order.
var questions = []question{
	{"seed", "Enter the seed"},
	{"w", "Enter the grid width"},
	{"h", "Enter the grid height"},
	{"waterline", "Enter value for waterline (40 - 200)"},
	{"radius", "Enter dirtball radius (minimum 2)"},
	{"power", "Enter dirtball power rating (minimum = radius)"},
	{"impacts", "Enter number of dirtballs to drop"},
}

// Prompt asks for each generation value on in, starting from base. An empty
// answer keeps the value shown in brackets; an answer that is not accepted
// is asked again. The completed config is validated before it is returned.
func Prompt(in io.Reader, out io.Writer, base island.Config) (island.Config, error) {
	r := lipgloss.NewRenderer(out)
	banner := r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2"))
	fmt.Fprintln(out, banner.Render("Welcome to the island terraformer!"))
	fmt.Fprintln(out)

	cfg := base
	snap := base.Parameters()
	sc := bufio.NewScanner(in)
	for _, q := range questions {
		current := ""
		if p, ok := snap.Lookup(q.key); ok {
			current = p.Value
		}
		for {
			fmt.Fprintf(out, "%s [%s]: ", q.prompt, current)
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return base, err
				}
				return base, fmt.Errorf("reading %s: %w", q.key, io.ErrUnexpectedEOF)
			}
			answer := strings.TrimSpace(sc.Text())
			if answer == "" {
				break
			}
			if _, err := strconv.ParseInt(answer, 10, 64); err == nil && cfg.Set(q.key, answer) {
				break
			}
			fmt.Fprintf(out, "%q is not a usable value\n", answer)
		}
	}
	if err := cfg.Validate(); err != nil {
		return base, errors.Join(errors.New("interactive config rejected"), err)
	}
	return cfg, nil
}
