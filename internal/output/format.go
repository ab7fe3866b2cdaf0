// Package output renders tasks for the command line.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todolist/internal/model"
)

const (
	// NoTasks is printed instead of an empty listing.
	NoTasks = "no tasks"

	subtleColor  = lipgloss.Color("#6C6C6C")
	successColor = lipgloss.Color("#73F59F")
)

// Printer writes task listings to w. Styling only applies when w is a
// terminal; anything else receives plain text.
type Printer struct {
	w io.Writer

	number lipgloss.Style
	done   lipgloss.Style
	label  lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		number: r.NewStyle().Foreground(subtleColor),
		done:   r.NewStyle().Foreground(successColor).Strikethrough(true),
		label:  r.NewStyle().Bold(true),
	}
}

// Tasks prints a numbered listing: "{N:>4}  {DESCRIPTION}".
// Numbers are 1-based and match the order the server returned.
func (p *Printer) Tasks(tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(p.w, NoTasks)
		return
	}
	for i, t := range tasks {
		desc := normalizeDescription(t.Description)
		if t.IsCompleted {
			desc = p.done.Render(desc)
		}
		fmt.Fprintf(p.w, "%s  %s\n", p.number.Render(fmt.Sprintf("%4d", i+1)), desc)
	}
}

// Task prints a single task with its id.
func (p *Printer) Task(t model.Task) {
	status := "open"
	if t.IsCompleted {
		status = "completed"
	}
	fmt.Fprintf(p.w, "%s %s\n", p.label.Render("id:"), t.ID)
	fmt.Fprintf(p.w, "%s %s\n", p.label.Render("description:"), normalizeDescription(t.Description))
	fmt.Fprintf(p.w, "%s %s\n", p.label.Render("status:"), status)
}

// Created prints the id of a newly created task.
func (p *Printer) Created(t model.Task) {
	fmt.Fprintf(p.w, "created %s\n", t.ID)
}

func (p *Printer) OK() {
	fmt.Fprintln(p.w, "ok")
}

// normalizeDescription keeps each task on one line.
func normalizeDescription(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return "(empty)"
	}
	return s
}
