package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console writes operator-facing output. Colors are dropped automatically
// when the writer is not a terminal.
type Console struct {
	w      io.Writer
	styles styles
}

type styles struct {
	arrowOK   lipgloss.Style
	arrowBad  lipgloss.Style
	arrowInfo lipgloss.Style
	bold      lipgloss.Style
	target    lipgloss.Style
	tag       lipgloss.Style
}

// NewConsole creates a console bound to w.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w: w,
		styles: styles{
			arrowOK:   r.NewStyle().Foreground(lipgloss.Color("2")),
			arrowBad:  r.NewStyle().Foreground(lipgloss.Color("1")),
			arrowInfo: r.NewStyle().Foreground(lipgloss.Color("4")),
			bold:      r.NewStyle().Bold(true),
			target:    r.NewStyle().Foreground(lipgloss.Color("6")),
			tag:       r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		},
	}
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.w, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.w, format, a...)
}

// Section prints "==> text:" used before long running steps.
func (c *Console) Section(text string) {
	fmt.Fprintf(c.w, "%s %s\n", c.styles.arrowOK.Render("==>"), c.styles.bold.Render(text+":"))
}

// SectionFor prints "==> text <target>:".
func (c *Console) SectionFor(text, target string) {
	fmt.Fprintf(c.w, "%s %s %s%s\n", c.styles.arrowOK.Render("==>"), c.styles.bold.Render(text), c.Target(target), c.styles.bold.Render(":"))
}

// Pending prints a red "-> line" entry.
func (c *Console) Pending(line string) {
	fmt.Fprintf(c.w, "%s %s\n", c.styles.arrowBad.Render("->"), line)
}

// Done prints a green "-> text" entry.
func (c *Console) Done(text string) {
	fmt.Fprintf(c.w, "%s %s\n", c.styles.arrowOK.Render("->"), c.styles.bold.Render(text))
}

// Info prints a blue "-> text" entry.
func (c *Console) Info(text string) {
	fmt.Fprintf(c.w, "%s %s\n", c.styles.arrowInfo.Render("->"), c.styles.bold.Render(text))
}

// Target styles a target name.
func (c *Console) Target(name string) string {
	return c.styles.target.Render(name)
}

// Tag styles a short bracketed label such as "[Python]".
func (c *Console) Tag(label string) string {
	return c.styles.tag.Render(label)
}
