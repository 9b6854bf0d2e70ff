package services

import (
	"github.com/czokomaster/czokomaster/internal/core/domain"
	"github.com/czokomaster/czokomaster/internal/ui"
)

// Banner prints the tool-level informational screens.
type Banner struct {
	console *ui.Console
}

func NewBanner(console *ui.Console) *Banner {
	return &Banner{console: console}
}

// Version prints name, version and copyright.
func (b *Banner) Version() {
	b.console.Printf("%s version %s %s\n\n", domain.ProjectName, domain.Version, domain.Copyright)
}

// Help prints the top-level usage screen.
func (b *Banner) Help() {
	b.Version()
	b.console.Printf("Usage: %s <plugin> <option>\n", domain.ProjectName)
	b.console.Printf("For the list of available plugins type: %s plugins\n", domain.ProjectName)
}

// Plugins prints the banner followed by the given plugin names.
func (b *Banner) Plugins(names []string) {
	b.Version()
	b.console.Printf("Plugins available for %s:\n", domain.ProjectName)
	for _, name := range names {
		b.console.Printf("    - %s\n", name)
	}
}
