package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// Pager shows long text in ov while the program has released the terminal
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a pager without a program; Show fails until one is set
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Available reports whether a program is attached
func (p *Pager) Available() bool {
	return p.program != nil
}

// Show pages content using ov
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write on exit, it would mess with our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
