package display

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/idtree"
	"golang.org/x/term"
)

// Printer outputs trees as indented outlines to a console with a fixed width
// font. Nesting levels are colorized with a cyclic palette; node labels are
// clipped to the configured line width.
type Printer[T any] struct {
	// Indent is the number of spaces per nesting level.
	Indent int
	// LineWidth is the maximum width of an output line, label clipping
	// included. Zero means no clipping.
	LineWidth int
	// Label renders a node value for display. Defaults to fmt.Sprint.
	Label func(T) string

	palette []*color.Color
}

// NewPrinter creates a printer with the default palette. label may be nil, in
// which case values are rendered with fmt.Sprint.
func NewPrinter[T any](label func(T) string) *Printer[T] {
	if label == nil {
		label = func(value T) string { return fmt.Sprint(value) }
	}
	return &Printer[T]{
		Indent:  2,
		Label:   label,
		palette: makeDefaultPalette(),
	}
}

// WithPalette replaces the per-depth color palette. colors is cycled over
// nesting depth; an empty palette disables colorization.
func (p *Printer[T]) WithPalette(colors []*color.Color) *Printer[T] {
	p.palette = colors
	return p
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgRed),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
	}
}

// Print outputs a tree to stdout. If stdout is an interactive terminal, the
// line width is derived from the terminal's size.
func (p *Printer[T]) Print(tree *idtree.Tree[T]) error {
	if p.LineWidth == 0 {
		p.LineWidth = WidthFromTerminal()
	}
	return p.Write(os.Stdout, tree)
}

// Write outputs a tree as an indented outline to w, one node per line in
// preorder.
func (p *Printer[T]) Write(w io.Writer, tree *idtree.Tree[T]) error {
	if tree == nil {
		return idtree.ErrIllegalArguments
	}
	depth := 0
	for edge := range tree.Root().Traverse() {
		if edge.Kind == idtree.EdgeClose {
			depth--
			continue
		}
		if err := p.line(w, depth, edge.Node.Value()); err != nil {
			return err
		}
		depth++
	}
	return nil
}

func (p *Printer[T]) line(w io.Writer, depth int, value T) error {
	label := p.Label(value)
	indent := depth * p.Indent
	runes := []rune(label)
	if p.LineWidth > 0 && indent+len(runes) > p.LineWidth {
		cut := p.LineWidth - indent - 1
		if cut < 1 {
			cut = 1
		}
		if cut > len(runes) {
			cut = len(runes)
		}
		label = string(runes[:cut]) + "…"
	}
	if _, err := io.WriteString(w, strings.Repeat(" ", indent)); err != nil {
		return err
	}
	if c := p.colorFor(depth); c != nil {
		if _, err := c.Fprint(w, label); err != nil {
			return err
		}
	} else if _, err := io.WriteString(w, label); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (p *Printer[T]) colorFor(depth int) *color.Color {
	if len(p.palette) == 0 {
		return nil
	}
	return p.palette[depth%len(p.palette)]
}

// WidthFromTerminal is a simple helper for choosing a line width. It checks
// whether stdout is a terminal, and if so reads the terminal's width and
// derives a usable line width from it.
func WidthFromTerminal() int {
	if !term.IsTerminal(0) {
		return 65
	}
	w, _, err := term.GetSize(0)
	if err != nil {
		return 65
	}
	switch {
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	default:
		return 10
	}
}
