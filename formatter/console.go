package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ConsoleFixedWidth is a type for outputting trees to a console with
// a fixed width font. Keys are colored according to the kind of node they
// belong to; tree lines are printed faint.
type ConsoleFixedWidth struct {
	colors   map[NodeKind]*color.Color
	branches *color.Color
}

// NewConsoleFixedWidthFormat creates a new formatter. It is to be used for
// consoles with a fixed width font.
//
// colors is a map from node kinds to colors, used for display. It may contain
// just a subset of the node kinds; nodes of other kinds are printed uncolored.
// If colors is nil, a default palette is used.
func NewConsoleFixedWidthFormat(colors map[NodeKind]*color.Color) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{
		branches: color.New(color.Faint),
	}
	if colors == nil {
		fw.colors = makeDefaultPalette()
	} else {
		fw.colors = colors
	}
	return fw
}

func makeDefaultPalette() map[NodeKind]*color.Color {
	palette := map[NodeKind]*color.Color{
		RootNode:  color.New(color.FgRed, color.Bold),
		InnerNode: color.New(color.FgBlue),
		LeafNode:  color.New(color.FgGreen),
	}
	return palette
}

// Preamble is called by the output driver before a tree will be rendered.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) {}

// Postamble will be called after a tree has been rendered.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) {}

// Branch outputs the tree lines in front of a node's key.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Branch(s string, w io.Writer) {
	fw.branches.Fprint(w, s)
}

// Key outputs the label of a node, colored by kind.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Key(s string, kind NodeKind, w io.Writer) {
	if c, ok := fw.colors[kind]; ok {
		c.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// Newline will be called at the end of every line.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 80
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 0
	}
	T().P("format", "console").Infof("setting line length to %d", config.LineWidth)
	return config
}
