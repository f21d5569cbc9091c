package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-yaml"
	"golang.org/x/text/encoding/charmap"

	"github.com/mmcclimon/simplexml"
)

// Script is a declarative description of a single XML document.
type Script struct {
	Encoding string `yaml:"encoding"`
	Indent   bool   `yaml:"indent"`
	Root     Node   `yaml:"root"`
}

// Node is one tag or comment. A node is either a comment or a tag; a
// tag may hold text or child nodes, but not both. Optional nodes are
// dropped entirely when they have no attributes and nothing to say.
type Node struct {
	Tag      string     `yaml:"tag"`
	Attrs    []AttrSpec `yaml:"attrs"`
	Text     string     `yaml:"text"`
	Children []Node     `yaml:"children"`
	Comment  string     `yaml:"comment"`
	Optional bool       `yaml:"optional"`
}

// AttrSpec is one attribute on a node. Attributes are written in the
// order the script lists them.
type AttrSpec struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// LoadScript decodes a script, rejecting unknown fields.
func LoadScript(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("xmlgen: reading script: %w", err)
	}
	var s Script
	if err := yaml.UnmarshalWithOptions(data, &s, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("xmlgen: invalid script: %w", err)
	}
	return &s, nil
}

// Options converts the script header into writer options.
func (s *Script) Options() ([]simplexml.Option, error) {
	var options []simplexml.Option

	ev := "UTF-8"
	if s.Encoding != "" {
		ev = strings.ToUpper(s.Encoding)
	}
	switch ev {
	case "UTF-8":
	case "ISO-8859-1":
		options = append(options, simplexml.WithEncoding(ev, charmap.ISO8859_1.NewEncoder()))
	case "WINDOWS-1252":
		options = append(options, simplexml.WithEncoding(ev, charmap.Windows1252.NewEncoder()))
	default:
		return nil, fmt.Errorf("xmlgen: unsupported encoding %s", ev)
	}

	if s.Indent {
		options = append(options, simplexml.WithIndent())
	}
	return options, nil
}

// Run writes the script's document body.
func (s *Script) Run(w *simplexml.Writer) error {
	return writeNode(w, s.Root)
}

func writeNode(w *simplexml.Writer, n Node) error {
	if n.Comment != "" {
		if n.Tag != "" || n.Text != "" || len(n.Attrs) > 0 || len(n.Children) > 0 {
			return dumpInvalid(n, "a comment node carries nothing else")
		}
		return w.Comment(n.Comment)
	}
	if n.Tag == "" {
		return dumpInvalid(n, "a node needs a tag or a comment")
	}
	if n.Text != "" && len(n.Children) > 0 {
		return dumpInvalid(n, "a tag holds text or children, not both")
	}

	var content simplexml.Content
	switch {
	case len(n.Children) > 0:
		children := n.Children
		content = simplexml.Nested(func() error {
			for _, c := range children {
				if err := writeNode(w, c); err != nil {
					return err
				}
			}
			return nil
		})
	case n.Text != "":
		content = simplexml.Text(n.Text)
	}

	if len(n.Attrs) > 0 {
		attrs := make([]simplexml.Attr, len(n.Attrs))
		for i, a := range n.Attrs {
			attrs[i] = simplexml.Attr{Name: a.Name, Value: a.Value}
		}
		content = simplexml.Attributed(attrs, content)
	}

	if n.Optional {
		return w.TagIf(n.Tag, content)
	}
	return w.Tag(n.Tag, content)
}

func dumpInvalid(n Node, msg string) error {
	spew.Fdump(os.Stderr, n)
	return fmt.Errorf("xmlgen: %s", msg)
}
