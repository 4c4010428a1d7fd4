// Package document defines the renderer-agnostic output of the report
// generators: ordered sections of sentences, tables and placeholders.
package document

import (
	"strconv"
	"strings"
)

// Kind is the type of a block.
type Kind string

const (
	// Sentence is a numbered narrative sentence.
	Sentence Kind = "sentence"
	// TableBlock is an unnumbered table.
	TableBlock Kind = "table"
	// Placeholder is literal bracketed text standing in for missing data.
	Placeholder Kind = "placeholder"
	// Line is unnumbered free text such as a header field or signature row.
	Line Kind = "line"
	// Subheading titles a group of blocks inside a section.
	Subheading Kind = "subheading"
)

// Document is a whole report.
type Document struct {
	Title    string
	Sections []Section
}

// Section is a headed group of blocks.
type Section struct {
	Heading string
	Blocks  []Block
}

// Block is one unit of output. Number is set only on numbered sentences.
type Block struct {
	Kind   Kind
	Number int
	Text   string
	Table  *Table
}

// Table is an ordered grid with named columns.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Builder accumulates the blocks of one section and numbers its sentences.
type Builder struct {
	heading string
	blocks  []Block
	counter int
}

// NewBuilder returns a builder for a section with the given heading.
func NewBuilder(heading string) *Builder {
	return &Builder{heading: heading}
}

// Sentence appends a numbered sentence.
func (b *Builder) Sentence(text string) *Builder {
	b.counter++
	b.blocks = append(b.blocks, Block{Kind: Sentence, Number: b.counter, Text: text})
	return b
}

// Table appends an unnumbered table.
func (b *Builder) Table(t Table) *Builder {
	b.blocks = append(b.blocks, Block{Kind: TableBlock, Table: &t})
	return b
}

// Line appends unnumbered text.
func (b *Builder) Line(text string) *Builder {
	b.blocks = append(b.blocks, Block{Kind: Line, Text: text})
	return b
}

// Placeholder appends literal placeholder text.
func (b *Builder) Placeholder(text string) *Builder {
	b.blocks = append(b.blocks, Block{Kind: Placeholder, Text: text})
	return b
}

// Subheading appends an unnumbered title.
func (b *Builder) Subheading(text string) *Builder {
	b.blocks = append(b.blocks, Block{Kind: Subheading, Text: text})
	return b
}

// Append copies blocks from another section as they are, keeping their
// numbers. The builder's own counter is not advanced.
func (b *Builder) Append(blocks ...Block) *Builder {
	b.blocks = append(b.blocks, blocks...)
	return b
}

// Numbered appends a sentence with an explicit number.
func (b *Builder) Numbered(n int, text string) *Builder {
	b.blocks = append(b.blocks, Block{Kind: Sentence, Number: n, Text: text})
	return b
}

// Section returns the section built so far.
func (b *Builder) Section() Section {
	blocks := make([]Block, len(b.blocks))
	copy(blocks, b.blocks)
	return Section{Heading: b.heading, Blocks: blocks}
}

// Sentences returns the text of every sentence in the section, in order.
func (s Section) Sentences() []string {
	var out []string
	for _, b := range s.Blocks {
		if b.Kind == Sentence {
			out = append(out, b.Text)
		}
	}
	return out
}

// Tables returns the tables of the section, in order.
func (s Section) Tables() []Table {
	var out []Table
	for _, b := range s.Blocks {
		if b.Kind == TableBlock && b.Table != nil {
			out = append(out, *b.Table)
		}
	}
	return out
}

// PlainText flattens the section into lines, with tables rendered as
// tab-separated rows. Renderers with real layout live in package render.
func (s Section) PlainText() string {
	var sb strings.Builder
	for _, b := range s.Blocks {
		switch b.Kind {
		case Sentence:
			sb.WriteString(strconv.Itoa(b.Number))
			sb.WriteString(". ")
			sb.WriteString(b.Text)
		case TableBlock:
			if b.Table == nil {
				continue
			}
			if b.Table.Title != "" {
				sb.WriteString(b.Table.Title)
				sb.WriteByte('\n')
			}
			sb.WriteString(strings.Join(b.Table.Columns, "\t"))
			for _, row := range b.Table.Rows {
				sb.WriteByte('\n')
				sb.WriteString(strings.Join(row, "\t"))
			}
		default:
			sb.WriteString(b.Text)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
