package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/mrsinham/physioreport/internal/document"
)

func sampleDoc() document.Document {
	return document.Document{
		Title: "REPORT",
		Sections: []document.Section{
			document.NewBuilder("").Line("To: Dr. Wong").Line("From: [Sender]").Section(),
			document.NewBuilder("FINDINGS").
				Subheading("I. Complaints").
				Sentence("Pain was 7 out of 10.").
				Table(document.Table{Title: "AROM", Columns: []string{"Movement", "AROM"}, Rows: [][]string{{"Flexion", "90"}, {"Extension", "0"}}}).
				Placeholder("[Treatment]").
				Section(),
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"text", Text},
		{"TXT", Text},
		{"markdown", Markdown},
		{"md", Markdown},
		{" html ", HTML},
		{"terminal", Terminal},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseFormat("docx"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ParseFormat(docx) err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if _, err := String(sampleDoc(), Format("pdf")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v", err)
	}
}

func TestText(t *testing.T) {
	got, err := String(sampleDoc(), Text)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := strings.Join([]string{
		"REPORT",
		"======",
		"",
		"To: Dr. Wong",
		"From: [Sender]",
		"",
		"FINDINGS",
		"--------",
		"",
		"I. Complaints",
		"1. Pain was 7 out of 10.",
		"AROM",
		"Movement  | AROM",
		"----------+-----",
		"Flexion   | 90",
		"Extension | 0",
		"[Treatment]",
		"",
	}, "\n")
	if got != want {
		t.Errorf("text output:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextTable_WideCharacters(t *testing.T) {
	lines := TextTable(document.Table{Columns: []string{"A", "B"}, Rows: [][]string{{"握力", "x"}, {"a", "y"}}})
	// "握力" is four cells wide, so the first column pads to four.
	if lines[2] != "握力 | x" || lines[3] != "a    | y" {
		t.Errorf("lines = %q", lines)
	}
}

func TestTextTable_RaggedRows(t *testing.T) {
	lines := TextTable(document.Table{Columns: []string{"A"}, Rows: [][]string{{"1", "2"}}})
	if lines[len(lines)-1] != "1 | 2" {
		t.Errorf("lines = %q", lines)
	}
}

func TestMarkdown(t *testing.T) {
	doc := sampleDoc()
	doc.Sections[1].Blocks[2].Table.Rows[0][1] = "90|95"
	got, err := String(doc, Markdown)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"# REPORT\n",
		"To: Dr. Wong  \nFrom: [Sender]  \n",
		"## FINDINGS\n",
		"### I. Complaints\n",
		"1. Pain was 7 out of 10.\n\n**AROM**",
		"| Movement | AROM |\n| --- | --- |\n| Flexion | 90\\|95 |\n",
		"[Treatment]\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown missing %q in:\n%s", want, got)
		}
	}
}

func TestHTML_EscapesText(t *testing.T) {
	doc := sampleDoc()
	doc.Sections[1].Blocks[1].Text = "Pain <b>7</b> & rising."
	got, err := String(doc, HTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"<title>REPORT</title>",
		"<h2>FINDINGS</h2>",
		"<h3>I. Complaints</h3>",
		`<p class="sentence">1. Pain &lt;b&gt;7&lt;/b&gt; &amp; rising.</p>`,
		"<caption>AROM</caption>",
		"<th>Movement</th><th>AROM</th>",
		"<td>Flexion</td><td>90</td>",
		`<p class="placeholder">[Treatment]</p>`,
		`<p class="line">To: Dr. Wong</p>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestTerminal_KeepsText(t *testing.T) {
	got := TerminalString(sampleDoc(), 60)
	for _, want := range []string{"REPORT", "FINDINGS", "Pain was 7 out of 10.", "Flexion", "[Treatment]"} {
		if !strings.Contains(got, want) {
			t.Errorf("terminal output missing %q", want)
		}
	}
}
