package export

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math/big"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/frame"
	"github.com/suyashkumar/dicom/pkg/tag"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mrsinham/physioreport/internal/document"
	"github.com/mrsinham/physioreport/internal/render"
	"github.com/mrsinham/physioreport/internal/report"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// ErrNoPages is returned when a document has nothing to rasterise.
var ErrNoPages = errors.New("document has no pages")

const (
	// Multi-frame Grayscale Byte Secondary Capture Image Storage.
	secondaryCaptureSOPClass = "1.2.840.10008.5.1.4.1.1.7.2"
	explicitVRLittleEndian   = "1.2.840.10008.1.2.1"

	glyphWidth  = 7
	lineHeight  = 16
	pageMargin  = 48
	defaultPage = 1024
)

// Meta is the patient and study context written into the DICOM header.
type Meta struct {
	PatientName string
	PatientID   string
	PatientSex  string
	StudyDate   time.Time
	Institution string
	Description string
	// Overrides replace or add header attributes, see ParseTagOverrides.
	Overrides map[tag.Tag]string
}

// MetaFromReport fills Meta from the report data. Dates that do not parse
// fall back to now.
func MetaFromReport(d report.ReportData, now time.Time) Meta {
	m := Meta{
		PatientName: strings.ReplaceAll(strings.TrimSpace(d.Patient.Name), " ", "^"),
		PatientID:   firstNonBlank(d.Patient.HospitalNumber, d.Patient.IDNumber),
		Institution: firstNonBlank(d.Therapist.Hospital, d.Therapist.Department),
		Description: "Physiotherapy report",
		StudyDate:   now,
	}
	switch d.Patient.Sex {
	case "Male":
		m.PatientSex = "M"
	case "Female":
		m.PatientSex = "F"
	default:
		m.PatientSex = "O"
	}
	if t, ok := textgen.ParseDate(d.Header.Date); ok {
		m.StudyDate = t
	}
	return m
}

func firstNonBlank(vs ...string) string {
	for _, v := range vs {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// NewUID returns a UUID-derived UID under the 2.25 root.
func NewUID() string {
	id := uuid.New()
	return "2.25." + new(big.Int).SetBytes(id[:]).String()
}

// PageLayout is the raster size of one page.
type PageLayout struct {
	Width  int
	Height int
}

// DefaultLayout is a portrait page roughly in A4 proportion.
var DefaultLayout = PageLayout{Width: defaultPage, Height: defaultPage * 297 / 210}

func (l PageLayout) columns() int {
	return max(1, (l.Width-2*pageMargin)/glyphWidth)
}

func (l PageLayout) linesPerPage() int {
	return max(1, (l.Height-2*pageMargin)/lineHeight)
}

// Pages lays doc out as text lines split into pages for the given layout.
func Pages(doc document.Document, l PageLayout) [][]string {
	cols := l.columns()
	var lines []string
	add := func(s string) {
		lines = append(lines, wrap(s, cols)...)
	}
	if doc.Title != "" {
		add(doc.Title)
		add("")
	}
	for _, sec := range doc.Sections {
		if sec.Heading != "" {
			add(sec.Heading)
		}
		for _, b := range sec.Blocks {
			switch b.Kind {
			case document.Sentence:
				if b.Number > 0 {
					add(strconv.Itoa(b.Number) + ". " + b.Text)
				} else {
					add(b.Text)
				}
			case document.TableBlock:
				if b.Table != nil {
					for _, tl := range render.TextTable(*b.Table) {
						lines = append(lines, runewidth.Truncate(tl, cols, ""))
					}
				}
			default:
				add(b.Text)
			}
		}
		add("")
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}
	per := l.linesPerPage()
	var pages [][]string
	for start := 0; start < len(lines); start += per {
		pages = append(pages, lines[start:min(start+per, len(lines))])
	}
	return pages
}

// wrap breaks s on spaces so that no line is wider than cols cells.
// A single word longer than cols is hard broken.
func wrap(s string, cols int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	cur := ""
	for _, w := range words {
		for runewidth.StringWidth(w) > cols {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			head := runewidth.Truncate(w, cols, "")
			if head == "" {
				head = string([]rune(w)[:1])
			}
			out = append(out, head)
			w = w[len(head):]
		}
		switch {
		case cur == "":
			cur = w
		case runewidth.StringWidth(cur)+1+runewidth.StringWidth(w) <= cols:
			cur += " " + w
		default:
			out = append(out, cur)
			cur = w
		}
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

// rasterise draws one page of text, black on white.
func rasterise(lines []string, l PageLayout) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, l.Width, l.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		d.Dot = fixed.P(pageMargin, pageMargin+(i+1)*lineHeight)
		d.DrawString(line)
	}
	return img
}

// DICOM writes doc as a multi-frame secondary capture, one frame per page.
func DICOM(w io.Writer, doc document.Document, m Meta, l PageLayout) error {
	pages := Pages(doc, l)
	if len(pages) == 0 {
		return ErrNoPages
	}

	pixels := l.Width * l.Height
	frames := make([]*frame.Frame, 0, len(pages))
	for _, page := range pages {
		img := rasterise(page, l)
		nf := frame.NewNativeFrame[uint8](8, l.Height, l.Width, pixels, 1)
		copy(nf.RawData, img.Pix)
		frames = append(frames, &frame.Frame{Encapsulated: false, NativeData: nf})
	}

	ds := dicom.Dataset{Elements: append(headerElements(m, l, len(pages)),
		mustNewElement(tag.PixelData, dicom.PixelDataInfo{Frames: frames}))}
	if err := dicom.Write(w, ds); err != nil {
		return fmt.Errorf("writing dicom: %w", err)
	}
	return nil
}

// WriteDICOMFile writes the secondary capture to path. A failed write
// removes the partial file.
func WriteDICOMFile(path string, doc document.Document, m Meta, l PageLayout) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return DICOM(f, doc, m, l)
}

func headerElements(m Meta, l PageLayout, nFrames int) []*dicom.Element {
	elems := baseElements(m, l, nFrames)
	for t, v := range m.Overrides {
		elem := mustNewElement(t, []string{v})
		if i := slices.IndexFunc(elems, func(e *dicom.Element) bool { return e.Tag == t }); i >= 0 {
			elems[i] = elem
		} else {
			elems = append(elems, elem)
		}
	}
	sort.SliceStable(elems, func(i, j int) bool {
		a, b := elems[i].Tag, elems[j].Tag
		return a.Group < b.Group || (a.Group == b.Group && a.Element < b.Element)
	})
	return elems
}

func baseElements(m Meta, l PageLayout, nFrames int) []*dicom.Element {
	sopInstance := NewUID()
	date := m.StudyDate.Format("20060102")
	clock := m.StudyDate.Format("150405")
	return []*dicom.Element{
		mustNewElement(tag.TransferSyntaxUID, []string{explicitVRLittleEndian}),
		mustNewElement(tag.MediaStorageSOPClassUID, []string{secondaryCaptureSOPClass}),
		mustNewElement(tag.MediaStorageSOPInstanceUID, []string{sopInstance}),
		mustNewElement(tag.SOPClassUID, []string{secondaryCaptureSOPClass}),
		mustNewElement(tag.SOPInstanceUID, []string{sopInstance}),
		mustNewElement(tag.StudyInstanceUID, []string{NewUID()}),
		mustNewElement(tag.SeriesInstanceUID, []string{NewUID()}),
		mustNewElement(tag.PatientName, []string{m.PatientName}),
		mustNewElement(tag.PatientID, []string{m.PatientID}),
		mustNewElement(tag.PatientSex, []string{m.PatientSex}),
		mustNewElement(tag.StudyDate, []string{date}),
		mustNewElement(tag.StudyTime, []string{clock}),
		mustNewElement(tag.ContentDate, []string{date}),
		mustNewElement(tag.ContentTime, []string{clock}),
		mustNewElement(tag.StudyDescription, []string{m.Description}),
		mustNewElement(tag.SeriesDescription, []string{m.Description}),
		mustNewElement(tag.InstitutionName, []string{m.Institution}),
		mustNewElement(tag.Modality, []string{"OT"}),
		mustNewElement(tag.ConversionType, []string{"WSD"}),
		mustNewElement(tag.SeriesNumber, []string{"1"}),
		mustNewElement(tag.InstanceNumber, []string{"1"}),
		mustNewElement(tag.NumberOfFrames, []string{strconv.Itoa(nFrames)}),
		mustNewElement(tag.Rows, []int{l.Height}),
		mustNewElement(tag.Columns, []int{l.Width}),
		mustNewElement(tag.BitsAllocated, []int{8}),
		mustNewElement(tag.BitsStored, []int{8}),
		mustNewElement(tag.HighBit, []int{7}),
		mustNewElement(tag.PixelRepresentation, []int{0}),
		mustNewElement(tag.SamplesPerPixel, []int{1}),
		mustNewElement(tag.PhotometricInterpretation, []string{"MONOCHROME2"}),
	}
}

func mustNewElement(t tag.Tag, value any) *dicom.Element {
	elem, err := dicom.NewElement(t, value)
	if err != nil {
		panic(fmt.Sprintf("failed to create element %v: %v", t, err))
	}
	return elem
}
