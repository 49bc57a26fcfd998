// Package pptx writes minimal PresentationML (.pptx) files without external
// dependencies: a zip archive of hand-built XML parts. It covers exactly what
// the deck renderer needs — title/subtitle slides, bulleted bodies placed full
// width or in the left half, and an optional picture in the right-side region.
package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
)

// Body placement within a slide.
const (
	BodyFull = iota
	BodyLeft
)

type Presentation struct {
	title  string
	slides []*Slide
}

type Slide struct {
	Title     string
	Subtitle  string
	Bullets   []string
	Placement int
	Image     []byte // side-region picture, PNG or JPEG
}

func New() *Presentation {
	return &Presentation{}
}

// SetTitle sets the document title recorded in docProps/core.xml.
func (p *Presentation) SetTitle(title string) {
	p.title = title
}

func (p *Presentation) Title() string {
	return p.title
}

func (p *Presentation) AddSlide(s Slide) {
	p.slides = append(p.slides, &s)
}

func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

// WriteFile writes the presentation to path, overwriting any existing file.
func (p *Presentation) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := p.write(&buf); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write presentation: %w", err)
	}
	return nil
}

func (p *Presentation) write(buf *bytes.Buffer) error {
	zw := zip.NewWriter(buf)

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", p.contentTypes()},
		{"_rels/.rels", rootRels},
		{"docProps/core.xml", p.coreProps()},
		{"ppt/presentation.xml", p.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", p.presentationRels()},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRels},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRels},
		{"ppt/theme/theme1.xml", themeXML},
	}

	for i, s := range p.slides {
		n := i + 1
		parts = append(parts,
			struct {
				name string
				data string
			}{fmt.Sprintf("ppt/slides/slide%d.xml", n), slideXML(s)},
			struct {
				name string
				data string
			}{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRels(s, n)},
		)
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return fmt.Errorf("write part %s: %w", part.name, err)
		}
	}

	for i, s := range p.slides {
		if len(s.Image) == 0 {
			continue
		}
		name := fmt.Sprintf("ppt/media/image%d.%s", i+1, imageExt(s.Image))
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("create media %s: %w", name, err)
		}
		if _, err := w.Write(s.Image); err != nil {
			return fmt.Errorf("write media %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}

func imageExt(data []byte) string {
	if len(data) >= 8 && bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		return "png"
	}
	return "jpeg"
}
