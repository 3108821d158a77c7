package pptx

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// SlideText holds the text extracted from one slide part.
type SlideText struct {
	Number int
	Title  string
	Body   []string
}

// ReadOutline extracts titles and body paragraphs from every slide in a pptx
// package, ordered by slide number. Shapes are classified by the writer's
// shape names; unnamed shapes count as body text.
func ReadOutline(path string) ([]SlideText, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var outline []SlideText
	for _, f := range r.File {
		if !strings.HasPrefix(f.Name, "ppt/slides/slide") || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		baseName := filepath.Base(f.Name)
		numStr := strings.TrimSuffix(strings.TrimPrefix(baseName, "slide"), ".xml")
		slideNum, err := strconv.Atoi(numStr)
		if err != nil {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			continue
		}
		slide, err := parseSlideXML(rc, slideNum)
		rc.Close()
		if err != nil {
			continue // skip on error
		}
		outline = append(outline, slide)
	}

	sort.Slice(outline, func(i, j int) bool { return outline[i].Number < outline[j].Number })
	return outline, nil
}

func parseSlideXML(r io.Reader, num int) (SlideText, error) {
	dec := xml.NewDecoder(r)
	slide := SlideText{Number: num}

	var shapeName string
	var inParagraph bool
	var paragraph strings.Builder

	flush := func() {
		text := strings.TrimSpace(paragraph.String())
		paragraph.Reset()
		if text == "" {
			return
		}
		switch shapeName {
		case "Title":
			if slide.Title == "" {
				slide.Title = text
			}
		default:
			slide.Body = append(slide.Body, text)
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return SlideText{}, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "cNvPr":
				for _, a := range el.Attr {
					if a.Name.Local == "name" {
						shapeName = a.Value
					}
				}
			case "p":
				if el.Name.Space == nsDrawing {
					inParagraph = true
				}
			case "t":
				if inParagraph {
					var text string
					if err := dec.DecodeElement(&text, &el); err == nil {
						paragraph.WriteString(text)
					}
				}
			}
		case xml.EndElement:
			if el.Name.Local == "p" && el.Name.Space == nsDrawing {
				flush()
				inParagraph = false
			}
		}
	}

	return slide, nil
}
