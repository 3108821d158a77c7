// Package pptx serializes a slide sequence into a minimal OOXML presentation
// package and reads slide text back out of one.
package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/mbalazs/deckgen/internal/deck"
)

// English Metric Units. Geometry mirrors the classic 4:3 canvas with the
// picture block at left 6.5", top 1.5", height 4".
const (
	emuPerInch = 914400

	slideWidthEMU  = 10 * emuPerInch
	slideHeightEMU = 7*emuPerInch + emuPerInch/2

	picLeftEMU   = 6*emuPerInch + emuPerInch/2
	picTopEMU    = 1*emuPerInch + emuPerInch/2
	picHeightEMU = 4 * emuPerInch
)

const (
	nsDrawing = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPresent = "http://schemas.openxmlformats.org/presentationml/2006/main"
)

// Write serializes slides to path as a .pptx package. The first slide is laid
// out as a title slide; the rest are content slides. Any error aborts the
// write and removes the partial file, so a failed Write never leaves an
// artifact behind.
func Write(path string, slides []deck.Slide) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := writePackage(f, slides); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func writePackage(f *os.File, slides []deck.Slide) error {
	zw := zip.NewWriter(f)

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML(slides)},
		{"_rels/.rels", rootRelsXML},
		{"ppt/presentation.xml", presentationXML(len(slides))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(len(slides))},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}

	for i, slide := range slides {
		num := i + 1
		parts = append(parts,
			struct{ name, data string }{
				fmt.Sprintf("ppt/slides/slide%d.xml", num),
				slideXML(slide, i == 0, num),
			},
			struct{ name, data string }{
				fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", num),
				slideRelsXML(slide, num),
			},
		)
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return err
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return err
		}
	}

	for i, slide := range slides {
		if slide.Image == nil {
			continue
		}
		w, err := zw.Create(mediaPartName(i+1, slide.Image))
		if err != nil {
			return err
		}
		if _, err := w.Write(slide.Image.Data); err != nil {
			return err
		}
	}

	return zw.Close()
}

func mediaExt(img *deck.Image) string {
	switch img.Format {
	case "png":
		return "png"
	case "gif":
		return "gif"
	default:
		return "jpg"
	}
}

func mediaPartName(slideNum int, img *deck.Image) string {
	return fmt.Sprintf("ppt/media/image%d.%s", slideNum, mediaExt(img))
}

func esc(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

func contentTypesXML(slides []deck.Slide) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	sb.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	sb.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	sb.WriteString(`<Default Extension="jpg" ContentType="image/jpeg"/>`)
	sb.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	sb.WriteString(`<Default Extension="gif" ContentType="image/gif"/>`)
	sb.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	sb.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	sb.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	sb.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := range slides {
		fmt.Fprintf(&sb, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}
	sb.WriteString(`</Types>`)
	return sb.String()
}

const rootRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
	`</Relationships>`

func presentationXML(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	fmt.Fprintf(&sb, `<p:presentation xmlns:a=%q xmlns:r=%q xmlns:p=%q>`, nsDrawing, nsRelType, nsPresent)
	sb.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	sb.WriteString(`<p:sldIdLst>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&sb, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 2+i)
	}
	sb.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&sb, `<p:sldSz cx="%d" cy="%d" type="screen4x3"/>`, slideWidthEMU, slideHeightEMU)
	fmt.Fprintf(&sb, `<p:notesSz cx="%d" cy="%d"/>`, slideHeightEMU, slideWidthEMU)
	sb.WriteString(`</p:presentation>`)
	return sb.String()
}

func presentationRelsXML(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&sb, `<Relationship Id="rId1" Type="%s/slideMaster" Target="slideMasters/slideMaster1.xml"/>`, nsRelType)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&sb, `<Relationship Id="rId%d" Type="%s/slide" Target="slides/slide%d.xml"/>`, 2+i, nsRelType, i+1)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

const emptySpTree = `<p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
	`</p:spTree>`

const slideMasterXML = xmlHeader +
	`<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
	`<p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>` + emptySpTree + `</p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
	`</p:sldMaster>`

const slideMasterRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
	`</Relationships>`

const slideLayoutXML = xmlHeader +
	`<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank" preserve="1">` +
	`<p:cSld name="Blank">` + emptySpTree + `</p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

const slideLayoutRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>` +
	`</Relationships>`

func slideRelsXML(slide deck.Slide, num int) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&sb, `<Relationship Id="rId1" Type="%s/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>`, nsRelType)
	if slide.Image != nil {
		fmt.Fprintf(&sb, `<Relationship Id="rId2" Type="%s/image" Target="../media/image%d.%s"/>`, nsRelType, num, mediaExt(slide.Image))
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

// textBox emits one shape. name marks the shape role ("Title", "Subtitle",
// "Content") and is what the outline reader keys off.
func textBox(id int, name string, x, y, cx, cy int, paragraphs []string, props string) string {
	var sb strings.Builder
	sb.WriteString(`<p:sp>`)
	fmt.Fprintf(&sb, `<p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, name)
	fmt.Fprintf(&sb, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`, x, y, cx, cy)
	sb.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	for _, text := range paragraphs {
		fmt.Fprintf(&sb, `<a:p>%s<a:r><a:rPr lang="en-US"%s dirty="0"/><a:t>%s</a:t></a:r></a:p>`,
			paragraphProps(name), props, esc(text))
	}
	sb.WriteString(`</p:txBody></p:sp>`)
	return sb.String()
}

func paragraphProps(name string) string {
	switch name {
	case "Title":
		return `<a:pPr algn="l"/>`
	case "Subtitle":
		return `<a:pPr algn="ctr"/>`
	default:
		return `<a:pPr><a:buChar char="•"/></a:pPr>`
	}
}

func slideXML(slide deck.Slide, isTitle bool, num int) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	fmt.Fprintf(&sb, `<p:sld xmlns:a=%q xmlns:r=%q xmlns:p=%q>`, nsDrawing, nsRelType, nsPresent)
	sb.WriteString(`<p:cSld><p:spTree>`)
	sb.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`)

	if isTitle {
		// Centered big title with a subtitle underneath.
		sb.WriteString(textBox(2, "Title",
			emuPerInch/2, 2*emuPerInch, 9*emuPerInch, emuPerInch+emuPerInch/2,
			[]string{slide.Title}, ` sz="4400" b="1"`))
		if slide.Subtitle != "" {
			sb.WriteString(textBox(3, "Subtitle",
				emuPerInch/2, 4*emuPerInch, 9*emuPerInch, emuPerInch,
				[]string{slide.Subtitle}, ` sz="2400"`))
		}
	} else {
		sb.WriteString(textBox(2, "Title",
			emuPerInch/2, emuPerInch/4, 9*emuPerInch, emuPerInch,
			[]string{slide.Title}, ` sz="3200" b="1"`))
		if len(slide.Bullets) > 0 {
			sb.WriteString(textBox(3, "Content",
				emuPerInch/2, emuPerInch+emuPerInch/2, 9*emuPerInch, 5*emuPerInch,
				slide.Bullets, ` sz="1800"`))
		}
		if slide.Image != nil {
			sb.WriteString(pictureXML(slide.Image, num))
		}
	}

	sb.WriteString(`</p:spTree></p:cSld>`)
	sb.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	sb.WriteString(`</p:sld>`)
	return sb.String()
}

// pictureXML places the image at a fixed offset with fixed height; width
// scales with the source aspect ratio.
func pictureXML(img *deck.Image, num int) string {
	width := int(int64(picHeightEMU) * int64(img.Width) / int64(img.Height))

	var sb strings.Builder
	sb.WriteString(`<p:pic>`)
	fmt.Fprintf(&sb, `<p:nvPicPr><p:cNvPr id="4" name="Picture %d"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>`, num)
	sb.WriteString(`<p:blipFill><a:blip r:embed="rId2"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`)
	fmt.Fprintf(&sb, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`,
		picLeftEMU, picTopEMU, width, picHeightEMU)
	sb.WriteString(`</p:pic>`)
	return sb.String()
}
