package deck

import (
	"bytes"
	"context"
	"image"
	"log"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/sync/errgroup"

	"github.com/mbalazs/deckgen/internal/images"
)

// ImageResolver materializes a query as an ephemeral local image file.
type ImageResolver interface {
	Resolve(ctx context.Context, query string) *images.TempImage
}

// Assembler builds the fixed slide sequence from synthesized content.
type Assembler struct {
	resolver ImageResolver
}

func NewAssembler(resolver ImageResolver) *Assembler {
	return &Assembler{resolver: resolver}
}

// Assemble returns the fixed slide sequence: title, overview, one slide per
// key point, conclusion. Key-point images are resolved concurrently but
// attached by key-point index, so slide ordering never depends on download
// completion order. Any image failure leaves the slide without a picture;
// slide count and order are invariant.
func (a *Assembler) Assemble(ctx context.Context, content Content) []Slide {
	embedded := make([]*Image, len(content.KeyPoints))

	g, gctx := errgroup.WithContext(ctx)
	for i, kp := range content.KeyPoints {
		i, kp := i, kp
		g.Go(func() error {
			embedded[i] = a.embedImage(gctx, kp.Title)
			return nil
		})
	}
	g.Wait() // workers never return errors; failures degrade to nil images

	slides := make([]Slide, 0, len(content.KeyPoints)+3)
	slides = append(slides, Slide{
		Title:    content.TitleSlide.Title,
		Subtitle: content.TitleSlide.Subtitle,
	})
	slides = append(slides, Slide{
		Title:   content.Overview.Title,
		Bullets: content.Overview.Content,
	})
	for i, kp := range content.KeyPoints {
		slides = append(slides, Slide{
			Title:   kp.Title,
			Bullets: kp.Content,
			Image:   embedded[i],
		})
	}
	slides = append(slides, Slide{
		Title:   content.Conclusion.Title,
		Bullets: content.Conclusion.Content,
	})
	return slides
}

// embedImage resolves and loads one key-point image. The temp file is released
// on every path; after the embedding attempt only the in-memory copy survives.
func (a *Assembler) embedImage(ctx context.Context, query string) *Image {
	tmp := a.resolver.Resolve(ctx, query)
	if tmp == nil {
		return nil
	}
	defer tmp.Release()

	data, err := os.ReadFile(tmp.Path)
	if err != nil {
		log.Printf("Could not read downloaded image for %q: %v", query, err)
		return nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.Printf("Could not add image to slide for %q: %v", query, err)
		return nil
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		log.Printf("Could not add image to slide for %q: empty dimensions", query)
		return nil
	}

	log.Printf("Image added to slide for: %s", query)
	return &Image{Data: data, Format: format, Width: cfg.Width, Height: cfg.Height}
}
