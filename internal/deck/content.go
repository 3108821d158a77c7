// Package deck holds the fixed-shape presentation content model and the
// assembler that turns synthesized content into an ordered slide sequence.
package deck

// KeyPointCount is the number of key-point slides in every generated deck.
// Content synthesis guarantees it on every path, including fallback.
const KeyPointCount = 4

// TitleSlide is the opening slide of a deck.
type TitleSlide struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Section is a titled bullet list (overview, key points, conclusion).
type Section struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// Content is the schema-constrained output of content synthesis. It is built
// once per generation request and never mutated afterwards.
type Content struct {
	TitleSlide TitleSlide `json:"title_slide"`
	Overview   Section    `json:"overview"`
	KeyPoints  []Section  `json:"key_points"`
	Conclusion Section    `json:"conclusion"`
}

// Image is picture data ready for embedding. Dimensions come from the decoded
// image header and drive proportional scaling in the writer; Format is the
// registered decoder name ("jpeg", "png", "gif").
type Image struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// Slide is one fully resolved slide, consumed once by document serialization.
// The first slide of a deck is rendered with the title layout (Subtitle set,
// no bullets); all others are content slides.
type Slide struct {
	Title    string
	Subtitle string
	Bullets  []string
	Image    *Image
}
