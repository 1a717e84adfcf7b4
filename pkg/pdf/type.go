package pdf

// Document is a markdown body plus the header fields printed above it.
type Document struct {
	Title    string
	Subtitle string
	Markdown string
	Badges   []string
}

// Config controls the headless Chromium used for rendering.
type Config struct {
	// ChromePath overrides binary detection when set.
	ChromePath string
}
