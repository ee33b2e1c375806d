package topics

// Renderer formats topic content for the terminal
type Renderer interface {
	// Render formats content; ext is the topic file extension
	Render(content string, ext string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}
