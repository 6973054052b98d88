package export

// Dataset defines tabular export content with a fixed column order.
type Dataset struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Renderer turns a dataset into file bytes for one output format.
type Renderer interface {
	Render(data Dataset) ([]byte, error)
	Extension() string
}
