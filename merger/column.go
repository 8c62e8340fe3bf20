package merger

// Column represents a single source contribution to the merged table
type Column struct {
	Name   string           // Column name taken from the source header
	Source string           // Location the column was read from
	Tags   map[int64]string // Identifier to tag mapping
}

// NewColumn creates an empty column
func NewColumn(name, source string) *Column {
	return &Column{
		Name:   name,
		Source: source,
		Tags:   map[int64]string{},
	}
}

// Tag returns the tag recorded for id
func (c *Column) Tag(id int64) (string, bool) {
	tag, ok := c.Tags[id]
	return tag, ok
}

// Set records tag for id, replacing any earlier value
func (c *Column) Set(id int64, tag string) {
	c.Tags[id] = tag
}
