package merger

const (
	DefaultPlaceholder = "0"
	DefaultIDHeader    = "ID"
	DefaultSeparator   = "\t"
)

type renderer struct {
	placeholder string
	idHeader    string
	separator   string
}

type Option func(*renderer)

// WithPlaceholder sets the value used for cells without a tag
func WithPlaceholder(placeholder string) Option {
	return func(r *renderer) {
		r.placeholder = placeholder
	}
}

// WithIDHeader sets the header of the identifier column
func WithIDHeader(header string) Option {
	return func(r *renderer) {
		r.idHeader = header
	}
}

func WithSeparator(separator string) Option {
	return func(r *renderer) {
		r.separator = separator
	}
}

func newRenderer(options []Option) *renderer {
	ret := &renderer{
		placeholder: DefaultPlaceholder,
		idHeader:    DefaultIDHeader,
		separator:   DefaultSeparator,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (r *renderer) cell(column *Column, id int64) string {
	if tag, ok := column.Tag(id); ok {
		return tag
	}
	return r.placeholder
}
