package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyBookName   = errors.New("book name is required")
	ErrEmptyBookAuthor = errors.New("book author is required")
	ErrEmptyBookPrice  = errors.New("book price is required")
	ErrEmptyBookImage  = errors.New("book image is required")
	ErrEmptyOrderBook  = errors.New("order must reference a book")
)
