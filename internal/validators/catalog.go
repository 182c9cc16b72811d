package validators

import (
	"context"

	"github.com/tilyasov/bookstore/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldBookName targets the title of a book listing.
	FieldBookName = "name"

	// FieldBookAuthor targets the author of a book listing.
	FieldBookAuthor = "author"

	// FieldBookPrice targets the display price of a book listing.
	FieldBookPrice = "price"

	// FieldBookImage targets the cover image URL of a book listing.
	FieldBookImage = "image"

	// FieldOrderBook targets the book reference of an order.
	FieldOrderBook = "book"
)

// CatalogValidator implements the Validator interface for the catalog-facing
// domain models: Book and Order.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type CatalogValidator struct {
}

// NewCatalogValidator constructs a new CatalogValidator
// and returns it as the Validator interface.
func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Book / *models.Book
//   - models.Order / *models.Order
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Book:
		return v.validateBook(ctx, value, fields...)
	case *models.Book:
		return v.validateBook(ctx, *value, fields...)

	case models.Order:
		return v.validateOrder(ctx, value, fields...)
	case *models.Order:
		return v.validateOrder(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateBook validates a single Book model.
//
// Default validated fields (when none specified):
// Name, Author, Price, Image.
//
// Quantity is deliberately not validated: an omitted quantity is filled with
// a default by the service layer before the record is persisted.
//
// Returns the first encountered validation error or nil.
func (v *CatalogValidator) validateBook(_ context.Context, book models.Book, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBookName, FieldBookAuthor, FieldBookPrice, FieldBookImage}
	}

	for _, f := range fields {
		switch f {
		case FieldBookName:
			if book.Name == "" {
				return ErrEmptyBookName
			}
		case FieldBookAuthor:
			if book.Author == "" {
				return ErrEmptyBookAuthor
			}
		case FieldBookPrice:
			if book.Price == "" {
				return ErrEmptyBookPrice
			}
		case FieldBookImage:
			if book.Image == "" {
				return ErrEmptyBookImage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateOrder validates a single Order model.
//
// Default validated fields: Book.
func (v *CatalogValidator) validateOrder(_ context.Context, order models.Order, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOrderBook}
	}

	for _, f := range fields {
		switch f {
		case FieldOrderBook:
			if order.BookID == "" {
				return ErrEmptyOrderBook
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
