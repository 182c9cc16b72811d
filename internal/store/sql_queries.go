package store

import (
	"github.com/Masterminds/squirrel"
)

const (
	upsertUser = `INSERT INTO users (id, email, name)
    VALUES ($1, $2, $3)
    ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, updated_at = now()
    RETURNING id, email, name, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, name, created_at, updated_at
    FROM users
    WHERE email = $1;`

	createBook = `INSERT INTO books (id, name, author, price, quantity, image, email)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, name, author, price, quantity, image, email, created_at, updated_at;`

	findBookByID = `SELECT id, name, author, price, quantity, image, email, created_at, updated_at
    FROM books
    WHERE id = $1;`

	deleteBookByID = `DELETE FROM books
    WHERE id = $1
    RETURNING id, name, author, price, quantity, image, email, created_at, updated_at;`

	deleteOrdersByBookID = `DELETE FROM orders
    WHERE book_id = $1;`

	createOrder = `INSERT INTO orders (id, book_id, email)
    VALUES ($1, $2, $3)
    RETURNING id, book_id, email, created_at, updated_at;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildGetAllBooksQuery returns the catalog listing query. Newest listings
// come first.
func buildGetAllBooksQuery() (string, []any, error) {
	return psql.
		Select("id", "name", "author", "price", "quantity", "image", "email", "created_at", "updated_at").
		From("books").
		OrderBy("created_at DESC").
		ToSql()
}

// buildOrdersWithBooksQuery returns the buyer's order listing joined with the
// referenced books. The join is a LEFT JOIN on purpose: an order whose book
// has been removed still appears, with NULL book columns.
func buildOrdersWithBooksQuery(email string) (string, []any, error) {
	return psql.
		Select(
			"o.id", "o.book_id", "o.email", "o.created_at", "o.updated_at",
			"b.name", "b.price", "b.author",
		).
		From("orders o").
		LeftJoin("books b ON b.id = o.book_id").
		Where(squirrel.Eq{"o.email": email}).
		OrderBy("o.created_at DESC").
		ToSql()
}
