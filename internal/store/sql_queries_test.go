// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetAllBooksQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildGetAllBooksQuery()
	require.NoError(t, err)

	// the catalog listing is unfiltered
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from books")
	require.Contains(t, q, "order by created_at desc")
	require.NotContains(t, q, "where")

	// columns presence (subset / key columns)
	cols := []string{
		"id", "name", "author", "price",
		"quantity", "image", "email", "created_at", "updated_at",
	}
	for _, c := range cols {
		require.Contains(t, q, c, "query should contain column %q", c)
	}

	// Ensure this is not SELECT *.
	require.NotContains(t, q, "*", "query should not use SELECT *")
}

func Test_buildOrdersWithBooksQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildOrdersWithBooksQuery("a@x.com")
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from orders o")
	require.Contains(t, q, "left join books b on b.id = o.book_id")
	require.Contains(t, q, "where")
	require.Contains(t, q, "o.email")
	require.Contains(t, q, "order by o.created_at desc")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// exactly one argument: the buyer's email
	require.Len(t, args, 1)
	require.Equal(t, "a@x.com", args[0])
}

func Test_buildOrdersWithBooksQuery_ProjectionColumns(t *testing.T) {
	query, _, err := buildOrdersWithBooksQuery("a@x.com")
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Extract SELECT section (before FROM).
	fromIdx := strings.Index(q, " from ")
	require.NotEqual(t, -1, fromIdx)
	selectPart := q[:fromIdx]

	// order columns
	for _, c := range []string{"o.id", "o.book_id", "o.email", "o.created_at", "o.updated_at"} {
		require.Contains(t, selectPart, c, "SELECT part should contain column %q", c)
	}

	// the book projection is {name, price, author} only
	for _, c := range []string{"b.name", "b.price", "b.author"} {
		require.Contains(t, selectPart, c, "SELECT part should contain column %q", c)
	}
	unexpectedCols := []string{"b.quantity", "b.image", "b.email", "b.created_at"}
	for _, c := range unexpectedCols {
		require.NotContains(t, selectPart, c, "SELECT part should NOT contain column %q", c)
	}
}

func Test_buildOrdersWithBooksQuery_Idempotent(t *testing.T) {
	query, args, err := buildOrdersWithBooksQuery("a@x.com")
	require.NoError(t, err)

	query2, args2, err2 := buildOrdersWithBooksQuery("a@x.com")
	require.NoError(t, err2)

	assert.Equal(t, query, query2)
	assert.Equal(t, args, args2)
}
