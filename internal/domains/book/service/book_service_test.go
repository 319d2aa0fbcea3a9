package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-catalog/internal/domains/author"
	authorrepo "bookstore-catalog/internal/domains/author/repository"
	"bookstore-catalog/internal/domains/book"
	bookrepo "bookstore-catalog/internal/domains/book/repository"
)

const testISBN = "978-0-13-468599-1"

func ptr[T any](v T) *T { return &v }

func newFixture(t *testing.T) (book.Service, author.Repository, *author.Author) {
	t.Helper()

	authors := authorrepo.NewMemoryRepository()
	a, err := authors.Create(context.Background(), &author.Author{
		Name:        "John Doe",
		Age:         30,
		Description: "A great author",
		Image:       "author-image.jpeg",
	})
	require.NoError(t, err)

	return NewBookService(bookrepo.NewMemoryRepository(), authors), authors, a
}

func bookRequest(authorID int64) *book.BookRequest {
	return &book.BookRequest{
		Title:       "A great book",
		Description: "A really great book",
		Image:       "book-image.jpeg",
		Author:      book.AuthorRefRequest{ID: authorID},
	}
}

func TestGetBook(t *testing.T) {
	ctx := context.Background()
	svc, _, a := newFixture(t)

	_, err := svc.GetBook(ctx, testISBN)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.EqualError(t, err, "book with isbn "+testISBN+" not found")

	saved, _, err := svc.CreateUpdate(ctx, testISBN, bookRequest(a.ID))
	require.NoError(t, err)

	found, err := svc.GetBook(ctx, testISBN)
	require.NoError(t, err)
	assert.Equal(t, saved, found)
}

func TestCreateUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates then replaces", func(t *testing.T) {
		svc, _, a := newFixture(t)

		saved, created, err := svc.CreateUpdate(ctx, testISBN, bookRequest(a.ID))
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, testISBN, saved.ISBN)
		assert.Equal(t, "A great book", saved.Title)

		req := bookRequest(a.ID)
		req.Title = "Another great book"
		saved, created, err = svc.CreateUpdate(ctx, testISBN, req)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "Another great book", saved.Title)

		stored, err := svc.GetBook(ctx, testISBN)
		require.NoError(t, err)
		assert.Equal(t, "Another great book", stored.Title)
	})

	t.Run("path isbn wins over the body", func(t *testing.T) {
		svc, _, a := newFixture(t)

		req := bookRequest(a.ID)
		req.ISBN = ptr("isbn-from-body")
		saved, _, err := svc.CreateUpdate(ctx, testISBN, req)
		require.NoError(t, err)
		assert.Equal(t, testISBN, saved.ISBN)

		_, err = svc.GetBook(ctx, "isbn-from-body")
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("embeds a snapshot of the resolved author", func(t *testing.T) {
		svc, _, a := newFixture(t)

		req := bookRequest(a.ID)
		// Whatever the caller claims about the author is ignored.
		req.Author.Name = ptr("Impostor")
		req.Author.Image = ptr("impostor.jpeg")

		saved, _, err := svc.CreateUpdate(ctx, testISBN, req)
		require.NoError(t, err)
		assert.Equal(t, book.AuthorSummary{
			ID:    a.ID,
			Name:  "John Doe",
			Image: "author-image.jpeg",
		}, saved.Author)
	})

	t.Run("fails when the author does not resolve", func(t *testing.T) {
		svc, _, a := newFixture(t)

		_, _, err := svc.CreateUpdate(ctx, "isbn-x", bookRequest(999))
		assert.ErrorIs(t, err, book.ErrAuthorMissing)
		assert.EqualError(t, err, "author with id 999 not found")

		// Same failure when the isbn already exists.
		_, _, err = svc.CreateUpdate(ctx, testISBN, bookRequest(a.ID))
		require.NoError(t, err)
		_, _, err = svc.CreateUpdate(ctx, testISBN, bookRequest(999))
		assert.ErrorIs(t, err, book.ErrAuthorMissing)
	})

	t.Run("stale author deletion keeps the snapshot", func(t *testing.T) {
		svc, authors, a := newFixture(t)

		_, _, err := svc.CreateUpdate(ctx, testISBN, bookRequest(a.ID))
		require.NoError(t, err)

		require.NoError(t, authors.Delete(ctx, a.ID))

		// Reads are not re-validated against the author store.
		stored, err := svc.GetBook(ctx, testISBN)
		require.NoError(t, err)
		assert.Equal(t, a.ID, stored.Author.ID)
		assert.Equal(t, "John Doe", stored.Author.Name)
	})
}

// brokenAuthorRepo simulates a store handing back a persisted author
// without an id.
type brokenAuthorRepo struct {
	author.Repository
}

func (brokenAuthorRepo) GetByID(context.Context, int64) (*author.Author, error) {
	return &author.Author{Name: "Ghost"}, nil
}

func TestCreateUpdateInvalidAuthorState(t *testing.T) {
	svc := NewBookService(bookrepo.NewMemoryRepository(), brokenAuthorRepo{})

	_, _, err := svc.CreateUpdate(context.Background(), testISBN, bookRequest(1))
	assert.ErrorIs(t, err, book.ErrInvalidAuthorState)
}

func TestGetBooks(t *testing.T) {
	ctx := context.Background()
	svc, authors, a := newFixture(t)

	other, err := authors.Create(ctx, &author.Author{Name: "Jane Doe", Age: 40})
	require.NoError(t, err)

	_, _, err = svc.CreateUpdate(ctx, "isbn-1", bookRequest(a.ID))
	require.NoError(t, err)
	_, _, err = svc.CreateUpdate(ctx, "isbn-2", bookRequest(a.ID))
	require.NoError(t, err)
	_, _, err = svc.CreateUpdate(ctx, "isbn-3", bookRequest(other.ID))
	require.NoError(t, err)

	all, err := svc.GetBooks(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// The filtered result is exactly the subset of the unfiltered one.
	filtered, err := svc.GetBooks(ctx, &a.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, b := range filtered {
		assert.Equal(t, a.ID, b.Author.ID)
		assert.Contains(t, all, b)
	}

	// No match is an empty sequence, never an error.
	none, err := svc.GetBooks(ctx, ptr(int64(999)))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPartialUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("fails on an absent isbn", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		_, err := svc.PartialUpdate(ctx, testISBN, &book.UpdateBookRequest{Title: ptr("x")})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
		assert.Contains(t, err.Error(), testISBN)
	})

	t.Run("merges present fields only", func(t *testing.T) {
		svc, _, a := newFixture(t)

		_, _, err := svc.CreateUpdate(ctx, testISBN, bookRequest(a.ID))
		require.NoError(t, err)

		updated, err := svc.PartialUpdate(ctx, testISBN, &book.UpdateBookRequest{
			Title: ptr("Another great book"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Another great book", updated.Title)
		assert.Equal(t, "A really great book", updated.Description)
		assert.Equal(t, "book-image.jpeg", updated.Image)
		// The author reference is never alterable via patch.
		assert.Equal(t, a.ID, updated.Author.ID)
	})

	t.Run("empty patch is an idempotent no-op", func(t *testing.T) {
		svc, _, a := newFixture(t)

		created, _, err := svc.CreateUpdate(ctx, testISBN, bookRequest(a.ID))
		require.NoError(t, err)

		first, err := svc.PartialUpdate(ctx, testISBN, &book.UpdateBookRequest{})
		require.NoError(t, err)
		assert.Equal(t, created, first)

		second, err := svc.PartialUpdate(ctx, testISBN, &book.UpdateBookRequest{})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("succeeds after the author is deleted", func(t *testing.T) {
		svc, authors, a := newFixture(t)

		_, _, err := svc.CreateUpdate(ctx, testISBN, bookRequest(a.ID))
		require.NoError(t, err)

		require.NoError(t, authors.Delete(ctx, a.ID))

		// A patch never re-validates the author reference; the stale
		// snapshot survives the merge.
		updated, err := svc.PartialUpdate(ctx, testISBN, &book.UpdateBookRequest{
			Title: ptr("Another great book"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Another great book", updated.Title)
		assert.Equal(t, a.ID, updated.Author.ID)
		assert.Equal(t, "John Doe", updated.Author.Name)
	})
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()
	svc, _, a := newFixture(t)

	_, _, err := svc.CreateUpdate(ctx, testISBN, bookRequest(a.ID))
	require.NoError(t, err)

	// Deleting an absent isbn succeeds and changes nothing.
	require.NoError(t, svc.DeleteBook(ctx, "unknown"))
	all, err := svc.GetBooks(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.DeleteBook(ctx, testISBN))
	_, err = svc.GetBook(ctx, testISBN)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	// Deleting twice is the same as once.
	require.NoError(t, svc.DeleteBook(ctx, testISBN))
}
