package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-catalog/internal/domains/author"
	"bookstore-catalog/internal/domains/author/repository"
)

func newService() author.Service {
	return NewAuthorService(repository.NewMemoryRepository())
}

func ptr[T any](v T) *T { return &v }

func seedAuthor(t *testing.T, svc author.Service) *author.Author {
	t.Helper()

	created, err := svc.Create(context.Background(), &author.AuthorRequest{
		Name:        "John Doe",
		Age:         30,
		Description: "A great author",
		Image:       "author-image.jpeg",
	})
	require.NoError(t, err)
	return created
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an id", func(t *testing.T) {
		svc := newService()

		created := seedAuthor(t, svc)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "John Doe", created.Name)

		second, err := svc.Create(ctx, &author.AuthorRequest{Name: "Jane Doe", Age: 40})
		require.NoError(t, err)
		assert.NotEqual(t, created.ID, second.ID)
	})

	t.Run("rejects a caller-supplied id", func(t *testing.T) {
		svc := newService()

		_, err := svc.Create(ctx, &author.AuthorRequest{
			ID:   ptr(int64(7)),
			Name: "John Doe",
		})
		assert.ErrorIs(t, err, author.ErrIDAlreadyAssigned)

		all, err := svc.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestFindByID(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	created := seedAuthor(t, svc)

	found, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = svc.FindByID(ctx, 999)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	assert.EqualError(t, err, "author with id 999 not found")
}

func TestFullUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("fails on an absent id", func(t *testing.T) {
		svc := newService()

		_, err := svc.FullUpdate(ctx, 42, &author.AuthorRequest{Name: "Nobody"})
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})

	t.Run("replaces wholesale and forces the path id", func(t *testing.T) {
		svc := newService()
		created := seedAuthor(t, svc)

		updated, err := svc.FullUpdate(ctx, created.ID, &author.AuthorRequest{
			ID:   ptr(int64(999)), // payload id must be ignored
			Name: "Jane Doe",
			Age:  41,
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Jane Doe", updated.Name)
		assert.Equal(t, 41, updated.Age)
		// Replace semantics: fields absent from the request reset.
		assert.Empty(t, updated.Description)
		assert.Empty(t, updated.Image)

		stored, err := svc.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})
}

func TestPartialUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("fails on an absent id", func(t *testing.T) {
		svc := newService()

		_, err := svc.PartialUpdate(ctx, 42, &author.UpdateAuthorRequest{Name: ptr("x")})
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})

	// Each field is an independent axis: present overwrites, absent
	// keeps the prior value.
	tests := []struct {
		name  string
		patch author.UpdateAuthorRequest
		want  author.Author
	}{
		{
			name:  "name only",
			patch: author.UpdateAuthorRequest{Name: ptr("Jane Doe")},
			want:  author.Author{Name: "Jane Doe", Age: 30, Description: "A great author", Image: "author-image.jpeg"},
		},
		{
			name:  "age only",
			patch: author.UpdateAuthorRequest{Age: ptr(31)},
			want:  author.Author{Name: "John Doe", Age: 31, Description: "A great author", Image: "author-image.jpeg"},
		},
		{
			name:  "description only",
			patch: author.UpdateAuthorRequest{Description: ptr("An even greater author")},
			want:  author.Author{Name: "John Doe", Age: 30, Description: "An even greater author", Image: "author-image.jpeg"},
		},
		{
			name:  "image only",
			patch: author.UpdateAuthorRequest{Image: ptr("new-image.jpeg")},
			want:  author.Author{Name: "John Doe", Age: 30, Description: "A great author", Image: "new-image.jpeg"},
		},
		{
			name: "all fields",
			patch: author.UpdateAuthorRequest{
				Name:        ptr("Jane Doe"),
				Age:         ptr(41),
				Description: ptr("Different"),
				Image:       ptr("other.jpeg"),
			},
			want: author.Author{Name: "Jane Doe", Age: 41, Description: "Different", Image: "other.jpeg"},
		},
		{
			name:  "explicit empty string overwrites",
			patch: author.UpdateAuthorRequest{Description: ptr("")},
			want:  author.Author{Name: "John Doe", Age: 30, Description: "", Image: "author-image.jpeg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService()
			created := seedAuthor(t, svc)

			updated, err := svc.PartialUpdate(ctx, created.ID, &tt.patch)
			require.NoError(t, err)

			tt.want.ID = created.ID
			assert.Equal(t, &tt.want, updated)

			stored, err := svc.FindByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, updated, stored)
		})
	}

	t.Run("empty patch is an idempotent no-op", func(t *testing.T) {
		svc := newService()
		created := seedAuthor(t, svc)

		first, err := svc.PartialUpdate(ctx, created.ID, &author.UpdateAuthorRequest{})
		require.NoError(t, err)
		assert.Equal(t, created, first)

		second, err := svc.PartialUpdate(ctx, created.ID, &author.UpdateAuthorRequest{})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	created := seedAuthor(t, svc)

	// Deleting an absent id succeeds and changes nothing.
	require.NoError(t, svc.DeleteByID(ctx, 999))
	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.DeleteByID(ctx, created.ID))
	_, err = svc.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)

	// Deleting twice is the same as once.
	require.NoError(t, svc.DeleteByID(ctx, created.ID))
}

func TestFindAll(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	first := seedAuthor(t, svc)
	second, err := svc.Create(ctx, &author.AuthorRequest{Name: "Jane Doe", Age: 40})
	require.NoError(t, err)

	all, err = svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, *first, all[0])
	assert.Equal(t, *second, all[1])
}
