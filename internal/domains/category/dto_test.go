package category

import (
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryReqValidate(t *testing.T) {
	assert.NoError(t, CreateCategoryReq{Name: "Tutorials"}.Validate())

	t.Run("name required", func(t *testing.T) {
		err := CreateCategoryReq{}.Validate()

		var verrs validation.Errors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "name")
	})

	t.Run("name too long", func(t *testing.T) {
		err := CreateCategoryReq{Name: strings.Repeat("x", 256)}.Validate()
		assert.Error(t, err)
	})

	t.Run("image accepts uploads path", func(t *testing.T) {
		img := "/uploads/hero-1712000000000-42.png"
		assert.NoError(t, CreateCategoryReq{Name: "Docs", ImageURL: &img}.Validate())
	})

	t.Run("image rejects other schemes", func(t *testing.T) {
		img := "ftp://example.com/a.png"
		err := CreateCategoryReq{Name: "Docs", ImageURL: &img}.Validate()

		var verrs validation.Errors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "imageUrl")
	})
}

func TestUpdateCategoryReqValidate(t *testing.T) {
	t.Run("empty request is valid", func(t *testing.T) {
		assert.NoError(t, UpdateCategoryReq{}.Validate())
	})

	t.Run("empty name rejected when provided", func(t *testing.T) {
		name := ""
		err := UpdateCategoryReq{Name: &name}.Validate()

		var verrs validation.Errors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "name")
	})
}
