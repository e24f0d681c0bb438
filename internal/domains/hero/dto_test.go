package hero

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSlideReqValidate(t *testing.T) {
	assert.NoError(t, CreateSlideReq{ImageURL: "/uploads/hero-1.jpg"}.Validate())
	assert.NoError(t, CreateSlideReq{ImageURL: "https://cdn.example.com/banner.png"}.Validate())

	t.Run("image required", func(t *testing.T) {
		err := CreateSlideReq{}.Validate()

		var verrs validation.Errors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "imageUrl")
	})

	t.Run("link must be http", func(t *testing.T) {
		link := "javascript:alert(1)"
		err := CreateSlideReq{ImageURL: "/uploads/a.jpg", LinkURL: &link}.Validate()

		var verrs validation.Errors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "linkUrl")
	})

	t.Run("negative order rejected", func(t *testing.T) {
		err := CreateSlideReq{ImageURL: "/uploads/a.jpg", Order: -1}.Validate()
		assert.Error(t, err)
	})
}

func TestUpdateSlideReqValidate(t *testing.T) {
	t.Run("empty request is valid", func(t *testing.T) {
		assert.NoError(t, UpdateSlideReq{}.Validate())
	})

	t.Run("empty image rejected when provided", func(t *testing.T) {
		img := ""
		err := UpdateSlideReq{ImageURL: &img}.Validate()

		var verrs validation.Errors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "imageUrl")
	})
}
