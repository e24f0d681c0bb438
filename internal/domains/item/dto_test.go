package item

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs), "expected field-level validation errors, got %v", err)
	return verrs
}

func TestCreateItemReqValidate(t *testing.T) {
	valid := CreateItemReq{
		CategoryID: uuid.New(),
		Title:      "Intro video",
		URL:        "https://youtu.be/abc123",
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing required fields", func(t *testing.T) {
		err := CreateItemReq{}.Validate()
		verrs := fieldErrors(t, err)
		assert.Contains(t, verrs, "categoryId")
		assert.Contains(t, verrs, "title")
		assert.Contains(t, verrs, "url")
	})

	t.Run("non-http scheme rejected", func(t *testing.T) {
		req := valid
		req.URL = "ftp://example.com/file"
		verrs := fieldErrors(t, req.Validate())
		assert.Contains(t, verrs, "url")
	})

	t.Run("relative url rejected", func(t *testing.T) {
		req := valid
		req.URL = "/not/absolute"
		verrs := fieldErrors(t, req.Validate())
		assert.Contains(t, verrs, "url")
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		req := valid
		req.Type = "VIMEO"
		verrs := fieldErrors(t, req.Validate())
		assert.Contains(t, verrs, "type")
	})

	t.Run("explicit type accepted", func(t *testing.T) {
		req := valid
		req.Type = "DRIVE"
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateItemReqValidate(t *testing.T) {
	t.Run("empty request is valid", func(t *testing.T) {
		assert.NoError(t, UpdateItemReq{}.Validate())
	})

	t.Run("provided fields still validated", func(t *testing.T) {
		badURL := "ftp://example.com"
		emptyTitle := ""
		req := UpdateItemReq{URL: &badURL, Title: &emptyTitle}

		verrs := fieldErrors(t, req.Validate())
		assert.Contains(t, verrs, "url")
		assert.Contains(t, verrs, "title")
	})

	t.Run("explicit empty type rejected", func(t *testing.T) {
		empty := ""
		verrs := fieldErrors(t, UpdateItemReq{Type: &empty}.Validate())
		assert.Contains(t, verrs, "type")
	})

	t.Run("zero category id rejected", func(t *testing.T) {
		zero := uuid.Nil
		verrs := fieldErrors(t, UpdateItemReq{CategoryID: &zero}.Validate())
		assert.Contains(t, verrs, "categoryId")
	})

	t.Run("valid partial update", func(t *testing.T) {
		title := "Renamed"
		req := UpdateItemReq{Title: &title}
		assert.NoError(t, req.Validate())
	})
}
