package utils

import (
	"errors"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// HTTPURL accepts absolute http/https URLs only. Pointer fields are
// dereferenced first; ozzo hands By rules the raw *string.
var HTTPURL = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, _ := v.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be a valid http or https URL")
	}
	return nil
})

// ImageRef accepts either an absolute http/https URL or a server-relative
// path such as /uploads/hero-123.jpg (what the upload endpoint returns).
var ImageRef = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, _ := v.(string)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "/") && !strings.Contains(s, "..") {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an http(s) URL or a /uploads path")
	}
	return nil
})

// NonZeroUUID rejects uuid.Nil. validation.Required does not catch it
// because a zero [16]byte array is not "empty" to ozzo. A nil pointer
// still means "not provided" and passes.
var NonZeroUUID = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("cannot be blank")
	}
	return nil
})
