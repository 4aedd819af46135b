package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spotilike/api/auth"
	"github.com/spotilike/api/store"
)

// writeError maps the store and auth error taxonomy onto HTTP
// statuses. Missing-entity and missing-reference cases both map to
// 404 but keep distinguishable messages naming the kind.
func writeError(c *gin.Context, err error) {
	var notFound *store.NotFoundError
	var refNotFound *store.ReferenceNotFoundError
	var validation *store.ValidationError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &refNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": refNotFound.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.Is(err, store.ErrDuplicateIdentity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidProof):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// bindJSON binds the request body, turning binding failures into 400s.
func bindJSON(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// idParam parses a path id. Non-numeric ids are a validation error.
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		writeError(c, &store.ValidationError{Msg: name + " must be a positive integer"})
		return 0, false
	}
	return uint(v), true
}

// pageFromQuery reads limit/offset. Range checks live in the store;
// only integer parsing is handled here.
func pageFromQuery(c *gin.Context) (store.Page, bool) {
	page := store.DefaultPage()
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, &store.ValidationError{Msg: "limit must be an integer"})
			return page, false
		}
		page.Limit = v
	}
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, &store.ValidationError{Msg: "offset must be an integer"})
			return page, false
		}
		page.Offset = v
	}
	return page, true
}

// uintQuery reads an optional numeric query filter.
func uintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		writeError(c, &store.ValidationError{Msg: name + " must be a positive integer"})
		return nil, false
	}
	id := uint(v)
	return &id, true
}
