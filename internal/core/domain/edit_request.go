package domain

import (
	"fmt"
	"strconv"
)

// Path tokens on /edit/{id} that mean "create a new post".
const (
	NewPostToken      = "0"
	NewPostTokenAlias = "new"
)

// EditRequest is the decision made at the edit endpoint: either a CreatePost
// or an UpdatePost. The variant is fixed by the caller; nothing downstream
// inspects ids to guess.
type EditRequest interface {
	PostFields() PostFields
	isEditRequest()
}

// CreatePost asks the store to insert a new post.
type CreatePost struct {
	Fields PostFields
}

// UpdatePost asks the store to overwrite the post identified by ID.
type UpdatePost struct {
	ID     int64
	Fields PostFields
}

func (r CreatePost) PostFields() PostFields { return r.Fields }
func (r UpdatePost) PostFields() PostFields { return r.Fields }

func (CreatePost) isEditRequest() {}
func (UpdatePost) isEditRequest() {}

// ParseEditTarget converts the path token of the edit endpoint into a post
// id. The creation sentinel yields 0.
func ParseEditTarget(token string) (int64, error) {
	if token == NewPostToken || token == NewPostTokenAlias {
		return 0, nil
	}
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: post id %q", ErrInvalidInput, token)
	}
	return id, nil
}

// NewEditRequest builds the request variant for a parsed target id.
func NewEditRequest(id int64, fields PostFields) EditRequest {
	if id == 0 {
		return CreatePost{Fields: fields}
	}
	return UpdatePost{ID: id, Fields: fields}
}
