package v1

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errNullDocument = errors.New("request body is null")

// bindDocument decodes the request body into a schema-less document.
// Anything other than a JSON object is rejected; the object itself is
// accepted verbatim.
func bindDocument(c *gin.Context) (map[string]any, error) {
	var doc map[string]any
	err := c.ShouldBindJSON(&doc)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errNullDocument
	}
	return doc, nil
}
