package response

import "github.com/gin-gonic/gin"

// ErrorBody is the structured error response. Error is always true so
// clients can branch on a single field, matching the public API contract.
type ErrorBody struct {
	Error   bool              `json:"error"`
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Success sends data verbatim as JSON. The API has no success envelope:
// documents and result objects are returned as-is, and absent documents
// are a 200 with a null body rather than a 404.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorBody{Error: true, Code: code, Message: GetMessage(code)})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, ErrorBody{Error: true, Code: code, Message: GetMessage(code), Fields: fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: true, Code: code, Message: GetMessage(code)})
}
