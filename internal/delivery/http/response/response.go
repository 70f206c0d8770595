// Package response implements the site's observed wire contract:
// {"ok":true} on success (optionally flagged simulated), {"error":"..."}
// for client errors, and {"ok":false,"error":...} for server errors.
package response

import (
	"github.com/gin-gonic/gin"
)

// OKResponse is the success body.
type OKResponse struct {
	Ok        bool `json:"ok"`
	Simulated bool `json:"simulated,omitempty"`
}

// ClientError is the 4xx body.
type ClientError struct {
	Error string `json:"error"`
}

// ServerError is the 5xx body; Error may be a string or the relay's
// structured error payload.
type ServerError struct {
	Ok    bool `json:"ok"`
	Error any  `json:"error"`
}

func OK(c *gin.Context) {
	c.JSON(200, OKResponse{Ok: true})
}

func Simulated(c *gin.Context) {
	c.JSON(200, OKResponse{Ok: true, Simulated: true})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(400, ClientError{Error: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(404, ClientError{Error: message})
}

func Fail(c *gin.Context, code int, err any) {
	c.JSON(code, ServerError{Ok: false, Error: err})
}
