package response

import (
	"net/http"

	"clipstream-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform body returned by every successful endpoint.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorEnvelope always carries an errors array, empty when there are no
// field-level details.
type ErrorEnvelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Errors     []string    `json:"errors"`
}

func OK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// Fail maps a domain error to the error envelope and writes it. Internal
// errors get a generic message so details never reach the client.
func Fail(c *gin.Context, err error) {
	status := apperrors.Status(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "something went wrong"
	}
	c.JSON(status, ErrorEnvelope{
		StatusCode: status,
		Data:       nil,
		Message:    message,
		Success:    false,
		Errors:     []string{},
	})
}

// Abort writes the error envelope and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}
