package validation

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateUser rejects malformed registration bodies before the handler runs.
func CreateUser() gin.HandlerFunc { return middlewareFor(CheckCreateUser) }

// Login rejects malformed login bodies.
func Login() gin.HandlerFunc { return middlewareFor(CheckLogin) }

// Logout rejects logout bodies missing the numeric id or the token.
func Logout() gin.HandlerFunc { return middlewareFor(CheckSession) }

// RefreshToken rejects refresh bodies missing the numeric id or the token.
func RefreshToken() gin.HandlerFunc { return middlewareFor(CheckSession) }

// UpdateUser rejects partial update bodies with an absent id or an invalid
// optional field.
func UpdateUser() gin.HandlerFunc { return middlewareFor(CheckUpdateUser) }

// DeleteUser rejects delete bodies missing the numeric id.
func DeleteUser() gin.HandlerFunc { return middlewareFor(CheckDeleteUser) }

func middlewareFor(check func([]byte) *Error) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			log.Println("[VALIDATE] [ERROR] read body failed:", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, &Error{
				StatusCode: http.StatusBadRequest,
				Message:    "invalid request body",
			})
			return
		}

		// The handler binds the same body again.
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		if verr := check(body); verr != nil {
			log.Println("[VALIDATE] [ERROR]", verr.Message)
			c.AbortWithStatusJSON(http.StatusBadRequest, verr)
			return
		}
		c.Next()
	}
}
