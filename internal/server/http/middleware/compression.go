package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxBodyBytes caps the decompressed size of a request body.
const maxBodyBytes = 1 << 20

// DecompressRequest transparently handles gzip encoded requests.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
			c.Next()
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed gzip body"})
			return
		}
		defer reader.Close()
		defer originalBody.Close()

		c.Request.Body = http.MaxBytesReader(c.Writer, io.NopCloser(reader), maxBodyBytes)
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}
