package controller

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var static embed.FS

// RegisterUI serves the single-page dashboard at /.
func RegisterUI(r *gin.Engine) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		panic(err)
	}
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
}
