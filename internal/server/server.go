package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/services"
)

// Server is the HTTP boundary around the conversion pipeline.
type Server struct {
	converter *services.Converter
}

// New creates the server around a ready converter.
func New(converter *services.Converter) *Server {
	return &Server{converter: converter}
}

// Router builds the gin engine with CORS and all routes registered.
// origins follows the CORS allow-list; a single "*" opens it wide.
func (s *Server) Router(origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/", s.handleIndex)
	r.POST("/api/v1/pdf-to-html/", s.handleConvert)
	return r
}
