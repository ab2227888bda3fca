package api

import (
	"sync"

	"github.com/banachtech/randexp/bs"
	"github.com/gin-gonic/gin"
)

// Server serves HTTP requests for the option pricing service.
type Server struct {
	router  *gin.Engine
	engines sync.Pool
}

// NewServer creates a new HTTP server and set up routing.
func NewServer() *Server {
	server := &Server{}
	server.engines.New = func() any { return bs.New() }
	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	router.POST("/api/calculate", server.calculate)
	router.POST("/api/calculate/batch", server.calculateBatch)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// engine checks an engine out of the pool. The quadrature table cache is not
// safe to share, so each in-flight request holds its engine exclusively and
// returns it when the handler finishes.
func (server *Server) engine() *bs.Engine {
	return server.engines.Get().(*bs.Engine)
}

func (server *Server) release(e *bs.Engine) {
	server.engines.Put(e)
}

func successResponse(data any) gin.H {
	return gin.H{"success": true, "data": data}
}

func errorResponse(msg string, statusCode int) gin.H {
	return gin.H{"success": false, "error": msg, "status_code": statusCode}
}
