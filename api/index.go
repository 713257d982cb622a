package handler

import (
	"log"
	"net/http"
	"sync"

	"github.com/amirasaad/accountowner/infra/initializer"
	"github.com/amirasaad/accountowner/pkg/app"
	"github.com/amirasaad/accountowner/pkg/config"
	"github.com/amirasaad/accountowner/webapi"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

var (
	once   sync.Once
	served http.HandlerFunc
)

// Handler is the main entry point of the application.
// Think of it like the main() method
func Handler(w http.ResponseWriter, r *http.Request) {
	// This is needed to set the proper request path in `*fiber.Ctx`
	r.RequestURI = r.URL.String()

	once.Do(func() { served = handler() })
	served.ServeHTTP(w, r)
}

// building the fiber application once per warm instance
func handler() http.HandlerFunc {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load application configuration: %v", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	return adaptor.FiberApp(webapi.SetupApp(app.New(deps, cfg)))
}
