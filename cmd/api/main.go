package main

import (
	_ "geoquote/docs"
	"geoquote/internal/adapter/http/routes"
	"geoquote/pkg/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           GeoQuote API
// @version         1.0
// @description     Geometry-to-quote pipeline: map drawing sessions, spherical measurement and bid assembly.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logging.Setup()
	routes.Run()
}
