package main

import (
	_ "giro_backoffice/docs"
	"giro_backoffice/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Giro Capital Back-office API
// @version         1.0
// @description     Back-office for credit operations (dashboard, listing, registration and Galleria Bank forwarding).

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	routes.Run()
}
