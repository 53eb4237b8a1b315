package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/guildhall/backend-go/internal/handler"
	"github.com/guildhall/backend-go/internal/middleware"
)

func SetupRouter(
	characterHandler *handler.CharacterHandler,
	employeeHandler *handler.EmployeeHandler,
	allowedOrigins []string,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(allowedOrigins))

	// Public routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	characters := r.Group("/api/characters")
	{
		characters.GET("", characterHandler.ListCharacters)
		characters.GET("/:id", characterHandler.GetCharacter)
		characters.POST("", characterHandler.CreateCharacter)
		characters.PUT("/:id", characterHandler.UpdateCharacter)
		characters.DELETE("/:id", characterHandler.DeleteCharacter)
	}

	employees := r.Group("/api/employees")
	{
		employees.GET("", employeeHandler.ListEmployees)
		employees.GET("/:id", employeeHandler.GetEmployee)
		employees.POST("", employeeHandler.CreateEmployee)
		employees.PUT("/:id", employeeHandler.UpdateEmployee)
		employees.DELETE("/:id", employeeHandler.DeleteEmployee)
	}

	return r
}
