package response

import "github.com/gin-gonic/gin"

var (
	ParamError = gin.H{"error": "Image and prompt are required"}

	APIKeyNotConfigured = gin.H{"error": "OpenAI API key not configured"}

	GenerateFailed = gin.H{"error": "Failed to generate edited image"}

	InternalError = gin.H{"error": "Failed to edit image. Please try again."}

	NotFound = gin.H{"error": "not found"}
)
