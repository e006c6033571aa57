package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adrienb3106/fridgey-backend/db"
	"github.com/adrienb3106/fridgey-backend/models"
)

// UserRoutes sets up the routes for user-related operations
func UserRoutes(router *gin.Engine) {
	userRoutes := router.Group("/users")
	{
		userRoutes.POST("/", CreateUser())
		userRoutes.GET("/", GetAllUsers())
		userRoutes.GET("/:user_id", GetUser())
		userRoutes.DELETE("/:user_id", DeleteUser())
	}
}

// CreateUser handles the creation of a new user
func CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name  string `json:"name" binding:"required"`
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		DB := db.GetDB()

		// Duplicate email check before writing anything
		var count int64
		if result := DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email: " + result.Error.Error()})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
			return
		}

		user := models.User{Name: input.Name, Email: input.Email}
		if result := DB.Create(&user); result.Error != nil {
			if result.Error == gorm.ErrDuplicatedKey {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user: " + result.Error.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// GetUser retrieves a user by ID, including group memberships
func GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		var user models.User

		DB := db.GetDB()
		if result := DB.Preload("Groups.Group").First(&user, userID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user: " + result.Error.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// GetAllUsers retrieves all users
func GetAllUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User

		DB := db.GetDB()
		if result := DB.Preload("Groups.Group").Find(&users); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

// DeleteUser handles the deletion of a user. Deletion is blocked while
// the user still has group memberships or owned stocks.
func DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		var user models.User

		DB := db.GetDB()
		if result := DB.First(&user, userID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user: " + result.Error.Error()})
			}
			return
		}

		var linkCount int64
		if result := DB.Model(&models.UserGroup{}).Where("user_id = ?", user.ID).Count(&linkCount); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check memberships: " + result.Error.Error()})
			return
		}
		var stockCount int64
		if result := DB.Model(&models.Stock{}).Where("user_id = ?", user.ID).Count(&stockCount); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check stocks: " + result.Error.Error()})
			return
		}
		if linkCount > 0 || stockCount > 0 {
			reasons := make([]string, 0, 2)
			if linkCount > 0 {
				reasons = append(reasons, "group memberships")
			}
			if stockCount > 0 {
				reasons = append(reasons, "owned stocks")
			}
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete user with " + strings.Join(reasons, " and ")})
			return
		}

		if result := DB.Delete(&user); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
