package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adrienb3106/fridgey-backend/db"
	"github.com/adrienb3106/fridgey-backend/models"
)

// GroupRoutes sets up the routes for group-related operations,
// including the user-group membership links
func GroupRoutes(router *gin.Engine) {
	groupRoutes := router.Group("/groups")
	{
		groupRoutes.POST("/", CreateGroup())
		groupRoutes.GET("/", GetAllGroups())
		groupRoutes.GET("/:group_id", GetGroup())
		groupRoutes.DELETE("/:group_id", DeleteGroup())
		groupRoutes.POST("/add_user", AddUserToGroup())
		groupRoutes.GET("/:group_id/users", GetGroupUsers())
		groupRoutes.DELETE("/:group_id/users/:user_id", RemoveUserFromGroup())
	}
}

// CreateGroup handles the creation of a new group
func CreateGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		group := models.Group{Name: input.Name}
		DB := db.GetDB()
		if result := DB.Create(&group); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"group": group})
	}
}

// GetGroup retrieves a group by ID
func GetGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID := c.Param("group_id")
		var group models.Group

		DB := db.GetDB()
		if result := DB.First(&group, groupID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve group: " + result.Error.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"group": group})
	}
}

// GetAllGroups retrieves all groups
func GetAllGroups() gin.HandlerFunc {
	return func(c *gin.Context) {
		var groups []models.Group

		DB := db.GetDB()
		if result := DB.Find(&groups); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve groups: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"groups": groups})
	}
}

// DeleteGroup handles the deletion of a group. Deletion is blocked
// while the group still has members.
func DeleteGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID := c.Param("group_id")
		var group models.Group

		DB := db.GetDB()
		if result := DB.First(&group, groupID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve group: " + result.Error.Error()})
			}
			return
		}

		var linkCount int64
		if result := DB.Model(&models.UserGroup{}).Where("group_id = ?", group.ID).Count(&linkCount); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check memberships: " + result.Error.Error()})
			return
		}
		if linkCount > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete group with members"})
			return
		}

		if result := DB.Delete(&group); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete group: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
	}
}

// AddUserToGroup creates a membership link between a user and a group,
// carrying an optional role. At most one link per (user, group) pair.
func AddUserToGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserID  uint   `json:"user_id" binding:"required"`
			GroupID uint   `json:"group_id" binding:"required"`
			Role    string `json:"role"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		DB := db.GetDB()

		var user models.User
		if result := DB.First(&user, input.UserID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user: " + result.Error.Error()})
			}
			return
		}
		var group models.Group
		if result := DB.First(&group, input.GroupID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve group: " + result.Error.Error()})
			}
			return
		}

		var existing models.UserGroup
		result := DB.Where("user_id = ? AND group_id = ?", input.UserID, input.GroupID).First(&existing)
		if result.Error == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already in this group"})
			return
		}
		if result.Error != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check membership: " + result.Error.Error()})
			return
		}

		link := models.UserGroup{UserID: input.UserID, GroupID: input.GroupID, Role: input.Role}
		if result := DB.Create(&link); result.Error != nil {
			switch result.Error {
			case gorm.ErrDuplicatedKey:
				c.JSON(http.StatusBadRequest, gin.H{"error": "User already in this group"})
			case gorm.ErrForeignKeyViolated:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership reference: " + result.Error.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add user to group: " + result.Error.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"user_group": link})
	}
}

// GetGroupUsers lists the users belonging to a group
func GetGroupUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID := c.Param("group_id")
		var group models.Group

		DB := db.GetDB()
		if result := DB.First(&group, groupID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve group: " + result.Error.Error()})
			}
			return
		}

		var users []models.User
		result := DB.
			Joins("JOIN user_groups ON user_groups.user_id = users.id").
			Where("user_groups.group_id = ?", group.ID).
			Find(&users)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve members: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

// RemoveUserFromGroup deletes a membership link
func RemoveUserFromGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID := c.Param("group_id")
		userID := c.Param("user_id")

		DB := db.GetDB()
		var link models.UserGroup
		result := DB.Where("group_id = ? AND user_id = ?", groupID, userID).First(&link)
		if result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Membership not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve membership: " + result.Error.Error()})
			}
			return
		}

		if result := DB.Delete(&link); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove user from group: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User removed from group"})
	}
}
