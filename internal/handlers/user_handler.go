package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/httpresp"
	"github.com/lumina-beauty/booking-api/internal/models"
)

// UserHandler is the admin view over client accounts. PasswordHash never
// serializes, the model tag guarantees that.
type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// List returns every account, ?q= filters by name or email.
func (h *UserHandler) List(c *gin.Context) {
	q := h.db.Model(&models.User{})

	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	var users []models.User
	if err := q.Order("name ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "user_list_failed", "Could not list users.")
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "User id must be numeric.")
		return
	}

	var user models.User
	if err := h.db.First(&user, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "User not found.")
			return
		}
		httperr.Internal(c, "user_get_failed", "Could not load user.")
		return
	}

	httpresp.OK(c, user)
}
