package handlers

import (
	"net/http"

	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests for the declared category list.
type categoryHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newCategoryHandler(ps portssvc.ProfileSvcFacade) *categoryHandler {
	return &categoryHandler{profileService: ps}
}

// registerCategoryRoutes registers routes related to categories. The reorder
// operation is the bare PUT on the collection; named PUT/DELETE act on one
// category.
func registerCategoryRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newCategoryHandler(profileService)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.PUT("", h.reorderCategories)
		categories.PUT("/:name", h.renameCategory)
		categories.DELETE("/:name", h.removeCategory)
	}
}

// listCategories godoc
// @Summary List declared categories
// @Description Returns the user-ordered category list.
// @Tags categories
// @Produce json
// @Success 200 {array} string
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to load categories")
		return
	}
	c.JSON(http.StatusOK, profile.Categories)
}

// createCategory godoc
// @Summary Declare a new category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category name"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid name"
// @Failure 409 {object} ErrorResponse "Name already declared"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.AddCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, err, "Failed to add category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

// renameCategory godoc
// @Summary Rename a category
// @Description Renames a declared category and moves its budget limit. Existing transactions keep their stored category.
// @Tags categories
// @Accept json
// @Produce json
// @Param name path string true "Current name"
// @Param rename body dto.RenameCategoryRequest true "New name"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Category not declared"
// @Security BearerAuth
// @Router /categories/{name} [put]
func (h *categoryHandler) renameCategory(c *gin.Context) {
	var req dto.RenameCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.RenameCategory(c.Request.Context(), c.Param("name"), req.NewName)
	if err != nil {
		respondServiceError(c, err, "Failed to rename category")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// removeCategory godoc
// @Summary Remove a category
// @Description Removes a declared category. Transactions tagged with it keep the tag and fall back to "Other" at display time.
// @Tags categories
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} ErrorResponse "Category not declared"
// @Security BearerAuth
// @Router /categories/{name} [delete]
func (h *categoryHandler) removeCategory(c *gin.Context) {
	profile, err := h.profileService.RemoveCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err, "Failed to remove category")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// reorderCategories godoc
// @Summary Reorder categories
// @Description Replaces the category order. The submitted list must be a permutation of the declared categories.
// @Tags categories
// @Accept json
// @Produce json
// @Param order body dto.ReorderCategoriesRequest true "Full list in new order"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse "Not a permutation"
// @Security BearerAuth
// @Router /categories [put]
func (h *categoryHandler) reorderCategories(c *gin.Context) {
	var req dto.ReorderCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.ReorderCategories(c.Request.Context(), req.Categories)
	if err != nil {
		respondServiceError(c, err, "Failed to reorder categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
