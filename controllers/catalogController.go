package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sweetdelights/pastry-shop/initializers"
	"github.com/sweetdelights/pastry-shop/models"
)

// GetHome renders the landing page with the first six available pastries.
func GetHome(ctx *gin.Context) {
	var featured []models.Pastry
	if err := initializers.DB.Where("available = ?", true).Limit(6).Find(&featured).Error; err != nil {
		ctx.String(http.StatusInternalServerError, "Unable to load the catalog.")
		return
	}

	session := getSession(ctx)
	flashesSuccess, flashesError := popFlashes(ctx, session)

	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"Pastries":       featured,
		"CartItemCount":  getCart(session).TotalQuantity(),
		"CompanyEmail":   initializers.AppConfig.CompanyEmail,
		"CompanyPhone":   initializers.AppConfig.CompanyPhone,
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}

// BrowsePastries lists available pastries, optionally narrowed by an exact
// category and a case-insensitive name substring.
func BrowsePastries(ctx *gin.Context) {
	category := ctx.Query("category")
	search := ctx.Query("search")

	query := initializers.DB.Where("available = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var pastries []models.Pastry
	if err := query.Find(&pastries).Error; err != nil {
		ctx.String(http.StatusInternalServerError, "Unable to load the catalog.")
		return
	}

	// Categories come from the whole table, unavailable pastries included.
	var categories []string
	if err := initializers.DB.Model(&models.Pastry{}).
		Distinct().
		Where("category <> ''").
		Pluck("category", &categories).Error; err != nil {
		ctx.String(http.StatusInternalServerError, "Unable to load the catalog.")
		return
	}

	session := getSession(ctx)
	flashesSuccess, flashesError := popFlashes(ctx, session)

	ctx.HTML(http.StatusOK, "browse.html", gin.H{
		"Pastries":        pastries,
		"Categories":      categories,
		"CurrentCategory": category,
		"SearchTerm":      search,
		"CartItemCount":   getCart(session).TotalQuantity(),
		"FlashesSuccess":  flashesSuccess,
		"FlashesError":    flashesError,
	})
}

// GetPastry renders the detail page for one pastry, 404 on an unknown id.
func GetPastry(ctx *gin.Context) {
	pastryID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.String(http.StatusNotFound, "Pastry not found.")
		return
	}

	var pastry models.Pastry
	if err := initializers.DB.First(&pastry, pastryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.String(http.StatusNotFound, "Pastry not found.")
		} else {
			ctx.String(http.StatusInternalServerError, "Unable to retrieve pastry.")
		}
		return
	}

	session := getSession(ctx)
	ctx.HTML(http.StatusOK, "pastry_detail.html", gin.H{
		"Pastry":        pastry,
		"CartItemCount": getCart(session).TotalQuantity(),
	})
}

// ListPastriesAPI returns the available catalog as JSON.
func ListPastriesAPI(ctx *gin.Context) {
	var pastries []models.Pastry
	if err := initializers.DB.Where("available = ?", true).Find(&pastries).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to fetch pastries"})
		return
	}

	response := make([]gin.H, 0, len(pastries))
	for _, pastry := range pastries {
		response = append(response, gin.H{
			"id":          pastry.ID,
			"name":        pastry.Name,
			"description": pastry.Description,
			"price":       pastry.Price,
			"image_url":   pastry.ImageURL,
			"category":    pastry.Category,
		})
	}

	ctx.JSON(http.StatusOK, response)
}
