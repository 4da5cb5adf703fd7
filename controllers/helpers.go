package controllers

import (
	"log"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"

	"github.com/sweetdelights/pastry-shop/initializers"
	"github.com/sweetdelights/pastry-shop/models"
)

const (
	cartSessionKey = "cart"

	// Standard user-facing messages
	msgItemAdded       = "Item added to cart!"
	msgInvalidQuantity = "Please enter a valid quantity."
	msgCartEmpty       = "Your cart is empty!"
	msgOrderPlaced     = "Order placed successfully!"
	msgOrderFailed     = "Error placing order. Please try again."
)

func getSession(ctx *gin.Context) *sessions.Session {
	session, err := initializers.SessionStore.Get(ctx.Request, initializers.SessionName)
	if err != nil {
		log.Println("Session decode error, starting a fresh session:", err)
	}
	return session
}

func getCart(session *sessions.Session) models.Cart {
	if cart, ok := session.Values[cartSessionKey].(models.Cart); ok {
		return cart
	}
	return models.Cart{}
}

func saveSession(ctx *gin.Context, session *sessions.Session) {
	if err := session.Save(ctx.Request, ctx.Writer); err != nil {
		log.Println("Failed to save session:", err)
	}
}

func addFlash(ctx *gin.Context, session *sessions.Session, kind, message string) {
	session.AddFlash(message, kind)
	saveSession(ctx, session)
}

// popFlashes drains both flash queues and persists the session so each
// message renders exactly once.
func popFlashes(ctx *gin.Context, session *sessions.Session) (success, failure []interface{}) {
	success = session.Flashes("success")
	failure = session.Flashes("error")
	saveSession(ctx, session)
	return success, failure
}

// CartLine is one materialized cart entry ready for display or persistence.
type CartLine struct {
	Pastry    models.Pastry
	Quantity  int
	LineTotal float64
}

// materializeCart resolves cart entries against the current catalog. Entries
// whose pastry is missing or unavailable are dropped without error; the
// subtotal covers only the lines that resolved. A failing catalog query is a
// real error, not an empty cart.
func materializeCart(db *gorm.DB, cart models.Cart) ([]CartLine, float64, error) {
	if len(cart) == 0 {
		return []CartLine{}, 0, nil
	}

	ids := make([]uint, 0, len(cart))
	for key := range cart {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	var pastries []models.Pastry
	if err := db.Where("id IN ? AND available = ?", ids, true).Find(&pastries).Error; err != nil {
		return nil, 0, err
	}

	byID := make(map[uint]models.Pastry, len(pastries))
	for _, pastry := range pastries {
		byID[pastry.ID] = pastry
	}

	lines := make([]CartLine, 0, len(cart))
	var subtotal float64
	for key, quantity := range cart {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			continue
		}
		pastry, found := byID[uint(id)]
		if !found {
			continue
		}
		lineTotal := pastry.Price * float64(quantity)
		lines = append(lines, CartLine{Pastry: pastry, Quantity: quantity, LineTotal: lineTotal})
		subtotal += lineTotal
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Pastry.Name < lines[j].Pastry.Name
	})

	return lines, subtotal, nil
}
