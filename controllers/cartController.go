package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sweetdelights/pastry-shop/initializers"
)

// AddToCart adds a quantity of one pastry to the session cart and bounces
// back to wherever the form was submitted from.
func AddToCart(ctx *gin.Context) {
	session := getSession(ctx)

	redirectTarget := ctx.Request.Referer()
	if redirectTarget == "" {
		redirectTarget = "/browse"
	}

	pastryID := ctx.PostForm("pastry_id")
	quantity, err := strconv.Atoi(ctx.PostForm("quantity"))
	if pastryID == "" || err != nil || quantity <= 0 {
		addFlash(ctx, session, "error", msgInvalidQuantity)
		ctx.Redirect(http.StatusFound, redirectTarget)
		return
	}

	cart := getCart(session)
	cart.Add(pastryID, quantity)
	session.Values[cartSessionKey] = cart
	addFlash(ctx, session, "success", msgItemAdded)

	ctx.Redirect(http.StatusFound, redirectTarget)
}

// ShowCart renders the current cart contents with the computed total.
func ShowCart(ctx *gin.Context) {
	session := getSession(ctx)
	cart := getCart(session)

	lines, subtotal, err := materializeCart(initializers.DB, cart)
	if err != nil {
		ctx.String(http.StatusInternalServerError, "Unable to load the catalog.")
		return
	}
	flashesSuccess, flashesError := popFlashes(ctx, session)

	ctx.HTML(http.StatusOK, "cart.html", gin.H{
		"Items":          lines,
		"Total":          subtotal,
		"DeliveryFee":    initializers.AppConfig.DeliveryFee,
		"CartItemCount":  cart.TotalQuantity(),
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}

// UpdateCart sets an absolute quantity for one entry; zero or less removes it.
func UpdateCart(ctx *gin.Context) {
	session := getSession(ctx)

	pastryID := ctx.PostForm("pastry_id")
	quantity, err := strconv.Atoi(ctx.PostForm("quantity"))
	if pastryID == "" || err != nil {
		addFlash(ctx, session, "error", msgInvalidQuantity)
		ctx.Redirect(http.StatusFound, "/cart")
		return
	}

	cart := getCart(session)
	cart.SetQuantity(pastryID, quantity)
	session.Values[cartSessionKey] = cart
	saveSession(ctx, session)

	ctx.Redirect(http.StatusFound, "/cart")
}

// RemoveFromCart drops one line from the cart. Removing a line that is not
// there is fine.
func RemoveFromCart(ctx *gin.Context) {
	session := getSession(ctx)

	cart := getCart(session)
	cart.Remove(ctx.Param("id"))
	session.Values[cartSessionKey] = cart
	saveSession(ctx, session)

	ctx.Redirect(http.StatusFound, "/cart")
}
