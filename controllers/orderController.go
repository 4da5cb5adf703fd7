package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sweetdelights/pastry-shop/initializers"
	"github.com/sweetdelights/pastry-shop/models"
)

const deliveryDateLayout = "2006-01-02"

// ShowCheckout renders the cart review page with delivery date choices for
// the next 14 calendar days. An empty cart goes back to browsing.
func ShowCheckout(ctx *gin.Context) {
	session := getSession(ctx)
	cart := getCart(session)

	if len(cart) == 0 {
		addFlash(ctx, session, "error", msgCartEmpty)
		ctx.Redirect(http.StatusFound, "/browse")
		return
	}

	lines, subtotal, err := materializeCart(initializers.DB, cart)
	if err != nil {
		ctx.String(http.StatusInternalServerError, "Unable to load the catalog.")
		return
	}

	deliveryDates := make([]string, 0, 14)
	for i := 1; i <= 14; i++ {
		deliveryDates = append(deliveryDates, time.Now().AddDate(0, 0, i).Format(deliveryDateLayout))
	}

	flashesSuccess, flashesError := popFlashes(ctx, session)

	ctx.HTML(http.StatusOK, "checkout.html", gin.H{
		"Items":          lines,
		"Total":          subtotal,
		"DeliveryFee":    initializers.AppConfig.DeliveryFee,
		"GrandTotal":     subtotal + initializers.AppConfig.DeliveryFee,
		"DeliveryDates":  deliveryDates,
		"CartItemCount":  cart.TotalQuantity(),
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}

// findOrCreateCustomer looks a customer up by exact email and creates the row
// on first order. An existing row is reused as-is; the submitted name and
// phone never overwrite it. A duplicate-key failure from a concurrent first
// order is resolved by looking the winner up once.
func findOrCreateCustomer(tx *gorm.DB, form models.OrderForm) (models.Customer, error) {
	var customer models.Customer
	err := tx.Where("email = ?", form.Email).First(&customer).Error
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return customer, err
	}

	customer = models.Customer{Name: form.Name, Email: form.Email, Phone: form.Phone}
	if createErr := tx.Create(&customer).Error; createErr != nil {
		var existing models.Customer
		if lookupErr := tx.Where("email = ?", form.Email).First(&existing).Error; lookupErr == nil {
			return existing, nil
		}
		return customer, createErr
	}
	return customer, nil
}

// PlaceOrder converts the session cart plus the delivery form into a
// Customer, an Order and its OrderItems, all inside one transaction. Any
// failure rolls the whole attempt back and reports one generic message.
func PlaceOrder(ctx *gin.Context) {
	session := getSession(ctx)
	cart := getCart(session)

	if len(cart) == 0 {
		addFlash(ctx, session, "error", msgCartEmpty)
		ctx.Redirect(http.StatusFound, "/checkout")
		return
	}

	var form models.OrderForm
	if err := ctx.ShouldBind(&form); err != nil {
		log.Println("Order form rejected:", err)
		addFlash(ctx, session, "error", msgOrderFailed)
		ctx.Redirect(http.StatusFound, "/checkout")
		return
	}

	deliveryDate, err := time.Parse(deliveryDateLayout, form.DeliveryDate)
	if err != nil {
		log.Println("Invalid delivery date:", err)
		addFlash(ctx, session, "error", msgOrderFailed)
		ctx.Redirect(http.StatusFound, "/checkout")
		return
	}

	var order models.Order
	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		customer, txErr := findOrCreateCustomer(tx, form)
		if txErr != nil {
			return txErr
		}

		// Prices are resolved at commit time, not add-to-cart time. Entries
		// whose pastry vanished or went unavailable are skipped silently,
		// but a failing catalog read fails the whole transaction.
		lines, subtotal, txErr := materializeCart(tx, cart)
		if txErr != nil {
			return txErr
		}

		order = models.Order{
			OrderNumber:         uuid.NewString(),
			CustomerID:          customer.ID,
			TotalAmount:         subtotal + initializers.AppConfig.DeliveryFee,
			DeliveryDate:        datatypes.Date(deliveryDate),
			DeliveryAddress:     form.Address,
			DeliveryCity:        form.City,
			DeliveryPostalCode:  form.PostalCode,
			Status:              models.OrderStatusPending,
			PaymentStatus:       models.PaymentStatusPending,
			SpecialInstructions: form.SpecialInstructions,
		}
		if txErr := tx.Create(&order).Error; txErr != nil {
			return txErr
		}

		for _, line := range lines {
			item := models.OrderItem{
				OrderID:   order.ID,
				PastryID:  line.Pastry.ID,
				Quantity:  line.Quantity,
				UnitPrice: line.Pastry.Price,
			}
			if txErr := tx.Create(&item).Error; txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		log.Println("Order placement failed:", err)
		addFlash(ctx, session, "error", msgOrderFailed)
		ctx.Redirect(http.StatusFound, "/checkout")
		return
	}

	delete(session.Values, cartSessionKey)
	addFlash(ctx, session, "success", msgOrderPlaced)
	ctx.Redirect(http.StatusFound, "/order/"+order.OrderNumber)
}

// ShowOrderConfirmation renders the confirmation page for one order number.
func ShowOrderConfirmation(ctx *gin.Context) {
	orderNumber := ctx.Param("orderNumber")

	var order models.Order
	err := initializers.DB.
		Preload("Items").
		Preload("Items.Pastry").
		Preload("Customer").
		Where("order_number = ?", orderNumber).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.String(http.StatusNotFound, "Order not found.")
		} else {
			ctx.String(http.StatusInternalServerError, "Unable to retrieve order.")
		}
		return
	}

	session := getSession(ctx)
	flashesSuccess, flashesError := popFlashes(ctx, session)

	ctx.HTML(http.StatusOK, "order_confirmation.html", gin.H{
		"Order":          order,
		"DeliveryFee":    initializers.AppConfig.DeliveryFee,
		"CompanyEmail":   initializers.AppConfig.CompanyEmail,
		"CompanyPhone":   initializers.AppConfig.CompanyPhone,
		"CartItemCount":  getCart(session).TotalQuantity(),
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}
