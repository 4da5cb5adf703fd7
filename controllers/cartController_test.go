package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetdelights/pastry-shop/initializers"
	"github.com/sweetdelights/pastry-shop/models"
)

func TestAddToCartAndViewCart(t *testing.T) {
	router := setupApp(t)
	pastry := seedPastry(t, "Chocolate Croissant", 3.50, "Croissants", true)
	client := newTestClient(router)

	recorder := client.postForm(t, "/add_to_cart", url.Values{
		"pastry_id": {pastryIDString(pastry)},
		"quantity":  {"2"},
	})
	require.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/browse", recorder.Header().Get("Location"))

	recorder = client.get(t, "/cart")
	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Chocolate Croissant")
	assert.Contains(t, body, "$7.00")
	assert.Contains(t, body, "Cart (2)")
}

func TestAddToCartRejectsMalformedQuantity(t *testing.T) {
	router := setupApp(t)
	pastry := seedPastry(t, "Chocolate Croissant", 3.50, "Croissants", true)
	client := newTestClient(router)

	for _, quantity := range []string{"two", "", "0", "-1"} {
		recorder := client.postForm(t, "/add_to_cart", url.Values{
			"pastry_id": {pastryIDString(pastry)},
			"quantity":  {quantity},
		})
		assert.Equal(t, http.StatusFound, recorder.Code)
	}

	recorder := client.get(t, "/cart")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Your cart is empty")
}

func TestUpdateCartSetsAbsoluteQuantityAndRemovesAtZero(t *testing.T) {
	router := setupApp(t)
	pastry := seedPastry(t, "Cinnamon Roll", 3.00, "Rolls", true)
	client := newTestClient(router)

	client.postForm(t, "/add_to_cart", url.Values{
		"pastry_id": {pastryIDString(pastry)},
		"quantity":  {"5"},
	})

	recorder := client.postForm(t, "/update_cart", url.Values{
		"pastry_id": {pastryIDString(pastry)},
		"quantity":  {"2"},
	})
	require.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/cart", recorder.Header().Get("Location"))

	recorder = client.get(t, "/cart")
	assert.Contains(t, recorder.Body.String(), "$6.00")

	// Setting zero is the same as removing the line.
	client.postForm(t, "/update_cart", url.Values{
		"pastry_id": {pastryIDString(pastry)},
		"quantity":  {"0"},
	})
	recorder = client.get(t, "/cart")
	assert.Contains(t, recorder.Body.String(), "Your cart is empty")
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	router := setupApp(t)
	pastry := seedPastry(t, "Apple Danish", 4.25, "Danish", true)
	client := newTestClient(router)

	client.postForm(t, "/add_to_cart", url.Values{
		"pastry_id": {pastryIDString(pastry)},
		"quantity":  {"1"},
	})

	for i := 0; i < 2; i++ {
		recorder := client.get(t, "/remove_from_cart/"+pastryIDString(pastry))
		require.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "/cart", recorder.Header().Get("Location"))
	}

	recorder := client.get(t, "/cart")
	assert.Contains(t, recorder.Body.String(), "Your cart is empty")
}

func TestShowCartFailsWhenCatalogUnavailable(t *testing.T) {
	router := setupApp(t)
	pastry := seedPastry(t, "Lemon Eclair", 3.75, "Eclairs", true)
	client := newTestClient(router)

	client.postForm(t, "/add_to_cart", url.Values{"pastry_id": {pastryIDString(pastry)}, "quantity": {"1"}})

	// A broken catalog store is a server error, not an empty cart.
	require.NoError(t, initializers.DB.Migrator().DropTable(&models.Pastry{}))

	recorder := client.get(t, "/cart")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestCartSilentlyDropsUnavailableItems(t *testing.T) {
	router := setupApp(t)
	kept := seedPastry(t, "Lemon Eclair", 3.75, "Eclairs", true)
	dropped := seedPastry(t, "Discontinued Donut", 2.00, "Donuts", true)
	client := newTestClient(router)

	client.postForm(t, "/add_to_cart", url.Values{"pastry_id": {pastryIDString(kept)}, "quantity": {"1"}})
	client.postForm(t, "/add_to_cart", url.Values{"pastry_id": {pastryIDString(dropped)}, "quantity": {"1"}})

	require.NoError(t, initializers.DB.Model(&dropped).Update("available", false).Error)

	recorder := client.get(t, "/cart")
	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Lemon Eclair")
	assert.NotContains(t, body, "Discontinued Donut")
	assert.Contains(t, body, "$3.75")
}
