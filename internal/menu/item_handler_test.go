package menu_test

import (
	"net/http"
	"strconv"
	"testing"

	"menu-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itoa(id float64) string {
	return strconv.Itoa(int(id))
}

func TestCreateItemAndCombinedSnapshot(t *testing.T) {
	app, _ := testutil.NewTestApp(t)
	token := testutil.RegisterAndLogin(t, app, "alice", "secret-pass")

	code, body := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/restaurants",
		map[string]any{"name": "Padoca", "slug": "padoca"}, token))
	require.Equal(t, http.StatusOK, code)
	restaurantID := body["created restaurant"].(map[string]any)["id"].(float64)

	code, body = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost,
		"/restaurants/"+itoa(restaurantID)+"/items",
		map[string]any{"name": "Pao", "price": "10.00", "categories": []string{"sem gluten"}}, token))
	require.Equal(t, http.StatusOK, code)
	created := body["created item"].(map[string]any)
	assert.Equal(t, "Pao", created["name"])
	assert.Equal(t, "10.00", created["price"])
	assert.Equal(t, restaurantID, created["restaurantId"])

	// Both show up in the combined snapshot.
	code, body = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api", nil, ""))
	require.Equal(t, http.StatusOK, code)

	restaurants := body["Restaurants"].([]any)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "padoca", restaurants[0].(map[string]any)["slug"])

	items := body["Items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Pao", items[0].(map[string]any)["name"])
}

func TestCreateItemUnderUnknownRestaurant(t *testing.T) {
	app, _ := testutil.NewTestApp(t)
	token := testutil.RegisterAndLogin(t, app, "alice", "secret-pass")

	code, body := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost,
		"/restaurants/4242/items", map[string]any{"name": "Orphan"}, token))
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, false, body["success"])
}

func TestUpdateItemRoundTripIsIdempotent(t *testing.T) {
	app, _ := testutil.NewTestApp(t)
	token := testutil.RegisterAndLogin(t, app, "alice", "secret-pass")

	code, body := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/restaurants",
		map[string]any{"name": "Padoca", "slug": "padoca"}, token))
	require.Equal(t, http.StatusOK, code)
	restaurantID := body["created restaurant"].(map[string]any)["id"].(float64)

	code, body = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost,
		"/restaurants/"+itoa(restaurantID)+"/items",
		map[string]any{"section": "Paes", "name": "Pao", "price": "10.00", "categories": []string{"vegetariano"}}, token))
	require.Equal(t, http.StatusOK, code)
	created := body["created item"].(map[string]any)
	itemID := created["id"].(float64)

	code, body = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch,
		"/items/"+itoa(itemID), created, token))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, created, body["updated item"])
}

func TestPatchItemPreservesOmittedFields(t *testing.T) {
	app, _ := testutil.NewTestApp(t)
	token := testutil.RegisterAndLogin(t, app, "alice", "secret-pass")

	code, body := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/restaurants",
		map[string]any{"name": "Padoca", "slug": "padoca"}, token))
	require.Equal(t, http.StatusOK, code)
	restaurantID := body["created restaurant"].(map[string]any)["id"].(float64)

	code, body = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost,
		"/restaurants/"+itoa(restaurantID)+"/items",
		map[string]any{"section": "Paes", "name": "Pao", "price": "10.00"}, token))
	require.Equal(t, http.StatusOK, code)
	itemID := body["created item"].(map[string]any)["id"].(float64)

	code, body = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch,
		"/items/"+itoa(itemID), map[string]any{"price": "12.00"}, token))
	require.Equal(t, http.StatusOK, code)

	updated := body["updated item"].(map[string]any)
	assert.Equal(t, "12.00", updated["price"])
	assert.Equal(t, "Pao", updated["name"])
	assert.Equal(t, "Paes", updated["section"])
}

func TestPatchUnknownItemIs404(t *testing.T) {
	app, _ := testutil.NewTestApp(t)
	token := testutil.RegisterAndLogin(t, app, "alice", "secret-pass")

	code, _ := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, "/items/4242",
		map[string]any{"price": "12.00"}, token))
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDeleteItemTwice(t *testing.T) {
	app, _ := testutil.NewTestApp(t)
	token := testutil.RegisterAndLogin(t, app, "alice", "secret-pass")

	code, body := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/restaurants",
		map[string]any{"name": "Padoca", "slug": "padoca"}, token))
	require.Equal(t, http.StatusOK, code)
	restaurantID := body["created restaurant"].(map[string]any)["id"].(float64)

	code, body = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost,
		"/restaurants/"+itoa(restaurantID)+"/items", map[string]any{"name": "Pao"}, token))
	require.Equal(t, http.StatusOK, code)
	itemID := body["created item"].(map[string]any)["id"].(float64)

	code, body = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete,
		"/items/"+itoa(itemID), nil, token))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	code, body = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete,
		"/items/"+itoa(itemID), nil, token))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
}

func TestListItemsEmpty(t *testing.T) {
	app, _ := testutil.NewTestApp(t)

	code, body := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/items", nil, ""))
	require.Equal(t, http.StatusOK, code)
	items, ok := body["Items"].([]any)
	require.True(t, ok, "zero rows must still be a collection")
	assert.Empty(t, items)
}
