package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishRecipeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	aliceID, aliceToken := env.signup(t, "alice")
	_, bobToken := env.signup(t, "bob")

	recipeID := env.publishRecipe(t, aliceID, aliceToken, "Koshari")

	w := env.do(t, http.MethodGet, "/api/v1/users/"+aliceID.String()+"/recipes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	recipes := decodeBody(t, w)["recipes"].([]interface{})
	require.Len(t, recipes, 1)
	assert.Equal(t, recipeID.String(), recipes[0].(map[string]interface{})["id"])

	// Publishing under another user's account is rejected.
	w = env.do(t, http.MethodPost, "/api/v1/users/"+aliceID.String()+"/recipes", bobToken, gin.H{
		"title": "Hijacked",
		"level": "Easy",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Without a token the route is closed.
	w = env.do(t, http.MethodPost, "/api/v1/users/"+aliceID.String()+"/recipes", "", gin.H{
		"title": "Anonymous",
		"level": "Easy",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublishRecipeValidation(t *testing.T) {
	env := newTestEnv(t)
	aliceID, aliceToken := env.signup(t, "alice")

	w := env.do(t, http.MethodPost, "/api/v1/users/"+aliceID.String()+"/recipes", aliceToken, gin.H{
		"title": "Koshari",
		"level": "Impossible",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/users/"+aliceID.String()+"/recipes", aliceToken, gin.H{
		"title": "Koshari",
		"level": "Easy",
		"ingredients": []gin.H{
			{"name": "rice", "quantity": -1, "unit": "g"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	aliceID, aliceToken := env.signup(t, "alice")
	recipeID := env.publishRecipe(t, aliceID, aliceToken, "Koshari")

	w := env.do(t, http.MethodGet, "/api/v1/recipes/"+recipeID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	recipe := body["recipe"].(map[string]interface{})
	assert.Equal(t, "Koshari", recipe["title"])
	chef := body["chef"].(map[string]interface{})
	assert.Equal(t, "alice", chef["username"])

	w = env.do(t, http.MethodGet, "/api/v1/recipes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decodeBody(t, w)["recipes"].([]interface{})
	require.Len(t, listed, 1)
	// Listings are summaries, not full documents.
	summary := listed[0].(map[string]interface{})
	assert.NotContains(t, summary, "steps")
}

func TestUpdateRecipeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	aliceID, aliceToken := env.signup(t, "alice")
	_, bobToken := env.signup(t, "bob")
	recipeID := env.publishRecipe(t, aliceID, aliceToken, "Koshari")

	w := env.do(t, http.MethodPut, "/api/v1/recipes/"+recipeID.String(), aliceToken, gin.H{
		"title": "Koshari Deluxe",
	})
	require.Equal(t, http.StatusOK, w.Code)
	recipe := decodeBody(t, w)["recipe"].(map[string]interface{})
	assert.Equal(t, "Koshari Deluxe", recipe["title"])

	w = env.do(t, http.MethodPut, "/api/v1/recipes/"+recipeID.String(), bobToken, gin.H{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteRecipeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	aliceID, aliceToken := env.signup(t, "alice")
	_, bobToken := env.signup(t, "bob")
	recipeID := env.publishRecipe(t, aliceID, aliceToken, "Koshari")

	w := env.do(t, http.MethodDelete, "/api/v1/recipes/"+recipeID.String(), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/recipes/"+recipeID.String(), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/recipes/"+recipeID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/recipes/"+recipeID.String(), aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
