package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) postComment(t *testing.T, recipeID uuid.UUID, token, content string) uuid.UUID {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/recipes/"+recipeID.String()+"/comments", token, gin.H{
		"content": content,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	comment := decodeBody(t, w)["comment"].(map[string]interface{})
	id, err := uuid.Parse(comment["id"].(string))
	require.NoError(t, err)
	return id
}

func TestCommentEndpoints(t *testing.T) {
	env := newTestEnv(t)
	aliceID, aliceToken := env.signup(t, "alice")
	_, bobToken := env.signup(t, "bob")
	recipeID := env.publishRecipe(t, aliceID, aliceToken, "Koshari")

	env.postComment(t, recipeID, bobToken, "looks great")

	w := env.do(t, http.MethodGet, "/api/v1/recipes/"+recipeID.String()+"/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	comments := decodeBody(t, w)["comments"].([]interface{})
	require.Len(t, comments, 1)
	first := comments[0].(map[string]interface{})
	assert.Equal(t, "looks great", first["content"])
	author := first["author"].(map[string]interface{})
	assert.Equal(t, "bob", author["username"])

	// Commenting needs a session.
	w = env.do(t, http.MethodPost, "/api/v1/recipes/"+recipeID.String()+"/comments", "", gin.H{
		"content": "anonymous",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Comments on a missing recipe are rejected.
	w = env.do(t, http.MethodPost, "/api/v1/recipes/"+uuid.NewString()+"/comments", bobToken, gin.H{
		"content": "orphaned",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCommentPermissions(t *testing.T) {
	env := newTestEnv(t)
	aliceID, aliceToken := env.signup(t, "alice")
	_, bobToken := env.signup(t, "bob")
	_, carolToken := env.signup(t, "carol")
	recipeID := env.publishRecipe(t, aliceID, aliceToken, "Koshari")

	byBob := env.postComment(t, recipeID, bobToken, "first")

	// A bystander cannot delete it.
	w := env.do(t, http.MethodDelete, "/api/v1/comments/"+byBob.String(), carolToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The author can.
	w = env.do(t, http.MethodDelete, "/api/v1/comments/"+byBob.String(), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The recipe's chef can moderate comments they did not write.
	other := env.postComment(t, recipeID, bobToken, "second")
	w = env.do(t, http.MethodDelete, "/api/v1/comments/"+other.String(), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/recipes/"+recipeID.String()+"/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["comments"])

	w = env.do(t, http.MethodDelete, "/api/v1/comments/"+other.String(), aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
