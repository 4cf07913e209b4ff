package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/api"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/router"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/service"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/testhelpers"
)

// testEnv wires the full HTTP surface over an in-memory database.
type testEnv struct {
	router  *gin.Engine
	users   store.UserStore
	recipes store.RecipeStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.OpenTestDB(t)
	users := store.NewUserStore(db)
	recipes := store.NewRecipeStore(db)
	comments := store.NewCommentStore(db)

	authService := service.NewAuthService(users, "test-secret")
	userService := service.NewUserService(users, recipes)
	recipeService := service.NewRecipeService(recipes, users)
	followService := service.NewFollowService(users)
	engagementService := service.NewEngagementService(users, recipes)
	favoriteService := service.NewFavoriteService(users, recipes)
	commentService := service.NewCommentService(comments, recipes)

	h := router.Handlers{
		Auth:    api.NewAuthHandler(authService),
		User:    api.NewUserHandler(userService, recipeService, authService, nil),
		Recipe:  api.NewRecipeHandler(recipeService, userService, authService),
		Social:  api.NewSocialHandler(followService, engagementService, favoriteService, authService),
		Comment: api.NewCommentHandler(commentService, recipeService, userService, authService, nil),
	}

	return &testEnv{
		router:  router.SetupRouter(h, []string{"http://localhost:3000"}),
		users:   users,
		recipes: recipes,
	}
}

// do issues a request against the test router. A non-empty token is sent as a
// bearer credential.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// signup registers an account through the API and returns its id and token.
func (e *testEnv) signup(t *testing.T, username string) (uuid.UUID, string) {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	id, err := uuid.Parse(user["id"].(string))
	require.NoError(t, err)
	return id, token
}

// publishRecipe creates a recipe through the API and returns its id.
func (e *testEnv) publishRecipe(t *testing.T, chefID uuid.UUID, token, title string) uuid.UUID {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/v1/users/"+chefID.String()+"/recipes", token, gin.H{
		"title": title,
		"level": "Easy",
		"ingredients": []gin.H{
			{"name": "rice", "quantity": 200, "unit": "g"},
		},
		"steps": []string{"boil", "serve"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	recipe, ok := body["recipe"].(map[string]interface{})
	require.True(t, ok)
	id, err := uuid.Parse(recipe["id"].(string))
	require.NoError(t, err)
	return id
}
