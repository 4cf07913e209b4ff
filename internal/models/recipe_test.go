package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecipe() *Recipe {
	return &Recipe{
		Title:  "Koshari",
		ChefID: uuid.New(),
		Level:  LevelEasy,
		Ingredients: IngredientList{
			{Name: "rice", Quantity: 200, Unit: UnitGram},
			{Name: "lentils", Quantity: 1, Unit: UnitCup},
		},
		Steps: StringList{"boil", "mix"},
	}
}

func TestRecipeValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Recipe)
		wantField string
	}{
		{"valid", func(r *Recipe) {}, ""},
		{"missing title", func(r *Recipe) { r.Title = "" }, "title"},
		{"missing chef", func(r *Recipe) { r.ChefID = uuid.Nil }, "chef"},
		{"bad level", func(r *Recipe) { r.Level = "Impossible" }, "level"},
		{"unnamed ingredient", func(r *Recipe) { r.Ingredients[0].Name = "" }, "ingredients"},
		{"zero quantity", func(r *Recipe) { r.Ingredients[1].Quantity = 0 }, "ingredients"},
		{"negative quantity", func(r *Recipe) { r.Ingredients[1].Quantity = -2 }, "ingredients"},
		{"bad unit", func(r *Recipe) { r.Ingredients[0].Unit = "handful" }, "ingredients"},
		{"negative likes", func(r *Recipe) { r.Likes = -1 }, "likes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := validRecipe()
			tt.mutate(recipe)
			err := recipe.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestUnitValid(t *testing.T) {
	for _, u := range []Unit{UnitGram, UnitKilogram, UnitLiter, UnitMilliliter,
		UnitPiece, UnitTeaspoon, UnitTablespoon, UnitCup} {
		assert.True(t, u.Valid(), string(u))
	}
	assert.False(t, Unit("oz").Valid())
	assert.False(t, Unit("").Valid())
}

func TestLevelValid(t *testing.T) {
	assert.True(t, LevelEasy.Valid())
	assert.True(t, LevelMedium.Valid())
	assert.True(t, LevelHard.Valid())
	assert.False(t, Level("Expert").Valid())
}

func TestCommentValidate(t *testing.T) {
	comment := &Comment{Content: "tasty", AuthorID: uuid.New(), RecipeID: uuid.New()}
	assert.NoError(t, comment.Validate())

	var verr *ValidationError

	empty := &Comment{AuthorID: uuid.New(), RecipeID: uuid.New()}
	require.ErrorAs(t, empty.Validate(), &verr)
	assert.Equal(t, "content", verr.Field)

	noAuthor := &Comment{Content: "tasty", RecipeID: uuid.New()}
	require.ErrorAs(t, noAuthor.Validate(), &verr)
	assert.Equal(t, "author", verr.Field)

	noRecipe := &Comment{Content: "tasty", AuthorID: uuid.New()}
	require.ErrorAs(t, noRecipe.Validate(), &verr)
	assert.Equal(t, "recipe", verr.Field)
}
