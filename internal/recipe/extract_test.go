package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProse(t *testing.T) {
	res := Extract("Just a regular tip about seasoning.")

	assert.False(t, res.IsRecipe)
	assert.Empty(t, res.LeadingText)
	assert.Nil(t, res.Recipe)
}

func TestExtractFullRecipe(t *testing.T) {
	text := "Try this:\n" +
		"# Recipe: Pilau\n" +
		"## Description\n" +
		"Spiced rice\n" +
		"## Ingredients\n" +
		"* Rice\n" +
		"* Beef\n" +
		"## Instructions\n" +
		"1. Cook rice\n" +
		"2. Add beef\n" +
		"## Plating\n" +
		"Serve hot"

	res := Extract(text)

	require.True(t, res.IsRecipe)
	require.NotNil(t, res.Recipe)
	assert.Equal(t, "Try this:", res.LeadingText)
	assert.Equal(t, "Pilau", res.Recipe.Title)
	assert.Equal(t, "Spiced rice", res.Recipe.Description)
	assert.Equal(t, []string{"Rice", "Beef"}, res.Recipe.Ingredients)
	assert.Equal(t, []string{"Cook rice", "Add beef"}, res.Recipe.Instructions)
	assert.Equal(t, "Serve hot", res.Recipe.Plating)
	assert.Empty(t, res.Recipe.PrepInfo)
}

func TestExtractTitleFallback(t *testing.T) {
	res := Extract("# Recipe:   \n## Description\nSomething nice")

	require.True(t, res.IsRecipe)
	assert.Equal(t, FallbackTitle, res.Recipe.Title)
	assert.Equal(t, "Something nice", res.Recipe.Description)
}

func TestExtractNoLeadingText(t *testing.T) {
	res := Extract("# Recipe: Chapati\n## Ingredients\n* Flour")

	require.True(t, res.IsRecipe)
	assert.Empty(t, res.LeadingText)
	assert.Equal(t, "Chapati", res.Recipe.Title)
}

func TestExtractMissingSectionsDegradeIndependently(t *testing.T) {
	res := Extract("# Recipe: Kachumbari\n## Ingredients\n* Tomatoes\n* Onions")

	require.True(t, res.IsRecipe)
	assert.Empty(t, res.Recipe.Description)
	assert.Empty(t, res.Recipe.PrepInfo)
	assert.Equal(t, []string{"Tomatoes", "Onions"}, res.Recipe.Ingredients)
	assert.Empty(t, res.Recipe.Instructions)
	assert.Empty(t, res.Recipe.Plating)
}

func TestExtractPrepInfoBullets(t *testing.T) {
	text := "# Recipe: Biryani\n" +
		"## Prep Info\n" +
		"* Prep time: 30m\n" +
		"Not a bullet, dropped\n" +
		"* Serves: 6\n"

	res := Extract(text)

	require.True(t, res.IsRecipe)
	assert.Equal(t, []string{"Prep time: 30m", "Serves: 6"}, res.Recipe.PrepInfo)
}

func TestExtractBulletFilteringIdempotent(t *testing.T) {
	res := Extract("# Recipe: Wali\n## Ingredients\n* Rice\n* Coconut milk\n* Salt")
	require.True(t, res.IsRecipe)

	var b strings.Builder
	b.WriteString("# Recipe: Wali\n## Ingredients\n")
	for _, item := range res.Recipe.Ingredients {
		b.WriteString("* " + item + "\n")
	}

	again := Extract(b.String())
	require.True(t, again.IsRecipe)
	assert.Equal(t, res.Recipe.Ingredients, again.Recipe.Ingredients)
}

func TestExtractInstructionOrderPreserved(t *testing.T) {
	text := "# Recipe: Pilau\n" +
		"## Instructions\n" +
		"1. First step\n" +
		"Some commentary that is not a step\n" +
		"2. Second step\n" +
		"3. Third step\n"

	res := Extract(text)

	require.True(t, res.IsRecipe)
	assert.Equal(t, []string{"First step", "Second step", "Third step"}, res.Recipe.Instructions)
}

func TestExtractOutOfOrderMarkersStillLand(t *testing.T) {
	text := "# Recipe: Kuku Paka\n" +
		"## Ingredients\n" +
		"* Chicken\n" +
		"## Description\n" +
		"Coconut curry chicken\n"

	res := Extract(text)

	require.True(t, res.IsRecipe)
	assert.Equal(t, []string{"Chicken"}, res.Recipe.Ingredients)
	assert.Equal(t, "Coconut curry chicken", res.Recipe.Description)
}

func TestExtractMultilinePlating(t *testing.T) {
	text := "# Recipe: Ndizi\n## Plating\nServe warm.\nGarnish with mint.\n"

	res := Extract(text)

	require.True(t, res.IsRecipe)
	assert.Equal(t, "Serve warm.\nGarnish with mint.", res.Recipe.Plating)
}

func TestSignatureRecipesCarryImages(t *testing.T) {
	recipes := Signature()

	require.Len(t, recipes, 3)
	for _, r := range recipes {
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.Image)
		assert.NotEmpty(t, r.Ingredients)
		assert.NotEmpty(t, r.Instructions)
	}
}
