package recipe

import "github.com/lifeofnimah/host-with-nimah/internal/model"

// Signature returns the curated recipes featured on the site. These are
// static editorial content, not assistant output, so they carry images.
func Signature() []model.Recipe {
	return []model.Recipe{
		{
			Title:       "Zanzibar Pilau",
			Description: "A fragrant celebration of the Spice Island, this rice dish is infused with cardamom, cinnamon, cloves, and cumin, traditionally served at weddings and festive gatherings.",
			PrepInfo:    []string{"Prep: 30m", "Cook: 45m", "Serves: 4-6"},
			Ingredients: []string{
				"2 cups Basmati rice",
				"500g Beef or Chicken, cubed",
				"1 tbsp Cumin seeds",
				"1 tsp Cardamom pods",
				"1/2 tsp Cloves",
				"2 Cinnamon sticks",
				"1 cup Coconut milk",
				"2 Onions, sliced",
				"3 Garlic cloves, minced",
			},
			Instructions: []string{
				"Wash and soak rice. Boil meat with ginger and garlic until tender.",
				"Toast whole spices in oil until fragrant. Add onions and fry until golden brown.",
				"Add meat, browning it with the spices.",
				"Stir in rice, coating the grains with oil and spices.",
				"Add coconut milk and broth. Cover and cook on low heat until rice is fluffy.",
			},
			Plating: "Serve on a large communal platter. Garnish with fresh cilantro and accompany with Kachumbari salad.",
			Image:   "https://images.unsplash.com/photo-1633945274405-b6c8069047b0?q=80&w=1000&auto=format&fit=crop",
		},
		{
			Title:       "Kuku Paka",
			Description: "A coastal Tanzanian favorite, featuring grilled chicken smothered in a rich, smoky coconut curry sauce with turmeric and chilies.",
			PrepInfo:    []string{"Prep: 20m", "Cook: 40m", "Serves: 4"},
			Ingredients: []string{
				"1 Whole Chicken, cut into pieces",
				"2 cups Coconut cream",
				"1 tbsp Turmeric powder",
				"3 Green chilies, pounded",
				"2 tbsp Ginger-garlic paste",
				"Fresh lemon juice",
				"Fresh coriander",
			},
			Instructions: []string{
				"Marinate chicken with lemon, salt, ginger, and garlic. Grill until charred.",
				"In a pan, simmer coconut cream with turmeric, chilies, and salt until thickened.",
				"Add the grilled chicken to the coconut sauce.",
				"Let it simmer for 10 minutes to absorb the flavors.",
			},
			Plating: "Serve in a deep earthenware bowl, sprinkled generously with chopped coriander. Pair with naan or rice.",
			Image:   "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?q=80&w=1000&auto=format&fit=crop",
		},
		{
			Title:       "Maharage ya Nazi",
			Description: "Kidney beans simmered in creamy coconut milk—a comforting, vegetarian staple found in many Tanzanian homes.",
			PrepInfo:    []string{"Prep: 10m", "Cook: 30m", "Serves: 4"},
			Ingredients: []string{
				"2 cups Kidney beans (cooked)",
				"1.5 cups Coconut milk",
				"1 Onion, chopped",
				"2 Tomatoes, diced",
				"1 tsp Curry powder",
				"1/2 tsp Turmeric",
			},
			Instructions: []string{
				"Sauté onions until soft. Add tomatoes and spices, cooking until they break down.",
				"Add the cooked kidney beans and stir well.",
				"Pour in the coconut milk and bring to a gentle simmer.",
				"Cook until the sauce thickens and coats the beans.",
			},
			Plating: "Serve hot in individual bowls alongside Chapati or Wali wa Nazi (coconut rice).",
			Image:   "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?q=80&w=1000&auto=format&fit=crop",
		},
	}
}
