package model

import "time"

// Types de repas acceptés
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// ValidMealType vérifie le type avant toute écriture
func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// FoodItem une ligne d'aliment dans un repas
type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Meal un repas journalisé. Les totaux sont dénormalisés: ils doivent
// correspondre à la somme des foods à l'écriture, ils ne sont pas recalculés
// à la lecture.
type Meal struct {
	ID            string     `json:"id,omitempty"`
	UserID        string     `json:"userId"`
	Name          string     `json:"name"`
	Type          string     `json:"type"` // breakfast, lunch, dinner, snack
	Foods         []FoodItem `json:"foods"`
	TotalCalories float64    `json:"totalCalories"`
	TotalProtein  float64    `json:"totalProtein"`
	TotalCarbs    float64    `json:"totalCarbs"`
	TotalFat      float64    `json:"totalFat"`
	Notes         string     `json:"notes,omitempty"`
	LoggedAt      time.Time  `json:"loggedAt"`
	Date          string     `json:"date"` // YYYY-MM-DD, clé de partition des requêtes
}

// Food aliment prédéfini du catalogue (collection foods)
type Food struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Serving  string  `json:"serving,omitempty"`
}

// FoodSeed catalogue inséré au premier démarrage, quand la table foods est
// vide. Valeurs par portion indiquée.
var FoodSeed = []Food{
	{Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Serving: "100g"},
	{Name: "Salmon", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, Serving: "100g"},
	{Name: "Egg", Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Serving: "1 large"},
	{Name: "White Rice", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Serving: "100g cooked"},
	{Name: "Brown Rice", Calories: 111, Protein: 2.6, Carbs: 23, Fat: 0.9, Serving: "100g cooked"},
	{Name: "Oatmeal", Calories: 150, Protein: 5, Carbs: 27, Fat: 3, Serving: "40g dry"},
	{Name: "Whole Wheat Bread", Calories: 80, Protein: 4, Carbs: 14, Fat: 1.1, Serving: "1 slice"},
	{Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Serving: "1 medium"},
	{Name: "Apple", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Serving: "1 medium"},
	{Name: "Broccoli", Calories: 55, Protein: 3.7, Carbs: 11, Fat: 0.6, Serving: "100g"},
	{Name: "Sweet Potato", Calories: 103, Protein: 2.3, Carbs: 24, Fat: 0.2, Serving: "1 medium"},
	{Name: "Greek Yogurt", Calories: 100, Protein: 17, Carbs: 6, Fat: 0.7, Serving: "170g"},
	{Name: "Milk", Calories: 103, Protein: 8, Carbs: 12, Fat: 2.4, Serving: "250ml"},
	{Name: "Almonds", Calories: 164, Protein: 6, Carbs: 6, Fat: 14, Serving: "28g"},
	{Name: "Peanut Butter", Calories: 188, Protein: 8, Carbs: 6, Fat: 16, Serving: "2 tbsp"},
}
