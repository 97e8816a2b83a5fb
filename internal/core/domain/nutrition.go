package domain

import "math"

// MealsPerDay is the number of fixed slots in the daily meal plan; the day
// counts as "plan followed" once every slot is eaten.
const MealsPerDay = 6

// DailyChecklist is one calendar day's nutrition/reminder record, keyed by
// local date. A day that was never touched reads back as the zero value.
type DailyChecklist struct {
	Vitamin          bool    `json:"vitamin"`
	Water            int     `json:"water"`
	MealPlanFollowed bool    `json:"mealPlanFollowed"`
	CaloriesConsumed float64 `json:"caloriesConsumed"`
	MealsEaten       []int   `json:"mealsEaten"`
}

// NutritionTargets are the daily macro targets, either user-set or derived
// from the profile.
type NutritionTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
	Calcium  int `json:"calcium"`
	Water    int `json:"water,omitempty"` // glasses
}

func DefaultNutritionTargets() NutritionTargets {
	return NutritionTargets{
		Calories: 3510,
		Protein:  235,
		Carbs:    367,
		Fat:      132,
		Fiber:    59,
		Calcium:  1550,
	}
}

// CalculateMacros derives daily targets from the profile: Mifflin-St Jeor BMR
// scaled by a moderate activity factor plus a bulking surplus, protein at
// 2.1 g/kg, fat at 0.9 g/kg, carbs from the remaining calories.
func CalculateMacros(p UserProfile) NutritionTargets {
	if p.Weight <= 0 || p.Height <= 0 {
		return DefaultNutritionTargets()
	}

	age := p.Age
	if age == 0 {
		age = 24
	}
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(age) + 5
	tdee := bmr * 1.55
	calories := int(math.Round(tdee + 500))

	protein := int(math.Round(p.Weight * 2.1))
	fat := int(math.Round(p.Weight * 0.9))
	carbs := int(math.Round(float64(calories-(protein*4+fat*9)) / 4))

	return NutritionTargets{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    35,
		Calcium:  1000,
		Water:    int(math.Ceil(p.Weight * 33 / 250)),
	}
}

// Meal is one slot of the fixed six-meal plan. Calories and protein are
// computed as fixed ratios of the daily targets.
type Meal struct {
	Time     string   `json:"time"`
	Name     string   `json:"name"`
	Items    []string `json:"items"`
	Calories int      `json:"calories"`
	Protein  int      `json:"protein"`
}

type mealSlot struct {
	time         string
	name         string
	ratio        float64
	proteinRatio float64
	items        []string
}

var mealSlots = [MealsPerDay]mealSlot{
	{"7:00 AM", "Breakfast", 0.20, 0.19, []string{
		"6 egg whites + 2 whole eggs scrambled",
		"1 cup oatmeal with banana",
		"1 tbsp peanut butter",
		"1 glass whole milk",
	}},
	{"10:00 AM", "Snack 1", 0.11, 0.10, []string{
		"Greek yogurt (200g)",
		"Handful of almonds (30g)",
		"1 apple",
	}},
	{"1:00 PM", "Lunch", 0.22, 0.22, []string{
		"250g grilled chicken breast",
		"1.5 cups brown rice",
		"Mixed vegetables",
		"1 tbsp olive oil",
	}},
	{"4:00 PM", "Pre-Workout", 0.13, 0.18, []string{
		"Protein shake (2 scoops)",
		"1 banana",
		"2 rice cakes with honey",
	}},
	{"7:00 PM", "Dinner", 0.21, 0.20, []string{
		"250g lean beef or salmon",
		"Sweet potato (200g)",
		"Steamed broccoli",
		"Mixed salad with olive oil",
	}},
	{"9:30 PM", "Pre-Bed Snack", 0.13, 0.11, []string{
		"Cottage cheese (200g)",
		"1 tbsp honey",
		"Handful of walnuts"},
	},
}

// MealPlan expands the fixed slots against the given targets.
func MealPlan(targets NutritionTargets) []Meal {
	totalCal := targets.Calories
	if totalCal == 0 {
		totalCal = 3500
	}
	totalProtein := targets.Protein
	if totalProtein == 0 {
		totalProtein = 200
	}

	meals := make([]Meal, 0, MealsPerDay)
	for _, slot := range mealSlots {
		meals = append(meals, Meal{
			Time:     slot.time,
			Name:     slot.name,
			Items:    slot.items,
			Calories: int(math.Round(float64(totalCal) * slot.ratio)),
			Protein:  int(math.Round(float64(totalProtein) * slot.proteinRatio)),
		})
	}
	return meals
}

// ReminderSettings are the user-facing reminder preferences. The timers
// themselves belong to UI collaborators, not the core.
type ReminderSettings struct {
	WaterIntervalMinutes  int    `json:"waterIntervalMinutes"`
	RemindersEnabled      bool   `json:"remindersEnabled"`
	SoundEnabled          bool   `json:"soundEnabled"`
	NotificationsGranted  bool   `json:"notificationsGranted"`
	LastWaterReminderTime *int64 `json:"lastWaterReminderTime"` // unix millis
	LastResetDate         string `json:"lastResetDate"`
}

func DefaultReminderSettings(today string) ReminderSettings {
	return ReminderSettings{
		WaterIntervalMinutes: 60,
		RemindersEnabled:     true,
		SoundEnabled:         true,
		LastResetDate:        today,
	}
}
