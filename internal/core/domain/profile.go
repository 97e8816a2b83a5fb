package domain

import "math"

// UserProfile holds the owner's body metrics. Weight in kg, height in cm.
type UserProfile struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Age    int     `json:"age"`
}

// DefaultProfile avoids divide-by-zero in derived calculations before the
// user fills anything in.
func DefaultProfile() UserProfile {
	return UserProfile{Weight: 70, Height: 175, Age: 24}
}

// BMI is the body-mass index with its WHO category.
type BMI struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// BMI returns nil when weight or height is unset.
func (p UserProfile) BMI() *BMI {
	if p.Weight <= 0 || p.Height <= 0 {
		return nil
	}
	heightM := p.Height / 100
	value := math.Round(p.Weight/(heightM*heightM)*10) / 10

	category := "Normal"
	switch {
	case value < 18.5:
		category = "Underweight"
	case value >= 30:
		category = "Obese"
	case value >= 25:
		category = "Overweight"
	}
	return &BMI{Value: value, Category: category}
}

// SuggestedCalories is the Mifflin-St Jeor estimate ladder shown on the
// profile page.
type SuggestedCalories struct {
	BMR     int `json:"bmr"`
	TDEE    int `json:"tdee"`
	Surplus int `json:"surplus"`
}

// SuggestedCalories returns nil when weight or height is unset.
func (p UserProfile) SuggestedCalories() *SuggestedCalories {
	if p.Weight <= 0 || p.Height <= 0 {
		return nil
	}
	age := p.Age
	if age == 0 {
		age = 24
	}
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(age) + 5
	tdee := math.Round(bmr * 1.55)
	return &SuggestedCalories{
		BMR:     int(math.Round(bmr)),
		TDEE:    int(tdee),
		Surplus: int(math.Round(tdee + 500)),
	}
}

// WaterGoal is the daily water goal in glasses (~250ml), derived from body
// weight at 33 ml/kg. Falls back to 8 glasses when weight is unset.
func (p UserProfile) WaterGoal() int {
	if p.Weight <= 0 {
		return 8
	}
	return int(math.Ceil(p.Weight * 33 / 250))
}
