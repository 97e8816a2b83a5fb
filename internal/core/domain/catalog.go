package domain

// Built-in seed data: the default exercise library, the workout split programs
// and the default weekly rotation written to storage on first run.

func DefaultExercises() []Exercise {
	return []Exercise{
		{
			ID:          "chest_press_machine",
			Name:        "Machine Chest Press",
			Muscle:      "Chest",
			Image:       "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=400&h=300&fit=crop",
			Tips:        "Control the eccentric (lowering) phase for 2-3 seconds. Keep your shoulder blades retracted and pressed into the pad. Don't lock out elbows at the top.",
			DefaultSets: 3,
			DefaultReps: 12,
		},
		{
			ID:          "incline_db_press",
			Name:        "Incline Dumbbell Press",
			Muscle:      "Chest",
			Image:       "https://images.unsplash.com/photo-1534368786749-b63e05c92717?w=400&h=300&fit=crop",
			Tips:        "Set the bench to 30-45 degrees. Lower the dumbbells to nipple level. Press up in an arc, bringing the dumbbells closer together at the top.",
			DefaultSets: 3,
			DefaultReps: 10,
		},
		{
			ID:          "lat_pulldown",
			Name:        "Lat Pulldown",
			Muscle:      "Back",
			Image:       "https://images.unsplash.com/photo-1597452485669-2c7bb5fef90d?w=400&h=300&fit=crop",
			Tips:        "Pull the bar to your upper chest, not behind your neck. Lean back slightly and squeeze your lats at the bottom. Control the weight back up.",
			DefaultSets: 3,
			DefaultReps: 12,
		},
		{
			ID:          "cable_row",
			Name:        "Seated Cable Row",
			Muscle:      "Back",
			Image:       "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=400&h=300&fit=crop",
			Tips:        "Keep your torso upright — don't swing. Pull the handle to your lower chest/upper abdomen. Squeeze your shoulder blades together at peak contraction.",
			DefaultSets: 3,
			DefaultReps: 12,
		},
		{
			ID:          "shoulder_press_machine",
			Name:        "Machine Shoulder Press",
			Muscle:      "Shoulders",
			Image:       "https://images.unsplash.com/photo-1530822847156-5df684ec5ee1?w=400&h=300&fit=crop",
			Tips:        "Press up without fully locking out. Keep your core tight and back flat against the pad. Lower until your upper arms are parallel to the floor.",
			DefaultSets: 3,
			DefaultReps: 12,
		},
		{
			ID:          "lateral_raise_db",
			Name:        "Dumbbell Lateral Raise",
			Muscle:      "Shoulders",
			Image:       "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?w=400&h=300&fit=crop",
			Tips:        "Lift with a slight bend in elbows. Lead with your elbows, not your hands. Don't go above shoulder height. Use a controlled tempo.",
			DefaultSets: 3,
			DefaultReps: 15,
		},
		{
			ID:          "leg_press",
			Name:        "Leg Press",
			Muscle:      "Legs",
			Image:       "https://images.unsplash.com/photo-1574680096145-d05b474e2155?w=400&h=300&fit=crop",
			Tips:        "Place feet shoulder-width apart, mid-platform. Lower until knees reach 90 degrees. Don't lock your knees at the top. Keep your lower back pressed into the seat.",
			DefaultSets: 4,
			DefaultReps: 12,
		},
		{
			ID:          "leg_curl",
			Name:        "Lying Leg Curl",
			Muscle:      "Legs",
			Image:       "https://images.unsplash.com/photo-1434682881908-b43d0467b798?w=400&h=300&fit=crop",
			Tips:        "Don't lift your hips off the pad. Curl the weight up explosively, then lower it slowly (3s eccentric). Squeeze your hamstrings at the top.",
			DefaultSets: 3,
			DefaultReps: 12,
		},
		{
			ID:          "bicep_curl_cable",
			Name:        "Cable Bicep Curl",
			Muscle:      "Arms",
			Image:       "https://images.unsplash.com/photo-1581009137042-c552e485697a?w=400&h=300&fit=crop",
			Tips:        "Keep elbows pinned to your sides. Squeeze at the top for 1 second. Lower slowly — the eccentric builds muscle. Don't swing your body.",
			DefaultSets: 3,
			DefaultReps: 12,
		},
		{
			ID:          "tricep_pushdown",
			Name:        "Cable Tricep Pushdown",
			Muscle:      "Arms",
			Image:       "https://images.unsplash.com/photo-1590487988256-9ed24133863e?w=400&h=300&fit=crop",
			Tips:        "Lock your elbows in place — only your forearms should move. Squeeze at full extension. Use a rope attachment for better range of motion.",
			DefaultSets: 3,
			DefaultReps: 12,
		},
	}
}

func DefaultPrograms() map[string]Program {
	return map[string]Program{
		"upper_a": {
			ID:      "upper_a",
			Name:    "Upper Body A",
			Muscles: []string{"Chest", "Back", "Shoulders"},
			Exercises: []string{
				"chest_press_machine",
				"incline_db_press",
				"lat_pulldown",
				"cable_row",
				"shoulder_press_machine",
			},
		},
		"upper_b": {
			ID:      "upper_b",
			Name:    "Upper Body B",
			Muscles: []string{"Chest", "Back", "Arms"},
			Exercises: []string{
				"incline_db_press",
				"chest_press_machine",
				"cable_row",
				"lat_pulldown",
				"bicep_curl_cable",
				"tricep_pushdown",
			},
		},
		"lower": {
			ID:        "lower",
			Name:      "Lower Body",
			Muscles:   []string{"Legs"},
			Exercises: []string{"leg_press", "leg_curl"},
		},
		"push": {
			ID:      "push",
			Name:    "Push Day",
			Muscles: []string{"Chest", "Shoulders", "Arms"},
			Exercises: []string{
				"chest_press_machine",
				"incline_db_press",
				"shoulder_press_machine",
				"lateral_raise_db",
				"tricep_pushdown",
			},
		},
		"pull": {
			ID:        "pull",
			Name:      "Pull Day",
			Muscles:   []string{"Back", "Arms"},
			Exercises: []string{"lat_pulldown", "cable_row", "bicep_curl_cable"},
		},
	}
}

// DefaultSchedule is the default weekly rotation, Monday first.
func DefaultSchedule() WeekSchedule {
	return WeekSchedule{
		strptr("upper_a"), // Monday
		strptr("lower"),   // Tuesday
		nil,               // Wednesday (rest)
		strptr("upper_b"), // Thursday
		strptr("lower"),   // Friday
		nil,               // Saturday (rest)
		nil,               // Sunday (rest)
	}
}

func strptr(s string) *string { return &s }
