package domain

import "time"

// SeedTasks returns the fixed set of tasks every fresh store starts with.
// Deadlines are relative to now.
func SeedTasks(now time.Time) []Task {
	in := func(days int) time.Time { return now.AddDate(0, 0, days) }

	return []Task{
		{
			ID:          1,
			Title:       "Pay bills",
			Description: "Pay electricity, water, and internet bills",
			Deadline:    in(5),
			Priority:    4,
			Tags:        []string{"finance", "bills"},
		},
		{
			ID:          2,
			Title:       "Write API documentation",
			Description: "Write detailed documentation for the RESTful API endpoints",
			Deadline:    in(2),
			IsCompleted: true,
			Priority:    2,
			Tags:        []string{"documentation", "API", "business"},
		},
		{
			ID:          3,
			Title:       "Buy groceries",
			Description: "Buy vegan milk, cucumber and cat food.",
			Deadline:    in(1),
			Priority:    1,
			Tags:        []string{"groceries", "home"},
		},
		{
			ID:          4,
			Title:       "Clean the house",
			Description: "Vacuum, dust and mop.",
			Deadline:    in(4),
			Priority:    4,
			Tags:        []string{"cleaning", "home"},
		},
		{
			ID:    5,
			Title: "Take the cat to the vet",
			Description: "Take the cat to the vet and tell her about her recent condition " +
				"and ask her to check her kidneys.",
			Deadline:    in(2),
			IsCompleted: true,
			Priority:    5,
			Tags:        []string{"vet", "health", "home", "family"},
		},
		{
			ID:          6,
			Title:       "Call mom",
			Description: "Call mom to catch up and see how she's doing.",
			Deadline:    in(1),
			IsCompleted: true,
			Priority:    1,
			Tags:        []string{"family", "communication"},
		},
		{
			ID:    7,
			Title: "Have a meeting with the advisor",
			Description: "Have a meeting with the advisor and ask her what you need to do " +
				"and the documents you need to submit in order for your graduation to be finalized.",
			Deadline: in(8),
			Priority: 5,
			Tags:     []string{"graduation", "education"},
		},
		{
			ID:          8,
			Title:       "Volunteer at shelter",
			Description: "Help out at a local animal shelter for a few hours.",
			Deadline:    in(3),
			IsCompleted: true,
			Priority:    2,
			Tags:        []string{"volunteering", "animals"},
		},
		{
			ID:          9,
			Title:       "Add unit tests",
			Description: "Write comprehensive unit tests for the core functionality",
			Deadline:    in(4),
			Priority:    3,
			Tags:        []string{"testing", "unit tests", "business"},
		},
		{
			ID:    10,
			Title: "Create monthly budget",
			Description: "Review income and expenses to create a detailed monthly budget " +
				"for better financial planning.",
			Deadline: in(6),
			Priority: 2,
			Tags:     []string{"finance", "budgeting"},
		},
	}
}
