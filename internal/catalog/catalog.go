// Package catalog holds the built-in course catalog and question banks.
package catalog

import "course-quiz-service/internal/domain"

// DefaultCourseID is the course whose question bank backs courses without one.
const DefaultCourseID = "web-basics"

// Records returns every built-in course record keyed by id. Question banks are
// shared and must not be mutated.
func Records() map[string]domain.CourseRecord {
	records := make(map[string]domain.CourseRecord, len(courses))
	for _, c := range courses {
		rec := domain.CourseRecord{Course: c}
		if bank, ok := quizzes[c.ID]; ok {
			rec.Quiz = bank
		}
		records[c.ID] = rec
	}
	return records
}

var courses = []domain.Course{
	{
		ID:          "web-basics",
		Title:       "Web Development Fundamentals",
		Description: "Master the essential building blocks of modern web development.",
		Duration:    "8 weeks",
		Difficulty:  "Beginner",
		Instructor:  "Sarah Johnson",
		Price:       "Free",
	},
	{
		ID:          "react-fundamentals",
		Title:       "React.js for Beginners",
		Description: "Dive into the world of modern frontend development with React.js.",
		Duration:    "6 weeks",
		Difficulty:  "Beginner",
		Instructor:  "Mike Chen",
		Price:       "$49",
		Curriculum: map[domain.Level][]string{
			domain.LevelEasy:         {"Components, props, state", "Hooks: useState, useEffect", "Routing with React Router"},
			domain.LevelIntermediate: {"Forms and validation", "API integration and async data", "List and key patterns"},
			domain.LevelAdvanced:     {"Performance optimizations", "State management patterns", "Testing with Jest + RTL"},
		},
	},
	{
		ID:          "backend-basics",
		Title:       "Backend Development Fundamentals",
		Description: "Node.js and Express API fundamentals with authentication and databases.",
		Duration:    "10 weeks",
		Difficulty:  "Beginner",
		Instructor:  "Alex Thompson",
		Price:       "Free",
		Curriculum: map[domain.Level][]string{
			domain.LevelEasy:         {"Node.js basics, npm, modules", "Express routing and middleware", "REST fundamentals and Postman"},
			domain.LevelIntermediate: {"Authentication with JWT", "Databases: MongoDB and PostgreSQL CRUD", "Error handling and logging"},
			domain.LevelAdvanced:     {"Rate limiting, caching, security headers", "Scalability: clustering, load testing", "CI/CD and deployment basics"},
		},
	},
	{
		ID:          "fullstack-basics",
		Title:       "Full Stack Development Bootcamp",
		Description: "Build complete web applications with React, Next.js, APIs, and databases.",
		Duration:    "16 weeks",
		Difficulty:  "Intermediate",
		Instructor:  "Jessica Williams",
		Price:       "$299",
		Curriculum: map[domain.Level][]string{
			domain.LevelEasy:         {"Frontend fundamentals (HTML/CSS/JS)", "Basic React app with routing", "Intro to REST APIs"},
			domain.LevelIntermediate: {"Next.js pages, SSR/SSG, API routes", "State management patterns", "Database integration (ORM, migrations)"},
			domain.LevelAdvanced:     {"Auth (JWT/OAuth), role-based access", "Serverless and edge deployment", "Performance, caching, observability"},
		},
	},
	{
		ID:          "ml-basics",
		Title:       "Machine Learning Fundamentals",
		Description: "Python, NumPy, Pandas, modeling with scikit-learn, and evaluation.",
		Duration:    "10 weeks",
		Difficulty:  "Beginner",
		Instructor:  "Dr. Anna Patel",
		Price:       "Free",
		Curriculum: map[domain.Level][]string{
			domain.LevelEasy:         {"Python syntax and NumPy arrays", "Pandas dataframes and cleaning", "Basic EDA and visualization"},
			domain.LevelIntermediate: {"Regression and classification with scikit-learn", "Feature engineering and metrics", "Train/validation/test splits and cross-validation"},
			domain.LevelAdvanced:     {"Intro to neural networks (TensorFlow/Keras)", "Experiment tracking and model monitoring", "Deployment basics and inference optimization"},
		},
	},
	{
		ID:          "python-basics",
		Title:       "Python Basics",
		Description: "Core Python concepts: syntax, variables, types, flow control, and functions.",
		Duration:    "6 weeks",
		Difficulty:  "Beginner",
		Instructor:  "Priya Sharma",
		Price:       "Free",
		Curriculum: map[domain.Level][]string{
			domain.LevelEasy:         {"Intro and setup", "Syntax & statements", "Variables and data types", "Strings and numbers", "Lists, tuples, sets, dicts", "If/Else & Match", "Loops", "Functions"},
			domain.LevelIntermediate: {"Comprehensions", "Modules & packages", "File I/O", "Error handling", "Virtual envs & pip"},
			domain.LevelAdvanced:     {"Iterators & generators", "Decorators", "Typing basics"},
		},
	},
}
