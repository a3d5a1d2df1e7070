package kb

// #region seed-dataset

// SeedProblems returns the curated dataset the knowledge base is populated
// with at startup.
func SeedProblems() []Problem {
	return []Problem{
		{
			ID:         "alg_001",
			Question:   "Solve the equation: 2x + 5 = 13",
			Topic:      "algebra",
			Difficulty: "beginner",
			SolutionSteps: []string{
				"Start with the equation: 2x + 5 = 13",
				"Subtract 5 from both sides: 2x = 13 - 5",
				"Simplify: 2x = 8",
				"Divide both sides by 2: x = 8/2",
				"Final answer: x = 4",
			},
			FinalAnswer:     "x = 4",
			Explanation:     "This is a linear equation in one variable. We solve it by isolating the variable using inverse operations.",
			RelatedConcepts: []string{"linear equations", "algebraic manipulation", "solving equations"},
		},
		{
			ID:         "alg_002",
			Question:   "Factor the quadratic: x² - 5x + 6",
			Topic:      "algebra",
			Difficulty: "intermediate",
			SolutionSteps: []string{
				"Given quadratic: x² - 5x + 6",
				"Find two numbers that multiply to 6 and add to -5",
				"The numbers are -2 and -3: (-2) × (-3) = 6, (-2) + (-3) = -5",
				"Write as product: (x - 2)(x - 3)",
				"Verify: (x - 2)(x - 3) = x² - 3x - 2x + 6 = x² - 5x + 6",
				"Final answer: (x - 2)(x - 3)",
			},
			FinalAnswer:     "(x - 2)(x - 3)",
			Explanation:     "To factor a quadratic, we find two numbers that multiply to the constant term and add to the coefficient of the linear term.",
			RelatedConcepts: []string{"factoring", "quadratic equations", "polynomials"},
		},
		{
			ID:         "calc_001",
			Question:   "Find the derivative of f(x) = x² + 3x + 2",
			Topic:      "calculus",
			Difficulty: "intermediate",
			SolutionSteps: []string{
				"Given function: f(x) = x² + 3x + 2",
				"Apply power rule to x²: d/dx(x²) = 2x",
				"Apply power rule to 3x: d/dx(3x) = 3",
				"Derivative of constant 2: d/dx(2) = 0",
				"Combine results: f'(x) = 2x + 3 + 0",
				"Final answer: f'(x) = 2x + 3",
			},
			FinalAnswer:     "f'(x) = 2x + 3",
			Explanation:     "We use the power rule for differentiation: d/dx(x^n) = nx^(n-1). For each term, we apply this rule and sum the results.",
			RelatedConcepts: []string{"derivatives", "power rule", "polynomial functions"},
		},
		{
			ID:         "calc_002",
			Question:   "Evaluate the integral: ∫(2x + 3)dx",
			Topic:      "calculus",
			Difficulty: "intermediate",
			SolutionSteps: []string{
				"Given integral: ∫(2x + 3)dx",
				"Apply power rule: ∫(2x)dx = 2(x²/2) = x²",
				"Apply constant rule: ∫(3)dx = 3x",
				"Combine results: x² + 3x",
				"Add constant of integration: + C",
				"Final answer: x² + 3x + C",
			},
			FinalAnswer:     "x² + 3x + C",
			Explanation:     "We use the power rule for integration: ∫(x^n)dx = x^(n+1)/(n+1) + C. We integrate each term separately and add the constant of integration.",
			RelatedConcepts: []string{"integration", "power rule", "indefinite integral"},
		},
		{
			ID:         "geom_001",
			Question:   "Find the area of a triangle with base 6 cm and height 8 cm",
			Topic:      "geometry",
			Difficulty: "beginner",
			SolutionSteps: []string{
				"Given: base = 6 cm, height = 8 cm",
				"Use the formula: Area = (1/2) × base × height",
				"Substitute values: Area = (1/2) × 6 × 8",
				"Calculate: Area = (1/2) × 48",
				"Final answer: Area = 24 cm²",
			},
			FinalAnswer:     "24 cm²",
			Explanation:     "The area of a triangle is half the product of its base and height. This formula works for any triangle.",
			RelatedConcepts: []string{"area", "triangle", "geometry formulas"},
		},
		{
			ID:         "geom_002",
			Question:   "Find the circumference of a circle with radius 5 cm",
			Topic:      "geometry",
			Difficulty: "beginner",
			SolutionSteps: []string{
				"Given: radius = 5 cm",
				"Use formula: C = 2πr",
				"Substitute: C = 2π(5)",
				"Calculate: C = 10π",
				"Approximate: C ≈ 10 × 3.14159 ≈ 31.42 cm",
				"Final answer: C = 10π cm or approximately 31.42 cm",
			},
			FinalAnswer:     "10π cm (approximately 31.42 cm)",
			Explanation:     "The circumference of a circle is calculated using the formula C = 2πr, where r is the radius.",
			RelatedConcepts: []string{"circumference", "circle", "pi", "radius"},
		},
		{
			ID:         "trig_001",
			Question:   "Find the value of sin(30°)",
			Topic:      "trigonometry",
			Difficulty: "beginner",
			SolutionSteps: []string{
				"Recall the special angle: sin(30°) = 1/2",
				"This is a standard trigonometric value",
				"We can verify using the unit circle",
				"At 30°, the y-coordinate is 1/2",
				"Final answer: sin(30°) = 1/2",
			},
			FinalAnswer:     "1/2",
			Explanation:     "30° is a special angle in trigonometry. The sine of 30° is always 1/2, which can be derived from a 30-60-90 triangle.",
			RelatedConcepts: []string{"trigonometric functions", "special angles", "unit circle"},
		},
		{
			ID:         "stat_001",
			Question:   "Find the mean of the numbers: 2, 4, 6, 8, 10",
			Topic:      "statistics",
			Difficulty: "beginner",
			SolutionSteps: []string{
				"Given numbers: 2, 4, 6, 8, 10",
				"Add all numbers: 2 + 4 + 6 + 8 + 10 = 30",
				"Count the numbers: n = 5",
				"Apply formula: Mean = Sum / n = 30 / 5",
				"Final answer: Mean = 6",
			},
			FinalAnswer:     "6",
			Explanation:     "The mean (average) is calculated by adding all values and dividing by the count of values.",
			RelatedConcepts: []string{"mean", "average", "descriptive statistics"},
		},
	}
}

// #endregion seed-dataset
