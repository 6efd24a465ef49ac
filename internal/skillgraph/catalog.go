package skillgraph

// DefaultSkills returns the built-in SQL skill catalog, from first SELECT
// statements through interview-style analytics patterns.
// Each call returns a fresh slice.
func DefaultSkills() []Skill {
	return []Skill{
		// Foundational
		{
			ID:          "select_basics",
			Name:        "SELECT Basics",
			Tier:        TierFoundational,
			Description: "Basic SELECT statements, column selection, and FROM clause usage",
		},
		{
			ID:            "where_filtering",
			Name:          "WHERE Filtering",
			Tier:          TierFoundational,
			Prerequisites: []string{"select_basics"},
			Description:   "Filtering rows with WHERE clause, comparison operators, AND/OR logic",
		},
		{
			ID:            "order_limit",
			Name:          "ORDER BY & LIMIT",
			Tier:          TierFoundational,
			Prerequisites: []string{"select_basics"},
			Description:   "Sorting results with ORDER BY and limiting output with LIMIT",
		},
		{
			ID:            "aggregations",
			Name:          "Aggregations",
			Tier:          TierFoundational,
			Prerequisites: []string{"select_basics"},
			Description:   "Aggregate functions: COUNT, SUM, AVG, MIN, MAX for summarizing data",
		},
		{
			ID:            "groupby_having",
			Name:          "GROUP BY & HAVING",
			Tier:          TierFoundational,
			Prerequisites: []string{"aggregations"},
			Description:   "Grouping rows with GROUP BY and filtering groups with HAVING",
		},
		{
			ID:            "basic_joins",
			Name:          "Basic JOINs",
			Tier:          TierFoundational,
			Prerequisites: []string{"where_filtering"},
			Description:   "Combining tables with INNER JOIN and LEFT JOIN on single conditions",
		},

		// Intermediate
		{
			ID:            "multi_joins",
			Name:          "Multi-table JOINs",
			Tier:          TierIntermediate,
			Prerequisites: []string{"basic_joins", "groupby_having"},
			Description:   "Joining three or more tables with complex join conditions",
		},
		{
			ID:            "subqueries_scalar",
			Name:          "Scalar Subqueries",
			Tier:          TierIntermediate,
			Prerequisites: []string{"where_filtering", "aggregations"},
			Description:   "Subqueries that return a single value, used in SELECT or WHERE",
		},
		{
			ID:            "subqueries_table",
			Name:          "Table Subqueries",
			Tier:          TierIntermediate,
			Prerequisites: []string{"subqueries_scalar"},
			Description:   "Subqueries in FROM clause (derived tables) and IN clauses",
		},
		{
			ID:            "case_statements",
			Name:          "CASE Statements",
			Tier:          TierIntermediate,
			Prerequisites: []string{"select_basics", "where_filtering"},
			Description:   "Conditional logic with CASE WHEN for data transformation",
		},
		{
			ID:            "date_time",
			Name:          "Date/Time Functions",
			Tier:          TierIntermediate,
			Prerequisites: []string{"where_filtering"},
			Description:   "Date extraction, formatting, arithmetic, and filtering by date ranges",
		},
		{
			ID:            "null_handling",
			Name:          "NULL Handling",
			Tier:          TierIntermediate,
			Prerequisites: []string{"where_filtering", "basic_joins"},
			Description:   "Working with NULL values: IS NULL, COALESCE, NULLIF, and NULL-safe comparisons",
		},
		{
			ID:            "string_functions",
			Name:          "String Functions",
			Tier:          TierIntermediate,
			Prerequisites: []string{"select_basics"},
			Description:   "String manipulation: CONCAT, SUBSTR, TRIM, UPPER/LOWER, LIKE patterns",
		},

		// Advanced
		{
			ID:            "window_basics",
			Name:          "Window Functions Basics",
			Tier:          TierAdvanced,
			Prerequisites: []string{"groupby_having", "order_limit"},
			Description:   "ROW_NUMBER, RANK, DENSE_RANK for numbering and ranking rows",
		},
		{
			ID:            "window_analytics",
			Name:          "Analytic Window Functions",
			Tier:          TierAdvanced,
			Prerequisites: []string{"window_basics"},
			Description:   "LAG, LEAD, FIRST_VALUE, LAST_VALUE for row comparisons",
		},
		{
			ID:            "running_totals",
			Name:          "Running Totals & Averages",
			Tier:          TierAdvanced,
			Prerequisites: []string{"window_basics", "aggregations"},
			Description:   "Cumulative sums, moving averages with window frames",
		},
		{
			ID:            "self_joins",
			Name:          "Self-Joins",
			Tier:          TierAdvanced,
			Prerequisites: []string{"multi_joins"},
			Description:   "Joining a table to itself for hierarchical or comparison queries",
		},
		{
			ID:            "correlated_subqueries",
			Name:          "Correlated Subqueries",
			Tier:          TierAdvanced,
			Prerequisites: []string{"subqueries_table"},
			Description:   "Subqueries that reference the outer query for row-by-row evaluation",
		},
		{
			ID:            "ctes",
			Name:          "CTEs (WITH Clause)",
			Tier:          TierAdvanced,
			Prerequisites: []string{"subqueries_table"},
			Description:   "Common Table Expressions for readable, modular query structure",
		},
		{
			ID:            "set_operations",
			Name:          "Set Operations",
			Tier:          TierAdvanced,
			Prerequisites: []string{"select_basics"},
			Description:   "UNION, INTERSECT, EXCEPT for combining result sets",
		},

		// Interview patterns
		{
			ID:            "retention_analysis",
			Name:          "Retention Analysis",
			Tier:          TierInterview,
			Prerequisites: []string{"window_analytics", "date_time", "self_joins"},
			Description:   "Calculating user retention rates and cohort-based retention",
		},
		{
			ID:            "cohort_analysis",
			Name:          "Cohort Analysis",
			Tier:          TierInterview,
			Prerequisites: []string{"retention_analysis", "ctes"},
			Description:   "Grouping users by acquisition date and tracking behavior over time",
		},
		{
			ID:            "funnel_analysis",
			Name:          "Funnel Analysis",
			Tier:          TierInterview,
			Prerequisites: []string{"window_basics", "case_statements", "ctes"},
			Description:   "Tracking conversion through multi-step user journeys",
		},
		{
			ID:            "mom_growth",
			Name:          "Month-over-Month Growth",
			Tier:          TierInterview,
			Prerequisites: []string{"window_analytics", "date_time"},
			Description:   "Calculating period-over-period changes and growth rates",
		},
		{
			ID:            "dau_mau",
			Name:          "Active Users (DAU/MAU)",
			Tier:          TierInterview,
			Prerequisites: []string{"date_time", "aggregations", "window_basics"},
			Description:   "Daily/monthly active user metrics and engagement ratios",
		},
		{
			ID:            "attribution",
			Name:          "Attribution Queries",
			Tier:          TierInterview,
			Prerequisites: []string{"window_analytics", "ctes", "case_statements"},
			Description:   "First-touch, last-touch, and multi-touch attribution models",
		},
	}
}
