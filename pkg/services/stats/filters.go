package stats

import "strings"

// Filter expressions are conjunctive: clauses joined by ";" must all hold.

func GoalIs(goal string) string {
	return "event:goal==" + goal
}

func PageIs(page string) string {
	return "event:page==" + page
}

func And(clauses ...string) string {
	return strings.Join(clauses, ";")
}
