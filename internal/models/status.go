package models

import "strings"

// Status is the complaint processing state.
type Status string

const (
	StatusActive     Status = "active"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusReopened   Status = "Reopened"
)

// transitions - таблиця дозволених переходів статусів.
// Будь-який перехід поза таблицею відхиляється сервісом.
var transitions = map[Status][]Status{
	StatusActive:     {StatusInProgress, StatusResolved},
	StatusInProgress: {StatusResolved},
	StatusResolved:   {StatusReopened},
	StatusReopened:   {StatusInProgress, StatusResolved},
}

// ParseStatus matches a caller-supplied string against the known
// statuses, ignoring case. Returns false for anything unknown.
func ParseStatus(s string) (Status, bool) {
	for _, known := range []Status{StatusActive, StatusInProgress, StatusResolved, StatusReopened} {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}

// CanTransition reports whether moving from s to next is allowed.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
