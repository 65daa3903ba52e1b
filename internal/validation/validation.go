// validation.go
//
// A scalable, high performance drop-in replacement for the trello-board koa data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of boardsdb.
// boardsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// boardsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with boardsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package validation holds explicit, composable request payload rules.
// Each payload validator returns the full list of violations rather than
// stopping at the first, so the client sees everything wrong at once.
package validation

import (
	"fmt"
	"unicode/utf8"
)

// Rule checks one field and reports a violation message, or "" when valid.
type Rule func() string

// Check runs rules and collects the non-empty violations.
func Check(rules ...Rule) []string {
	var violations []string
	for _, rule := range rules {
		if msg := rule(); msg != "" {
			violations = append(violations, msg)
		}
	}
	return violations
}

// Required fails when the value is empty.
func Required(field, value string) Rule {
	return func() string {
		if value == "" {
			return fmt.Sprintf("%s must not be empty", field)
		}
		return ""
	}
}

// MaxLen fails when the value exceeds max characters.
func MaxLen(field, value string, max int) Rule {
	return func() string {
		if utf8.RuneCountInString(value) > max {
			return fmt.Sprintf("%s must not exceed %d characters", field, max)
		}
		return ""
	}
}

// LengthBetween fails when the value length falls outside [min, max].
func LengthBetween(field, value string, min, max int) Rule {
	return func() string {
		n := utf8.RuneCountInString(value)
		if n < min || n > max {
			return fmt.Sprintf("%s must be between %d and %d characters", field, min, max)
		}
		return ""
	}
}

// PositiveID fails when the id is zero.
func PositiveID(field string, id uint64) Rule {
	return func() string {
		if id == 0 {
			return fmt.Sprintf("%s must be a positive number", field)
		}
		return ""
	}
}

// Equals fails when the two values differ.
func Equals(field, value, other, message string) Rule {
	return func() string {
		if value != other {
			return message
		}
		return ""
	}
}

// IfPresent applies a rule only when the pointed-to value was provided.
func IfPresent(value *string, rule func(string) Rule) Rule {
	return func() string {
		if value == nil {
			return ""
		}
		return rule(*value)()
	}
}

// userRules is the base rule set shared by register and login payloads.
func userRules(name, password string) []Rule {
	return []Rule{
		LengthBetween("name", name, 1, 50),
		Required("password", password),
	}
}

// Register validates a registration payload: the base user rules plus the
// password confirmation.
func Register(name, password, rePassword string) []string {
	rules := append(userRules(name, password),
		Equals("rePassword", rePassword, password, "passwords do not match"))
	return Check(rules...)
}

// Login validates a login payload.
func Login(name, password string) []string {
	return Check(userRules(name, password)...)
}

// CreateBoard validates a board creation payload.
func CreateBoard(name string) []string {
	return Check(
		Required("name", name),
		MaxLen("name", name, 255),
	)
}

// UpdateBoard validates a partial board update payload.
func UpdateBoard(name *string) []string {
	return Check(
		IfPresent(name, func(v string) Rule { return Required("name", v) }),
		IfPresent(name, func(v string) Rule { return MaxLen("name", v, 255) }),
	)
}

// CreateList validates a list creation payload.
func CreateList(boardID uint64, name string) []string {
	return Check(
		PositiveID("boardId", boardID),
		Required("name", name),
		MaxLen("name", name, 255),
	)
}

// UpdateList validates a partial list update payload.
func UpdateList(boardID *uint64, name *string) []string {
	var rules []Rule
	if boardID != nil {
		rules = append(rules, PositiveID("boardId", *boardID))
	}
	rules = append(rules,
		IfPresent(name, func(v string) Rule { return Required("name", v) }),
		IfPresent(name, func(v string) Rule { return MaxLen("name", v, 255) }),
	)
	return Check(rules...)
}

// CreateCard validates a card creation payload.
func CreateCard(boardListID uint64, name string) []string {
	return Check(
		PositiveID("boardListId", boardListID),
		Required("name", name),
		MaxLen("name", name, 255),
	)
}

// UpdateCard validates a partial card update payload.
func UpdateCard(boardListID *uint64, name *string) []string {
	var rules []Rule
	if boardListID != nil {
		rules = append(rules, PositiveID("boardListId", *boardListID))
	}
	rules = append(rules,
		IfPresent(name, func(v string) Rule { return Required("name", v) }),
		IfPresent(name, func(v string) Rule { return MaxLen("name", v, 255) }),
	)
	return Check(rules...)
}

// CreateComment validates a comment creation payload.
func CreateComment(boardListCardID uint64, content string) []string {
	return Check(
		PositiveID("boardListCardId", boardListCardID),
		Required("content", content),
		MaxLen("content", content, 2000),
	)
}
