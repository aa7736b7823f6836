// Package classify infers semantics from statement text: the role of each
// column from its header label, and the accounting category of each row from
// its description. All inference is keyword matching against configured
// lexicons; there is no built-in vocabulary.
package classify

import (
	"strings"

	"github.com/auditlens-dev/auditlens/internal/config"
	"github.com/auditlens-dev/auditlens/internal/model"
)

// Columns assigns a role to every column label. Rules run in configured
// order and the first match wins, so a label containing both "debit" and
// "desc" is a Debit column. Debit and Credit may claim several columns;
// every other role keeps only its first claim, and later matches stay
// Unassigned. Exactly one Description column is chosen, defaulting to
// column 0 when no label matches.
func Columns(labels []string, rules []config.RoleRule) model.ColumnMap {
	m := model.ColumnMap{
		Description: -1,
		Amount:      -1,
		Date:        -1,
		Latitude:    -1,
		Longitude:   -1,
		Height:      -1,
		Roles:       make([]model.ColumnRole, len(labels)),
	}

	for i, label := range labels {
		role := matchRole(label, rules)
		switch role {
		case model.RoleDebit:
			m.Debit = append(m.Debit, i)
		case model.RoleCredit:
			m.Credit = append(m.Credit, i)
		case model.RoleDescription:
			if m.Description >= 0 {
				role = model.RoleUnassigned
			} else {
				m.Description = i
			}
		case model.RoleAmount:
			role = claimSingle(&m.Amount, i, role)
		case model.RoleDate:
			role = claimSingle(&m.Date, i, role)
		case model.RoleLatitude:
			role = claimSingle(&m.Latitude, i, role)
		case model.RoleLongitude:
			role = claimSingle(&m.Longitude, i, role)
		case model.RoleHeight:
			role = claimSingle(&m.Height, i, role)
		}
		m.Roles[i] = role
	}

	if m.Description < 0 && len(labels) > 0 {
		m.Description = 0
	}
	return m
}

func claimSingle(slot *int, col int, role model.ColumnRole) model.ColumnRole {
	if *slot >= 0 {
		return model.RoleUnassigned
	}
	*slot = col
	return role
}

func matchRole(label string, rules []config.RoleRule) model.ColumnRole {
	l := strings.ToLower(strings.TrimSpace(label))
	for _, rule := range rules {
		for _, sub := range rule.Contains {
			if strings.Contains(l, strings.ToLower(sub)) {
				return rule.Role
			}
		}
		for _, suffix := range rule.Suffixes {
			if strings.HasSuffix(l, strings.ToLower(suffix)) {
				return rule.Role
			}
		}
	}
	return model.RoleUnassigned
}
