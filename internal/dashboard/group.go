package dashboard

import "fmt"

// Group selects which entities a chart covers.
type Group string

const (
	GroupCountries    Group = "countries"
	GroupIncomeGroups Group = "income-groups"
)

var Groups = []Group{GroupCountries, GroupIncomeGroups}

// ParseGroup accepts a group name; empty means countries.
func ParseGroup(s string) (Group, error) {
	switch Group(s) {
	case "", GroupCountries:
		return GroupCountries, nil
	case GroupIncomeGroups:
		return GroupIncomeGroups, nil
	default:
		return "", fmt.Errorf("unknown group %q, want %q or %q", s, GroupCountries, GroupIncomeGroups)
	}
}

func (g Group) Title() string {
	if g == GroupIncomeGroups {
		return "Grupos de ingreso"
	}
	return "Países"
}
