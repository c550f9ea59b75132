package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseIntParam retrieves an int value from the provided URL query parameters.
// If the key is not present it returns 0 and false. An invalid value adds a
// message to fieldErrors.
func ParseIntParam(params url.Values, key string, fieldErrors map[string][]string) (int, bool, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := strings.TrimSpace(params.Get(key))
	if val == "" {
		return 0, false, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return 0, false, fieldErrors
	}
	return n, true, fieldErrors
}

// ParseYearParam reads a year from params. A missing year defaults to the
// last available one; a year outside available is a field error.
func ParseYearParam(params url.Values, key string, available []int, fieldErrors map[string][]string) (int, map[string][]string) {
	year, present, fieldErrors := ParseIntParam(params, key, fieldErrors)
	if len(fieldErrors[key]) > 0 {
		return 0, fieldErrors
	}
	if !present {
		if len(available) == 0 {
			fieldErrors[key] = append(fieldErrors[key], "no years available")
			return 0, fieldErrors
		}
		return available[len(available)-1], fieldErrors
	}
	if err := ValidateYear(year, available); err != nil {
		fieldErrors[key] = append(fieldErrors[key], err.Error())
	}
	return year, fieldErrors
}

// ParseChoiceParam reads a value that must be one of choices. A missing
// value returns the first choice.
func ParseChoiceParam(params url.Values, key string, choices []string, fieldErrors map[string][]string) (string, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}
	val := strings.TrimSpace(params.Get(key))
	if val == "" && len(choices) > 0 {
		return choices[0], fieldErrors
	}
	for _, c := range choices {
		if val == c {
			return val, fieldErrors
		}
	}
	fieldErrors[key] = append(fieldErrors[key],
		fmt.Sprintf("Invalid field value for field %q, want one of: %s.", key, strings.Join(choices, ", ")))
	return "", fieldErrors
}
