package validate

import (
	"fmt"
	"strings"

	"github.com/rmonte/devfolio-backend/errs"
)

var operatingSystems = []string{"Windows", "Linux", "MacOS"}

// TechNames is the closed set of accepted technology names, as seeded into
// the technologies reference table.
var TechNames = []string{
	"JavaScript",
	"Python",
	"React",
	"Express.js",
	"HTML",
	"CSS",
	"Django",
	"PostgreSQL",
	"MongoDB",
}

// corrections fixes acronyms and compound names that plain capitalization
// gets wrong.
var corrections = map[string]string{
	"Macos":      "MacOS",
	"Javascript": "JavaScript",
	"Html":       "HTML",
	"Css":        "CSS",
	"Postgresql": "PostgreSQL",
	"Mongodb":    "MongoDB",
}

// NormalizeEnum case-corrects an enum-like value: first letter upper, rest
// lower, then the corrections table. Idempotent.
func NormalizeEnum(raw string) string {
	if raw == "" {
		return raw
	}
	normalized := strings.ToUpper(raw[:1]) + strings.ToLower(raw[1:])
	if fixed, ok := corrections[normalized]; ok {
		return fixed
	}
	return normalized
}

// OperatingSystem normalizes and checks a preferredOS value.
func OperatingSystem(raw string) (string, error) {
	name := NormalizeEnum(raw)
	for _, os := range operatingSystems {
		if name == os {
			return name, nil
		}
	}
	return "", errs.NewBadRequest(fmt.Sprintf("%q must be one of: %s", "preferredOS", strings.Join(operatingSystems, ", ")))
}

// TechnologyName normalizes and checks a technology name.
func TechnologyName(raw string) (string, error) {
	name := NormalizeEnum(raw)
	for _, tech := range TechNames {
		if name == tech {
			return name, nil
		}
	}
	return "", errs.NewBadRequest(fmt.Sprintf("technology name must be one of: %s", strings.Join(TechNames, ", ")))
}
