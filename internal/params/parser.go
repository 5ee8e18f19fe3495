package params

import (
	"fmt"
	"strings"

	"github.com/vvka-141/linkaudit/pkg/linkaudit"
)

// ParseForbiddenDomains converts "host=Label" strings into forbidden domains
// in the order given. A value without '=' is a bare host.
//
// Example:
//
//	domains, err := ParseForbiddenDomains([]string{"smartstore.naver.com=Smart Store"})
//	// Returns: []linkaudit.ForbiddenDomain{{Host: "smartstore.naver.com", Label: "Smart Store"}}
func ParseForbiddenDomains(pairs []string) ([]linkaudit.ForbiddenDomain, error) {
	result := make([]linkaudit.ForbiddenDomain, 0, len(pairs))
	seen := make(map[string]int, len(pairs))

	for _, pair := range pairs {
		host, label, _ := strings.Cut(pair, "=")
		host = strings.TrimSpace(host)
		label = strings.TrimSpace(label)

		if host == "" {
			return nil, fmt.Errorf("forbidden domain has empty host: %q (example: --forbidden-domain smartstore.naver.com=\"Smart Store\"): %w", pair, linkaudit.ErrInvalidConfig)
		}
		if strings.ContainsAny(host, " \t/") {
			return nil, fmt.Errorf("forbidden domain %q is not a host name: %w", host, linkaudit.ErrInvalidConfig)
		}

		// Repeating a host replaces its label but keeps its position.
		if i, ok := seen[host]; ok {
			result[i].Label = label
			continue
		}
		seen[host] = len(result)
		result = append(result, linkaudit.ForbiddenDomain{Host: host, Label: label})
	}

	return result, nil
}
