package validators

import "strings"

// IsEmailShapeValid checks the minimal local@domain.tld shape. No DNS
// lookups: catalog writes must not depend on network I/O.
func IsEmailShapeValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}

	return !strings.ContainsAny(email, " \t")
}
