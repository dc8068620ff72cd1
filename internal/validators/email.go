package validators

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const lookupTimeout = 3 * time.Second

var validate = validator.New()

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail checks the address syntax. Callers normalise first so that
// surrounding whitespace and case do not matter.
func IsEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// HasMailDomain reports whether the domain part of email resolves to an MX
// record or, failing that, to any address.
func HasMailDomain(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	var resolver net.Resolver

	if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
