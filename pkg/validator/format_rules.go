package validator

import (
	"encoding/json"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/soterkit/soter/pkg/sanitizer"
)

var (
	domainCharsRegex   = regexp.MustCompile(`[^A-Za-z0-9.-]`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

const (
	domainMinLength = 3
	domainMaxLength = 254
	domainMinLabels = 2
	domainMaxLabels = 127
	labelMaxLength  = 63
)

// Email requires a non-empty string holding a bare e-mail address (no
// display name) whose domain has at least two labels.
func (v *Validator) Email(field string) Rule[string] {
	return newRule(v, field, func(in Input) (string, error) {
		value, ok := nonEmptyString(in, field)
		if !ok {
			return "", fail(CodeEmailMissing)
		}
		if !isEmail(value) {
			return "", fail(CodeEmailInvalid)
		}
		return value, nil
	})
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Name != "" || addr.Address != value {
		return false
	}

	localPart, domain, found := strings.Cut(addr.Address, "@")
	if !found || localPart == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL requires a non-empty string holding an absolute URL with a scheme
// and a host.
func (v *Validator) URL(field string) Rule[string] {
	return newRule(v, field, func(in Input) (string, error) {
		value, ok := nonEmptyString(in, field)
		if !ok {
			return "", fail(CodeURLMissing)
		}
		u, err := url.ParseRequestURI(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return "", fail(CodeURLInvalid)
		}
		return value, nil
	})
}

// JSON requires a string of 1 to 8 MiB characters (after trimming) that
// decodes as JSON, and returns the decoded value. Decoder failures carry
// CodeJSON, the decoder's message, and wrap the decoder's error so that
// errors.As finds e.g. *json.SyntaxError.
func (v *Validator) JSON(field string) Rule[any] {
	return newRule(v, field, func(in Input) (any, error) {
		text, err := checkString(in, field, 1, MaxStringLength, []Transform{sanitizer.Trim})
		if err != nil {
			return nil, err
		}
		var out any
		if err := json.Unmarshal([]byte(text), &out); err != nil {
			return nil, &failure{code: CodeJSON, cause: err}
		}
		return out, nil
	})
}

// FQDN requires a fully qualified domain name: 3 to 253 characters of
// letters, digits, dots and hyphens, 2 to 127 labels of 1 to 63
// characters that neither start nor end with a hyphen, and a last label
// that is not purely numeric.
func (v *Validator) FQDN(field string) Rule[string] {
	return newRule(v, field, func(in Input) (string, error) {
		fqdn, err := checkString(in, field, domainMinLength, domainMaxLength, []Transform{sanitizer.Trim})
		if err != nil {
			return "", asDomainFailure(err)
		}
		if domainCharsRegex.MatchString(fqdn) {
			return "", fail(CodeDomainCharacters)
		}

		labels := strings.Split(fqdn, ".")
		if len(labels) < domainMinLabels || len(labels) > domainMaxLabels {
			return "", fail(CodeDomainSize)
		}
		for _, label := range labels {
			if len(label) == 0 || len(label) > labelMaxLength {
				return "", fail(CodeDomainLabel)
			}
			if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
				return "", fail(CodeDomainLabel)
			}
		}
		if numericStringRegex.MatchString(labels[len(labels)-1]) {
			return "", fail(CodeDomainCharacters)
		}
		return fqdn, nil
	})
}

// asDomainFailure reports string failures of a domain in the domain band.
// Any length violation is a size problem of the name as a whole.
func asDomainFailure(err error) error {
	f, ok := err.(*failure)
	if !ok {
		return err
	}
	switch f.code {
	case CodeStringMissing:
		return fail(CodeDomainMissing)
	case CodeStringNotString:
		return fail(CodeDomainInvalid)
	case CodeStringTooShort, CodeStringTooLong:
		return fail(CodeDomainSize)
	default:
		return fail(CodeDomainCharacters)
	}
}

func nonEmptyString(in Input, field string) (string, bool) {
	raw, ok := in.get(field)
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok && s != ""
}
