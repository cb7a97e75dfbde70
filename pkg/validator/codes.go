package validator

import "fmt"

// Code identifies a failure condition. Codes are grouped in bands of ten
// per rule family and never change meaning.
type Code int

const (
	CodeIntMissing    Code = 1
	CodeIntNotNumeric Code = 2
	CodeIntTooSmall   Code = 3
	CodeIntTooLarge   Code = 4

	CodeFloatMissing    Code = 11
	CodeFloatNotNumeric Code = 12
	CodeFloatTooSmall   Code = 13
	CodeFloatTooLarge   Code = 14

	CodeKeyMissing Code = 21
	CodeKeyUnknown Code = 22

	CodeValueMissing Code = 31
	CodeValueUnknown Code = 32

	CodeStringMissing   Code = 41
	CodeStringNotString Code = 42
	CodeStringTooShort  Code = 43
	CodeStringTooLong   Code = 44
	CodeStringEncoding  Code = 45

	CodeObjectMissing  Code = 51
	CodeObjectNotFound Code = 52

	CodeListMissing Code = 61
	CodeListNotList Code = 62
	CodeListSize    Code = 63

	CodeDateMissing  Code = 81
	CodeDateInvalid  Code = 82
	CodeDateTooEarly Code = 83
	CodeDateTooLate  Code = 84

	CodeFileMissing     Code = 91
	CodeFileNone        Code = 92
	CodeFileNoError     Code = 93
	CodeFileTooSmall    Code = 94
	CodeFileTooLarge    Code = 95
	CodeFileUploadError Code = 96

	CodePatternMissing  Code = 101
	CodePatternNone     Code = 102
	CodePatternMismatch Code = 103

	CodeEmailMissing Code = 111
	CodeEmailInvalid Code = 112

	CodeURLMissing Code = 121
	CodeURLInvalid Code = 122

	CodeDomainMissing    Code = 131
	CodeDomainInvalid    Code = 132
	CodeDomainSize       Code = 133
	CodeDomainLabel      Code = 134
	CodeDomainCharacters Code = 135

	CodeUUIDMissing Code = 141
	CodeUUIDInvalid Code = 142

	// CodeJSON marks a failure reported by the JSON decoder. The
	// ValidationError wraps the decoder's own error and reuses its message.
	CodeJSON Code = 150
)

var codeKeys = map[Code]string{
	CodeIntMissing:    "int.missing",
	CodeIntNotNumeric: "int.not_numeric",
	CodeIntTooSmall:   "int.too_small",
	CodeIntTooLarge:   "int.too_large",

	CodeFloatMissing:    "float.missing",
	CodeFloatNotNumeric: "float.not_numeric",
	CodeFloatTooSmall:   "float.too_small",
	CodeFloatTooLarge:   "float.too_large",

	CodeKeyMissing: "key.missing",
	CodeKeyUnknown: "key.unknown",

	CodeValueMissing: "value.missing",
	CodeValueUnknown: "value.unknown",

	CodeStringMissing:   "string.missing",
	CodeStringNotString: "string.not_string",
	CodeStringTooShort:  "string.too_short",
	CodeStringTooLong:   "string.too_long",
	CodeStringEncoding:  "string.encoding",

	CodeObjectMissing:  "object.missing",
	CodeObjectNotFound: "object.not_found",

	CodeListMissing: "list.missing",
	CodeListNotList: "list.not_list",
	CodeListSize:    "list.size",

	CodeDateMissing:  "date.missing",
	CodeDateInvalid:  "date.invalid",
	CodeDateTooEarly: "date.too_early",
	CodeDateTooLate:  "date.too_late",

	CodeFileMissing:     "file.missing",
	CodeFileNone:        "file.none",
	CodeFileNoError:     "file.no_error",
	CodeFileTooSmall:    "file.too_small",
	CodeFileTooLarge:    "file.too_large",
	CodeFileUploadError: "file.upload_error",

	CodePatternMissing:  "pattern.missing",
	CodePatternNone:     "pattern.none",
	CodePatternMismatch: "pattern.mismatch",

	CodeEmailMissing: "email.missing",
	CodeEmailInvalid: "email.invalid",

	CodeURLMissing: "url.missing",
	CodeURLInvalid: "url.invalid",

	CodeDomainMissing:    "domain.missing",
	CodeDomainInvalid:    "domain.invalid",
	CodeDomainSize:       "domain.size",
	CodeDomainLabel:      "domain.label",
	CodeDomainCharacters: "domain.characters",

	CodeUUIDMissing: "uuid.missing",
	CodeUUIDInvalid: "uuid.invalid",

	CodeJSON: "json.invalid",
}

// String returns the dotted key of the code, e.g. "int.too_small".
func (c Code) String() string {
	if key, ok := codeKeys[c]; ok {
		return key
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// TranslationKey returns the i18n key used for the code.
func (c Code) TranslationKey() string {
	return "validation." + c.String()
}

// Delegated reports whether failures with this code come from a parser
// the validator delegates to rather than from a rule of its own.
func (c Code) Delegated() bool {
	return c == CodeJSON
}

// codeByKey resolves a dotted key back to its code.
func codeByKey(key string) (Code, bool) {
	for code, k := range codeKeys {
		if k == key {
			return code, true
		}
	}
	return 0, false
}
