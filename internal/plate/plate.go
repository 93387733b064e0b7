package plate

import "strings"

// Normalize canonicalizes a free-text license plate for use as a lookup key:
// upper-cased, with whitespace and hyphens stripped. ok is false when the
// input contains nothing usable ("ZH 123-45" and "zh12345" both normalize
// to "ZH12345").
func Normalize(raw string) (key string, ok bool) {
    var b strings.Builder
    for _, r := range raw {
        switch r {
        case ' ', '\t', '\n', '\r', '-':
            continue
        }
        b.WriteRune(r)
    }
    key = strings.ToUpper(b.String())
    return key, key != ""
}
