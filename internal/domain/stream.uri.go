package domain

import "strings"

const schemeSeparator = "://"

// SplitURI splits "public://a/b.png" into "public" and "a/b.png".
func SplitURI(uri string) (scheme, target string, ok bool) {
	scheme, target, ok = strings.Cut(uri, schemeSeparator)
	if !ok || scheme == "" {
		return "", "", false
	}
	return scheme, strings.TrimLeft(target, "/"), true
}

func JoinURI(scheme, target string) string {
	return scheme + schemeSeparator + strings.TrimLeft(target, "/")
}
