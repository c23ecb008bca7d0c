package main

import (
	"regexp"
)

var docNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.\-]{0,62}$`)

func isDocName(name string) bool {
	return docNameRegexp.MatchString(name)
}
