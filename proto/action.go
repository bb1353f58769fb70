package proto

import (
	"fmt"
	"regexp"
	"strings"
)

// actionPattern is the shape of a remote method name. The ThirdLight
// documentation writes them as Module.Method; this client additionally
// accepts the underscore form (Files_GetAssetDetails) used throughout the
// original API examples.
var actionPattern = regexp.MustCompile(`^[A-Z][a-zA-Z]*[._][A-Z][a-zA-Z]*$`)

// Action identifies one remote API method.
type Action struct {
	Module string
	Method string
}

// String renders the action the way the wire expects it, Module.Method.
func (a Action) String() string {
	return a.Module + "." + a.Method
}

// ParseAction parses an action name in either the dotted wire form
// (Files.GetAssetDetails) or the underscore form (Files_GetAssetDetails).
func ParseAction(name string) (Action, error) {
	if !actionPattern.MatchString(name) {
		return Action{}, fmt.Errorf("invalid action name: %q", name)
	}

	sep := "."
	if strings.ContainsRune(name, '_') {
		sep = "_"
	}

	module, method, _ := strings.Cut(name, sep)
	return Action{Module: module, Method: method}, nil
}
