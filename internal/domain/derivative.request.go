package domain

import (
	"fmt"
	"strings"
)

// DerivativeRequest is the unit of work for one delivery: which style to apply
// to which source, and where the result lives.
type DerivativeRequest struct {
	SourceURI     string
	Style         ImageStyle
	DerivativeURI string
	SecurityToken string
}

func NewDerivativeRequest(style ImageStyle, sourceURI, token string) (DerivativeRequest, error) {
	derivativeURI, err := DerivativeURI(style, sourceURI)
	if err != nil {
		return DerivativeRequest{}, err
	}
	return DerivativeRequest{
		SourceURI:     sourceURI,
		Style:         style,
		DerivativeURI: derivativeURI,
		SecurityToken: token,
	}, nil
}

// DerivativeURI maps a source to its cached derivative:
// public://a/b.png -> public://styles/<style>/public/a/b.png[.<ext>].
// It depends only on the style and the source URI.
func DerivativeURI(style ImageStyle, sourceURI string) (string, error) {
	scheme, target, ok := SplitURI(sourceURI)
	if !ok || target == "" {
		return "", fmt.Errorf("domain: malformed source uri %q", sourceURI)
	}
	return JoinURI(scheme, StylesPath(style.ID, scheme)+"/"+style.AddExtension(target)), nil
}

// StylesPath is the directory holding every derivative of style for sources in scheme.
func StylesPath(styleID, scheme string) string {
	return "styles/" + styleID + "/" + scheme
}

// IsDerivativeTarget reports whether target points into a styles tree.
func IsDerivativeTarget(target string) bool {
	return strings.HasPrefix(strings.TrimLeft(target, "/"), "styles/")
}
