package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

// LoadStyle loads a CSS style from embedded assets by name.
// The name should not include the .css extension.
func LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// DefaultStyle returns the default stylesheet content.
// The default style is embedded, so failure to load it is a build defect;
// it panics rather than returning an error every caller would ignore.
func DefaultStyle() string {
	content, err := LoadStyle(DefaultStyleName)
	if err != nil {
		panic("assets: default style missing: " + err.Error())
	}
	return content
}
