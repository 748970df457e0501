package config

import (
	_ "embed"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"

	"github.com/josephlewis42/argfile/core/argfile"
)

//go:embed default/profile.yaml
var defaultProfileData []byte

// ProfileName is the filename the CLI looks for when --profile names a
// directory.
const ProfileName = "profile.yaml"

// Profile holds the expansion defaults the CLI applies before flag
// overrides.
type Profile struct {
	// Prefix is the hint marker, a single character.
	Prefix string `json:"prefix" validate:"omitempty,len=1"`

	// StartupName overrides the startup option filename. Empty means
	// "." + basename of the program being expanded for.
	StartupName string `json:"startup_name"`

	Default bool `json:"default"`
	Home    bool `json:"home"`
	Current bool `json:"current"`
}

// Validate the profile for basic semantic errors.
func (p *Profile) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(p)
}

// Options converts the profile into expansion options. Reserved prefix
// characters are rejected later, by the expander itself.
func (p *Profile) Options() argfile.Options {
	opts := argfile.Options{
		Default: p.Default,
		Home:    p.Home,
		Current: p.Current,
	}
	if p.Prefix != "" {
		opts.Prefix, _ = utf8.DecodeRuneInString(p.Prefix)
	}
	if p.StartupName != "" {
		opts.StartupName = argfile.LiteralName(p.StartupName)
	}
	return opts
}

// DefaultProfile returns the built-in profile.
func DefaultProfile() *Profile {
	var out Profile
	if err := yaml.UnmarshalStrict(defaultProfileData, &out); err != nil {
		panic(err)
	}
	return &out
}
