package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinProfile(t *testing.T) {
	rawProfile := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultProfileData, &rawProfile))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Profile{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawProfile[jsonField]; !ok {
			assert.False(t, true, "default profile missing field: %q", jsonField)
		}
	}

	for k := range rawProfile {
		_, ok := knownFields[k]
		assert.True(t, ok, "default profile contains invalid field: %q", k)
	}
}

func TestDefaultProfile(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	profile := DefaultProfile()
	assert.NotNil(t, profile)
	assert.Nil(t, profile.Validate())
}

func TestValidatePrefix(t *testing.T) {
	cases := []struct {
		name    string
		prefix  string
		wantErr bool
	}{
		{"empty", "", false},
		{"at", "@", false},
		{"percent", "%", false},
		{"multi", "@@", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Profile{Prefix: tc.prefix}
			err := p.Validate()
			if tc.wantErr {
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	p := Profile{
		Prefix:      "%",
		StartupName: "options.rc",
		Default:     true,
		Current:     true,
	}
	opts := p.Options()

	assert.Equal(t, '%', opts.Prefix)
	assert.True(t, opts.Default)
	assert.False(t, opts.Home)
	assert.True(t, opts.Current)
	assert.NotNil(t, opts.StartupName)
}
