package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCanonicalType_FilenameWins(t *testing.T) {
	assert.Equal(t, TypeMaven, ResolveCanonicalType("project/pom.xml"))
	assert.Equal(t, TypeNPM, ResolveCanonicalType("package.json"))
	assert.Equal(t, TypePoetry, ResolveCanonicalType("pyproject.toml"))
}

func TestResolveCanonicalType_ExtensionFallback(t *testing.T) {
	assert.Equal(t, TypeJava, ResolveCanonicalType("src/main/App.java"))
	assert.Equal(t, TypeJavaScript, ResolveCanonicalType("src/index.tsx"))
	assert.Equal(t, TypeMarkdown, ResolveCanonicalType("README.md"))
}

func TestResolveCanonicalType_DefaultWhenUnknown(t *testing.T) {
	assert.Equal(t, TypeDefault, ResolveCanonicalType("Dockerfile"))
	assert.Equal(t, TypeDefault, ResolveCanonicalType("config.yaml"))
}

func TestResolveCanonicalType_CaseInsensitive(t *testing.T) {
	assert.Equal(t, TypeMaven, ResolveCanonicalType("POM.XML"))
	assert.Equal(t, TypeJava, ResolveCanonicalType("App.JAVA"))
}

func TestIsBinaryExtension(t *testing.T) {
	assert.True(t, IsBinaryExtension("logo.PNG"))
	assert.True(t, IsBinaryExtension("lib.jar"))
	assert.False(t, IsBinaryExtension("main.go"))
}
