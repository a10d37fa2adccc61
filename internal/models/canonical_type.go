package models

import (
	"path/filepath"
	"strings"
)

// CanonicalFileType is the closed enumeration governing prompt selection.
// It is never the raw file extension (spec.md §3).
type CanonicalFileType string

const (
	TypeJava        CanonicalFileType = "java"
	TypeJavaScript  CanonicalFileType = "javascript"
	TypeCSharp      CanonicalFileType = "csharp"
	TypeRuby        CanonicalFileType = "ruby"
	TypePython      CanonicalFileType = "python"
	TypeSQL         CanonicalFileType = "sql"
	TypeXML         CanonicalFileType = "xml"
	TypeJSP         CanonicalFileType = "jsp"
	TypeMarkdown    CanonicalFileType = "markdown"
	TypeMaven       CanonicalFileType = "maven"
	TypeGradle      CanonicalFileType = "gradle"
	TypeAnt         CanonicalFileType = "ant"
	TypeNPM         CanonicalFileType = "npm"
	TypeDotNetProj  CanonicalFileType = "dotnet-proj"
	TypeNuGet       CanonicalFileType = "nuget"
	TypeRubyBundler CanonicalFileType = "ruby-bundler"
	TypePythonPip   CanonicalFileType = "python-pip"
	TypePythonSetup CanonicalFileType = "python-setup"
	TypePoetry      CanonicalFileType = "python-poetry"
	TypeShellScript CanonicalFileType = "shell-script"
	TypeBatchScript CanonicalFileType = "batch-script"
	TypeJCL         CanonicalFileType = "jcl"
	TypeDefault     CanonicalFileType = "default"
)

// filenameTypes maps exact, lowercased basenames to their canonical type.
// Checked before the extension map (spec.md §3 resolution order step 1).
var filenameTypes = map[string]CanonicalFileType{
	"pom.xml":          TypeMaven,
	"build.gradle":     TypeGradle,
	"build.gradle.kts": TypeGradle,
	"build.xml":        TypeAnt,
	"package.json":     TypeNPM,
	"gemfile":          TypeRubyBundler,
	"requirements.txt": TypePythonPip,
	"setup.py":         TypePythonSetup,
	"pyproject.toml":   TypePoetry,
}

// extensionTypes maps lowercased file extensions (with leading dot) to their
// canonical type. Checked after the filename map (step 2).
var extensionTypes = map[string]CanonicalFileType{
	".java":    TypeJava,
	".js":      TypeJavaScript,
	".jsx":     TypeJavaScript,
	".ts":      TypeJavaScript,
	".tsx":     TypeJavaScript,
	".cs":      TypeCSharp,
	".rb":      TypeRuby,
	".py":      TypePython,
	".sql":     TypeSQL,
	".xml":     TypeXML,
	".jsp":     TypeJSP,
	".md":      TypeMarkdown,
	".markdown": TypeMarkdown,
	".csproj":  TypeDotNetProj,
	".vbproj":  TypeDotNetProj,
	".nuspec":  TypeNuGet,
	".sh":      TypeShellScript,
	".bash":    TypeShellScript,
	".bat":     TypeBatchScript,
	".cmd":     TypeBatchScript,
	".jcl":     TypeJCL,
}

// BinaryExtensions is the ignore list checked by the Capture Orchestrator
// (spec.md §4.9 step 4a) before a file is ever read.
var BinaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".ico": true,
	".zip": true, ".jar": true, ".war": true, ".ear": true, ".tar": true, ".gz": true,
	".class": true, ".exe": true, ".dll": true, ".so": true, ".dylib": true,
	".pdf": true, ".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp3": true, ".mp4": true, ".mov": true, ".avi": true,
}

// ResolveCanonicalType implements the three-step resolution order from
// spec.md §3: exact filename match, then extension match, then "default".
// It never errors — C1's registry lookup always has a type to key on.
func ResolveCanonicalType(filepathStr string) CanonicalFileType {
	base := strings.ToLower(filepath.Base(filepathStr))
	if t, ok := filenameTypes[base]; ok {
		return t
	}

	ext := strings.ToLower(filepath.Ext(filepathStr))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}

	return TypeDefault
}

// IsBinaryExtension reports whether a path's extension is in the ignore list.
func IsBinaryExtension(filepathStr string) bool {
	ext := strings.ToLower(filepath.Ext(filepathStr))
	return BinaryExtensions[ext]
}
