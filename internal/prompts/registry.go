// Package prompts implements the Prompt Template Registry (C1): a pure
// lookup from canonical file type to the template used to render that
// file's summarization prompt. The registry performs no string
// interpolation itself — that happens in internal/capture when a template
// is combined with a specific file's content.
package prompts

import "github.com/ternarybob/codescribe/internal/models"

// Template is the PromptTemplate shape from spec.md §4.1.
type Template struct {
	ResponseSchema         []string // required top-level JSON field names
	ContentDescription     string
	Instructions           string
	WrapContentInCodeBlock bool
	HasComplexSchema       bool
}

const defaultKey = "default"

// registry maps canonical file type to its template. It is a package-level
// map literal, so Lookup stays a pure, allocation-free map read.
var registry = map[models.CanonicalFileType]Template{
	models.TypeDefault: {
		ResponseSchema:     []string{"purpose", "implementation"},
		ContentDescription: "source file of unspecified type",
		Instructions: "Summarize this file's purpose and implementation in plain prose. " +
			"List any internal and external references you can identify.",
		WrapContentInCodeBlock: true,
	},
	models.TypeJava: {
		ResponseSchema:     []string{"purpose", "implementation"},
		ContentDescription: "Java source file",
		Instructions: "Identify the primary class or interface name, its package namespace, and kind " +
			"(class, interface, enum, abstract class). Summarize its purpose and implementation. " +
			"List public methods with signatures and a complexity rating (LOW, MEDIUM, HIGH). " +
			"Flag direct database access (mechanism: JDBC, ORM, EMBEDDED_SQL, STORED_PROCEDURE, NATIVE_DRIVER) " +
			"and any external integration points (mechanism: REST, SOAP, MESSAGE_QUEUE, RPC, FILE_TRANSFER, GRPC; " +
			"direction: INBOUND, OUTBOUND, BIDIRECTIONAL).",
		WrapContentInCodeBlock: true,
		HasComplexSchema:       true,
	},
	models.TypeCSharp: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "C# source file",
		Instructions:           "Identify the primary class or interface name and namespace. Summarize its purpose and implementation, public methods, and any database or integration touchpoints.",
		WrapContentInCodeBlock: true,
		HasComplexSchema:       true,
	},
	models.TypePython: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "Python source file",
		Instructions:           "Identify the primary module, class, or function defined here. Summarize its purpose and implementation, public functions/methods, and any database or integration touchpoints.",
		WrapContentInCodeBlock: true,
		HasComplexSchema:       true,
	},
	models.TypeJavaScript: {
		ResponseSchema:     []string{"purpose", "implementation"},
		ContentDescription: "JavaScript/TypeScript source file",
		Instructions: "Summarize this file's purpose and implementation. If it defines UI components, name the " +
			"UI framework in use. List exported functions/classes and any API or database calls.",
		WrapContentInCodeBlock: true,
	},
	models.TypeRuby: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "Ruby source file",
		Instructions:           "Identify the primary class or module. Summarize its purpose and implementation, public methods, and any database or integration touchpoints.",
		WrapContentInCodeBlock: true,
	},
	models.TypeSQL: {
		ResponseSchema:     []string{"purpose", "implementation"},
		ContentDescription: "SQL script",
		Instructions: "Summarize what this script does. List every stored procedure and trigger it defines or " +
			"references, and classify each DML/DDL statement by operation type (READ, WRITE, READ_WRITE, DDL).",
		WrapContentInCodeBlock: true,
		HasComplexSchema:       true,
	},
	models.TypeXML: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "XML configuration or descriptor file",
		Instructions:           "Summarize the purpose of this configuration file and the systems or frameworks it configures.",
		WrapContentInCodeBlock: true,
	},
	models.TypeJSP: {
		ResponseSchema:     []string{"purpose", "implementation"},
		ContentDescription: "JSP page",
		Instructions: "Summarize this page's purpose. Report scriptlet line count and any embedded SQL query count. " +
			"Identify the UI framework or tag library in use, if any.",
		WrapContentInCodeBlock: true,
		HasComplexSchema:       true,
	},
	models.TypeMarkdown: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "Markdown documentation file",
		Instructions:           "Summarize the document's purpose and main sections. Treat headings and lists as structural hints, not prose to restate verbatim.",
		WrapContentInCodeBlock: false,
	},
	models.TypeMaven: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "Maven project descriptor",
		Instructions:           "List the declared dependencies with name and version, and summarize the build's purpose.",
		WrapContentInCodeBlock: true,
	},
	models.TypeGradle: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "Gradle build script",
		Instructions:           "List the declared dependencies with name and version, and summarize the build's purpose.",
		WrapContentInCodeBlock: true,
	},
	models.TypeAnt: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "Ant build descriptor",
		Instructions:           "Summarize the build targets and their purpose.",
		WrapContentInCodeBlock: true,
	},
	models.TypeNPM: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "npm package manifest",
		Instructions:           "List the declared dependencies with name and version, and summarize the package's purpose from its scripts and metadata.",
		WrapContentInCodeBlock: true,
	},
	models.TypeDotNetProj: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     ".NET project descriptor",
		Instructions:           "List the declared package references with name and version, and summarize the project's purpose.",
		WrapContentInCodeBlock: true,
	},
	models.TypeNuGet: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "NuGet package specification",
		Instructions:           "List the declared dependencies with name and version, and summarize the package's purpose.",
		WrapContentInCodeBlock: true,
	},
	models.TypeRubyBundler: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "Ruby Bundler gemfile",
		Instructions:           "List the declared gem dependencies with name and version.",
		WrapContentInCodeBlock: true,
	},
	models.TypePythonPip: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "pip requirements file",
		Instructions:           "List the declared dependencies with name and version.",
		WrapContentInCodeBlock: true,
	},
	models.TypePythonSetup: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "Python setup script",
		Instructions:           "Summarize the package's purpose and list its declared dependencies.",
		WrapContentInCodeBlock: true,
	},
	models.TypePoetry: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "Poetry project descriptor",
		Instructions:           "Summarize the package's purpose and list its declared dependencies with version constraints.",
		WrapContentInCodeBlock: true,
	},
	models.TypeShellScript: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "shell script",
		Instructions:           "Summarize what this script automates and any scheduled-job context implied by its name or content.",
		WrapContentInCodeBlock: true,
	},
	models.TypeBatchScript: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "Windows batch script",
		Instructions:           "Summarize what this script automates.",
		WrapContentInCodeBlock: true,
	},
	models.TypeJCL: {
		ResponseSchema:         []string{"purpose", "implementation"},
		ContentDescription:     "JCL job definition",
		Instructions:           "Summarize the job steps and any scheduled-job metadata (name, schedule, detail).",
		WrapContentInCodeBlock: true,
		HasComplexSchema:       true,
	},
}

// Lookup returns the template for detectedType, falling back to the default
// template for any type not explicitly registered. It never errors — a
// missing entry is not a caller mistake, just an unhandled file type.
func Lookup(detectedType models.CanonicalFileType) Template {
	if t, ok := registry[detectedType]; ok {
		return t
	}
	return registry[models.TypeDefault]
}
