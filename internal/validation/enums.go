package validation

import "strings"

// Invalid is the sentinel substituted for any controlled-vocabulary value an
// LLM response supplies that doesn't match the closed set, per spec.md §4.2.
const Invalid = "INVALID"

// DefaultComplexity is substituted when a complexity field is entirely
// absent from the model's response. A field that is present but holds an
// unrecognized value still normalizes to Invalid — only true absence gets
// the default (spec.md §9 Open Questions).
const DefaultComplexity = "MEDIUM"

// complexityValues, mechanismValues, etc. are the closed vocabularies
// referenced by models.Summary's enum-like string fields. Kept as sets
// rather than Go enums because they arrive as free-text JSON from the LLM
// and must be normalized defensively.
var (
	complexityValues = set("LOW", "MEDIUM", "HIGH")

	codeSmellValues = set(
		"LONG_METHOD", "GOD_CLASS", "DUPLICATE_CODE", "DEAD_CODE",
		"MAGIC_NUMBER", "DEEP_NESTING", "LARGE_PARAMETER_LIST",
	)

	dbMechanismValues = set("JDBC", "ORM", "EMBEDDED_SQL", "STORED_PROCEDURE", "NATIVE_DRIVER")

	operationTypeValues = set("READ", "WRITE", "READ_WRITE", "DDL")

	integrationMechanismValues = set(
		"REST", "SOAP", "MESSAGE_QUEUE", "RPC", "FILE_TRANSFER", "GRPC",
	)

	integrationDirectionValues = set("INBOUND", "OUTBOUND", "BIDIRECTIONAL")
)

func set(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// normalizeEnum uppercases raw and returns it if it belongs to allowed,
// otherwise returns Invalid. Empty input stays empty — absence is not the
// same as an unrecognized value (spec.md §9 Open Questions).
func normalizeEnum(raw string, allowed map[string]bool) string {
	if raw == "" {
		return ""
	}
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if allowed[upper] {
		return upper
	}
	return Invalid
}

// NormalizeComplexity normalizes a free-text complexity rating.
func NormalizeComplexity(raw string) string { return normalizeEnum(raw, complexityValues) }

// ComplexityOrDefault applies DefaultComplexity when raw is entirely absent,
// otherwise normalizes raw as usual (an unrecognized non-empty value still
// becomes Invalid, never the default).
func ComplexityOrDefault(raw string) string {
	if raw == "" {
		return DefaultComplexity
	}
	return NormalizeComplexity(raw)
}

// NormalizeCodeSmells normalizes a list of free-text code smell labels.
func NormalizeCodeSmells(raw []string) []string {
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i] = normalizeEnum(v, codeSmellValues)
	}
	return out
}

// NormalizeDBMechanism normalizes a free-text database-integration mechanism.
func NormalizeDBMechanism(raw string) string { return normalizeEnum(raw, dbMechanismValues) }

// NormalizeOperationType normalizes a free-text database/integration operation type.
func NormalizeOperationType(raw string) string { return normalizeEnum(raw, operationTypeValues) }

// NormalizeIntegrationMechanism normalizes a free-text integration mechanism.
func NormalizeIntegrationMechanism(raw string) string {
	return normalizeEnum(raw, integrationMechanismValues)
}

// NormalizeIntegrationDirection normalizes a free-text integration direction.
func NormalizeIntegrationDirection(raw string) string {
	return normalizeEnum(raw, integrationDirectionValues)
}
