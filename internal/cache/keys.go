package cache

import "strings"

const (
	GlobalKeyPrefix = "careercounsel"
)

// GenerateCacheKey builds "careercounsel:<service>:<object>:<id>[:<params>]".
// Extra params are joined by "_".
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// FlowKey addresses the persisted state of one assessment flow.
func FlowKey(flowID string) string {
	return GenerateCacheKey("assessment", "flow", flowID)
}

// VisitorStorageKey addresses a visitor's storage hash.
func VisitorStorageKey(visitorID string) string {
	return GenerateCacheKey("visitor", "storage", visitorID)
}
