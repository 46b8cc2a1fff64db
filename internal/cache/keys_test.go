package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "assessment",
			objectType:  "flow",
			identifier:  "01HZX",
			expectedKey: "careercounsel:assessment:flow:01HZX",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "assessment",
			objectType:  "flow",
			identifier:  "01HZX",
			paramsKey:   []string{},
			expectedKey: "careercounsel:assessment:flow:01HZX",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "results",
			objectType:  "status",
			identifier:  "sess",
			paramsKey:   []string{"school", "v2"},
			expectedKey: "careercounsel:results:status:sess:school_v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestNamedKeys(t *testing.T) {
	assert.Equal(t, "careercounsel:assessment:flow:abc", FlowKey("abc"))
	assert.Equal(t, "careercounsel:visitor:storage:v1", VisitorStorageKey("v1"))
}
