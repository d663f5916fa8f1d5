package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTestDatabaseURL(t *testing.T) {
	tests := []struct {
		name       string
		dbURL      string
		fallback   string
		want       string
		integrated bool
	}{
		{name: "neither set", want: ""},
		{name: "DATABASE_URL wins", dbURL: "postgres://a", fallback: "postgres://b", want: "postgres://a", integrated: true},
		{name: "fallback used", fallback: "postgres://b", want: "postgres://b", integrated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", tt.dbURL)
			t.Setenv(TestDatabaseURLEnv, tt.fallback)

			assert.Equal(t, tt.want, GetTestDatabaseURL())
			assert.Equal(t, tt.integrated, IsIntegrationTestEnvironment())
		})
	}
}
