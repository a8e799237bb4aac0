package main

import (
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGinModeSelection(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{name: "unset defaults to release", env: "", want: gin.ReleaseMode},
		{name: "debug passes through", env: "debug", want: gin.DebugMode},
		{name: "release passes through", env: "release", want: gin.ReleaseMode},
		{name: "test passes through", env: "test", want: gin.TestMode},
		{name: "garbage falls back to release", env: "verbose", want: gin.ReleaseMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GIN_MODE", tt.env)
			if got := ginMode(); got != tt.want {
				t.Errorf("ginMode() = %q, want %q", got, tt.want)
			}
		})
	}
}
