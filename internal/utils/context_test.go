// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"context"
	"testing"
)

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name       string
		ctx        context.Context
		expectedID int64
		expectedOK bool
	}{
		{
			name:       "identified user",
			ctx:        context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
			expectedID: 42,
			expectedOK: true,
		},
		{
			name:       "anonymous request",
			ctx:        context.Background(),
			expectedOK: false,
		},
		{
			name:       "wrong value type",
			ctx:        context.WithValue(context.Background(), UserIDCtxKey, "42"),
			expectedOK: false,
		},
		{
			name:       "different key",
			ctx:        context.WithValue(context.Background(), contextKey("otherKey"), int64(99)),
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)

			if ok != tt.expectedOK {
				t.Fatalf("expected ok=%v, got %v", tt.expectedOK, ok)
			}
			if userID != tt.expectedID {
				t.Errorf("expected userID=%d, got %d", tt.expectedID, userID)
			}
		})
	}
}
