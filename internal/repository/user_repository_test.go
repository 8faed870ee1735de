package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubhub/internal/model"
)

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name           string
		user           model.User
		expectedRole   string
		expectedStatus string
	}{
		{
			name:           "empty role and status fall back",
			user:           model.User{},
			expectedRole:   model.RoleMember,
			expectedStatus: model.StatusPending,
		},
		{
			name:           "stored values are kept",
			user:           model.User{Role: model.RoleAdmin, Status: model.StatusActive},
			expectedRole:   model.RoleAdmin,
			expectedStatus: model.StatusActive,
		},
		{
			name:           "only the missing field is defaulted",
			user:           model.User{Status: model.StatusActive},
			expectedRole:   model.RoleMember,
			expectedStatus: model.StatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applyDefaults(&tt.user)
			assert.Equal(t, tt.expectedRole, tt.user.Role)
			assert.Equal(t, tt.expectedStatus, tt.user.Status)
		})
	}
}
