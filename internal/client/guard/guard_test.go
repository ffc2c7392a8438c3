package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbs-dev/blogctl/internal/client/models"
)

type fakeSession struct {
	ready bool
	auth  bool
	user  *models.User
}

func (f *fakeSession) Ready() bool           { return f.ready }
func (f *fakeSession) IsAuthenticated() bool { return f.auth }
func (f *fakeSession) User() *models.User    { return f.user }

func TestCheck(t *testing.T) {
	author := &models.User{ID: 1, Roles: []models.Role{models.RoleAuthor, models.RoleUser}}
	reader := &models.User{ID: 2, Roles: []models.Role{models.RoleUser}}

	tests := []struct {
		name     string
		session  *fakeSession
		required models.Role
		want     Decision
	}{
		{
			name:     "hydrating blocks rendering",
			session:  &fakeSession{},
			required: models.RoleAuthor,
			want:     Wait,
		},
		{
			name:     "unauthenticated redirects to login",
			session:  &fakeSession{ready: true},
			required: models.RoleAuthor,
			want:     RedirectLogin,
		},
		{
			name:     "missing role redirects to public view",
			session:  &fakeSession{ready: true, auth: true, user: reader},
			required: models.RoleAuthor,
			want:     RedirectPublic,
		},
		{
			name:     "role present allows",
			session:  &fakeSession{ready: true, auth: true, user: author},
			required: models.RoleAuthor,
			want:     Allow,
		},
		{
			name:     "role check is set membership",
			session:  &fakeSession{ready: true, auth: true, user: author},
			required: models.RoleUser,
			want:     Allow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.session, tt.required))
		})
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "wait", Wait.String())
	assert.Equal(t, "allow", Allow.String())
}
