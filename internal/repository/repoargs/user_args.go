package repoargs

type CreateUser struct {
	Phone          *string
	Email          *string
	PasswordHash   string
	InvitationCode string
	ReferredBy     *string
}
