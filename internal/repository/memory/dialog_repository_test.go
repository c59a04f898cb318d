package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostelnexus-be/pkg/dialog"
)

func TestDialogRepository(t *testing.T) {
	repo := NewDialogRepository()

	sess := dialog.NewSession("session-1", "student-1")
	sess.State = dialog.StateAwaitCategory
	sess.Draft.Title = "Leaky faucet"

	repo.Save(sess)

	got, found := repo.Get("session-1")
	assert.True(t, found)
	assert.Equal(t, dialog.StateAwaitCategory, got.State)
	assert.Equal(t, "Leaky faucet", got.Draft.Title)

	_, found = repo.Get("unknown")
	assert.False(t, found)

	repo.Delete("session-1")
	_, found = repo.Get("session-1")
	assert.False(t, found)
}
