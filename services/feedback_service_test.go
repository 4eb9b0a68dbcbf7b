package services_test

import (
	"testing"

	"github.com/contrabandkitchen/backend/cart"
	"github.com/contrabandkitchen/backend/repository"
	"github.com/contrabandkitchen/backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackSubmit(t *testing.T) {
	repo := repository.NewFeedbackRepository(openTestDB(t))
	svc := services.NewFeedbackService(repo)

	require.NoError(t, svc.Submit(&services.FeedbackIn{Feedback: "Loved the lollipop", Rating: 5}))

	rows, err := repo.ListRecent(5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Rating)
}

func TestFeedbackRatingBounds(t *testing.T) {
	svc := services.NewFeedbackService(repository.NewFeedbackRepository(openTestDB(t)))

	err := svc.Submit(&services.FeedbackIn{Feedback: "meh", Rating: 0})
	require.Error(t, err)
	assert.True(t, cart.IsValidation(err))

	err = svc.Submit(&services.FeedbackIn{Feedback: "meh", Rating: 6})
	require.Error(t, err)
	assert.True(t, cart.IsValidation(err))
}
