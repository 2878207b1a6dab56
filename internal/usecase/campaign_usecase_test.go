package usecase

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"crowdfund/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type campaignFixture struct {
	uc       CampaignUseCase
	creator  *entity.User
	admin    *entity.User
	stranger *entity.User
	campaign *entity.Campaign
	images   *fakeImageStore
}

func newCampaignFixture(t *testing.T) *campaignFixture {
	store := newTestStore(t)
	images := &fakeImageStore{}
	f := &campaignFixture{
		uc:       NewCampaignUseCase(store, images, testLogger()),
		creator:  seedUser(t, store, "creator", entity.RoleCreator),
		admin:    seedUser(t, store, "admin", entity.RoleAdmin),
		stranger: seedUser(t, store, "stranger", entity.RoleCreator),
		images:   images,
	}
	f.campaign = seedCampaign(t, store, f.creator.ID, "Solar Kiosk")
	return f
}

func (f *campaignFixture) owner() Actor {
	return Actor{UserID: f.creator.ID, Role: entity.RoleCreator}
}

func (f *campaignFixture) adminActor() Actor {
	return Actor{UserID: f.admin.ID, Role: entity.RoleAdmin}
}

func TestCreateCampaign_Defaults(t *testing.T) {
	f := newCampaignFixture(t)

	assert.Equal(t, entity.CampaignPending, f.campaign.Status)
	assert.Equal(t, entity.CategoryTechnology, f.campaign.Category)
	assert.True(t, f.campaign.RaisedAmount.IsZero())
	assert.False(t, f.campaign.StartDate.IsZero())

	stored, err := f.uc.GetCampaign(context.Background(), f.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, "Solar Kiosk", stored.Title)
	assert.True(t, stored.GoalAmount.Equal(decimal.NewFromInt(1000)))
}

func TestCreateCampaign_Validation(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()
	past := time.Now().Add(-48 * time.Hour)

	cases := []CreateCampaignInput{
		{CreatorID: f.creator.ID, Title: "", Category: "Arts", GoalAmount: decimal.NewFromInt(10)},
		{CreatorID: f.creator.ID, Title: "Gallery", Category: "Gaming", GoalAmount: decimal.NewFromInt(10)},
		{CreatorID: f.creator.ID, Title: "Gallery", Category: "Arts", GoalAmount: decimal.Zero},
		{CreatorID: f.creator.ID, Title: "Gallery", Category: "Arts", GoalAmount: decimal.NewFromInt(10), Status: "archived"},
		{CreatorID: f.creator.ID, Title: "Gallery", Category: "Arts", GoalAmount: decimal.NewFromInt(10), EndDate: &past},
	}
	for _, input := range cases {
		_, err := f.uc.CreateCampaign(ctx, input)
		assert.ErrorIs(t, err, entity.ErrValidation, "%+v", input)
	}

	_, err := f.uc.CreateCampaign(ctx, CreateCampaignInput{
		CreatorID:  9999,
		Title:      "Orphan",
		Category:   "Arts",
		GoalAmount: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateStatus_SameStatusIsNoOp(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	result, err := f.uc.UpdateStatus(ctx, f.adminActor(), f.campaign.ID, "pending")
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Nil(t, result.Log)
	assert.Equal(t, entity.CampaignPending, result.Campaign.Status)

	updates, err := f.uc.ListUpdates(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestUpdateStatus_LogsTypedDiff(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	result, err := f.uc.UpdateStatus(ctx, f.adminActor(), f.campaign.ID, "active")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, entity.CampaignApproved, result.Campaign.Status)

	updates, err := f.uc.ListUpdates(ctx, f.campaign.ID)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, []entity.FieldChange{{Field: "status", Old: "pending", New: "approved"}}, updates[0].Changes)
	require.NotNil(t, updates[0].UserID)
	assert.Equal(t, f.admin.ID, *updates[0].UserID)

	again, err := f.uc.Approve(ctx, f.adminActor(), f.campaign.ID)
	require.NoError(t, err)
	assert.False(t, again.Changed)

	updates, err = f.uc.ListUpdates(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Len(t, updates, 1)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	_, err := f.uc.UpdateStatus(ctx, f.adminActor(), f.campaign.ID, "completed")
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)

	_, err = f.uc.UpdateStatus(ctx, f.adminActor(), f.campaign.ID, "approved")
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(ctx, f.adminActor(), f.campaign.ID, "pending")
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
	_, err = f.uc.UpdateStatus(ctx, f.adminActor(), f.campaign.ID, "completed")
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(ctx, f.adminActor(), f.campaign.ID, "bogus")
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = f.uc.UpdateStatus(ctx, f.adminActor(), 9999, "approved")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	stored, err := f.uc.GetCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignCompleted, stored.Status)
}

func TestUpdateCampaign_OneLogRowForAllChanges(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	title := "Solar Kiosk v2"
	goal := decimal.NewFromInt(2500)
	sameCategory := "technology"
	result, err := f.uc.UpdateCampaign(ctx, f.owner(), f.campaign.ID, CampaignPatch{
		Title:      &title,
		GoalAmount: &goal,
		Category:   &sameCategory,
	})
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, title, result.Campaign.Title)

	updates, err := f.uc.ListUpdates(ctx, f.campaign.ID)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, []entity.FieldChange{
		{Field: "title", Old: "Solar Kiosk", New: "Solar Kiosk v2"},
		{Field: "goal_amount", Old: "1000.00", New: "2500.00"},
	}, updates[0].Changes)

	unchanged, err := f.uc.UpdateCampaign(ctx, f.owner(), f.campaign.ID, CampaignPatch{Title: &title})
	require.NoError(t, err)
	assert.False(t, unchanged.Changed)

	updates, err = f.uc.ListUpdates(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Len(t, updates, 1)
}

func TestUpdateCampaign_RaisedAmountNeverNegative(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	raised := decimal.NewFromInt(300)
	_, err := f.uc.UpdateCampaign(ctx, f.owner(), f.campaign.ID, CampaignPatch{RaisedAmount: &raised})
	require.NoError(t, err)

	negative := decimal.NewFromInt(-1)
	_, err = f.uc.UpdateCampaign(ctx, f.owner(), f.campaign.ID, CampaignPatch{RaisedAmount: &negative})
	assert.ErrorIs(t, err, entity.ErrValidation)

	stored, err := f.uc.GetCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.True(t, stored.RaisedAmount.Equal(raised))
	assert.False(t, stored.RaisedAmount.IsNegative())
}

func TestUpdateCampaign_OnlyOwnerOrAdmin(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	title := "Hijacked"
	_, err := f.uc.UpdateCampaign(ctx, Actor{UserID: f.stranger.ID, Role: entity.RoleCreator}, f.campaign.ID, CampaignPatch{Title: &title})
	assert.ErrorIs(t, err, entity.ErrForbidden)

	result, err := f.uc.UpdateCampaign(ctx, f.adminActor(), f.campaign.ID, CampaignPatch{Title: &title})
	require.NoError(t, err)
	assert.True(t, result.Changed)

	err = f.uc.DeleteCampaign(ctx, Actor{UserID: f.stranger.ID, Role: entity.RoleCreator}, f.campaign.ID)
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestUpdateStatus_Authorization(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()
	stranger := Actor{UserID: f.stranger.ID, Role: entity.RoleDonor}

	for _, status := range []string{"approved", "rejected", "completed"} {
		_, err := f.uc.UpdateStatus(ctx, stranger, f.campaign.ID, status)
		assert.ErrorIs(t, err, entity.ErrForbidden, status)
	}

	_, err := f.uc.UpdateStatus(ctx, f.owner(), f.campaign.ID, "approved")
	assert.ErrorIs(t, err, entity.ErrForbidden)
	_, err = f.uc.Approve(ctx, f.owner(), f.campaign.ID)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	stored, err := f.uc.GetCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignPending, stored.Status)

	_, err = f.uc.Approve(ctx, f.adminActor(), f.campaign.ID)
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(ctx, stranger, f.campaign.ID, "completed")
	assert.ErrorIs(t, err, entity.ErrForbidden)

	result, err := f.uc.UpdateStatus(ctx, f.owner(), f.campaign.ID, "completed")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, entity.CampaignCompleted, result.Campaign.Status)
}

func TestCampaignEndDate_MustFollowStart(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.CreateCampaign(ctx, CreateCampaignInput{
		CreatorID:  f.creator.ID,
		Title:      "Same Day",
		Category:   "Arts",
		GoalAmount: decimal.NewFromInt(10),
		StartDate:  &start,
		EndDate:    &start,
	})
	assert.ErrorIs(t, err, entity.ErrValidation)

	stored, err := f.uc.GetCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	sameAsStart := stored.StartDate
	_, err = f.uc.UpdateCampaign(ctx, f.owner(), f.campaign.ID, CampaignPatch{EndDate: &sameAsStart})
	assert.ErrorIs(t, err, entity.ErrValidation)

	later := stored.StartDate.Add(24 * time.Hour)
	result, err := f.uc.UpdateCampaign(ctx, f.owner(), f.campaign.ID, CampaignPatch{EndDate: &later})
	require.NoError(t, err)
	assert.True(t, result.Changed)
}

func TestSearchByTitle_WildcardsAreLiteral(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	for _, title := range []string{"100% Recycled Bikes", "1000 Trees", "Snake_Case Club"} {
		_, err := f.uc.CreateCampaign(ctx, CreateCampaignInput{
			CreatorID:  f.stranger.ID,
			Title:      title,
			Category:   "Community",
			GoalAmount: decimal.NewFromInt(100),
		})
		require.NoError(t, err)
	}

	found, err := f.uc.SearchByTitle(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "100% Recycled Bikes", found[0].Title)

	found, err = f.uc.SearchByTitle(ctx, "_")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Snake_Case Club", found[0].Title)

	_, err = f.uc.SearchByTitle(ctx, `\`)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCampaignQueries(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := f.uc.CreateCampaign(ctx, CreateCampaignInput{
			CreatorID:  f.stranger.ID,
			Title:      fmt.Sprintf("Mural %d", i),
			Category:   "Arts",
			GoalAmount: decimal.NewFromInt(100),
		})
		require.NoError(t, err)
	}
	_, err := f.uc.Approve(ctx, f.adminActor(), f.campaign.ID)
	require.NoError(t, err)

	all, err := f.uc.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	mine, err := f.uc.ListByCreator(ctx, f.creator.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	arts, err := f.uc.ListByCategory(ctx, "arts")
	require.NoError(t, err)
	assert.Len(t, arts, 4)

	_, err = f.uc.ListByCategory(ctx, "Health")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	active, err := f.uc.ListByStatus(ctx, "active")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, f.campaign.ID, active[0].ID)

	found, err := f.uc.SearchByTitle(ctx, "MURAL")
	require.NoError(t, err)
	assert.Len(t, found, 4)

	_, err = f.uc.SearchByTitle(ctx, "submarine")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	page, err := f.uc.Paginate(ctx, 2, 3, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Page)

	filtered, err := f.uc.Paginate(ctx, 0, 0, "Arts", "pending")
	require.NoError(t, err)
	assert.Equal(t, int64(4), filtered.Total)
	assert.Equal(t, 1, filtered.Page)
	assert.Equal(t, defaultPerPage, filtered.PerPage)
}

func TestPostUpdateAndUploadImage(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	posted, err := f.uc.PostUpdate(ctx, f.owner(), f.campaign.ID, "Prototype done", "We shipped the first kiosk.")
	require.NoError(t, err)
	assert.Empty(t, posted.Changes)

	got, err := f.uc.GetUpdate(ctx, posted.ID)
	require.NoError(t, err)
	assert.Equal(t, "Prototype done", got.Title)

	_, err = f.uc.PostUpdate(ctx, Actor{UserID: f.stranger.ID, Role: entity.RoleCreator}, f.campaign.ID, "Spam", "spam")
	assert.ErrorIs(t, err, entity.ErrForbidden)

	campaign, err := f.uc.UploadImage(ctx, f.owner(), f.campaign.ID, bytes.NewReader([]byte("jpeg")), "kiosk.jpg", "image/jpeg")
	require.NoError(t, err)
	require.Len(t, f.images.keys, 1)
	assert.Equal(t, "https://cdn.example.com/"+f.images.keys[0], campaign.ImageURL)

	updates, err := f.uc.ListUpdates(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Len(t, updates, 2)

	_, err = f.uc.ListUpdates(ctx, 9999)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDeleteCampaign(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.DeleteCampaign(ctx, f.owner(), f.campaign.ID))

	_, err := f.uc.GetCampaign(ctx, f.campaign.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.ErrorIs(t, f.uc.DeleteCampaign(ctx, f.owner(), f.campaign.ID), entity.ErrNotFound)
}
