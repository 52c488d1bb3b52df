package application

import (
	"context"
	"testing"
	"time"

	"github.com/Techluminate-Academy/bsn-directory/internal/domain/member"
	"github.com/Techluminate-Academy/bsn-directory/internal/repository"
	"github.com/Techluminate-Academy/bsn-directory/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMemberService(t *testing.T) (*MemberService, *mock.MockMemberRepo, *fakeCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockMember := mock.NewMockMemberRepo(ctrl)
	repos := &repository.Repos{Member: mockMember}
	store := newFakeCache()
	svc := NewMemberService(repos, store, time.Minute)
	return svc, mockMember, store
}

func onePage() *member.Page {
	return &member.Page{
		Records: []member.Record{{
			AirtableID: "rec1",
			Fields:     map[string]any{member.FieldFullName: "Ada Lovelace"},
		}},
		Total: 1, Page: 1, Limit: 20,
	}
}

func TestList_CachesPerQueryKey(t *testing.T) {
	svc, mockMember, _ := setupMemberService(t)

	q := member.ListQuery{Page: 1, Limit: 20, IndustryHouse: "Water"}
	mockMember.EXPECT().List(gomock.Any(), q).Return(onePage(), nil).Times(1)

	first, err := svc.List(context.Background(), q)
	require.NoError(t, err)
	second, err := svc.List(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, first.Total, second.Total)
}

func TestList_DistinctFiltersMissSeparately(t *testing.T) {
	svc, mockMember, _ := setupMemberService(t)

	qA := member.ListQuery{Page: 1, Limit: 20, IndustryHouse: "Water"}
	qB := member.ListQuery{Page: 1, Limit: 20, IndustryHouse: "Energy"}
	mockMember.EXPECT().List(gomock.Any(), qA).Return(onePage(), nil)
	mockMember.EXPECT().List(gomock.Any(), qB).Return(&member.Page{Page: 1, Limit: 20}, nil)

	_, err := svc.List(context.Background(), qA)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), qB)
	require.NoError(t, err)
}

func TestList_FilterValuesWithDelimiterDoNotCollide(t *testing.T) {
	// Joined naively, both queries would produce the key suffix
	// "1:2:A:B:C:"; each must reach the repo and get its own entry.
	svc, mockMember, _ := setupMemberService(t)

	qA := member.ListQuery{Page: 1, Limit: 2, IndustryHouse: "A:B", MembershipLevel: "C"}
	qB := member.ListQuery{Page: 1, Limit: 2, IndustryHouse: "A", MembershipLevel: "B:C"}
	mockMember.EXPECT().List(gomock.Any(), qA).Return(&member.Page{Total: 1, Page: 1, Limit: 2}, nil).Times(1)
	mockMember.EXPECT().List(gomock.Any(), qB).Return(&member.Page{Total: 2, Page: 1, Limit: 2}, nil).Times(1)

	pageA, err := svc.List(context.Background(), qA)
	require.NoError(t, err)
	pageB, err := svc.List(context.Background(), qB)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pageA.Total)
	assert.Equal(t, int64(2), pageB.Total)
}

func TestSearch_CachesUnderSearchNamespace(t *testing.T) {
	svc, mockMember, store := setupMemberService(t)

	mockMember.EXPECT().Search(gomock.Any(), "ada", 1, 20).Return(onePage(), nil).Times(1)

	_, err := svc.Search(context.Background(), "ada", 1, 20)
	require.NoError(t, err)
	_, err = svc.Search(context.Background(), "ada", 1, 20)
	require.NoError(t, err)

	// A mirror write clears the namespace; the next read misses again.
	require.NoError(t, store.DeletePrefix(context.Background(), "members:search:"))
	mockMember.EXPECT().Search(gomock.Any(), "ada", 1, 20).Return(onePage(), nil)
	_, err = svc.Search(context.Background(), "ada", 1, 20)
	require.NoError(t, err)
}

func TestGetByEmail_NotFound(t *testing.T) {
	svc, mockMember, _ := setupMemberService(t)

	mockMember.EXPECT().FindByEmail(gomock.Any(), "missing@example.com").
		Return(nil, repository.ErrMemberNotFound)

	_, err := svc.GetByEmail(context.Background(), "missing@example.com")
	assert.True(t, IsNotFound(err))
}
