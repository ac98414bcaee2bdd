package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"orgsync/internal/domain"
	"orgsync/internal/service/mocks"
)

type PullRequestSyncerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source     *mocks.MockSource
	repos      *mocks.MockRepositoryStore
	pulls      *mocks.MockPullRequestStore
	users      *mocks.MockUserStore
	watermarks *mocks.MockWatermarkStore
	tx         *mocks.MockTransactionManager

	syncer *PullRequestSyncer
}

func (s *PullRequestSyncerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.repos = mocks.NewMockRepositoryStore(s.ctrl)
	s.pulls = mocks.NewMockPullRequestStore(s.ctrl)
	s.users = mocks.NewMockUserStore(s.ctrl)
	s.watermarks = mocks.NewMockWatermarkStore(s.ctrl)
	s.tx = mocks.NewMockTransactionManager(s.ctrl)

	s.syncer = NewPullRequestSyncer(
		s.source,
		s.repos,
		s.pulls,
		s.users,
		s.watermarks,
		s.tx,
		nil,
		testLogger(),
	)
}

func (s *PullRequestSyncerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPullRequestSyncerTestSuite(t *testing.T) {
	suite.Run(t, new(PullRequestSyncerTestSuite))
}

func (s *PullRequestSyncerTestSuite) expectRepoLoop(ctx context.Context, repo domain.Repository, prs []domain.PullRequest) {
	s.source.EXPECT().ListRepositories(ctx, "acme").Return([]domain.Repository{repo}, nil)
	s.repos.EXPECT().Upsert(ctx, &repo).Return(nil)
	s.watermarks.EXPECT().Get(ctx, repo.GithubID, domain.KindPulls).Return(time.Time{}, nil)
	s.source.EXPECT().Pulls(repo, time.Time{}).Return(staticPager(prs))
	if len(prs) > 0 {
		latest := prs[len(prs)-1].UpdatedAt
		s.watermarks.EXPECT().Advance(ctx, repo.GithubID, domain.KindPulls, latest).Return(nil)
	}
}

func (s *PullRequestSyncerTestSuite) expectTransaction(ctx context.Context) {
	s.tx.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *PullRequestSyncerTestSuite) TestSync_MergesDetailAndReplacesReviews() {
	ctx := context.Background()
	updated := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	submitted := updated.Add(-time.Hour)

	repo := domain.Repository{GithubID: 1, FullName: "acme/api"}
	pr := domain.PullRequest{
		GithubID:     501,
		RepoGithubID: 1,
		Number:       42,
		State:        "open",
		UpdatedAt:    updated,
		Author:       &domain.User{GithubID: 7, Login: "alice"},
	}
	reviews := []domain.Review{
		{PRGithubID: 501, ReviewerLogin: "bob", SubmittedAt: &submitted, State: "APPROVED"},
		{PRGithubID: 501, ReviewerLogin: "carol", SubmittedAt: &submitted, State: "CHANGES_REQUESTED"},
	}

	s.expectRepoLoop(ctx, repo, []domain.PullRequest{pr})

	s.source.EXPECT().PullDetail(gomock.Any(), repo, 42).
		Return(&domain.PullRequest{Additions: 120, Deletions: 30, ChangedFiles: 5, Merged: false}, nil)
	s.source.EXPECT().PullReviews(gomock.Any(), repo, 42, int64(501)).Return(reviews, nil)

	s.users.EXPECT().Upsert(ctx, pr.Author).Return(nil)

	s.expectTransaction(ctx)
	s.pulls.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got *domain.PullRequest) error {
			s.Equal(120, got.Additions)
			s.Equal(30, got.Deletions)
			s.Equal(5, got.ChangedFiles)
			return nil
		},
	)
	s.pulls.EXPECT().ReplaceReviews(ctx, int64(501), reviews).Return(nil)

	report, err := s.syncer.Sync(ctx, "acme")

	s.NoError(err)
	s.Equal(1, report.ItemsSynced)
	s.Empty(report.Errors)
}

func (s *PullRequestSyncerTestSuite) TestSync_DetailFailureFallsBackToPriorStats() {
	ctx := context.Background()
	updated := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	repo := domain.Repository{GithubID: 1, FullName: "acme/api"}
	pr := domain.PullRequest{GithubID: 501, RepoGithubID: 1, Number: 42, UpdatedAt: updated}

	s.expectRepoLoop(ctx, repo, []domain.PullRequest{pr})

	s.source.EXPECT().PullDetail(gomock.Any(), repo, 42).
		Return(nil, errors.New("502 bad gateway"))
	s.source.EXPECT().PullReviews(gomock.Any(), repo, 42, int64(501)).Return(nil, nil)

	s.pulls.EXPECT().Get(ctx, int64(501)).
		Return(&domain.PullRequest{GithubID: 501, Additions: 10, Deletions: 2, ChangedFiles: 1}, nil)

	s.expectTransaction(ctx)
	s.pulls.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got *domain.PullRequest) error {
			s.Equal(10, got.Additions)
			s.Equal(2, got.Deletions)
			s.Equal(1, got.ChangedFiles)
			return nil
		},
	)
	s.pulls.EXPECT().ReplaceReviews(ctx, int64(501), gomock.Nil()).Return(nil)

	report, err := s.syncer.Sync(ctx, "acme")

	s.NoError(err)
	s.Equal(1, report.ItemsSynced)
	s.Empty(report.Errors)
}

func (s *PullRequestSyncerTestSuite) TestSync_ReviewFailureReplacesWithEmptySet() {
	ctx := context.Background()
	updated := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	repo := domain.Repository{GithubID: 1, FullName: "acme/api"}
	pr := domain.PullRequest{GithubID: 501, RepoGithubID: 1, Number: 42, UpdatedAt: updated}

	s.expectRepoLoop(ctx, repo, []domain.PullRequest{pr})

	s.source.EXPECT().PullDetail(gomock.Any(), repo, 42).
		Return(&domain.PullRequest{Additions: 1}, nil)
	s.source.EXPECT().PullReviews(gomock.Any(), repo, 42, int64(501)).
		Return(nil, errors.New("timeout"))

	s.expectTransaction(ctx)
	s.pulls.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	s.pulls.EXPECT().ReplaceReviews(ctx, int64(501), gomock.Nil()).Return(nil)

	report, err := s.syncer.Sync(ctx, "acme")

	s.NoError(err)
	s.Equal(1, report.ItemsSynced)
	s.Empty(report.Errors)
}

func (s *PullRequestSyncerTestSuite) TestSync_TransactionFailureIsItemLevel() {
	ctx := context.Background()
	updated := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	repo := domain.Repository{GithubID: 1, FullName: "acme/api"}
	pr := domain.PullRequest{GithubID: 501, RepoGithubID: 1, Number: 42, UpdatedAt: updated}

	s.expectRepoLoop(ctx, repo, []domain.PullRequest{pr})

	s.source.EXPECT().PullDetail(gomock.Any(), repo, 42).
		Return(&domain.PullRequest{}, nil)
	s.source.EXPECT().PullReviews(gomock.Any(), repo, 42, int64(501)).Return(nil, nil)

	s.tx.EXPECT().WithTransaction(ctx, gomock.Any()).Return(errors.New("deadlock detected"))

	report, err := s.syncer.Sync(ctx, "acme")

	s.NoError(err)
	s.Equal(0, report.ItemsSynced)
	s.Len(report.Errors, 1)
	s.Equal("pull #42", report.Errors[0].Item)
}
