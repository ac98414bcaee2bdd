package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"orgsync/internal/domain"
	"orgsync/internal/service/mocks"
)

type MaintainerSyncerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source      *mocks.MockSource
	repos       *mocks.MockRepositoryStore
	maintainers *mocks.MockMaintainerStore
	users       *mocks.MockUserStore
	watermarks  *mocks.MockWatermarkStore

	syncer *MaintainerSyncer
}

func (s *MaintainerSyncerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.repos = mocks.NewMockRepositoryStore(s.ctrl)
	s.maintainers = mocks.NewMockMaintainerStore(s.ctrl)
	s.users = mocks.NewMockUserStore(s.ctrl)
	s.watermarks = mocks.NewMockWatermarkStore(s.ctrl)

	s.syncer = NewMaintainerSyncer(
		s.source,
		s.repos,
		s.maintainers,
		s.users,
		s.watermarks,
		nil,
		testLogger(),
	)
}

func (s *MaintainerSyncerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMaintainerSyncerTestSuite(t *testing.T) {
	suite.Run(t, new(MaintainerSyncerTestSuite))
}

func (s *MaintainerSyncerTestSuite) TestSync_DeniedCollaboratorsDegradesToFileEvidence() {
	ctx := context.Background()
	repo := domain.Repository{GithubID: 1, FullName: "acme/api"}

	s.source.EXPECT().ListRepositories(ctx, "acme").Return([]domain.Repository{repo}, nil)
	s.repos.EXPECT().Upsert(ctx, &repo).Return(nil)

	s.source.EXPECT().Collaborators(ctx, repo).Return(nil, domain.ErrPermissionDenied)
	s.source.EXPECT().CodeownersContent(ctx, repo).Return("* @alice @bob\n", nil)
	s.source.EXPECT().PackageMetaContent(ctx, repo).Return("", nil)

	// File evidence carries logins only; identities resolve through the API.
	s.source.EXPECT().GetUser(ctx, "alice").Return(&domain.User{GithubID: 7, Login: "alice"}, nil)
	s.source.EXPECT().GetUser(ctx, "bob").Return(&domain.User{GithubID: 8, Login: "bob"}, nil)

	s.users.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(2)
	s.users.EXPECT().MarkMaintainer(ctx, int64(7)).Return(nil)
	s.users.EXPECT().MarkMaintainer(ctx, int64(8)).Return(nil)

	gotLogins := make([]string, 0, 2)
	s.maintainers.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.MaintainerAssertion) error {
			s.Equal(repo.GithubID, a.RepoGithubID)
			s.Equal(domain.SourceCodeowners, a.Source)
			s.Equal(70, a.Confidence)
			gotLogins = append(gotLogins, a.User.Login)
			return nil
		},
	).Times(2)

	s.watermarks.EXPECT().Advance(ctx, repo.GithubID, domain.KindMaintainers, gomock.Any()).Return(nil)

	report, err := s.syncer.Sync(ctx, "acme")

	s.NoError(err)
	s.Equal(1, report.ReposProcessed)
	s.Equal(2, report.ItemsSynced)
	s.Empty(report.Errors)
	s.Equal([]string{"alice", "bob"}, gotLogins)
}

func (s *MaintainerSyncerTestSuite) TestSync_GlobalFlagMarkedOncePerRun() {
	ctx := context.Background()
	repoA := domain.Repository{GithubID: 1, FullName: "acme/api"}
	repoB := domain.Repository{GithubID: 2, FullName: "acme/docs"}
	alice := domain.User{GithubID: 7, Login: "alice"}

	s.source.EXPECT().ListRepositories(ctx, "acme").
		Return([]domain.Repository{repoA, repoB}, nil)
	s.repos.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(2)

	for _, repo := range []domain.Repository{repoA, repoB} {
		s.source.EXPECT().Collaborators(ctx, repo).
			Return([]domain.PermissionEvidence{{User: alice, Permission: "admin"}}, nil)
		s.source.EXPECT().CodeownersContent(ctx, repo).Return("", nil)
		s.source.EXPECT().PackageMetaContent(ctx, repo).Return("", nil)
		s.watermarks.EXPECT().Advance(ctx, repo.GithubID, domain.KindMaintainers, gomock.Any()).Return(nil)
	}

	// One user row write for the whole run, one assertion per repository.
	s.users.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	s.users.EXPECT().MarkMaintainer(ctx, int64(7)).Return(nil)
	s.maintainers.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.MaintainerAssertion) error {
			s.Equal(domain.SourcePermissions, a.Source)
			s.Equal(100, a.Confidence)
			return nil
		},
	).Times(2)

	report, err := s.syncer.Sync(ctx, "acme")

	s.NoError(err)
	s.Equal(2, report.ReposProcessed)
	s.Equal(2, report.ItemsSynced)
}

func (s *MaintainerSyncerTestSuite) TestSync_CollaboratorOutageSkipsRepo() {
	ctx := context.Background()
	repo := domain.Repository{GithubID: 1, FullName: "acme/api"}

	s.source.EXPECT().ListRepositories(ctx, "acme").Return([]domain.Repository{repo}, nil)
	s.repos.EXPECT().Upsert(ctx, &repo).Return(nil)
	s.source.EXPECT().Collaborators(ctx, repo).Return(nil, errors.New("503 unavailable"))

	report, err := s.syncer.Sync(ctx, "acme")

	s.NoError(err)
	s.Equal(0, report.ReposProcessed)
	s.Equal(1, report.ReposSkipped)
	s.Len(report.Errors, 1)
}

func (s *MaintainerSyncerTestSuite) TestSync_UnresolvableLoginIsItemLevel() {
	ctx := context.Background()
	repo := domain.Repository{GithubID: 1, FullName: "acme/api"}

	s.source.EXPECT().ListRepositories(ctx, "acme").Return([]domain.Repository{repo}, nil)
	s.repos.EXPECT().Upsert(ctx, &repo).Return(nil)

	s.source.EXPECT().Collaborators(ctx, repo).Return(nil, domain.ErrPermissionDenied)
	s.source.EXPECT().CodeownersContent(ctx, repo).Return("* @ghost @alice\n", nil)
	s.source.EXPECT().PackageMetaContent(ctx, repo).Return("", nil)

	s.source.EXPECT().GetUser(ctx, "ghost").Return(nil, errors.New("404 not found"))
	s.source.EXPECT().GetUser(ctx, "alice").Return(&domain.User{GithubID: 7, Login: "alice"}, nil)

	s.users.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	s.users.EXPECT().MarkMaintainer(ctx, int64(7)).Return(nil)
	s.maintainers.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	s.watermarks.EXPECT().Advance(ctx, repo.GithubID, domain.KindMaintainers, gomock.Any()).Return(nil)

	report, err := s.syncer.Sync(ctx, "acme")

	s.NoError(err)
	s.Equal(1, report.ReposProcessed)
	s.Equal(1, report.ItemsSynced)
	s.Len(report.Errors, 1)
	s.Equal("ghost", report.Errors[0].Item)
}
