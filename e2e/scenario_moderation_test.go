package e2e

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"chatter-hub/domain"
	"chatter-hub/services"
)

type testModerationSuite struct {
	BaseHubSuite
}

func TestModerationSuite(t *testing.T) {
	suite.Run(t, &testModerationSuite{})
}

func (s *testModerationSuite) TestWatchAndArchiveFlow() {
	ctx := context.Background()
	var svc services.IChatterService

	var alice, bob domain.Chatter
	var devs domain.Group

	// Boot outside s.Run: cleanups must attach to this test's T, not a
	// subtest's, or the hub is torn down as soon as the subtest ends.
	s.Step("Booting hub")
	svc = s.BootHubWithWatch("scam", "free money")

	s.Run("Step 1: Register population", func() {
		s.Step("Registering population")
		var err error
		alice, err = svc.CreateChatter(ctx, "alice")
		s.Require().NoError(err)
		bob, err = svc.CreateChatter(ctx, "bob")
		s.Require().NoError(err)
		devs, err = svc.CreateGroup("devs")
		s.Require().NoError(err)
		s.Require().NoError(svc.AddChatterToGroup(alice.ID, devs.ID))
		s.Require().NoError(svc.AddChatterToGroup(bob.ID, devs.ID))
	})

	s.Run("Step 2: Publish clean and flagged traffic", func() {
		s.Step("Publishing messages")
		_, err := svc.SendMessage(ctx, devs.ID, alice.ID, "quarterly numbers look good")
		s.Require().NoError(err)
		_, err = svc.SendMessage(ctx, devs.ID, alice.ID, "Click here for FREE M0NEY !!!")
		s.Require().NoError(err)
	})

	s.Run("Step 3: Delivery is untouched by the watch", func() {
		s.Step("Checking inboxes")
		bobInbox := s.WaitForInbox(svc, bob.ID, 2)
		s.Require().Equal("quarterly numbers look good", bobInbox[0].Body)
		// The flagged body arrives byte-for-byte, disguise included
		s.Require().Equal("Click here for FREE M0NEY !!!", bobInbox[1].Body)
	})

	s.Run("Step 4: The watch flags the disguised spelling", func() {
		s.Step("Checking watch counters")
		s.Require().Eventually(func() bool {
			return svc.Stats().Flagged == 1
		}, s.Config.WaitTimeout, s.Config.PollInterval)
	})

	s.Run("Step 5: The group timeline holds both posts", func() {
		s.Step("Checking timeline")
		s.Require().Eventually(func() bool {
			posted, err := svc.RecentInGroup(devs.ID)
			return err == nil && len(posted) == 2
		}, s.Config.WaitTimeout, s.Config.PollInterval)
	})

	s.Run("Step 6: Export the delivered history", func() {
		s.Step("Exporting transcript")
		path := filepath.Join(s.T().TempDir(), "bob.pdf")
		count, err := svc.ExportReceived(path, bob.ID)
		s.Require().NoError(err)
		s.Require().Equal(2, count)

		data, err := os.ReadFile(path)
		s.Require().NoError(err)
		s.Require().Equal("%PDF", string(data[:4]))
	})
}
