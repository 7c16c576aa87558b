package repositories

import (
	"crew-dispatch/domain"
	apperrors "crew-dispatch/errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Upsert_Group_Refreshes_The_Same_Row(t *testing.T) {
	req := require.New(t)
	repository := NewActivityRepository(openTestDB(t))

	// Given a private message activity that was already read
	at := time.Now().UTC()
	input := domain.NewActivity{
		User:        "bob",
		Type:        domain.ActivityPrivateMessage,
		RelatedUser: "alice",
		GroupKey:    domain.PrivateMessageGroupKey("alice"),
	}
	first, err := repository.UpsertGroup(input, at)
	req.NoError(err)
	_, err = repository.MarkRead("bob", nil, at)
	req.NoError(err)

	// When the same group is upserted again later
	second, err := repository.UpsertGroup(input, at.Add(time.Minute))
	req.NoError(err)

	// Then it is the same row, unread again, with a refreshed timestamp
	req.Equal(first.ID, second.ID)
	req.False(second.Read)
	req.True(second.CreatedAt.Equal(at.Add(time.Minute)))

	feed, err := repository.ListByUser("bob", 10, 0)
	req.NoError(err)
	req.Len(feed, 1)
	req.Equal(first.ID, feed[0].ID)
}

func Test_Upsert_Group_Moves_Row_To_The_Top(t *testing.T) {
	req := require.New(t)
	repository := NewActivityRepository(openTestDB(t))

	at := time.Now().UTC()
	fromAlice := domain.NewActivity{User: "bob", Type: domain.ActivityPrivateMessage, RelatedUser: "alice", GroupKey: domain.PrivateMessageGroupKey("alice")}
	fromClara := domain.NewActivity{User: "bob", Type: domain.ActivityPrivateMessage, RelatedUser: "clara", GroupKey: domain.PrivateMessageGroupKey("clara")}

	alice, err := repository.UpsertGroup(fromAlice, at)
	req.NoError(err)
	clara, err := repository.UpsertGroup(fromClara, at.Add(time.Second))
	req.NoError(err)

	feed, err := repository.ListByUser("bob", 10, 0)
	req.NoError(err)
	req.Equal([]uuid.UUID{clara.ID, alice.ID}, []uuid.UUID{feed[0].ID, feed[1].ID})

	// When alice writes again
	_, err = repository.UpsertGroup(fromAlice, at.Add(2*time.Second))
	req.NoError(err)

	// Then her row leads the feed and no duplicate remains
	feed, err = repository.ListByUser("bob", 10, 0)
	req.NoError(err)
	req.Len(feed, 2)
	req.Equal(alice.ID, feed[0].ID)
	req.Equal(clara.ID, feed[1].ID)
}

func Test_Concurrent_Upserts_Of_One_Group_Keep_One_Row(t *testing.T) {
	req := require.New(t)
	repository := NewActivityRepository(openTestDB(t))

	input := domain.NewActivity{User: "bob", Type: domain.ActivityJobMessage, RelatedEvent: "e1", GroupKey: domain.EventMentionGroupKey("e1")}
	at := time.Now().UTC()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = repository.UpsertGroup(input, at.Add(time.Duration(i)*time.Millisecond))
		}(i)
	}
	wg.Wait()

	feed, err := repository.ListByUser("bob", 10, 0)
	req.NoError(err)
	req.Len(feed, 1)
}

func Test_Insert_Grouped_Row_Twice_Fails(t *testing.T) {
	req := require.New(t)
	repository := NewActivityRepository(openTestDB(t))

	at := time.Now().UTC()
	input := domain.NewActivity{User: "bob", Type: domain.ActivityJobAcceptance, RelatedOpportunity: "o1", GroupKey: "o1"}
	req.NoError(repository.Insert(input.ToActivity(at)))
	req.ErrorIs(repository.Insert(input.ToActivity(at)), apperrors.ErrGroupKeyTaken)
}

func Test_List_By_User_Pages(t *testing.T) {
	req := require.New(t)
	repository := NewActivityRepository(openTestDB(t))

	at := time.Now().UTC()
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		a := domain.NewActivity{User: "bob", Type: domain.ActivityJobClosed, RelatedOpportunity: "o"}.ToActivity(at.Add(time.Duration(i) * time.Second))
		req.NoError(repository.Insert(a))
		ids = append(ids, a.ID)
	}
	req.NoError(repository.Insert(domain.NewActivity{User: "alice", Type: domain.ActivityJobClosed}.ToActivity(at)))

	page, err := repository.ListByUser("bob", 2, 1)
	req.NoError(err)
	req.Len(page, 2)
	req.Equal(ids[3], page[0].ID)
	req.Equal(ids[2], page[1].ID)
}

func Test_Mark_Read_Counts_Only_Changed_Rows(t *testing.T) {
	req := require.New(t)
	repository := NewActivityRepository(openTestDB(t))

	// Given three activities for bob, one for alice
	at := time.Now().UTC()
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		a := domain.NewActivity{User: "bob", Type: domain.ActivityJobClosed}.ToActivity(at.Add(time.Duration(i) * time.Second))
		req.NoError(repository.Insert(a))
		ids = append(ids, a.ID)
	}
	other := domain.NewActivity{User: "alice", Type: domain.ActivityJobClosed}.ToActivity(at)
	req.NoError(repository.Insert(other))

	// When bob marks one of his and alice's as read
	modified, err := repository.MarkRead("bob", []uuid.UUID{ids[0], other.ID}, at)
	req.NoError(err)
	req.Equal(1, modified)

	// When bob marks everything
	modified, err = repository.MarkRead("bob", nil, at)
	req.NoError(err)
	req.Equal(2, modified)

	// Then alice's row is untouched
	stored, err := repository.GetActivity(other.ID)
	req.NoError(err)
	req.False(stored.Read)
}

func Test_Feed_Of_A_User_Ignores_Ids_Sharing_Its_Prefix(t *testing.T) {
	req := require.New(t)
	repository := NewActivityRepository(openTestDB(t))
	at := time.Now().UTC()

	// Given a row owned by "team:7" and none owned by "team"
	req.NoError(repository.Insert(domain.NewActivity{User: "team:7", Type: domain.ActivityJobAcceptance}.ToActivity(at)))

	// When the feed of "team" is listed and marked read
	feed, err := repository.ListByUser("team", 10, 0)
	req.NoError(err)
	modified, err := repository.MarkRead("team", nil, at)
	req.NoError(err)

	// Then nothing of "team:7" is seen or touched
	req.Empty(feed)
	req.Zero(modified)
	other, err := repository.ListByUser("team:7", 10, 0)
	req.NoError(err)
	req.Len(other, 1)
	req.False(other[0].Read)
}
